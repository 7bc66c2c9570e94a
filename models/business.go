package models

// Business holds the dealership identity shown on every page
type Business struct {
	Name           string `json:"name"`
	Town           string `json:"town"`
	Address        string `json:"address"`
	CompanyReg     string `json:"companyReg"`
	WhatsAppNumber string `json:"whatsappNumber"`
}

// BrandingResponse is returned by the branding endpoint
type BrandingResponse struct {
	Business       Business `json:"business"`
	Logo           string   `json:"logo,omitempty"`
	ReviewURL      string   `json:"reviewUrl,omitempty"`
	WhatsAppLink   string   `json:"whatsappLink"`
	DirectionsLink string   `json:"directionsLink"`
}

// LogoRequest sets the logo from an already encoded data URI
type LogoRequest struct {
	Logo string `json:"logo"`
}

// ReviewLinkRequest sets the external review site link
type ReviewLinkRequest struct {
	ReviewURL string `json:"reviewUrl"`
}
