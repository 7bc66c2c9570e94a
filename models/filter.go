package models

// SortKey selects the ordering of the derived inventory list
type SortKey string

// Supported sort keys. Anything else sorts as SortNewest.
const (
	SortNewest      SortKey = "newest"
	SortPriceAsc    SortKey = "price-asc"
	SortPriceDesc   SortKey = "price-desc"
	SortMileageAsc  SortKey = "mileage-asc"
	SortMileageDesc SortKey = "mileage-desc"
	SortYearAsc     SortKey = "year-asc"
	SortYearDesc    SortKey = "year-desc"
)

// FilterSet holds the structured inventory filters. Values are kept exactly as they
// were entered; an empty field means no constraint.
type FilterSet struct {
	Make         string `json:"make"`
	Body         string `json:"body"`
	Fuel         string `json:"fuel"`
	Transmission string `json:"transmission"`
	Location     string `json:"location"`
	MaxPrice     string `json:"maxPrice"`
	MaxMileage   string `json:"maxMileage"`
	YearMin      string `json:"yearMin"`
	YearMax      string `json:"yearMax"`
}
