package models

import "time"

// VehicleListing holds the structure for a single vehicle in the inventory collection
type VehicleListing struct {
	ID           string    `json:"id" bson:"id"`
	Title        string    `json:"title" bson:"title"`
	Make         string    `json:"make" bson:"make"`
	Model        string    `json:"model" bson:"model"`
	Year         int       `json:"year" bson:"year"`
	Price        float64   `json:"price" bson:"price"`
	Mileage      int       `json:"mileage" bson:"mileage"`
	Body         string    `json:"body" bson:"body"`
	Fuel         string    `json:"fuel" bson:"fuel"`
	Transmission string    `json:"transmission" bson:"transmission"`
	Location     string    `json:"location" bson:"location"`
	Color        string    `json:"color" bson:"color"`
	Vin          string    `json:"vin" bson:"vin"`
	Description  string    `json:"description" bson:"description"`
	Images       []string  `json:"images" bson:"images"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// VehicleDetailResponse is returned by the vehicle detail endpoint. Gallery is never
// empty, it falls back to a placeholder image when the listing has no images.
type VehicleDetailResponse struct {
	Vehicle        VehicleListing `json:"vehicle"`
	Gallery        []string       `json:"gallery"`
	WhatsAppLink   string         `json:"whatsappLink"`
	DirectionsLink string         `json:"directionsLink"`
}

// FacetsResponse lists the distinct values offered by each categorical filter
type FacetsResponse struct {
	Make         []string `json:"make"`
	Body         []string `json:"body"`
	Fuel         []string `json:"fuel"`
	Transmission []string `json:"transmission"`
	Location     []string `json:"location"`
	Total        int      `json:"total"`
}
