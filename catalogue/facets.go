package catalogue

import "github.com/linesmerrill/storefront-api/models"

// PlaceholderImage is shown in the gallery of a listing without images
const PlaceholderImage = "https://images.pexels.com/photos/358070/pexels-photo-358070.jpeg"

// Facets collects the options of each categorical filter, distinct non-empty values in
// the order they first appear in full
func Facets(full []models.VehicleListing) models.FacetsResponse {
	return models.FacetsResponse{
		Make:         distinct(full, func(v models.VehicleListing) string { return v.Make }),
		Body:         distinct(full, func(v models.VehicleListing) string { return v.Body }),
		Fuel:         distinct(full, func(v models.VehicleListing) string { return v.Fuel }),
		Transmission: distinct(full, func(v models.VehicleListing) string { return v.Transmission }),
		Location:     distinct(full, func(v models.VehicleListing) string { return v.Location }),
		Total:        len(full),
	}
}

func distinct(full []models.VehicleListing, field func(models.VehicleListing) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, v := range full {
		value := field(v)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
	}
	return out
}

// DisplayImages returns the gallery of v, never empty
func DisplayImages(v models.VehicleListing) []string {
	if len(v.Images) == 0 {
		return []string{PlaceholderImage}
	}
	return append([]string(nil), v.Images...)
}
