package catalogue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linesmerrill/storefront-api/catalogue"
	"github.com/linesmerrill/storefront-api/models"
)

func TestFacets(t *testing.T) {
	inventory := append(fixture(), models.VehicleListing{ID: "blank", Make: "Ford"})

	facets := catalogue.Facets(inventory)

	assert.Equal(t, []string{"Ford", "VW", "Nissan"}, facets.Make)
	assert.Equal(t, []string{"Hatchback"}, facets.Body)
	assert.Equal(t, []string{"Petrol", "Diesel", "Electric"}, facets.Fuel)
	assert.Equal(t, []string{"Manual", "Automatic"}, facets.Transmission)
	assert.Equal(t, []string{"Helensburgh", "Glasgow"}, facets.Location)
	assert.Equal(t, 4, facets.Total)
}

func TestFacetsEmptyInventory(t *testing.T) {
	facets := catalogue.Facets(nil)
	assert.Equal(t, []string{}, facets.Make)
	assert.Equal(t, 0, facets.Total)
}

func TestDisplayImages(t *testing.T) {
	assert.Equal(t, []string{catalogue.PlaceholderImage}, catalogue.DisplayImages(models.VehicleListing{}))
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, catalogue.DisplayImages(models.VehicleListing{Images: []string{"a.jpg", "b.jpg"}}))
}
