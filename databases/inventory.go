package databases

// go generate: mockery --name InventoryDatabase

import (
	"context"

	"github.com/linesmerrill/storefront-api/models"
)

const inventoryKey = "car-sales-inventory"

// InventoryDatabase contains the methods to use with the inventory collection
type InventoryDatabase interface {
	Load(ctx context.Context) []models.VehicleListing
	Save(ctx context.Context, listings []models.VehicleListing)
}

type inventoryDatabase struct {
	store *Store
}

// NewInventoryDatabase initializes a new instance of inventory database with the provided store
func NewInventoryDatabase(store *Store) InventoryDatabase {
	return &inventoryDatabase{
		store: store,
	}
}

func (i *inventoryDatabase) Load(ctx context.Context) []models.VehicleListing {
	listings := loadCollection[models.VehicleListing](ctx, i.store, inventoryKey)
	for idx := range listings {
		if listings[idx].Images == nil {
			listings[idx].Images = []string{}
		}
	}
	return listings
}

func (i *inventoryDatabase) Save(ctx context.Context, listings []models.VehicleListing) {
	i.store.Save(ctx, inventoryKey, listings)
}
