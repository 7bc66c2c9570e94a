package catalogue

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/linesmerrill/storefront-api/databases"
	"github.com/linesmerrill/storefront-api/models"
	"github.com/linesmerrill/storefront-api/session"
)

// ErrListingNotFound is returned for an unknown listing id
var ErrListingNotFound = errors.New("vehicle not found")

// Inventory is the listing collection. Every successful mutation is followed by a save
// of the whole collection.
type Inventory struct {
	mu       sync.RWMutex
	db       databases.InventoryDatabase
	listings []models.VehicleListing
	town     string

	now   func() time.Time
	newID func() string
}

// NewInventory loads the saved collection from db. town is the default location of new
// listings.
func NewInventory(ctx context.Context, db databases.InventoryDatabase, town string) *Inventory {
	listings := db.Load(ctx)
	zap.S().Debugf("loaded %d listings", len(listings))
	return &Inventory{
		db:       db,
		listings: listings,
		town:     town,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// List returns a copy of the collection in stored order
func (inv *Inventory) List() []models.VehicleListing {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return append([]models.VehicleListing{}, inv.listings...)
}

// Get returns the listing with id
func (inv *Inventory) Get(id string) (models.VehicleListing, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	for _, v := range inv.listings {
		if v.ID == id {
			return v, nil
		}
	}
	return models.VehicleListing{}, ErrListingNotFound
}

// Add builds a listing from d and puts it first
func (inv *Inventory) Add(ctx context.Context, s session.Session, d Draft) (models.VehicleListing, error) {
	if err := session.Require(s); err != nil {
		return models.VehicleListing{}, err
	}
	listing, err := d.Build(inv.newID(), inv.now(), inv.town)
	if err != nil {
		return models.VehicleListing{}, err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.listings = append([]models.VehicleListing{listing}, inv.listings...)
	inv.db.Save(ctx, inv.listings)
	return listing, nil
}

// Delete removes the listing with id, the others keep their order
func (inv *Inventory) Delete(ctx context.Context, s session.Session, id string) error {
	if err := session.Require(s); err != nil {
		return err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	for i, v := range inv.listings {
		if v.ID != id {
			continue
		}
		next := make([]models.VehicleListing, 0, len(inv.listings)-1)
		next = append(next, inv.listings[:i]...)
		inv.listings = append(next, inv.listings[i+1:]...)
		inv.db.Save(ctx, inv.listings)
		return nil
	}
	return ErrListingNotFound
}
