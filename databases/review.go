package databases

// go generate: mockery --name ReviewDatabase

import (
	"context"

	"github.com/linesmerrill/storefront-api/models"
)

const reviewsKey = "car-sales-reviews"

// ReviewDatabase contains the methods to use with the review collection
type ReviewDatabase interface {
	Load(ctx context.Context) []models.Review
	Save(ctx context.Context, reviews []models.Review)
}

type reviewDatabase struct {
	store *Store
}

// NewReviewDatabase initializes a new instance of review database with the provided store
func NewReviewDatabase(store *Store) ReviewDatabase {
	return &reviewDatabase{
		store: store,
	}
}

func (r *reviewDatabase) Load(ctx context.Context) []models.Review {
	return loadCollection[models.Review](ctx, r.store, reviewsKey)
}

func (r *reviewDatabase) Save(ctx context.Context, reviews []models.Review) {
	r.store.Save(ctx, reviewsKey, reviews)
}
