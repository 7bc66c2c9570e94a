package models

import "time"

// StoredValue holds the structure of a single key in the storefront collection in mongo
type StoredValue struct {
	Key       string    `json:"_id" bson:"_id"`
	Value     string    `json:"value" bson:"value"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
