package models

import "time"

// ReviewSourceOnsite tags reviews submitted through the storefront itself
const ReviewSourceOnsite = "onsite"

// Review holds the structure for a customer review in the reviews collection
type Review struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	Response  string    `json:"response" bson:"response"`
	Approved  bool      `json:"approved" bson:"approved"`
	Source    string    `json:"source" bson:"source"`
}

// ReviewStats aggregates the published reviews
type ReviewStats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// ReviewBoardResponse is returned when listing reviews. Pending is null for visitors
// and a list, possibly empty, for admin sessions.
type ReviewBoardResponse struct {
	Published []Review    `json:"published"`
	Pending   []Review    `json:"pending"`
	Stats     ReviewStats `json:"stats"`
	ReviewURL string      `json:"reviewUrl,omitempty"`
}

// ResponseRequest carries the owner response committed for a review
type ResponseRequest struct {
	Response string `json:"response"`
}
