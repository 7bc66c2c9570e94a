package moderation

import (
	"context"

	"github.com/linesmerrill/storefront-api/models"
	"github.com/linesmerrill/storefront-api/session"
)

// ResponseDraft is an owner response being edited. Edits stay local to the draft until
// it is committed to the board.
type ResponseDraft struct {
	reviewID string
	text     string
}

// Draft starts editing the response of review id, seeded with its current response
func (b *Board) Draft(id string) (*ResponseDraft, error) {
	r, err := b.Get(id)
	if err != nil {
		return nil, err
	}
	return &ResponseDraft{reviewID: r.ID, text: r.Response}, nil
}

// Edit replaces the draft text
func (d *ResponseDraft) Edit(text string) {
	d.text = text
}

// Text returns the draft text
func (d *ResponseDraft) Text() string {
	return d.text
}

// ReviewID returns the id of the review being answered
func (d *ResponseDraft) ReviewID() string {
	return d.reviewID
}

// Commit writes the draft text as the review's response
func (b *Board) Commit(ctx context.Context, s session.Session, d *ResponseDraft) (models.Review, error) {
	return b.Respond(ctx, s, d.reviewID, d.text)
}
