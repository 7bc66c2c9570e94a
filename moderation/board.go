// Package moderation implements the review lifecycle: a submitted review waits as
// pending until an admin publishes it, can be unpublished again, and can be deleted
// from either state. The owner response is edited as a draft and committed separately.
package moderation

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/linesmerrill/storefront-api/databases"
	"github.com/linesmerrill/storefront-api/models"
	"github.com/linesmerrill/storefront-api/session"
)

var (
	// ErrMissingFields is returned when a submission lacks a name or a comment
	ErrMissingFields = errors.New("Please add your name and a short comment.")
	// ErrReviewNotFound is returned for an unknown review id
	ErrReviewNotFound = errors.New("review not found")
)

// SubmittedMessage is shown to a visitor after a successful submission
const SubmittedMessage = "Thanks! Your review was submitted and is awaiting approval."

// DefaultRating is used when a submission carries no valid rating
const DefaultRating = 5

// ReviewForm is a visitor submission
type ReviewForm struct {
	Name    models.FormValue `json:"name"`
	Rating  models.FormValue `json:"rating"`
	Comment models.FormValue `json:"comment"`
}

// Board is the review collection. Every successful mutation is followed by a save of
// the whole collection.
type Board struct {
	mu      sync.RWMutex
	db      databases.ReviewDatabase
	reviews []models.Review

	now   func() time.Time
	newID func() string
}

// NewBoard loads the saved reviews from db
func NewBoard(ctx context.Context, db databases.ReviewDatabase) *Board {
	reviews := db.Load(ctx)
	zap.S().Debugf("loaded %d reviews", len(reviews))
	return &Board{
		db:      db,
		reviews: reviews,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// Submit adds a pending review at the top of the board
func (b *Board) Submit(ctx context.Context, form ReviewForm) (models.Review, error) {
	name, comment := form.Name.String(), form.Comment.String()
	if name == "" || comment == "" {
		return models.Review{}, ErrMissingFields
	}

	review := models.Review{
		ID:        b.newID(),
		Name:      name,
		Rating:    parseRating(form.Rating.String()),
		Comment:   comment,
		CreatedAt: b.now().UTC(),
		Response:  "",
		Approved:  false,
		Source:    models.ReviewSourceOnsite,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.reviews = append([]models.Review{review}, b.reviews...)
	b.db.Save(ctx, b.reviews)
	return review, nil
}

func parseRating(raw string) int {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || n != float64(int(n)) || n < 1 || n > 5 {
		return DefaultRating
	}
	return int(n)
}

// Approve publishes a review
func (b *Board) Approve(ctx context.Context, s session.Session, id string) (models.Review, error) {
	return b.update(ctx, s, id, func(r *models.Review) { r.Approved = true })
}

// Unapprove moves a published review back to pending
func (b *Board) Unapprove(ctx context.Context, s session.Session, id string) (models.Review, error) {
	return b.update(ctx, s, id, func(r *models.Review) { r.Approved = false })
}

// Respond replaces the owner response of a review in either state
func (b *Board) Respond(ctx context.Context, s session.Session, id, response string) (models.Review, error) {
	return b.update(ctx, s, id, func(r *models.Review) { r.Response = response })
}

// Delete removes a review in either state
func (b *Board) Delete(ctx context.Context, s session.Session, id string) error {
	if err := session.Require(s); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexOf(id)
	if i < 0 {
		return ErrReviewNotFound
	}
	next := make([]models.Review, 0, len(b.reviews)-1)
	next = append(next, b.reviews[:i]...)
	b.reviews = append(next, b.reviews[i+1:]...)
	b.db.Save(ctx, b.reviews)
	return nil
}

func (b *Board) update(ctx context.Context, s session.Session, id string, apply func(*models.Review)) (models.Review, error) {
	if err := session.Require(s); err != nil {
		return models.Review{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexOf(id)
	if i < 0 {
		return models.Review{}, ErrReviewNotFound
	}
	next := append([]models.Review(nil), b.reviews...)
	apply(&next[i])
	b.reviews = next
	b.db.Save(ctx, b.reviews)
	return next[i], nil
}

func (b *Board) indexOf(id string) int {
	for i, r := range b.reviews {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the review with id in either state
func (b *Board) Get(id string) (models.Review, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i := b.indexOf(id); i >= 0 {
		return b.reviews[i], nil
	}
	return models.Review{}, ErrReviewNotFound
}

// Published returns the approved reviews in board order
func (b *Board) Published() []models.Review {
	return b.filter(true)
}

// Pending returns the reviews awaiting approval in board order
func (b *Board) Pending() []models.Review {
	return b.filter(false)
}

func (b *Board) filter(approved bool) []models.Review {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := []models.Review{}
	for _, r := range b.reviews {
		if r.Approved == approved {
			out = append(out, r)
		}
	}
	return out
}

// Stats summarizes the published reviews
func (b *Board) Stats() models.ReviewStats {
	published := b.Published()
	if len(published) == 0 {
		return models.ReviewStats{}
	}
	total := 0
	for _, r := range published {
		total += r.Rating
	}
	return models.ReviewStats{
		Count:   len(published),
		Average: float64(total) / float64(len(published)),
	}
}
