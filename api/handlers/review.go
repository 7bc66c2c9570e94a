package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/linesmerrill/storefront-api/api"
	"github.com/linesmerrill/storefront-api/branding"
	"github.com/linesmerrill/storefront-api/config"
	"github.com/linesmerrill/storefront-api/models"
	"github.com/linesmerrill/storefront-api/moderation"
	"github.com/linesmerrill/storefront-api/session"
)

// Review exists for dependency injection purposes
type Review struct {
	Board    *moderation.Board
	Branding *branding.Service
	Metrics  *api.Metrics
}

// ReviewsHandler returns the published reviews, and the pending ones to an admin
func (rv Review) ReviewsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()

	resp := models.ReviewBoardResponse{
		Published: rv.Board.Published(),
		Stats:     rv.Board.Stats(),
		ReviewURL: rv.Branding.ReviewURL(ctx),
	}
	if session.FromContext(r.Context()).IsAdmin() {
		resp.Pending = rv.Board.Pending()
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateReviewHandler submits a visitor review for approval
func (rv Review) CreateReviewHandler(w http.ResponseWriter, r *http.Request) {
	var form moderation.ReviewForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	review, err := rv.Board.Submit(ctx, form)
	if err != nil {
		config.ErrorStatus(err.Error(), errorStatus(err), w, err)
		return
	}
	rv.Metrics.Review("submitted")

	writeJSON(w, http.StatusCreated, models.MessageResponse{Message: moderation.SubmittedMessage, ID: review.ID})
}

// ApproveReviewHandler publishes a review
func (rv Review) ApproveReviewHandler(w http.ResponseWriter, r *http.Request) {
	rv.moderate(w, r, "approved", rv.Board.Approve)
}

// UnapproveReviewHandler moves a review back to pending
func (rv Review) UnapproveReviewHandler(w http.ResponseWriter, r *http.Request) {
	rv.moderate(w, r, "unapproved", rv.Board.Unapprove)
}

func (rv Review) moderate(w http.ResponseWriter, r *http.Request, event string, action func(ctx context.Context, s session.Session, id string) (models.Review, error)) {
	reviewID := mux.Vars(r)["review_id"]

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	review, err := action(ctx, session.FromContext(r.Context()), reviewID)
	if err != nil {
		config.ErrorStatus("failed to moderate review", errorStatus(err), w, err)
		return
	}
	rv.Metrics.Review(event)

	writeJSON(w, http.StatusOK, review)
}

// ReviewResponseHandler commits the owner response of a review
func (rv Review) ReviewResponseHandler(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["review_id"]
	s := session.FromContext(r.Context())
	if err := session.Require(s); err != nil {
		config.ErrorStatus("failed to respond to review", http.StatusForbidden, w, err)
		return
	}

	var req models.ResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	draft, err := rv.Board.Draft(reviewID)
	if err != nil {
		config.ErrorStatus("failed to get review by ID", errorStatus(err), w, err)
		return
	}
	draft.Edit(req.Response)

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	review, err := rv.Board.Commit(ctx, s, draft)
	if err != nil {
		config.ErrorStatus("failed to respond to review", errorStatus(err), w, err)
		return
	}
	rv.Metrics.Review("responded")

	writeJSON(w, http.StatusOK, review)
}

// DeleteReviewHandler removes a review in either state
func (rv Review) DeleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["review_id"]

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	if err := rv.Board.Delete(ctx, session.FromContext(r.Context()), reviewID); err != nil {
		config.ErrorStatus("failed to delete review", errorStatus(err), w, err)
		return
	}
	rv.Metrics.Review("deleted")

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "review deleted", ID: reviewID})
}
