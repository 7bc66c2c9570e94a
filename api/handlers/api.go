package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/storefront-api/api"
	"github.com/linesmerrill/storefront-api/branding"
	"github.com/linesmerrill/storefront-api/catalogue"
	"github.com/linesmerrill/storefront-api/config"
	"github.com/linesmerrill/storefront-api/databases"
	"github.com/linesmerrill/storefront-api/images"
	"github.com/linesmerrill/storefront-api/models"
	"github.com/linesmerrill/storefront-api/moderation"
	"github.com/linesmerrill/storefront-api/session"
)

// App stores the router and the store connection, so it can be reused
type App struct {
	Router *mux.Router
	Config config.Config

	kv         databases.KeyValue
	closeStore func() error
	uploader   images.Uploader
}

// New creates a new mux router and all the routes. An App that was never initialized
// runs on an in-memory store.
func (a *App) New() *mux.Router {
	ctx := context.Background()

	kv := a.kv
	if kv == nil {
		kv = databases.NewMemoryStore()
	}
	uploader := a.uploader
	if uploader == nil {
		uploader = images.Embedder{}
	}
	passcode := a.Config.AdminPasscode
	if passcode == "" {
		passcode = "admin"
	}

	store := databases.NewStore(kv)
	metrics := api.NewMetrics()
	m := api.MiddlewareSessions{
		Sessions: session.NewManager(ctx, session.NewGate(passcode)),
		Metrics:  metrics,
	}

	brand := branding.NewService(databases.NewSettingsDatabase(store), a.Config.Business)
	v := Vehicle{
		Inventory: catalogue.NewInventory(ctx, databases.NewInventoryDatabase(store), a.Config.Business.Town),
		Branding:  brand,
		Uploader:  uploader,
		Metrics:   metrics,
	}
	rv := Review{
		Board:    moderation.NewBoard(ctx, databases.NewReviewDatabase(store)),
		Branding: brand,
		Metrics:  metrics,
	}
	b := Branding{Service: brand}
	c := CloudinaryHandler{Uploader: uploader}

	r := mux.NewRouter()
	r.Use(metrics.Middleware)

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)
	r.Handle("/metrics", metrics.Handler())

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/admin/session", m.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/admin/session", m.Middleware(http.HandlerFunc(m.RevokeToken))).Methods("DELETE")
	apiCreate.Handle("/admin/session", m.Middleware(http.HandlerFunc(m.SessionStatus))).Methods("GET")

	apiCreate.Handle("/vehicles", m.Middleware(http.HandlerFunc(v.VehiclesHandler))).Methods("GET")
	apiCreate.Handle("/vehicles/facets", m.Middleware(http.HandlerFunc(v.VehicleFacetsHandler))).Methods("GET")
	apiCreate.Handle("/vehicle/{vehicle_id}", m.Middleware(http.HandlerFunc(v.VehicleByIDHandler))).Methods("GET")
	apiCreate.Handle("/vehicle", m.Middleware(http.HandlerFunc(v.CreateVehicleHandler))).Methods("POST")
	apiCreate.Handle("/vehicle/{vehicle_id}", m.Middleware(http.HandlerFunc(v.DeleteVehicleHandler))).Methods("DELETE")

	apiCreate.Handle("/reviews", m.Middleware(http.HandlerFunc(rv.ReviewsHandler))).Methods("GET")
	apiCreate.Handle("/reviews", m.Middleware(http.HandlerFunc(rv.CreateReviewHandler))).Methods("POST")
	apiCreate.Handle("/review/{review_id}/approve", m.Middleware(http.HandlerFunc(rv.ApproveReviewHandler))).Methods("PUT")
	apiCreate.Handle("/review/{review_id}/unapprove", m.Middleware(http.HandlerFunc(rv.UnapproveReviewHandler))).Methods("PUT")
	apiCreate.Handle("/review/{review_id}/response", m.Middleware(http.HandlerFunc(rv.ReviewResponseHandler))).Methods("PUT")
	apiCreate.Handle("/review/{review_id}", m.Middleware(http.HandlerFunc(rv.DeleteReviewHandler))).Methods("DELETE")

	apiCreate.Handle("/branding", m.Middleware(http.HandlerFunc(b.BrandingHandler))).Methods("GET")
	apiCreate.Handle("/branding/logo", m.Middleware(http.HandlerFunc(b.SetLogoHandler))).Methods("PUT")
	apiCreate.Handle("/branding/logo", m.Middleware(http.HandlerFunc(b.ClearLogoHandler))).Methods("DELETE")
	apiCreate.Handle("/branding/review-link", m.Middleware(http.HandlerFunc(b.SetReviewLinkHandler))).Methods("PUT")

	apiCreate.Handle("/generate-signature", m.Middleware(http.HandlerFunc(c.GenerateSignature))).Methods("POST")

	return r
}

// Initialize is invoked by main to connect with the store and create a router
func (a *App) Initialize() error {
	ctx := context.Background()

	kv, closeStore, err := databases.Open(ctx, &a.Config)
	if err != nil {
		// if we fail to open the store, then kill the pod
		zap.S().With("error", err).Error("failed to open store")
		return err
	}
	a.kv = kv
	a.closeStore = closeStore
	zap.S().Infow("storefront-api has opened its store", "backend", a.Config.StoreBackend)

	uploader, err := images.NewUploader(ctx, &a.Config)
	if err != nil {
		zap.S().With("error", err).Error("failed to set up image uploads")
		return err
	}
	a.uploader = uploader

	// initialize api router
	a.initializeRoutes()
	return nil
}

// Close releases the store
func (a *App) Close() error {
	if a.closeStore == nil {
		return nil
	}
	return a.closeStore()
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

// errorStatus maps a domain error to its http status
func errorStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrNotAdmin):
		return http.StatusForbidden
	case errors.Is(err, session.ErrIncorrectPasscode):
		return http.StatusUnauthorized
	case errors.Is(err, catalogue.ErrMissingFields),
		errors.Is(err, moderation.ErrMissingFields),
		errors.Is(err, branding.ErrLogoNotImage),
		errors.Is(err, images.ErrNotImage):
		return http.StatusBadRequest
	case errors.Is(err, catalogue.ErrListingNotFound),
		errors.Is(err, moderation.ErrReviewNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON marshals v and writes it with status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}
