package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/storefront-api/api"
	"github.com/linesmerrill/storefront-api/branding"
	"github.com/linesmerrill/storefront-api/catalogue"
	"github.com/linesmerrill/storefront-api/config"
	"github.com/linesmerrill/storefront-api/contact"
	"github.com/linesmerrill/storefront-api/images"
	"github.com/linesmerrill/storefront-api/models"
	"github.com/linesmerrill/storefront-api/session"
)

// maxUploadMemory is how much of a multipart form is kept in memory, the rest spills
// to temp files
const maxUploadMemory = 32 << 20

// Vehicle exists for dependency injection purposes
type Vehicle struct {
	Inventory *catalogue.Inventory
	Branding  *branding.Service
	Uploader  images.Uploader
	Metrics   *api.Metrics
}

// VehiclesHandler returns the inventory matching the q, filter and sort query params
func (v Vehicle) VehiclesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list := catalogue.Derive(v.Inventory.List(), q.Get("q"), catalogue.ParseFilterSet(q), catalogue.ParseSortKey(q.Get("sort")))
	writeJSON(w, http.StatusOK, list)
}

// VehicleFacetsHandler returns the options of every categorical filter
func (v Vehicle) VehicleFacetsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogue.Facets(v.Inventory.List()))
}

// VehicleByIDHandler returns a single vehicle with its gallery and contact links
func (v Vehicle) VehicleByIDHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicle_id"]

	listing, err := v.Inventory.Get(vehicleID)
	if err != nil {
		config.ErrorStatus("failed to get vehicle by ID", errorStatus(err), w, err)
		return
	}

	business := v.Branding.Business()
	writeJSON(w, http.StatusOK, models.VehicleDetailResponse{
		Vehicle:        listing,
		Gallery:        catalogue.DisplayImages(listing),
		WhatsAppLink:   contact.WhatsAppLink(business.WhatsAppNumber, contact.VehicleEnquiry(listing)),
		DirectionsLink: contact.DirectionsLink(business.Address),
	})
}

// CreateVehicleHandler adds a vehicle from a JSON draft or a multipart form. Multipart
// image files under "images" are uploaded in order after any "imageUrls".
func (v Vehicle) CreateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	// refuse before any upload happens
	if err := session.Require(s); err != nil {
		config.ErrorStatus("failed to create vehicle", http.StatusForbidden, w, err)
		return
	}

	var draft catalogue.Draft
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			config.ErrorStatus("failed to parse form", http.StatusBadRequest, w, err)
			return
		}
		draft = draftFromForm(r)
		refs, err := images.UploadFiles(r.Context(), v.Uploader, r.MultipartForm.File["images"])
		if err != nil {
			config.ErrorStatus("failed to upload images", errorStatus(err), w, err)
			return
		}
		for _, ref := range refs {
			draft.AddImage(ref)
		}
	} else if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	listing, err := v.Inventory.Add(ctx, s, draft)
	if err != nil {
		config.ErrorStatus(err.Error(), errorStatus(err), w, err)
		return
	}
	v.Metrics.Listing("added")
	zap.S().Infow("vehicle added", "id", listing.ID, "title", listing.Title)

	writeJSON(w, http.StatusCreated, listing)
}

func draftFromForm(r *http.Request) catalogue.Draft {
	field := func(name string) models.FormValue { return models.FormValue(r.FormValue(name)) }
	d := catalogue.Draft{
		Title:        field("title"),
		Make:         field("make"),
		Model:        field("model"),
		Year:         field("year"),
		Price:        field("price"),
		Mileage:      field("mileage"),
		Body:         field("body"),
		Fuel:         field("fuel"),
		Transmission: field("transmission"),
		Location:     field("location"),
		Color:        field("color"),
		Vin:          field("vin"),
		Description:  field("description"),
	}
	for _, u := range r.MultipartForm.Value["imageUrls"] {
		d.AddImage(u)
	}
	return d
}

// DeleteVehicleHandler removes a vehicle from the inventory
func (v Vehicle) DeleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicle_id"]

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	if err := v.Inventory.Delete(ctx, session.FromContext(r.Context()), vehicleID); err != nil {
		config.ErrorStatus("failed to delete vehicle", errorStatus(err), w, err)
		return
	}
	v.Metrics.Listing("deleted")

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "vehicle deleted", ID: vehicleID})
}
