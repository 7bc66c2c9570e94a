// Package docs Argyll Vehicles storefront API.
//
// Documentation of the dealership storefront API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//     - multipart/form-data
//
//     Produces:
//     - application/json
//
//     Security:
//     - basic
//     - bearer
//
//    SecurityDefinitions:
//    basic:
//      type: basic
//    bearer:
//      type: apiKey
//      name: Authorization
//      in: header
//
// swagger:meta
package docs

import (
	"github.com/linesmerrill/storefront-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route POST /api/v1/admin/session admin createSession
// Unlocks admin mode with the passcode as the basic auth password.
// responses:
//   201: sessionResponse
//   401: errorResponse

// swagger:route GET /api/v1/admin/session admin sessionStatus
// Reports whether the bearer token is an admin session.
// responses:
//   200: sessionResponse

// The admin session state and, on unlock, its bearer token
// swagger:response sessionResponse
type sessionResponseWrapper struct {
	// in:body
	Body models.SessionResponse
}

// swagger:route GET /api/v1/vehicles vehicles listVehicles
// Lists the inventory matching the q, make, body, fuel, transmission, location,
// minPrice, maxPrice, minYear, maxYear, maxMileage and sort query params.
// responses:
//   200: vehiclesResponse

// The derived inventory list
// swagger:response vehiclesResponse
type vehiclesResponseWrapper struct {
	// in:body
	Body []models.VehicleListing
}

// swagger:route GET /api/v1/vehicles/facets vehicles vehicleFacets
// Lists the options of every categorical filter.
// responses:
//   200: facetsResponse

// Distinct values per filter in first seen order
// swagger:response facetsResponse
type facetsResponseWrapper struct {
	// in:body
	Body models.FacetsResponse
}

// swagger:route GET /api/v1/vehicle/{vehicle_id} vehicles vehicleByID
// Gets a single vehicle with its gallery and contact links.
// responses:
//   200: vehicleDetailResponse
//   404: errorResponse

// A single vehicle by the given {vehicle_id}
// swagger:response vehicleDetailResponse
type vehicleDetailResponseWrapper struct {
	// in:body
	Body models.VehicleDetailResponse
}

// swagger:route POST /api/v1/vehicle vehicles createVehicle
// Adds a vehicle. Admin only.
// responses:
//   201: vehicleResponse
//   400: errorResponse
//   403: errorResponse

// The created vehicle
// swagger:response vehicleResponse
type vehicleResponseWrapper struct {
	// in:body
	Body models.VehicleListing
}

// swagger:route GET /api/v1/reviews reviews listReviews
// Lists the published reviews, and the pending ones for an admin session.
// responses:
//   200: reviewBoardResponse

// The review board
// swagger:response reviewBoardResponse
type reviewBoardResponseWrapper struct {
	// in:body
	Body models.ReviewBoardResponse
}

// swagger:route POST /api/v1/reviews reviews createReview
// Submits a review for approval.
// responses:
//   201: messageResponse
//   400: errorResponse

// swagger:route PUT /api/v1/review/{review_id}/approve reviews approveReview
// Publishes a review. Admin only.
// responses:
//   200: reviewResponse
//   403: errorResponse
//   404: errorResponse

// swagger:route PUT /api/v1/review/{review_id}/response reviews respondReview
// Commits the owner response of a review. Admin only.
// responses:
//   200: reviewResponse
//   403: errorResponse
//   404: errorResponse

// A single review
// swagger:response reviewResponse
type reviewResponseWrapper struct {
	// in:body
	Body models.Review
}

// swagger:route GET /api/v1/branding branding branding
// Gets the business identity, logo and contact links.
// responses:
//   200: brandingResponse

// The dealership branding
// swagger:response brandingResponse
type brandingResponseWrapper struct {
	// in:body
	Body models.BrandingResponse
}

// A confirmation message
// swagger:response messageResponse
type messageResponseWrapper struct {
	// in:body
	Body models.MessageResponse
}

// The error envelope
// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}
