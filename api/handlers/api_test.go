package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/storefront-api/models"
)

var a App

func executeRequest(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	if expected != actual {
		t.Errorf("Expected response code %d. Got %d\n", expected, actual)
	}
}

func login(t *testing.T) string {
	req, _ := http.NewRequest("POST", "/api/v1/admin/session", nil)
	req.SetBasicAuth("owner", "admin")
	response := executeRequest(req)
	require.Equal(t, http.StatusCreated, response.Code)

	var s models.SessionResponse
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &s))
	require.True(t, s.IsAdmin)
	return s.Token
}

func jsonRequest(method, url, token, body string) *http.Request {
	req, _ := http.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func errorBody(message, err string) string {
	b, _ := json.Marshal(models.ErrorMessageResponse{Response: models.MessageError{Message: message, Error: err}})
	return string(b)
}

func TestUnknownRoute(t *testing.T) {
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/asdf", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusNotFound, response.Code)
}

func TestHealthCheckRoute(t *testing.T) {
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/health", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)

	if !strings.Contains(response.Body.String(), "alive") {
		t.Errorf("Expected 'alive' in the reponse. Got '%s'", response.Body.String())
	}
}

func TestMetricsRoute(t *testing.T) {
	a.Router = a.New()
	executeRequest(jsonRequest("GET", "/api/v1/vehicles", "", ""))

	req, _ := http.NewRequest("GET", "/metrics", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), `storefront_http_requests_total{method="GET",route="/api/v1/vehicles",status="200"} 1`)
}

func TestAdminSessionFlow(t *testing.T) {
	a.Router = a.New()

	req, _ := http.NewRequest("POST", "/api/v1/admin/session", nil)
	req.SetBasicAuth("owner", "wrong")
	response := executeRequest(req)
	checkResponseCode(t, http.StatusUnauthorized, response.Code)
	assert.Equal(t, errorBody("Incorrect passcode", "Incorrect passcode"), response.Body.String())

	req, _ = http.NewRequest("POST", "/api/v1/admin/session", nil)
	response = executeRequest(req)
	checkResponseCode(t, http.StatusUnauthorized, response.Code)

	token := login(t)

	response = executeRequest(jsonRequest("GET", "/api/v1/admin/session", token, ""))
	checkResponseCode(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"isAdmin":true}`, response.Body.String())

	response = executeRequest(jsonRequest("DELETE", "/api/v1/admin/session", token, ""))
	checkResponseCode(t, http.StatusOK, response.Code)

	response = executeRequest(jsonRequest("GET", "/api/v1/admin/session", token, ""))
	assert.JSONEq(t, `{"isAdmin":false}`, response.Body.String())

	response = executeRequest(jsonRequest("DELETE", "/api/v1/admin/session", token, ""))
	checkResponseCode(t, http.StatusForbidden, response.Code)
}

func TestVehicleLifecycle(t *testing.T) {
	a.Router = a.New()

	response := executeRequest(jsonRequest("POST", "/api/v1/vehicle", "", `{"make":"Ford","model":"Focus","price":10000}`))
	checkResponseCode(t, http.StatusForbidden, response.Code)
	assert.Equal(t, errorBody("failed to create vehicle", "admin session required"), response.Body.String())

	token := login(t)

	response = executeRequest(jsonRequest("POST", "/api/v1/vehicle", token, `{"make":"Ford","model":"Focus"}`))
	checkResponseCode(t, http.StatusBadRequest, response.Code)
	assert.Equal(t, errorBody("Please fill make, model and price.", "Please fill make, model and price."), response.Body.String())

	response = executeRequest(jsonRequest("POST", "/api/v1/vehicle", token, `{"make":"Ford","model":"Focus","year":2020,"price":10000,"mileage":30000}`))
	checkResponseCode(t, http.StatusCreated, response.Code)
	var focus models.VehicleListing
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &focus))
	assert.Equal(t, "2020 Ford Focus", focus.Title)
	assert.Equal(t, []string{}, focus.Images)

	response = executeRequest(jsonRequest("POST", "/api/v1/vehicle", token, `{"make":"VW","model":"Golf","year":"2018","price":"8000","mileage":"60000","location":"Glasgow"}`))
	checkResponseCode(t, http.StatusCreated, response.Code)

	var list []models.VehicleListing
	response = executeRequest(jsonRequest("GET", "/api/v1/vehicles?sort=price-desc", "", ""))
	checkResponseCode(t, http.StatusOK, response.Code)
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Focus", list[0].Model)
	assert.Equal(t, "Golf", list[1].Model)

	response = executeRequest(jsonRequest("GET", "/api/v1/vehicles?maxPrice=9000", "", ""))
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Golf", list[0].Model)

	response = executeRequest(jsonRequest("GET", "/api/v1/vehicles?q=helensburgh", "", ""))
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &list))
	require.Len(t, list, 0)

	response = executeRequest(jsonRequest("GET", "/api/v1/vehicles/facets", "", ""))
	checkResponseCode(t, http.StatusOK, response.Code)
	var facets models.FacetsResponse
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &facets))
	assert.Equal(t, 2, facets.Total)
	assert.Equal(t, []string{"VW", "Ford"}, facets.Make)

	response = executeRequest(jsonRequest("GET", "/api/v1/vehicle/"+focus.ID, "", ""))
	checkResponseCode(t, http.StatusOK, response.Code)
	var detail models.VehicleDetailResponse
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &detail))
	assert.Equal(t, focus.ID, detail.Vehicle.ID)
	assert.Equal(t, []string{"https://images.pexels.com/photos/358070/pexels-photo-358070.jpeg"}, detail.Gallery)
	assert.Equal(t, "#", detail.WhatsAppLink)

	response = executeRequest(jsonRequest("DELETE", "/api/v1/vehicle/"+focus.ID, "", ""))
	checkResponseCode(t, http.StatusForbidden, response.Code)

	response = executeRequest(jsonRequest("DELETE", "/api/v1/vehicle/"+focus.ID, token, ""))
	checkResponseCode(t, http.StatusOK, response.Code)

	response = executeRequest(jsonRequest("GET", "/api/v1/vehicle/"+focus.ID, "", ""))
	checkResponseCode(t, http.StatusNotFound, response.Code)
	assert.Equal(t, errorBody("failed to get vehicle by ID", "vehicle not found"), response.Body.String())
}

func TestCreateVehicleMultipart(t *testing.T) {
	a.Router = a.New()
	token := login(t)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range map[string]string{"make": "Nissan", "model": "Leaf", "price": "15000"} {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.WriteField("imageUrls", "https://img.example.com/leaf.jpg"))
	part, err := w.CreateFormFile("images", "leaf.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, _ := http.NewRequest("POST", "/api/v1/vehicle", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusCreated, response.Code)
	var leaf models.VehicleListing
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &leaf))
	require.Len(t, leaf.Images, 2)
	assert.Equal(t, "https://img.example.com/leaf.jpg", leaf.Images[0])
	assert.True(t, strings.HasPrefix(leaf.Images[1], "data:image/png;base64,"))
}

func TestReviewLifecycle(t *testing.T) {
	a.Router = a.New()

	response := executeRequest(jsonRequest("POST", "/api/v1/reviews", "", `{"name":"Jane","comment":""}`))
	checkResponseCode(t, http.StatusBadRequest, response.Code)
	assert.Equal(t, errorBody("Please add your name and a short comment.", "Please add your name and a short comment."), response.Body.String())

	response = executeRequest(jsonRequest("POST", "/api/v1/reviews", "", `{"name":"Jane","rating":4,"comment":"Great service"}`))
	checkResponseCode(t, http.StatusCreated, response.Code)
	var created models.MessageResponse
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &created))
	assert.Equal(t, "Thanks! Your review was submitted and is awaiting approval.", created.Message)

	var board models.ReviewBoardResponse
	response = executeRequest(jsonRequest("GET", "/api/v1/reviews", "", ""))
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &board))
	assert.Empty(t, board.Published)
	assert.Empty(t, board.Pending)

	response = executeRequest(jsonRequest("PUT", "/api/v1/review/"+created.ID+"/approve", "", ""))
	checkResponseCode(t, http.StatusForbidden, response.Code)

	token := login(t)

	response = executeRequest(jsonRequest("GET", "/api/v1/reviews", token, ""))
	board = models.ReviewBoardResponse{}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &board))
	require.Len(t, board.Pending, 1)
	assert.False(t, board.Pending[0].Approved)
	assert.Equal(t, "", board.Pending[0].Response)
	assert.Equal(t, "onsite", board.Pending[0].Source)

	response = executeRequest(jsonRequest("PUT", "/api/v1/review/"+created.ID+"/approve", token, ""))
	checkResponseCode(t, http.StatusOK, response.Code)

	response = executeRequest(jsonRequest("PUT", "/api/v1/review/"+created.ID+"/response", token, `{"response":"Thanks Jane!"}`))
	checkResponseCode(t, http.StatusOK, response.Code)

	response = executeRequest(jsonRequest("GET", "/api/v1/reviews", "", ""))
	board = models.ReviewBoardResponse{}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &board))
	require.Len(t, board.Published, 1)
	assert.Equal(t, "Thanks Jane!", board.Published[0].Response)
	assert.Equal(t, models.ReviewStats{Count: 1, Average: 4}, board.Stats)

	response = executeRequest(jsonRequest("PUT", "/api/v1/review/"+created.ID+"/unapprove", token, ""))
	checkResponseCode(t, http.StatusOK, response.Code)

	response = executeRequest(jsonRequest("DELETE", "/api/v1/review/"+created.ID, token, ""))
	checkResponseCode(t, http.StatusOK, response.Code)

	response = executeRequest(jsonRequest("DELETE", "/api/v1/review/"+created.ID, token, ""))
	checkResponseCode(t, http.StatusNotFound, response.Code)
}

func TestBrandingFlow(t *testing.T) {
	a.Router = a.New()

	response := executeRequest(jsonRequest("PUT", "/api/v1/branding/logo", "", `{"logo":"data:image/png;base64,AAAA"}`))
	checkResponseCode(t, http.StatusForbidden, response.Code)

	token := login(t)

	response = executeRequest(jsonRequest("PUT", "/api/v1/branding/logo", token, `{"logo":"https://example.com/logo.png"}`))
	checkResponseCode(t, http.StatusBadRequest, response.Code)

	response = executeRequest(jsonRequest("PUT", "/api/v1/branding/logo", token, `{"logo":"data:image/png;base64,AAAA"}`))
	checkResponseCode(t, http.StatusOK, response.Code)

	response = executeRequest(jsonRequest("PUT", "/api/v1/branding/review-link", token, `{"reviewUrl":" https://g.page/r/argyll/review "}`))
	checkResponseCode(t, http.StatusOK, response.Code)

	var profile models.BrandingResponse
	response = executeRequest(jsonRequest("GET", "/api/v1/branding", "", ""))
	checkResponseCode(t, http.StatusOK, response.Code)
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &profile))
	assert.Equal(t, "data:image/png;base64,AAAA", profile.Logo)
	assert.Equal(t, "https://g.page/r/argyll/review", profile.ReviewURL)

	response = executeRequest(jsonRequest("GET", "/api/v1/reviews", "", ""))
	assert.Contains(t, response.Body.String(), `"reviewUrl":"https://g.page/r/argyll/review"`)

	response = executeRequest(jsonRequest("DELETE", "/api/v1/branding/logo", token, ""))
	checkResponseCode(t, http.StatusOK, response.Code)

	profile = models.BrandingResponse{}
	response = executeRequest(jsonRequest("GET", "/api/v1/branding", "", ""))
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &profile))
	assert.Equal(t, "", profile.Logo)
}

func TestGenerateSignatureWithoutCloudinary(t *testing.T) {
	a.Router = a.New()

	response := executeRequest(jsonRequest("POST", "/api/v1/generate-signature", "", ""))
	checkResponseCode(t, http.StatusForbidden, response.Code)

	response = executeRequest(jsonRequest("POST", "/api/v1/generate-signature", login(t), ""))
	checkResponseCode(t, http.StatusNotFound, response.Code)
}
