package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatehub/internal/adapter/api"
	"estatehub/internal/adapter/api/handler"
	adapterrepo "estatehub/internal/adapter/repository"
	"estatehub/internal/infrastructure/docstore"
	"estatehub/internal/usecase"
)

func newTestServer() *echo.Echo {
	store := docstore.NewMemoryStore()
	listingRepo := adapterrepo.NewDocstoreListingRepository(store)
	enquiryRepo := adapterrepo.NewDocstoreEnquiryRepository(store)

	enquiryUseCase := usecase.NewEnquiryUseCase(enquiryRepo, listingRepo)
	enquiryHandler := handler.NewEnquiryHandler(enquiryUseCase)

	e := echo.New()
	e.Validator = api.NewValidator()
	e.POST("/v1/enquiries", enquiryHandler.SubmitEnquiry)
	e.POST("/v1/enquiries/home-loans", enquiryHandler.SubmitHomeLoanEnquiry)
	return e
}

func TestHealthCheck(t *testing.T) {
	handler.SetupHealthHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, handler.GetHealthHandler().CheckHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "running")
	}
}

func TestSubmitEnquiryEndToEnd(t *testing.T) {
	e := newTestServer()

	body := `{"name":"Asha","email":"asha@example.com","phone":"9876543210","message":"Looking for a 2BHK"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/enquiries", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			ID     string `json:"id"`
			Status string `json:"status"`
			Source string `json:"source"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.Data.ID)
	assert.Equal(t, "new", envelope.Data.Status)
	assert.Equal(t, "property-enquiry", envelope.Data.Source)
}

func TestSubmitEnquiryRejectsBadPayload(t *testing.T) {
	e := newTestServer()

	body := `{"name":"Asha","email":"a@b","phone":"9876543210"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/enquiries", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitHomeLoanEnquiryEndToEnd(t *testing.T) {
	e := newTestServer()

	body := `{"name":"Asha","email":"asha@example.com","phone":"9876543210","location":"Hyderabad","preferred_bank":"SBI"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/enquiries/home-loans", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "home-loans")
	assert.Contains(t, rec.Body.String(), "I am interested. Please contact me.")
}
