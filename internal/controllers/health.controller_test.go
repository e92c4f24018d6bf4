package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutrialarm/internal/mocks"
	"nutrialarm/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGetHealthProfileEndpoint(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	userRepo.On("FindByID", "user-1").Return(&models.User{
		ID: "user-1", Weight: 70, Height: 175,
		ActivityLevel: models.ActivitySedentary,
		AnemiaRisk:    models.RiskHigh,
	}, nil)

	controller := NewHealthController(userRepo)
	router := setupTestRouter()
	router.GET("/health/profile", addAuthMiddleware("user-1"), controller.GetHealthProfile)

	req := httptest.NewRequest(http.MethodGet, "/health/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.InDelta(t, 22.857, data["bmi"].(float64), 0.001)
	assert.Equal(t, "Normal", data["bmi_category"])
	assert.Equal(t, 18.0, data["recommended_iron"])
	assert.Equal(t, 1800.0, data["recommended_calories"])
}

func TestGetHealthProfileUnknownUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	userRepo.On("FindByID", "user-1").Return(nil, gorm.ErrRecordNotFound)

	controller := NewHealthController(userRepo)
	router := setupTestRouter()
	router.GET("/health/profile", addAuthMiddleware("user-1"), controller.GetHealthProfile)

	req := httptest.NewRequest(http.MethodGet, "/health/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetHealthProfileImplausibleMeasurements(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	userRepo.On("FindByID", "user-1").Return(&models.User{ID: "user-1", Weight: 0, Height: 0}, nil)

	controller := NewHealthController(userRepo)
	router := setupTestRouter()
	router.GET("/health/profile", addAuthMiddleware("user-1"), controller.GetHealthProfile)

	req := httptest.NewRequest(http.MethodGet, "/health/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
