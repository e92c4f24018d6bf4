package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"nutrialarm/internal/mocks"
	"nutrialarm/internal/models"
	"nutrialarm/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupUserController() (*UserController, *mocks.MockUserRepository, *mocks.FakeSettingsStore) {
	userRepo := new(mocks.MockUserRepository)
	store := mocks.NewFakeSettingsStore()
	controller := NewUserController(userRepo, store, nil)
	return controller, userRepo, store
}

func TestRegisterEndpoint(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
	}{
		{
			name: "successful registration",
			requestBody: map[string]interface{}{
				"name": "Ana Quispe", "email": "ana@example.com", "password": "abcdef12",
				"age": 10, "weight": 32.0, "height": 135.0,
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("FindByEmail", "ana@example.com").Return(nil, gorm.ErrRecordNotFound)
				userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			requestBody: map[string]interface{}{
				"name": "Ana Quispe", "email": "ana@example.com", "password": "abcdef12",
				"age": 10, "weight": 32.0, "height": 135.0,
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("FindByEmail", "ana@example.com").Return(&models.User{ID: "user-1", Email: "ana@example.com"}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "invalid email",
			requestBody: map[string]interface{}{
				"name": "Ana", "email": "not-an-email", "password": "abcdef12",
				"age": 10, "weight": 32.0, "height": 135.0,
			},
			setupMocks:     func(*mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "weak password",
			requestBody: map[string]interface{}{
				"name": "Ana", "email": "ana@example.com", "password": "short",
				"age": 10, "weight": 32.0, "height": 135.0,
			},
			setupMocks:     func(*mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, userRepo, _ := setupUserController()
			tt.setupMocks(userRepo)

			router := setupTestRouter()
			router.POST("/users", controller.Register)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusCreated {
				userRepo.AssertNotCalled(t, "Create", mock.Anything)
			}
		})
	}
}

func TestRegisterDefaultsActivityAndRisk(t *testing.T) {
	controller, userRepo, _ := setupUserController()

	var created *models.User
	userRepo.On("FindByEmail", "ana@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.User)
	}).Return(nil)

	router := setupTestRouter()
	router.POST("/users", controller.Register)

	body, _ := json.Marshal(map[string]interface{}{
		"name": "Ana Quispe", "email": "ana@example.com", "password": "abcdef12",
		"age": 10, "weight": 32.0, "height": 135.0,
	})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.ActivityModerate, created.ActivityLevel)
	assert.Equal(t, models.RiskLow, created.AnemiaRisk)
	assert.NotEqual(t, "abcdef12", created.Password, "password must be stored hashed")
}

func TestLoginEndpoint(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	hash, err := utils.HashPassword("abcdef12")
	assert.NoError(t, err)
	stored := &models.User{ID: "user-1", Email: "ana@example.com", Password: hash}

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
	}{
		{
			name:        "successful login",
			requestBody: map[string]interface{}{"email": "ana@example.com", "password": "abcdef12"},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("FindByEmail", "ana@example.com").Return(stored, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "wrong password",
			requestBody: map[string]interface{}{"email": "ana@example.com", "password": "wrongpass1"},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("FindByEmail", "ana@example.com").Return(stored, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "unknown email",
			requestBody: map[string]interface{}{"email": "ghost@example.com", "password": "abcdef12"},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("FindByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, userRepo, _ := setupUserController()
			tt.setupMocks(userRepo)

			router := setupTestRouter()
			router.POST("/users/login", controller.Login)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]interface{})
				assert.NotEmpty(t, data["token"])
			}
		})
	}
}

func TestPatchProfileStripsCredentialFields(t *testing.T) {
	controller, userRepo, _ := setupUserController()

	var patched map[string]interface{}
	userRepo.On("Patch", "user-1", mock.AnythingOfType("map[string]interface {}")).Run(func(args mock.Arguments) {
		patched = args.Get(1).(map[string]interface{})
	}).Return(nil)
	userRepo.On("FindByID", "user-1").Return(&models.User{ID: "user-1"}, nil)

	router := setupTestRouter()
	router.PATCH("/users/me", addAuthMiddleware("user-1"), controller.PatchProfile)

	body, _ := json.Marshal(map[string]interface{}{
		"weight": 34.5, "email": "evil@example.com", "password": "hacked123",
	})
	req := httptest.NewRequest(http.MethodPatch, "/users/me", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, patched, "weight")
	assert.NotContains(t, patched, "email")
	assert.NotContains(t, patched, "password")
}
