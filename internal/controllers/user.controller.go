package controllers

import (
	"net/http"
	"time"

	"nutrialarm/internal/models"
	"nutrialarm/internal/repository"
	"nutrialarm/internal/settings"
	syncpub "nutrialarm/internal/sync"
	"nutrialarm/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserController struct {
	repo     repository.UserRepository
	settings settings.Store
	sync     *syncpub.Publisher
}

func NewUserController(repo repository.UserRepository, st settings.Store, sync *syncpub.Publisher) *UserController {
	return &UserController{repo: repo, settings: st, sync: sync}
}

type RegisterRequest struct {
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Password      string               `json:"password"`
	Age           int                  `json:"age"`
	Weight        float64              `json:"weight"`
	Height        float64              `json:"height"`
	ActivityLevel models.ActivityLevel `json:"activity_level"`
	AnemiaRisk    models.AnemiaRisk    `json:"anemia_risk"`
}

// Register godoc
// @Summary Register a new user
// @Description Create a user profile after validating every biometric and credential field
// @Tags user
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{} "User registered successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Failure 500 {object} map[string]interface{} "Failed to create user"
// @Router /users [post]
func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// Validation stops at the first failing field; nothing is persisted on
	// failure.
	if err := utils.ValidateRegistration(req.Name, req.Email, req.Password, req.Age, req.Weight, req.Height); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"error":   err.Error(),
		})
		return
	}

	// The unique constraint still backs this up; the pre-check exists so the
	// caller gets a specific message instead of a bare constraint error.
	if _, err := uc.repo.FindByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Email already registered",
			"error":   "el correo ya esta registrado",
		})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	activity := req.ActivityLevel
	if !activity.Valid() {
		activity = models.ActivityModerate
	}
	risk := req.AnemiaRisk
	if !risk.Valid() {
		risk = models.RiskLow
	}

	user := &models.User{
		ID:            uuid.NewString(),
		Email:         req.Email,
		Password:      hash,
		Name:          req.Name,
		Age:           req.Age,
		Weight:        req.Weight,
		Height:        req.Height,
		ActivityLevel: activity,
		AnemiaRisk:    risk,
	}
	if err := uc.repo.Create(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	uc.sync.PublishUserSnapshot(user)
	_ = uc.settings.SetString(settings.KeyCurrentUserID, user.ID)
	_ = uc.settings.SetString(settings.KeyLastSyncAt, time.Now().Format(time.RFC3339))

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User registered successfully",
		"data":    user,
	})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password, returning a bearer token
// @Tags user
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Authenticated"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /users/login [post]
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.repo.FindByEmail(req.Email)
	if err != nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Email or password is incorrect",
		})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to generate token",
			"error":   err.Error(),
		})
		return
	}

	_ = uc.settings.SetString(settings.KeyCurrentUserID, user.ID)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Authenticated",
		"data":    gin.H{"token": token, "user": user},
	})
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := uc.repo.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user associated with this session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    user,
	})
}

func (uc *UserController) PatchProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// Credential fields never change through this endpoint.
	delete(data, "id")
	delete(data, "email")
	delete(data, "password")

	if err := uc.repo.Patch(userID, data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.repo.FindByID(userID)
	if err == nil {
		uc.sync.PublishUserSnapshot(user)
		_ = uc.settings.SetString(settings.KeyLastSyncAt, time.Now().Format(time.RFC3339))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    user,
	})
}
