package controllers

import (
	"net/http"

	"nutrialarm/internal/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	notifier *services.SNSNotifier
}

func NewDeviceController(notifier *services.SNSNotifier) *DeviceController {
	return &DeviceController{notifier: notifier}
}

type RegisterDeviceRequest struct {
	Platform string `json:"platform"`
	Token    string `json:"token"`
}

// RegisterDevice godoc
// @Summary Register a push device
// @Description Register a device token so meal reminders reach this device
// @Tags devices
// @Accept json
// @Produce json
// @Param device body RegisterDeviceRequest true "Device registration"
// @Success 201 {object} map[string]interface{} "Device registered"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /devices [post]
func (dc *DeviceController) RegisterDevice(c *gin.Context) {
	userID := c.GetString("user_id")

	var req RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Platform and token are required",
		})
		return
	}

	device, err := dc.notifier.RegisterDevice(userID, req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to register device",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Device registered successfully",
		"data":    device,
	})
}
