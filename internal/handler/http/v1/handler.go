package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/dont_forget_tracker/internal/catalog"
	"github.com/shenikar/dont_forget_tracker/internal/config"
	"github.com/shenikar/dont_forget_tracker/internal/entitlement"
	"github.com/shenikar/dont_forget_tracker/internal/models"
	"github.com/shenikar/dont_forget_tracker/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	tracker  service.TrackerService
	device   service.DeviceService
	catalog  *catalog.Catalog
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(tracker service.TrackerService, device service.DeviceService, cat *catalog.Catalog, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		tracker:  tracker,
		device:   device,
		catalog:  cat,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// writeServiceError переводит ошибки сервиса в HTTP-статусы
func (h *Handler) writeServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		log.WithError(err).Warn("Item not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
	case errors.Is(err, service.ErrInvalidItem), errors.Is(err, service.ErrUnknownIcon):
		log.WithError(err).Warn("Invalid item")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrLocationUnavailable):
		log.WithError(err).Warn("Location not available")
		c.JSON(http.StatusConflict, gin.H{"error": "current location is not available yet"})
	case errors.Is(err, entitlement.ErrItemLimitReached):
		log.WithError(err).Info("Free item limit reached")
		c.JSON(http.StatusPaymentRequired, gin.H{"error": entitlement.ErrItemLimitReached.Error(), "details": err.Error()})
	case errors.Is(err, entitlement.ErrCustomDistance):
		log.WithError(err).Info("Custom distance requires premium")
		c.JSON(http.StatusPaymentRequired, gin.H{"error": entitlement.ErrCustomDistance.Error(), "details": err.Error()})
	case errors.Is(err, service.ErrPersistence):
		log.WithError(err).Error("Failed to persist items")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "changes are kept for this session but could not be saved"})
	case errors.Is(err, service.ErrTrackerStopped):
		log.WithError(err).Error("Tracker is not running")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "tracker is not running"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) bindItem(c *gin.Context, log *logrus.Entry) (ItemRequest, bool) {
	var input ItemRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return input, false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return input, false
	}
	return input, true
}

func (h *Handler) currentLocation(c *gin.Context) *models.Location {
	return h.tracker.Status(c.Request.Context()).Location
}

// @Summary Create a new item
// @Description Save an item at the current device location. Requires API key.
// @Tags Items
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param item body ItemRequest true "Item creation request"
// @Success 201 {object} ItemResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 402 {object} map[string]string "Premium required"
// @Failure 409 {object} map[string]string "Location not available"
// @Failure 503 {object} map[string]string "Item kept but not persisted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /items [post]
func (h *Handler) createItem(c *gin.Context) {
	log := h.logger.WithField("method", "createItem")

	input, ok := h.bindItem(c, log)
	if !ok {
		return
	}

	item, err := h.tracker.CreateItem(c.Request.Context(), DTOToItemInput(input))
	if err != nil {
		h.writeServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToItemResponse(item, h.catalog, h.currentLocation(c)))
}

// @Summary Get a list of items
// @Description Get all tracked items with the current distance to each. Requires API key.
// @Tags Items
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ItemResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /items [get]
func (h *Handler) listItems(c *gin.Context) {
	log := h.logger.WithField("method", "listItems")

	items, err := h.tracker.ListItems(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToItemResponses(items, h.catalog, h.currentLocation(c)))
}

// @Summary Get item by ID
// @Description Get a single item by its ID. Requires API key.
// @Tags Items
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} map[string]string "Invalid item ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Router /items/{id} [get]
func (h *Handler) getItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}
	log := h.logger.WithField("method", "getItem").WithField("id", id)

	item, err := h.tracker.GetItem(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToItemResponse(item, h.catalog, h.currentLocation(c)))
}

// @Summary Update an existing item
// @Description Change name, icon and alert distance. Location is kept, tracking restarts from "nearby". Requires API key.
// @Tags Items
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Item ID"
// @Param item body ItemRequest true "Item update request"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} map[string]string "Invalid item ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 402 {object} map[string]string "Premium required"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 503 {object} map[string]string "Item kept but not persisted"
// @Router /items/{id} [put]
func (h *Handler) updateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}
	log := h.logger.WithField("method", "updateItem").WithField("id", id)

	input, ok := h.bindItem(c, log)
	if !ok {
		return
	}

	item, err := h.tracker.UpdateItem(c.Request.Context(), id, DTOToItemInput(input))
	if err != nil {
		h.writeServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToItemResponse(item, h.catalog, h.currentLocation(c)))
}

// @Summary Delete an item
// @Description Delete an item by its ID. Requires API key.
// @Tags Items
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid item ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 503 {object} map[string]string "Deletion not persisted"
// @Router /items/{id} [delete]
func (h *Handler) deleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}
	log := h.logger.WithField("method", "deleteItem").WithField("id", id)

	if err := h.tracker.DeleteItem(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Report permission decisions
// @Description Report the user's location and notification permission decisions. Requires API key.
// @Tags Device
// @Accept json
// @Security ApiKeyAuth
// @Param permissions body PermissionsRequest true "Permission decisions"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /device/permissions [put]
func (h *Handler) reportPermissions(c *gin.Context) {
	var input PermissionsRequest
	log := h.logger.WithField("method", "reportPermissions")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.device.ReportPermissions(input.Location == "granted", input.Notifications == "granted")
	log.WithFields(logrus.Fields{
		"location":      input.Location,
		"notifications": input.Notifications,
	}).Info("Permissions reported")
	c.Status(http.StatusNoContent)
}

// @Summary Report device location
// @Description Report a new location fix from the device. Requires API key.
// @Tags Device
// @Accept json
// @Security ApiKeyAuth
// @Param location body LocationDTO true "Location fix"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /device/location [post]
func (h *Handler) reportLocation(c *gin.Context) {
	var input LocationDTO
	log := h.logger.WithField("method", "reportLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.device.ReportLocation(models.Location{Latitude: input.Latitude, Longitude: input.Longitude})
	c.Status(http.StatusAccepted)
}

// @Summary Get tracking status
// @Description Get the tracking state, last known location and alert counters. Requires API key.
// @Tags Tracking
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} TrackingStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /tracking/status [get]
func (h *Handler) trackingStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusToResponse(h.tracker.Status(c.Request.Context())))
}

// @Summary Get pending in-app alerts
// @Description Return and clear alerts that were shown instead of, or in addition to, notifications. Requires API key.
// @Tags Tracking
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	alerts, err := h.tracker.PendingAlerts(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, AlertsToResponses(alerts))
}

// @Summary Get premium status
// @Description Get premium status and the free version item limit. Requires API key.
// @Tags Premium
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} PremiumResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /premium [get]
func (h *Handler) getPremium(c *gin.Context) {
	log := h.logger.WithField("method", "getPremium")

	status, err := h.tracker.PremiumStatus(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, PremiumToResponse(status))
}

// @Summary Set premium status
// @Description Store the result of an external purchase verification. Requires API key.
// @Tags Premium
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param premium body PremiumRequest true "Premium flag"
// @Success 200 {object} PremiumResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /premium [put]
func (h *Handler) setPremium(c *gin.Context) {
	var input PremiumRequest
	log := h.logger.WithField("method", "setPremium")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.tracker.SetPremium(c.Request.Context(), *input.Premium)
	if err != nil {
		h.writeServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, PremiumToResponse(status))
}

// @Summary Get location statistics
// @Description Get the number of location fixes received in the stats time window. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	fixCount, err := h.tracker.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{FixCount: fixCount})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
