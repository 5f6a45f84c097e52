package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/forest_fire_monitoring/internal/config"
	"github.com/shenikar/forest_fire_monitoring/internal/models"
	"github.com/shenikar/forest_fire_monitoring/internal/service"
	"github.com/sirupsen/logrus"
)

// PreferencesStore определяет контракт для хранилища настроек панели
type PreferencesStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// allowedPreferenceKeys - настройки, которые панель может сохранять
var allowedPreferenceKeys = map[string]bool{
	"theme":       true,
	"report_logo": true,
}

type Handler struct {
	monitoring  service.MonitoringService
	preferences PreferencesStore
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(monitoring service.MonitoringService, preferences PreferencesStore, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		monitoring:  monitoring,
		preferences: preferences,
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

// requireActor достает действующего пользователя или отвечает 401
func (h *Handler) requireActor(c *gin.Context) (models.User, bool) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-Email header required"})
		return models.User{}, false
	}
	return actor, true
}

// respondActionError переводит ошибку действия в HTTP-ответ
func (h *Handler) respondActionError(c *gin.Context, log *logrus.Entry, err error) {
	if errors.Is(err, service.ErrForbidden) {
		log.WithError(err).Warn("Action forbidden for actor role")
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
		return
	}
	log.WithError(err).Error("Action failed in service")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// @Summary List cameras
// @Description Get the managed camera list. Requires API key.
// @Tags Cameras
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} CameraResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /cameras [get]
func (h *Handler) listCameras(c *gin.Context) {
	cameras := h.monitoring.Cameras(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToCameraResponses(cameras))
}

// @Summary Create a new camera
// @Description Register a new monitoring camera. Requires API key and Admin actor.
// @Tags Cameras
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param camera body CreateCameraRequest true "Camera creation request"
// @Success 201 {object} CameraResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Router /cameras [post]
func (h *Handler) createCamera(c *gin.Context) {
	log := h.logger.WithField("method", "createCamera")

	actor, ok := h.requireActor(c)
	if !ok {
		return
	}

	var input CreateCameraRequest
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

	camera := models.Camera{
		Name:      input.Name,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Model:     input.Model,
		Status:    models.CameraStatus(input.Status),
	}
	created, err := h.monitoring.AddCamera(c.Request.Context(), actor, camera)
	if err != nil {
		h.respondActionError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToCameraResponse(*created))
}

// @Summary Update an existing camera
// @Description Edit camera metadata by ID. Unknown IDs are a no-op. Requires API key and Admin actor.
// @Tags Cameras
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Camera ID"
// @Param camera body UpdateCameraRequest true "Camera update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Router /cameras/{id} [put]
func (h *Handler) updateCamera(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateCamera").WithField("id", id)

	actor, ok := h.requireActor(c)
	if !ok {
		return
	}

	var input UpdateCameraRequest
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

	camera := models.Camera{
		ID:        id,
		Name:      input.Name,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Model:     input.Model,
		Status:    models.CameraStatus(input.Status),
	}
	if err := h.monitoring.EditCamera(c.Request.Context(), actor, camera); err != nil {
		h.respondActionError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Deactivate a camera
// @Description Force camera status to inactive. Cameras are never deleted. Requires API key and Admin actor.
// @Tags Cameras
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Camera ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Router /cameras/{id} [delete]
func (h *Handler) deactivateCamera(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deactivateCamera").WithField("id", id)

	actor, ok := h.requireActor(c)
	if !ok {
		return
	}

	if err := h.monitoring.DeactivateCamera(c.Request.Context(), actor, id); err != nil {
		h.respondActionError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Toggle camera favorite flag
// @Description Flip the favorite flag of a camera. Not audited. Requires API key.
// @Tags Cameras
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Camera ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /cameras/{id}/favorite [post]
func (h *Handler) toggleCameraFavorite(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "toggleCameraFavorite").WithField("id", id)

	actor, ok := h.requireActor(c)
	if !ok {
		return
	}

	if err := h.monitoring.ToggleCameraFavorite(c.Request.Context(), actor, id); err != nil {
		h.respondActionError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List alerts
// @Description Get the managed alert list, most recent first, bounded to the last 20. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	alerts := h.monitoring.Alerts(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Update alert confirmation status
// @Description Confirm an alert or mark it as a false alarm. Requires API key and Operator actor.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param status body UpdateAlertStatusRequest true "New confirmation status"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Router /alerts/{id}/status [put]
func (h *Handler) updateAlertStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateAlertStatus").WithField("id", id)

	actor, ok := h.requireActor(c)
	if !ok {
		return
	}

	var input UpdateAlertStatusRequest
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

	status := models.AlertConfirmationStatus(input.Status)
	if err := h.monitoring.UpdateAlertStatus(c.Request.Context(), actor, id, status); err != nil {
		h.respondActionError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Add a note to an alert
// @Description Append an operator note to an alert. Requires API key and Operator actor.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param note body AddAlertNoteRequest true "Note text"
// @Success 201 "Created"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Router /alerts/{id}/notes [post]
func (h *Handler) addAlertNote(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "addAlertNote").WithField("id", id)

	actor, ok := h.requireActor(c)
	if !ok {
		return
	}

	var input AddAlertNoteRequest
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

	if err := h.monitoring.AddAlertNote(c.Request.Context(), actor, id, input.Text); err != nil {
		h.respondActionError(c, log, err)
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Get prior alerts of the same camera
// @Description List previous alerts from the camera that produced this alert. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id}/history [get]
func (h *Handler) alertHistory(c *gin.Context) {
	id := c.Param("id")

	history, found := h.monitoring.AlertHistory(c.Request.Context(), id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(history))
}

// @Summary Get predicted fire perimeter for an alert
// @Description Build the predicted perimeter polygon around the alert location. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} PerimeterResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id}/perimeter [get]
func (h *Handler) alertPerimeter(c *gin.Context) {
	id := c.Param("id")

	perimeter, found := h.monitoring.AlertPerimeter(c.Request.Context(), id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	c.JSON(http.StatusOK, PerimeterResponse{AlertID: id, Points: perimeter})
}

// @Summary Get monitoring stats
// @Description Get the current monitoring rollup. Requires API key.
// @Tags Stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	stats := h.monitoring.Stats(c.Request.Context())
	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Get aggregated alert statistics
// @Description Get alert aggregates bucketed by day, hour, confirmation status and temperature band. Requires API key.
// @Tags Stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} service.StatsSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /stats/summary [get]
func (h *Handler) getStatsSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitoring.StatsSummary(c.Request.Context()))
}

// @Summary Get the audit log
// @Description Get all audit log entries, most recent first. Requires API key.
// @Tags Audit
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AuditLogEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /audit [get]
func (h *Handler) listAuditLog(c *gin.Context) {
	entries := h.monitoring.AuditLog(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToAuditLogEntryResponses(entries))
}

// @Summary List users
// @Description Get all dashboard user accounts. Requires API key.
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	users := h.monitoring.Users(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToUserResponses(users))
}

// @Summary Create a new user
// @Description Add a dashboard user account. Requires API key and Admin actor.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user body CreateUserRequest true "User creation request"
// @Success 201 "Created"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Router /users [post]
func (h *Handler) createUser(c *gin.Context) {
	log := h.logger.WithField("method", "createUser")

	actor, ok := h.requireActor(c)
	if !ok {
		return
	}

	var input CreateUserRequest
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

	user := models.User{
		Name:   input.Name,
		Email:  input.Email,
		Role:   models.UserRole(input.Role),
		Status: models.UserStatus(input.Status),
	}
	if err := h.monitoring.AddUser(c.Request.Context(), actor, user); err != nil {
		h.respondActionError(c, log, err)
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Update an existing user
// @Description Edit a user account matched by email. Unknown emails are a no-op. Requires API key and Admin actor.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param email path string true "User email"
// @Param user body UpdateUserRequest true "User update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Router /users/{email} [put]
func (h *Handler) updateUser(c *gin.Context) {
	email := c.Param("email")
	log := h.logger.WithField("method", "updateUser").WithField("email", email)

	actor, ok := h.requireActor(c)
	if !ok {
		return
	}

	var input UpdateUserRequest
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

	user := models.User{
		Name:      input.Name,
		Email:     email,
		Role:      models.UserRole(input.Role),
		Status:    models.UserStatus(input.Status),
		AvatarURL: input.AvatarURL,
	}
	if err := h.monitoring.EditUser(c.Request.Context(), actor, user); err != nil {
		h.respondActionError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Deactivate a user
// @Description Set a user account to Inactive, matched by email. Requires API key and Admin actor.
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Param email path string true "User email"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Router /users/{email} [delete]
func (h *Handler) deactivateUser(c *gin.Context) {
	email := c.Param("email")
	log := h.logger.WithField("method", "deactivateUser").WithField("email", email)

	actor, ok := h.requireActor(c)
	if !ok {
		return
	}

	if err := h.monitoring.DeactivateUser(c.Request.Context(), actor, email); err != nil {
		h.respondActionError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get a dashboard preference
// @Description Get a stored dashboard preference (theme, report logo). Requires API key.
// @Tags Preferences
// @Produce json
// @Security ApiKeyAuth
// @Param key path string true "Preference key" Enums(theme, report_logo)
// @Success 200 {object} PreferenceResponse
// @Failure 400 {object} map[string]string "Unknown preference key"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Preference not set"
// @Router /preferences/{key} [get]
func (h *Handler) getPreference(c *gin.Context) {
	key := c.Param("key")
	log := h.logger.WithField("method", "getPreference").WithField("key", key)

	if !allowedPreferenceKeys[key] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown preference key"})
		return
	}

	value, found, err := h.preferences.Get(c.Request.Context(), key)
	if err != nil {
		log.WithError(err).Error("Failed to get preference from store")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "preference not set"})
		return
	}
	c.JSON(http.StatusOK, PreferenceResponse{Key: key, Value: value})
}

// @Summary Set a dashboard preference
// @Description Store a dashboard preference (theme, report logo). Requires API key.
// @Tags Preferences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param key path string true "Preference key" Enums(theme, report_logo)
// @Param preference body SetPreferenceRequest true "Preference value"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or unknown preference key"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /preferences/{key} [put]
func (h *Handler) setPreference(c *gin.Context) {
	key := c.Param("key")
	log := h.logger.WithField("method", "setPreference").WithField("key", key)

	if !allowedPreferenceKeys[key] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown preference key"})
		return
	}

	var input SetPreferenceRequest
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

	if err := h.preferences.Set(c.Request.Context(), key, input.Value); err != nil {
		log.WithError(err).Error("Failed to set preference in store")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
