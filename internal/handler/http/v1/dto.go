package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateCameraRequest DTO для создания камеры
// @Description DTO для создания камеры
type CreateCameraRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=255"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
	Model     string  `json:"model,omitempty"`
	Status    string  `json:"status,omitempty" validate:"omitempty,oneof=active alert inactive"`
}

// UpdateCameraRequest DTO для редактирования камеры
// @Description DTO для редактирования камеры
type UpdateCameraRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=255"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
	Model     string  `json:"model,omitempty"`
	Status    string  `json:"status" validate:"required,oneof=active alert inactive"`
}

// UpdateAlertStatusRequest DTO для смены статуса подтверждения тревоги
// @Description DTO для смены статуса подтверждения тревоги
type UpdateAlertStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed false-alarm"`
}

// AddAlertNoteRequest DTO для добавления заметки к тревоге
// @Description DTO для добавления заметки к тревоге
type AddAlertNoteRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// CreateUserRequest DTO для создания пользователя
// @Description DTO для создания пользователя
type CreateUserRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=255"`
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required,oneof=Admin Operator Viewer"`
	Status string `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateUserRequest DTO для редактирования пользователя
// @Description DTO для редактирования пользователя
type UpdateUserRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=255"`
	Role      string `json:"role" validate:"required,oneof=Admin Operator Viewer"`
	Status    string `json:"status" validate:"required,oneof=Active Inactive"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// SetPreferenceRequest DTO для сохранения настройки панели
// @Description DTO для сохранения настройки панели
type SetPreferenceRequest struct {
	Value string `json:"value" validate:"required"`
}

// CameraStatusHistoryResponse - запись истории статусов камеры
type CameraStatusHistoryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// CameraResponse DTO для ответа с информацией о камере
// @Description DTO для ответа с информацией о камере
type CameraResponse struct {
	ID             string                        `json:"id"`
	Name           string                        `json:"name"`
	Latitude       float64                       `json:"latitude"`
	Longitude      float64                       `json:"longitude"`
	Status         string                        `json:"status"`
	Model          string                        `json:"model,omitempty"`
	IsFavorite     bool                          `json:"is_favorite"`
	ActivationDate time.Time                     `json:"activation_date"`
	StatusHistory  []CameraStatusHistoryResponse `json:"status_history"`
}

// AlertNoteResponse - заметка оператора к тревоге
type AlertNoteResponse struct {
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
}

// AlertResponse DTO для ответа с информацией о тревоге
// @Description DTO для ответа с информацией о тревоге
type AlertResponse struct {
	ID                 string              `json:"id"`
	CameraID           string              `json:"camera_id"`
	CameraName         string              `json:"camera_name"`
	Image              string              `json:"image"`
	ImageWithBox       string              `json:"image_with_box"`
	ImageZoom          string              `json:"image_zoom"`
	ImagePrevFrame     string              `json:"image_prev_frame"`
	Confidence         float64             `json:"confidence"`
	Timestamp          time.Time           `json:"timestamp"`
	Latitude           float64             `json:"latitude"`
	Longitude          float64             `json:"longitude"`
	ConfirmationStatus string              `json:"confirmation_status"`
	Notes              []AlertNoteResponse `json:"notes"`
	Weather            string              `json:"weather"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
	Status    string `json:"status"`
}

// StatsResponse DTO для ответа со сводкой мониторинга
// @Description DTO для ответа со сводкой мониторинга
type StatsResponse struct {
	ActiveCameras  int `json:"active_cameras"`
	AlertsToday    int `json:"alerts_today"`
	FalsePositives int `json:"false_positives"`
}

// AuditLogDetailResponse - изменение одного поля в записи аудита
type AuditLogDetailResponse struct {
	Field  string `json:"field"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// AuditLogEntryResponse DTO для ответа с записью журнала аудита
// @Description DTO для ответа с записью журнала аудита
type AuditLogEntryResponse struct {
	ID         uuid.UUID                `json:"id"`
	EntityType string                   `json:"entity_type"`
	EntityID   string                   `json:"entity_id"`
	EntityName string                   `json:"entity_name"`
	Action     string                   `json:"action"`
	User       string                   `json:"user"`
	Timestamp  time.Time                `json:"timestamp"`
	Note       string                   `json:"note,omitempty"`
	Details    []AuditLogDetailResponse `json:"details,omitempty"`
}

// PerimeterResponse DTO для ответа с прогнозируемым периметром
// @Description DTO для ответа с прогнозируемым периметром
type PerimeterResponse struct {
	AlertID string       `json:"alert_id"`
	Points  [][2]float64 `json:"points"`
}

// PreferenceResponse DTO для ответа с настройкой панели
// @Description DTO для ответа с настройкой панели
type PreferenceResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
