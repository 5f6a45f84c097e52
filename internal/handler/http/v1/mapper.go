package v1

import "github.com/shenikar/forest_fire_monitoring/internal/models"

// ModelToCameraResponse преобразует доменную модель камеры в DTO для ответа
func ModelToCameraResponse(model models.Camera) CameraResponse {
	history := make([]CameraStatusHistoryResponse, len(model.StatusHistory))
	for i, h := range model.StatusHistory {
		history[i] = CameraStatusHistoryResponse{
			Status:    string(h.Status),
			Timestamp: h.Timestamp,
		}
	}
	return CameraResponse{
		ID:             model.ID,
		Name:           model.Name,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		Status:         string(model.Status),
		Model:          model.Model,
		IsFavorite:     model.IsFavorite,
		ActivationDate: model.ActivationDate,
		StatusHistory:  history,
	}
}

// ModelsToCameraResponses преобразует слайс моделей камер в слайс DTO
func ModelsToCameraResponses(cameras []models.Camera) []CameraResponse {
	responses := make([]CameraResponse, len(cameras))
	for i, cam := range cameras {
		responses[i] = ModelToCameraResponse(cam)
	}
	return responses
}

// ModelToAlertResponse преобразует доменную модель тревоги в DTO для ответа
func ModelToAlertResponse(model models.Alert) AlertResponse {
	notes := make([]AlertNoteResponse, len(model.Notes))
	for i, n := range model.Notes {
		notes[i] = AlertNoteResponse{
			Author:    n.Author,
			Timestamp: n.Timestamp,
			Text:      n.Text,
		}
	}
	return AlertResponse{
		ID:                 model.ID,
		CameraID:           model.CameraID,
		CameraName:         model.CameraName,
		Image:              model.Image,
		ImageWithBox:       model.ImageWithBox,
		ImageZoom:          model.ImageZoom,
		ImagePrevFrame:     model.ImagePrevFrame,
		Confidence:         model.Confidence,
		Timestamp:          model.Timestamp,
		Latitude:           model.Latitude,
		Longitude:          model.Longitude,
		ConfirmationStatus: string(model.ConfirmationStatus),
		Notes:              notes,
		Weather:            model.Weather,
	}
}

// ModelsToAlertResponses преобразует слайс моделей тревог в слайс DTO
func ModelsToAlertResponses(alerts []models.Alert) []AlertResponse {
	responses := make([]AlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = ModelToAlertResponse(alert)
	}
	return responses
}

// ModelToUserResponse преобразует доменную модель пользователя в DTO для ответа
func ModelToUserResponse(model models.User) UserResponse {
	return UserResponse{
		Name:      model.Name,
		Email:     model.Email,
		Role:      string(model.Role),
		AvatarURL: model.AvatarURL,
		Status:    string(model.Status),
	}
}

// ModelsToUserResponses преобразует слайс моделей пользователей в слайс DTO
func ModelsToUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ModelToUserResponse(user)
	}
	return responses
}

// ModelToAuditLogEntryResponse преобразует запись журнала аудита в DTO для ответа
func ModelToAuditLogEntryResponse(model models.AuditLogEntry) AuditLogEntryResponse {
	var details []AuditLogDetailResponse
	if len(model.Details) > 0 {
		details = make([]AuditLogDetailResponse, len(model.Details))
		for i, d := range model.Details {
			details[i] = AuditLogDetailResponse{
				Field:  d.Field,
				Before: d.Before,
				After:  d.After,
			}
		}
	}
	return AuditLogEntryResponse{
		ID:         model.ID,
		EntityType: string(model.EntityType),
		EntityID:   model.EntityID,
		EntityName: model.EntityName,
		Action:     model.Action,
		User:       model.User,
		Timestamp:  model.Timestamp,
		Note:       model.Note,
		Details:    details,
	}
}

// ModelsToAuditLogEntryResponses преобразует слайс записей аудита в слайс DTO
func ModelsToAuditLogEntryResponses(entries []models.AuditLogEntry) []AuditLogEntryResponse {
	responses := make([]AuditLogEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ModelToAuditLogEntryResponse(entry)
	}
	return responses
}

// ModelToStatsResponse преобразует сводку мониторинга в DTO для ответа
func ModelToStatsResponse(model models.Stats) StatsResponse {
	return StatsResponse{
		ActiveCameras:  model.ActiveCameras,
		AlertsToday:    model.AlertsToday,
		FalsePositives: model.FalsePositives,
	}
}
