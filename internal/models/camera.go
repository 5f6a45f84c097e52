package models

import (
	"time"
)

// CameraStatus - рабочее состояние камеры наблюдения
type CameraStatus string

const (
	CameraStatusActive   CameraStatus = "active"
	CameraStatusAlert    CameraStatus = "alert"
	CameraStatusInactive CameraStatus = "inactive"
)

// CameraStatusHistory - одна запись в истории смены статусов камеры
type CameraStatusHistory struct {
	Status    CameraStatus `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
}

// Camera - станция видеонаблюдения за лесными пожарами.
// История статусов только дополняется: последняя запись всегда
// соответствует текущему статусу камеры.
type Camera struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Latitude       float64               `json:"latitude"`
	Longitude      float64               `json:"longitude"`
	Status         CameraStatus          `json:"status"`
	Model          string                `json:"model,omitempty"`
	IsFavorite     bool                  `json:"is_favorite"`
	ActivationDate time.Time             `json:"activation_date"`
	StatusHistory  []CameraStatusHistory `json:"status_history"`
}

// Clone возвращает глубокую копию камеры, чтобы снимки состояния
// не делили слайс истории с владельцем
func (c Camera) Clone() Camera {
	clone := c
	clone.StatusHistory = make([]CameraStatusHistory, len(c.StatusHistory))
	copy(clone.StatusHistory, c.StatusHistory)
	return clone
}
