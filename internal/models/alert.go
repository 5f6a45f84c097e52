package models

import (
	"time"
)

// AlertConfirmationStatus - статус подтверждения тревоги оператором
type AlertConfirmationStatus string

const (
	AlertStatusPending    AlertConfirmationStatus = "pending"
	AlertStatusConfirmed  AlertConfirmationStatus = "confirmed"
	AlertStatusFalseAlarm AlertConfirmationStatus = "false-alarm"
)

// AlertNote - заметка оператора к тревоге
type AlertNote struct {
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
}

// Alert - одно обнаруженное событие возможного возгорания,
// привязанное к камере. Имя камеры и координаты снимаются в момент
// создания тревоги и дальше не синхронизируются.
type Alert struct {
	ID                 string                  `json:"id"`
	CameraID           string                  `json:"camera_id"`
	CameraName         string                  `json:"camera_name"`
	Image              string                  `json:"image"`
	ImageWithBox       string                  `json:"image_with_box"`
	ImageZoom          string                  `json:"image_zoom"`
	ImagePrevFrame     string                  `json:"image_prev_frame"`
	Confidence         float64                 `json:"confidence"`
	Timestamp          time.Time               `json:"timestamp"`
	Latitude           float64                 `json:"latitude"`
	Longitude          float64                 `json:"longitude"`
	ConfirmationStatus AlertConfirmationStatus `json:"confirmation_status"`
	Notes              []AlertNote             `json:"notes"`
	Weather            string                  `json:"weather"`
}

// Clone возвращает глубокую копию тревоги
func (a Alert) Clone() Alert {
	clone := a
	clone.Notes = make([]AlertNote, len(a.Notes))
	copy(clone.Notes, a.Notes)
	return clone
}

// Stats - производная сводка по текущему состоянию мониторинга.
// AlertsToday считается с момента запуска процесса и не сбрасывается
// по календарным суткам.
type Stats struct {
	ActiveCameras  int `json:"active_cameras"`
	AlertsToday    int `json:"alerts_today"`
	FalsePositives int `json:"false_positives"`
}

// PredictedPerimeter - прогнозируемый периметр распространения огня,
// список пар [широта, долгота]
type PredictedPerimeter [][2]float64
