package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntityType - тип сущности, к которой относится запись аудита.
// Метки сохранены на испанском, как в интерфейсе панели.
type AuditEntityType string

const (
	EntityAlert  AuditEntityType = "Alerta"
	EntityCamera AuditEntityType = "Cámara"
	EntityUser   AuditEntityType = "Usuario"
)

// Действия, фиксируемые в журнале аудита
const (
	ActionCameraCreated      = "Cámara Creada"
	ActionCameraEdited       = "Cámara Editada"
	ActionCameraDeactivated  = "Cámara Desactivada"
	ActionAlertNoteAdded     = "Nota Añadida"
	ActionAlertStatusChanged = "Estado de Alerta Cambiado"
	ActionUserCreated        = "Usuario Creado"
	ActionUserEdited         = "Usuario Editado"
	ActionUserDeactivated    = "Usuario Desactivado"
)

// Поля, участвующие в diff-записях аудита
const (
	FieldName      = "Nombre"
	FieldLatitude  = "Latitud"
	FieldLongitude = "Longitud"
	FieldModel     = "Modelo"
	FieldStatus    = "Estado"
)

// AuditLogDetail - изменение одного поля: что было и что стало
type AuditLogDetail struct {
	Field  string `json:"field"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// AuditLogEntry - неизменяемая запись журнала аудита. Details заполняется
// для правок с diff по полям, Note - для свободного текста (текст заметки).
type AuditLogEntry struct {
	ID         uuid.UUID        `json:"id"`
	EntityType AuditEntityType  `json:"entity_type"`
	EntityID   string           `json:"entity_id"`
	EntityName string           `json:"entity_name"`
	Action     string           `json:"action"`
	User       string           `json:"user"`
	Timestamp  time.Time        `json:"timestamp"`
	Note       string           `json:"note,omitempty"`
	Details    []AuditLogDetail `json:"details,omitempty"`
}
