package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/forest_fire_monitoring/internal/analytics"
	"github.com/shenikar/forest_fire_monitoring/internal/audit"
	"github.com/shenikar/forest_fire_monitoring/internal/models"
	"github.com/shenikar/forest_fire_monitoring/internal/reconcile"
	"github.com/shenikar/forest_fire_monitoring/internal/simulation"
	"github.com/shenikar/forest_fire_monitoring/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ErrForbidden возвращается, когда роли пользователя не хватает для действия
var ErrForbidden = errors.New("insufficient role")

// cameraHistoryLimit - сколько прежних тревог камеры показывает карточка тревоги
const cameraHistoryLimit = 3

// StatsSummary - агрегаты для страницы статистики
type StatsSummary struct {
	ByDay          []analytics.DayCount         `json:"by_day"`
	ByHour         [24]int                      `json:"by_hour"`
	ByConfirmation analytics.ConfirmationCounts `json:"by_confirmation"`
	ByTemperature  []analytics.BandCount        `json:"by_temperature"`
}

// MonitoringService определяет контракт для работы с управляемым состоянием
// мониторинга. Действия управления синхронны; "запись не найдена" - явный
// no-op, а не ошибка: ряд вызовов полагается на идемпотентность.
type MonitoringService interface {
	Cameras(ctx context.Context) []models.Camera
	Alerts(ctx context.Context) []models.Alert
	Users(ctx context.Context) []models.User
	Stats(ctx context.Context) models.Stats
	StatsSummary(ctx context.Context) StatsSummary
	AuditLog(ctx context.Context) []models.AuditLogEntry

	UpdateAlertStatus(ctx context.Context, actor models.User, alertID string, status models.AlertConfirmationStatus) error
	AddAlertNote(ctx context.Context, actor models.User, alertID, text string) error
	AlertHistory(ctx context.Context, alertID string) ([]models.Alert, bool)
	AlertPerimeter(ctx context.Context, alertID string) (models.PredictedPerimeter, bool)

	AddCamera(ctx context.Context, actor models.User, camera models.Camera) (*models.Camera, error)
	EditCamera(ctx context.Context, actor models.User, camera models.Camera) error
	DeactivateCamera(ctx context.Context, actor models.User, cameraID string) error
	ToggleCameraFavorite(ctx context.Context, actor models.User, cameraID string) error

	AddUser(ctx context.Context, actor models.User, user models.User) error
	EditUser(ctx context.Context, actor models.User, user models.User) error
	DeactivateUser(ctx context.Context, actor models.User, email string) error

	OnTick(ctx context.Context, spawned *models.Alert)
}

type monitoringService struct {
	mu sync.Mutex

	engine    *simulation.Engine
	recorder  *audit.Recorder
	publisher webhook.Publisher
	logger    *logrus.Logger

	managedCameras []models.Camera
	managedAlerts  []models.Alert
	users          []models.User
}

// NewMonitoringService создает сервис поверх движка симуляции. Управляемые
// копии стартуют с посевного набора и сразу сводятся с сырым состоянием,
// чтобы стартовая тревога была видна панели.
func NewMonitoringService(engine *simulation.Engine, recorder *audit.Recorder, publisher webhook.Publisher, logger *logrus.Logger) MonitoringService {
	s := &monitoringService{
		engine:         engine,
		recorder:       recorder,
		publisher:      publisher,
		logger:         logger,
		managedCameras: models.SeedCameras(),
		users:          models.SeedUsers(),
	}
	s.reconcileWithEngine()
	return s
}

// OnTick вызывается после каждого шага симуляции: сводит управляемое
// состояние с сырым и публикует событие о новой тревоге, если она появилась
func (s *monitoringService) OnTick(ctx context.Context, spawned *models.Alert) {
	s.reconcileWithEngine()

	if spawned == nil || s.publisher == nil {
		return
	}
	event := webhook.AlertEvent{
		ID:        uuid.New(),
		Timestamp: time.Now(),
		Alert:     *spawned,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("alert_id", spawned.ID).Error("Failed to publish alert event")
	}
}

func (s *monitoringService) reconcileWithEngine() {
	rawAlerts := s.engine.Alerts()
	rawCameras := s.engine.Cameras()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.managedAlerts = reconcile.MergeAlerts(rawAlerts, s.managedAlerts)
	s.managedCameras = reconcile.SyncCameraStatus(rawCameras, s.managedCameras)
}

// Cameras возвращает управляемый список камер
func (s *monitoringService) Cameras(_ context.Context) []models.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()

	cameras := make([]models.Camera, len(s.managedCameras))
	for i, cam := range s.managedCameras {
		cameras[i] = cam.Clone()
	}
	return cameras
}

// Alerts возвращает управляемый список тревог, новые первыми
func (s *monitoringService) Alerts(_ context.Context) []models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	alerts := make([]models.Alert, len(s.managedAlerts))
	for i, alert := range s.managedAlerts {
		alerts[i] = alert.Clone()
	}
	return alerts
}

// Users возвращает список учетных записей
func (s *monitoringService) Users(_ context.Context) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users
}

// Stats возвращает текущую сводку симуляции
func (s *monitoringService) Stats(_ context.Context) models.Stats {
	return s.engine.Stats()
}

// StatsSummary возвращает агрегаты по управляемым тревогам
func (s *monitoringService) StatsSummary(ctx context.Context) StatsSummary {
	alerts := s.Alerts(ctx)
	return StatsSummary{
		ByDay:          analytics.AlertsByDay(alerts, time.Now(), 7),
		ByHour:         analytics.AlertsByHour(alerts),
		ByConfirmation: analytics.AlertsByConfirmation(alerts),
		ByTemperature:  analytics.AlertsByTemperature(alerts),
	}
}

// AuditLog возвращает журнал аудита, новые записи первыми
func (s *monitoringService) AuditLog(_ context.Context) []models.AuditLogEntry {
	return s.recorder.Entries()
}

// UpdateAlertStatus устанавливает статус подтверждения тревоги. Статус
// меняется только явным действием пользователя и не откатывается
// симуляцией. Запись аудита пишется, только если значение изменилось.
func (s *monitoringService) UpdateAlertStatus(ctx context.Context, actor models.User, alertID string, status models.AlertConfirmationStatus) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "monitoring",
		"method":   "UpdateAlertStatus",
		"alert_id": alertID,
	})
	if err := authorize(actor, models.RoleOperator); err != nil {
		log.WithField("actor", actor.Email).Warn("Actor is not allowed to update alert status")
		return err
	}

	s.mu.Lock()
	alert := s.findAlert(alertID)
	if alert == nil {
		s.mu.Unlock()
		log.Warn("Alert not found, nothing to update")
		return nil
	}

	before := alert.ConfirmationStatus
	alert.ConfirmationStatus = status
	entityName := alertEntityName(alertID)
	s.mu.Unlock()

	if before != status {
		s.recorder.Record(ctx, models.AuditLogEntry{
			EntityType: models.EntityAlert,
			EntityID:   alertID,
			EntityName: entityName,
			Action:     models.ActionAlertStatusChanged,
			User:       actor.Name,
			Timestamp:  time.Now(),
			Details: []models.AuditLogDetail{
				{Field: models.FieldStatus, Before: string(before), After: string(status)},
			},
		})
	}

	log.WithField("status", status).Info("Alert confirmation status updated")
	return nil
}

// AddAlertNote добавляет заметку к тревоге; список заметок только растет
func (s *monitoringService) AddAlertNote(ctx context.Context, actor models.User, alertID, text string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "monitoring",
		"method":   "AddAlertNote",
		"alert_id": alertID,
	})
	if err := authorize(actor, models.RoleOperator); err != nil {
		log.WithField("actor", actor.Email).Warn("Actor is not allowed to add alert notes")
		return err
	}

	now := time.Now()

	s.mu.Lock()
	alert := s.findAlert(alertID)
	if alert == nil {
		s.mu.Unlock()
		log.Warn("Alert not found, nothing to annotate")
		return nil
	}
	alert.Notes = append(alert.Notes, models.AlertNote{
		Author:    actor.Name,
		Timestamp: now,
		Text:      text,
	})
	entityName := alertEntityName(alertID)
	s.mu.Unlock()

	s.recorder.Record(ctx, models.AuditLogEntry{
		EntityType: models.EntityAlert,
		EntityID:   alertID,
		EntityName: entityName,
		Action:     models.ActionAlertNoteAdded,
		User:       actor.Name,
		Timestamp:  now,
		Note:       text,
	})

	log.Info("Note added to alert")
	return nil
}

// AlertHistory возвращает прежние тревоги той же камеры. Второй результат
// false, если тревога не найдена.
func (s *monitoringService) AlertHistory(ctx context.Context, alertID string) ([]models.Alert, bool) {
	alerts := s.Alerts(ctx)
	for _, alert := range alerts {
		if alert.ID == alertID {
			return analytics.CameraHistory(alert, alerts, cameraHistoryLimit), true
		}
	}
	return nil, false
}

// AlertPerimeter возвращает прогнозируемый периметр вокруг точки тревоги.
// Второй результат false, если тревога не найдена.
func (s *monitoringService) AlertPerimeter(ctx context.Context, alertID string) (models.PredictedPerimeter, bool) {
	for _, alert := range s.Alerts(ctx) {
		if alert.ID == alertID {
			return analytics.PredictPerimeter(alert.Latitude, alert.Longitude), true
		}
	}
	return nil, false
}

// AddCamera создает камеру: id выводится из текущего времени, история
// статусов начинается с одной записи. Камера добавляется в начало списка.
func (s *monitoringService) AddCamera(ctx context.Context, actor models.User, camera models.Camera) (*models.Camera, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "monitoring",
		"method":  "AddCamera",
		"name":    camera.Name,
	})
	if err := authorize(actor, models.RoleAdmin); err != nil {
		log.WithField("actor", actor.Email).Warn("Actor is not allowed to add cameras")
		return nil, err
	}

	now := time.Now()
	if camera.Status == "" {
		camera.Status = models.CameraStatusActive
	}
	camera.ID = fmt.Sprintf("cam-%d", now.UnixMilli())
	camera.ActivationDate = now
	camera.StatusHistory = []models.CameraStatusHistory{
		{Status: camera.Status, Timestamp: now},
	}

	s.mu.Lock()
	s.managedCameras = append([]models.Camera{camera}, s.managedCameras...)
	s.mu.Unlock()

	s.recorder.Record(ctx, models.AuditLogEntry{
		EntityType: models.EntityCamera,
		EntityID:   camera.ID,
		EntityName: camera.Name,
		Action:     models.ActionCameraCreated,
		User:       actor.Name,
		Timestamp:  now,
	})

	log.WithField("camera_id", camera.ID).Info("Camera created")
	created := camera.Clone()
	return &created, nil
}

// EditCamera сравнивает редактируемые поля с текущим состоянием и применяет
// изменения. История статусов дополняется только при смене статуса; запись
// аудита пишется одна на правку и только если есть хоть одно отличие.
func (s *monitoringService) EditCamera(ctx context.Context, actor models.User, camera models.Camera) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "monitoring",
		"method":    "EditCamera",
		"camera_id": camera.ID,
	})
	if err := authorize(actor, models.RoleAdmin); err != nil {
		log.WithField("actor", actor.Email).Warn("Actor is not allowed to edit cameras")
		return err
	}

	now := time.Now()

	s.mu.Lock()
	existing := s.findCamera(camera.ID)
	if existing == nil {
		s.mu.Unlock()
		log.Warn("Camera not found, nothing to edit")
		return nil
	}

	details := make([]models.AuditLogDetail, 0, 5)
	if existing.Name != camera.Name {
		details = append(details, models.AuditLogDetail{Field: models.FieldName, Before: existing.Name, After: camera.Name})
	}
	if existing.Latitude != camera.Latitude {
		details = append(details, models.AuditLogDetail{Field: models.FieldLatitude, Before: formatCoord(existing.Latitude), After: formatCoord(camera.Latitude)})
	}
	if existing.Longitude != camera.Longitude {
		details = append(details, models.AuditLogDetail{Field: models.FieldLongitude, Before: formatCoord(existing.Longitude), After: formatCoord(camera.Longitude)})
	}
	if existing.Model != camera.Model {
		details = append(details, models.AuditLogDetail{Field: models.FieldModel, Before: orNA(existing.Model), After: orNA(camera.Model)})
	}
	if existing.Status != camera.Status {
		details = append(details, models.AuditLogDetail{Field: models.FieldStatus, Before: string(existing.Status), After: string(camera.Status)})
		existing.StatusHistory = append(existing.StatusHistory, models.CameraStatusHistory{
			Status:    camera.Status,
			Timestamp: now,
		})
	}

	existing.Name = camera.Name
	existing.Latitude = camera.Latitude
	existing.Longitude = camera.Longitude
	existing.Model = camera.Model
	existing.Status = camera.Status
	entityName := existing.Name
	s.mu.Unlock()

	if len(details) == 0 {
		log.Info("Camera edit produced no changes")
		return nil
	}

	s.recorder.Record(ctx, models.AuditLogEntry{
		EntityType: models.EntityCamera,
		EntityID:   camera.ID,
		EntityName: entityName,
		Action:     models.ActionCameraEdited,
		User:       actor.Name,
		Timestamp:  now,
		Details:    details,
	})

	log.WithField("changed_fields", len(details)).Info("Camera edited")
	return nil
}

// DeactivateCamera принудительно переводит камеру в inactive. Действие
// идемпотентно по состоянию, но каждая попытка дописывает одну запись
// истории и одну запись аудита, даже если камера уже была отключена.
func (s *monitoringService) DeactivateCamera(ctx context.Context, actor models.User, cameraID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "monitoring",
		"method":    "DeactivateCamera",
		"camera_id": cameraID,
	})
	if err := authorize(actor, models.RoleAdmin); err != nil {
		log.WithField("actor", actor.Email).Warn("Actor is not allowed to deactivate cameras")
		return err
	}

	now := time.Now()

	s.mu.Lock()
	existing := s.findCamera(cameraID)
	if existing == nil {
		s.mu.Unlock()
		log.Warn("Camera not found, nothing to deactivate")
		return nil
	}

	before := existing.Status
	existing.Status = models.CameraStatusInactive
	existing.StatusHistory = append(existing.StatusHistory, models.CameraStatusHistory{
		Status:    models.CameraStatusInactive,
		Timestamp: now,
	})
	entityName := existing.Name
	s.mu.Unlock()

	s.recorder.Record(ctx, models.AuditLogEntry{
		EntityType: models.EntityCamera,
		EntityID:   cameraID,
		EntityName: entityName,
		Action:     models.ActionCameraDeactivated,
		User:       actor.Name,
		Timestamp:  now,
		Details: []models.AuditLogDetail{
			{Field: models.FieldStatus, Before: string(before), After: string(models.CameraStatusInactive)},
		},
	})

	log.Info("Camera deactivated")
	return nil
}

// ToggleCameraFavorite переключает флаг избранного. Это косметическая
// настройка, запись аудита не пишется.
func (s *monitoringService) ToggleCameraFavorite(_ context.Context, actor models.User, cameraID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "monitoring",
		"method":    "ToggleCameraFavorite",
		"camera_id": cameraID,
	})
	if err := authorize(actor, models.RoleViewer); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.findCamera(cameraID)
	if existing == nil {
		log.Warn("Camera not found, nothing to toggle")
		return nil
	}
	existing.IsFavorite = !existing.IsFavorite
	return nil
}

// AddUser добавляет учетную запись в начало списка, назначая стандартный
// аватар. Попадание в журнал аудита зависит от политики (по умолчанию
// действия над пользователями не журналируются).
func (s *monitoringService) AddUser(ctx context.Context, actor models.User, user models.User) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "monitoring",
		"method":  "AddUser",
		"email":   user.Email,
	})
	if err := authorize(actor, models.RoleAdmin); err != nil {
		log.WithField("actor", actor.Email).Warn("Actor is not allowed to add users")
		return err
	}

	user.AvatarURL = models.PlaceholderAvatarURL
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}

	s.mu.Lock()
	s.users = append([]models.User{user}, s.users...)
	s.mu.Unlock()

	s.recorder.Record(ctx, models.AuditLogEntry{
		EntityType: models.EntityUser,
		EntityID:   user.Email,
		EntityName: user.Name,
		Action:     models.ActionUserCreated,
		User:       actor.Name,
		Timestamp:  time.Now(),
	})

	log.Info("User created")
	return nil
}

// EditUser находит учетную запись по email и накладывает измененные поля
func (s *monitoringService) EditUser(ctx context.Context, actor models.User, user models.User) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "monitoring",
		"method":  "EditUser",
		"email":   user.Email,
	})
	if err := authorize(actor, models.RoleAdmin); err != nil {
		log.WithField("actor", actor.Email).Warn("Actor is not allowed to edit users")
		return err
	}

	s.mu.Lock()
	found := false
	for i := range s.users {
		if s.users[i].Email != user.Email {
			continue
		}
		s.users[i].Name = user.Name
		s.users[i].Role = user.Role
		s.users[i].Status = user.Status
		if user.AvatarURL != "" {
			s.users[i].AvatarURL = user.AvatarURL
		}
		found = true
		break
	}
	s.mu.Unlock()

	if !found {
		log.Warn("User not found, nothing to edit")
		return nil
	}

	s.recorder.Record(ctx, models.AuditLogEntry{
		EntityType: models.EntityUser,
		EntityID:   user.Email,
		EntityName: user.Name,
		Action:     models.ActionUserEdited,
		User:       actor.Name,
		Timestamp:  time.Now(),
	})

	log.Info("User edited")
	return nil
}

// DeactivateUser переводит учетную запись в Inactive по email
func (s *monitoringService) DeactivateUser(ctx context.Context, actor models.User, email string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "monitoring",
		"method":  "DeactivateUser",
		"email":   email,
	})
	if err := authorize(actor, models.RoleAdmin); err != nil {
		log.WithField("actor", actor.Email).Warn("Actor is not allowed to deactivate users")
		return err
	}

	s.mu.Lock()
	found := false
	var name string
	for i := range s.users {
		if s.users[i].Email == email {
			s.users[i].Status = models.UserStatusInactive
			name = s.users[i].Name
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		log.Warn("User not found, nothing to deactivate")
		return nil
	}

	s.recorder.Record(ctx, models.AuditLogEntry{
		EntityType: models.EntityUser,
		EntityID:   email,
		EntityName: name,
		Action:     models.ActionUserDeactivated,
		User:       actor.Name,
		Timestamp:  time.Now(),
	})

	log.Info("User deactivated")
	return nil
}

// findAlert возвращает указатель на управляемую тревогу; вызывать под мьютексом
func (s *monitoringService) findAlert(alertID string) *models.Alert {
	for i := range s.managedAlerts {
		if s.managedAlerts[i].ID == alertID {
			return &s.managedAlerts[i]
		}
	}
	return nil
}

// findCamera возвращает указатель на управляемую камеру; вызывать под мьютексом
func (s *monitoringService) findCamera(cameraID string) *models.Camera {
	for i := range s.managedCameras {
		if s.managedCameras[i].ID == cameraID {
			return &s.managedCameras[i]
		}
	}
	return nil
}

// authorize проверяет минимально требуемую роль на границе действия
func authorize(actor models.User, min models.UserRole) error {
	if !actor.Role.AtLeast(min) {
		return fmt.Errorf("service: role %q requires at least %q: %w", actor.Role, min, ErrForbidden)
	}
	return nil
}

// alertEntityName формирует отображаемое имя тревоги для журнала аудита
// из суффикса id ("alert-123" -> "Alerta #123")
func alertEntityName(alertID string) string {
	if _, suffix, ok := strings.Cut(alertID, "-"); ok {
		return "Alerta #" + suffix
	}
	return "Alerta #" + alertID
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
