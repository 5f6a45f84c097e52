package audit

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/forest_fire_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

// ArchiveSink - необязательный внешний приемник записей аудита
// (write-behind архив). Ошибки приемника логируются и не влияют
// на само действие.
type ArchiveSink interface {
	Save(ctx context.Context, entry models.AuditLogEntry) error
}

// Recorder ведет неизменяемый журнал аудита в памяти: записи только
// добавляются в начало (новые первыми) и никогда не правятся и не
// удаляются. Какие типы сущностей попадают в журнал, задается политикой;
// по умолчанию действия над пользователями не журналируются.
type Recorder struct {
	mu      sync.Mutex
	policy  map[models.AuditEntityType]bool
	entries []models.AuditLogEntry
	archive ArchiveSink
	logger  *logrus.Logger
}

// NewRecorder создает журнал с политикой из списка типов сущностей.
// archive может быть nil.
func NewRecorder(auditedTypes []string, archive ArchiveSink, logger *logrus.Logger) *Recorder {
	policy := make(map[models.AuditEntityType]bool, len(auditedTypes))
	for _, t := range auditedTypes {
		policy[models.AuditEntityType(t)] = true
	}
	return &Recorder{
		policy:  policy,
		archive: archive,
		logger:  logger,
	}
}

// Record добавляет запись в начало журнала, если ее тип сущности разрешен
// политикой. ID присваивается здесь. Запись в архив выполняется по
// принципу "fire-and-forget": сбой архива никогда не прерывает действие.
func (r *Recorder) Record(ctx context.Context, entry models.AuditLogEntry) {
	if !r.policy[entry.EntityType] {
		return
	}
	entry.ID = uuid.New()

	r.mu.Lock()
	r.entries = append([]models.AuditLogEntry{entry}, r.entries...)
	r.mu.Unlock()

	if r.archive == nil {
		return
	}
	if err := r.archive.Save(ctx, entry); err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{
			"entity_type": entry.EntityType,
			"entity_id":   entry.EntityID,
			"action":      entry.Action,
		}).Error("Failed to archive audit log entry")
	}
}

// Entries возвращает копию журнала, новые записи первыми
func (r *Recorder) Entries() []models.AuditLogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]models.AuditLogEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// SeedFromCameras наполняет журнал стартовыми записями по посевному
// набору камер: "создана" для каждой камеры и "деактивирована" для
// выведенных из эксплуатации. Записи сортируются новые-первыми.
func (r *Recorder) SeedFromCameras(ctx context.Context, cameras []models.Camera) {
	seeded := make([]models.AuditLogEntry, 0, len(cameras)+2)
	for _, cam := range cameras {
		seeded = append(seeded, models.AuditLogEntry{
			EntityType: models.EntityCamera,
			EntityID:   cam.ID,
			EntityName: cam.Name,
			Action:     models.ActionCameraCreated,
			User:       "Sistema",
			Timestamp:  cam.ActivationDate,
		})
		if cam.Status != models.CameraStatusInactive {
			continue
		}
		for _, h := range cam.StatusHistory {
			if h.Status == models.CameraStatusInactive {
				seeded = append(seeded, models.AuditLogEntry{
					EntityType: models.EntityCamera,
					EntityID:   cam.ID,
					EntityName: cam.Name,
					Action:     models.ActionCameraDeactivated,
					User:       "Admin",
					Timestamp:  h.Timestamp,
				})
				break
			}
		}
	}

	sort.SliceStable(seeded, func(i, j int) bool {
		return seeded[i].Timestamp.After(seeded[j].Timestamp)
	})

	for i := len(seeded) - 1; i >= 0; i-- {
		r.Record(ctx, seeded[i])
	}
}
