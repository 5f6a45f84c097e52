package audit

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/forest_fire_monitoring/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingArchive - приемник, который всегда отказывает
type failingArchive struct {
	calls int
}

func (f *failingArchive) Save(_ context.Context, _ models.AuditLogEntry) error {
	f.calls++
	return errors.New("archive unavailable")
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func defaultPolicy() []string {
	return []string{string(models.EntityAlert), string(models.EntityCamera)}
}

func cameraEntry(action string) models.AuditLogEntry {
	return models.AuditLogEntry{
		EntityType: models.EntityCamera,
		EntityID:   "cam-01",
		EntityName: "Cerro del Púlpito",
		Action:     action,
		User:       "Admin",
		Timestamp:  time.Now(),
	}
}

func TestRecord_PrependsAndAssignsID(t *testing.T) {
	// Подготовка
	r := NewRecorder(defaultPolicy(), nil, newTestLogger())
	ctx := context.Background()

	// Действие
	r.Record(ctx, cameraEntry(models.ActionCameraCreated))
	r.Record(ctx, cameraEntry(models.ActionCameraEdited))

	// Проверки: новые записи первыми, id присвоен
	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, models.ActionCameraEdited, entries[0].Action)
	assert.Equal(t, models.ActionCameraCreated, entries[1].Action)
	assert.NotEqual(t, uuid.Nil, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestRecord_PolicyFiltersEntityTypes(t *testing.T) {
	// Подготовка: политика по умолчанию не журналирует пользователей
	r := NewRecorder(defaultPolicy(), nil, newTestLogger())
	ctx := context.Background()

	// Действие
	r.Record(ctx, models.AuditLogEntry{
		EntityType: models.EntityUser,
		EntityID:   "viewer@sifdurango.com",
		Action:     models.ActionUserCreated,
		User:       "Admin",
		Timestamp:  time.Now(),
	})
	r.Record(ctx, cameraEntry(models.ActionCameraCreated))

	// Проверки
	entries := r.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, models.EntityCamera, entries[0].EntityType)
}

func TestRecord_UserEntriesWithExtendedPolicy(t *testing.T) {
	// Подготовка: политика расширена на пользователей
	r := NewRecorder([]string{string(models.EntityUser)}, nil, newTestLogger())

	// Действие
	r.Record(context.Background(), models.AuditLogEntry{
		EntityType: models.EntityUser,
		EntityID:   "viewer@sifdurango.com",
		Action:     models.ActionUserDeactivated,
		User:       "Admin",
		Timestamp:  time.Now(),
	})

	// Проверки
	require.Len(t, r.Entries(), 1)
}

func TestRecord_ArchiveFailureDoesNotDropEntry(t *testing.T) {
	// Подготовка
	archive := &failingArchive{}
	r := NewRecorder(defaultPolicy(), archive, newTestLogger())

	// Действие
	r.Record(context.Background(), cameraEntry(models.ActionCameraCreated))

	// Проверки: сбой архива не влияет на журнал в памяти
	assert.Equal(t, 1, archive.calls)
	assert.Len(t, r.Entries(), 1)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	// Подготовка
	r := NewRecorder(defaultPolicy(), nil, newTestLogger())
	r.Record(context.Background(), cameraEntry(models.ActionCameraCreated))

	// Действие
	entries := r.Entries()
	entries[0].Action = "Tampered"

	// Проверки
	assert.Equal(t, models.ActionCameraCreated, r.Entries()[0].Action)
}

func TestSeedFromCameras_BuildsInitialJournal(t *testing.T) {
	// Подготовка
	r := NewRecorder(defaultPolicy(), nil, newTestLogger())

	// Действие
	r.SeedFromCameras(context.Background(), models.SeedCameras())

	// Проверки: по записи "создана" на камеру плюс две деактивации,
	// новые записи первыми
	entries := r.Entries()
	require.Len(t, entries, 12)

	assert.Equal(t, models.ActionCameraDeactivated, entries[0].Action)
	assert.Equal(t, "cam-07", entries[0].EntityID)
	assert.Equal(t, models.ActionCameraDeactivated, entries[1].Action)
	assert.Equal(t, "cam-03", entries[1].EntityID)

	assert.Equal(t, models.ActionCameraCreated, entries[len(entries)-1].Action)
	assert.Equal(t, "cam-01", entries[len(entries)-1].EntityID)

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Timestamp.After(entries[i-1].Timestamp))
	}
}
