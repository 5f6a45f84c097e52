package reconcile

import (
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/forest_fire_monitoring/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeAlert(id string, ts time.Time) models.Alert {
	return models.Alert{
		ID:                 id,
		CameraID:           "cam-01",
		CameraName:         "Cerro del Púlpito",
		Timestamp:          ts,
		ConfirmationStatus: models.AlertStatusPending,
		Notes:              []models.AlertNote{},
		Weather:            "Soleado, 30°C, Viento 10km/h N",
	}
}

func TestMergeAlerts_ManagedFieldsSurvive(t *testing.T) {
	// Подготовка: одна и та же тревога в обоих списках, оператор успел
	// подтвердить ее и оставить заметку
	now := time.Now()
	raw := makeAlert("alert-1", now)

	managed := makeAlert("alert-1", now)
	managed.ConfirmationStatus = models.AlertStatusConfirmed
	managed.Notes = []models.AlertNote{{Author: "Operator", Timestamp: now, Text: "Humo visible"}}

	// Действие
	merged := MergeAlerts([]models.Alert{raw}, []models.Alert{managed})

	// Проверки
	require.Len(t, merged, 1)
	assert.Equal(t, models.AlertStatusConfirmed, merged[0].ConfirmationStatus)
	require.Len(t, merged[0].Notes, 1)
	assert.Equal(t, "Humo visible", merged[0].Notes[0].Text)
}

func TestMergeAlerts_SensorFieldsComeFromRaw(t *testing.T) {
	// Подготовка: сырая запись несет обновленный снимок погоды
	now := time.Now()
	raw := makeAlert("alert-1", now)
	raw.Weather = "Nublado, 22°C, Viento 8km/h S"
	raw.Confidence = 0.91

	managed := makeAlert("alert-1", now.Add(-time.Minute))
	managed.ConfirmationStatus = models.AlertStatusFalseAlarm

	// Действие
	merged := MergeAlerts([]models.Alert{raw}, []models.Alert{managed})

	// Проверки: сенсорные поля из сырой записи, человеческие - из управляемой
	require.Len(t, merged, 1)
	assert.Equal(t, "Nublado, 22°C, Viento 8km/h S", merged[0].Weather)
	assert.Equal(t, 0.91, merged[0].Confidence)
	assert.Equal(t, now, merged[0].Timestamp)
	assert.Equal(t, models.AlertStatusFalseAlarm, merged[0].ConfirmationStatus)
}

func TestMergeAlerts_EvictedManagedAlertIsKept(t *testing.T) {
	// Подготовка: тревога уже вытеснена из окна движка
	old := makeAlert("alert-old", time.Now().Add(-time.Hour))
	old.ConfirmationStatus = models.AlertStatusConfirmed

	fresh := makeAlert("alert-new", time.Now())

	// Действие
	merged := MergeAlerts([]models.Alert{fresh}, []models.Alert{old})

	// Проверки: старая запись сохранена как есть, новая принята
	require.Len(t, merged, 2)
	assert.Equal(t, "alert-new", merged[0].ID)
	assert.Equal(t, "alert-old", merged[1].ID)
	assert.Equal(t, models.AlertStatusConfirmed, merged[1].ConfirmationStatus)
}

func TestMergeAlerts_NewRawAlertIsAdopted(t *testing.T) {
	// Действие
	merged := MergeAlerts([]models.Alert{makeAlert("alert-1", time.Now())}, nil)

	// Проверки
	require.Len(t, merged, 1)
	assert.Equal(t, models.AlertStatusPending, merged[0].ConfirmationStatus)
}

func TestMergeAlerts_SortedAndBounded(t *testing.T) {
	// Подготовка: суммарно больше окна, времена вперемешку
	base := time.Now()
	var raw, managed []models.Alert
	for i := 0; i < 15; i++ {
		raw = append(raw, makeAlert(fmt.Sprintf("alert-raw-%d", i), base.Add(time.Duration(i)*time.Minute)))
	}
	for i := 0; i < 15; i++ {
		managed = append(managed, makeAlert(fmt.Sprintf("alert-man-%d", i), base.Add(time.Duration(i)*time.Second)))
	}

	// Действие
	merged := MergeAlerts(raw, managed)

	// Проверки: не больше 20, по убыванию времени
	require.Len(t, merged, 20)
	for i := 1; i < len(merged); i++ {
		assert.False(t, merged[i].Timestamp.After(merged[i-1].Timestamp))
	}
	assert.Equal(t, "alert-raw-14", merged[0].ID)
}

func TestMergeAlerts_EmptyIDIsSkipped(t *testing.T) {
	// Действие
	merged := MergeAlerts(
		[]models.Alert{makeAlert("", time.Now()), makeAlert("alert-1", time.Now())},
		[]models.Alert{makeAlert("", time.Now())},
	)

	// Проверки
	require.Len(t, merged, 1)
	assert.Equal(t, "alert-1", merged[0].ID)
}

func TestSyncCameraStatus_OnlyStatusIsCopied(t *testing.T) {
	// Подготовка: оператор переименовал камеру и отметил ее избранной,
	// движок тем временем перевел ее в тревогу
	raw := []models.Camera{{ID: "cam-01", Name: "Cerro del Púlpito", Status: models.CameraStatusAlert}}
	managed := []models.Camera{{
		ID:         "cam-01",
		Name:       "Cerro del Púlpito (norte)",
		Status:     models.CameraStatusActive,
		IsFavorite: true,
		Model:      "AXIS Q6075-E",
	}}

	// Действие
	synced := SyncCameraStatus(raw, managed)

	// Проверки
	require.Len(t, synced, 1)
	assert.Equal(t, models.CameraStatusAlert, synced[0].Status)
	assert.Equal(t, "Cerro del Púlpito (norte)", synced[0].Name)
	assert.True(t, synced[0].IsFavorite)
	assert.Equal(t, "AXIS Q6075-E", synced[0].Model)
}

func TestSyncCameraStatus_UnknownManagedCameraIsUntouched(t *testing.T) {
	// Подготовка: камера добавлена пользователем, движку она неизвестна
	managed := []models.Camera{{ID: "cam-999", Name: "Torre Norte", Status: models.CameraStatusActive}}

	// Действие
	synced := SyncCameraStatus([]models.Camera{{ID: "cam-01", Status: models.CameraStatusInactive}}, managed)

	// Проверки
	require.Len(t, synced, 1)
	assert.Equal(t, models.CameraStatusActive, synced[0].Status)
}
