package analytics

import (
	"testing"
	"time"

	"github.com/shenikar/forest_fire_monitoring/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictPerimeter_BuildsOctagonAroundPoint(t *testing.T) {
	// Действие
	perimeter := PredictPerimeter(24.13, -104.57)

	// Проверки
	require.Len(t, perimeter, 8)
	assert.Equal(t, [2]float64{24.13 + 0.05, -104.57 - 0.05}, perimeter[0])
	assert.Equal(t, [2]float64{24.13 + 0.06, -104.57}, perimeter[1])
	assert.Equal(t, [2]float64{24.13 - 0.06, -104.57}, perimeter[5])
	assert.Equal(t, [2]float64{24.13, -104.57 - 0.06}, perimeter[7])

	// Все вершины в пределах ±0.06 градуса от точки тревоги
	for _, p := range perimeter {
		assert.InDelta(t, 24.13, p[0], 0.06)
		assert.InDelta(t, -104.57, p[1], 0.06)
	}
}

func TestCameraHistory_FiltersAndLimits(t *testing.T) {
	// Подготовка
	base := time.Now()
	current := models.Alert{ID: "alert-5", CameraID: "cam-01", Timestamp: base}
	all := []models.Alert{
		current,
		{ID: "alert-1", CameraID: "cam-01", Timestamp: base.Add(-4 * time.Hour)},
		{ID: "alert-2", CameraID: "cam-02", Timestamp: base.Add(-3 * time.Hour)},
		{ID: "alert-3", CameraID: "cam-01", Timestamp: base.Add(-2 * time.Hour)},
		{ID: "alert-4", CameraID: "cam-01", Timestamp: base.Add(-time.Hour)},
	}

	// Действие
	history := CameraHistory(current, all, 2)

	// Проверки: сама тревога и чужие камеры исключены, свежие первыми
	require.Len(t, history, 2)
	assert.Equal(t, "alert-4", history[0].ID)
	assert.Equal(t, "alert-3", history[1].ID)
}

func TestCameraHistory_NoLimit(t *testing.T) {
	// Подготовка
	current := models.Alert{ID: "alert-1", CameraID: "cam-01"}
	all := []models.Alert{
		current,
		{ID: "alert-2", CameraID: "cam-01"},
		{ID: "alert-3", CameraID: "cam-01"},
	}

	// Действие и проверки
	assert.Len(t, CameraHistory(current, all, 0), 2)
}

func TestAlertsByDay_ZeroFilledWindow(t *testing.T) {
	// Подготовка
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	alerts := []models.Alert{
		{Timestamp: now.Add(-2 * time.Hour)},
		{Timestamp: now.AddDate(0, 0, -1)},
		{Timestamp: now.AddDate(0, 0, -1).Add(time.Hour)},
		{Timestamp: now.AddDate(0, 0, -30)}, // за пределами окна
	}

	// Действие
	buckets := AlertsByDay(alerts, now, 7)

	// Проверки: 7 суток от старых к новым, дни без тревог с нулем
	require.Len(t, buckets, 7)
	assert.Equal(t, "2024-06-04", buckets[0].Date)
	assert.Equal(t, 0, buckets[0].Count)
	assert.Equal(t, "2024-06-09", buckets[5].Date)
	assert.Equal(t, 2, buckets[5].Count)
	assert.Equal(t, "2024-06-10", buckets[6].Date)
	assert.Equal(t, 1, buckets[6].Count)
}

func TestAlertsByDay_NonPositiveWindow(t *testing.T) {
	assert.Empty(t, AlertsByDay(nil, time.Now(), 0))
}

func TestAlertsByHour_BucketsByHourOfDay(t *testing.T) {
	// Подготовка
	alerts := []models.Alert{
		{Timestamp: time.Date(2024, 6, 10, 0, 15, 0, 0, time.UTC)},
		{Timestamp: time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)},
		{Timestamp: time.Date(2024, 6, 11, 14, 59, 0, 0, time.UTC)},
		{Timestamp: time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC)},
	}

	// Действие
	buckets := AlertsByHour(alerts)

	// Проверки
	assert.Equal(t, 1, buckets[0])
	assert.Equal(t, 2, buckets[14])
	assert.Equal(t, 1, buckets[23])
	assert.Equal(t, 0, buckets[7])
}

func TestAlertsByConfirmation_CountsEachStatus(t *testing.T) {
	// Подготовка
	alerts := []models.Alert{
		{ConfirmationStatus: models.AlertStatusPending},
		{ConfirmationStatus: models.AlertStatusConfirmed},
		{ConfirmationStatus: models.AlertStatusConfirmed},
		{ConfirmationStatus: models.AlertStatusFalseAlarm},
	}

	// Действие
	counts := AlertsByConfirmation(alerts)

	// Проверки
	assert.Equal(t, 1, counts.Pending)
	assert.Equal(t, 2, counts.Confirmed)
	assert.Equal(t, 1, counts.FalseAlarm)
}

func TestAlertsByTemperature_FixedBands(t *testing.T) {
	// Подготовка
	alerts := []models.Alert{
		{Weather: "Nublado, 22°C, Viento 8km/h S"},
		{Weather: "Soleado, 25°C, Viento 10km/h N"},
		{Weather: "Soleado, 28°C, Viento 12km/h N"},
		{Weather: "Soleado, 30°C, Viento 6km/h E"},
		{Weather: "Soleado, 32°C, Viento 18km/h N"},
		{Weather: "sin datos"}, // температуру извлечь нельзя
	}

	// Действие
	bands := AlertsByTemperature(alerts)

	// Проверки
	require.Len(t, bands, 4)
	assert.Equal(t, BandCount{Band: "<25°C", Count: 1}, bands[0])
	assert.Equal(t, BandCount{Band: "25-28°C", Count: 2}, bands[1])
	assert.Equal(t, BandCount{Band: "29-31°C", Count: 1}, bands[2])
	assert.Equal(t, BandCount{Band: "≥32°C", Count: 1}, bands[3])
}
