package simulation

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/shenikar/forest_fire_monitoring/internal/config"
	"github.com/shenikar/forest_fire_monitoring/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine создает движок с детерминированным генератором случайных чисел
func newTestEngine(cfg *config.Config) *Engine {
	return NewEngine(cfg, rand.New(rand.NewSource(42)))
}

func findCamera(t *testing.T, e *Engine, id string) models.Camera {
	t.Helper()
	for _, cam := range e.Cameras() {
		if cam.ID == id {
			return cam
		}
	}
	t.Fatalf("camera %s not found", id)
	return models.Camera{}
}

func TestNewEngine_SeedsInitialAlert(t *testing.T) {
	// Подготовка
	e := newTestEngine(&config.Config{})

	// Проверки
	cameras := e.Cameras()
	require.Len(t, cameras, 10)

	cam := findCamera(t, e, "cam-05")
	assert.Equal(t, models.CameraStatusAlert, cam.Status)
	assert.Equal(t, cam.Status, cam.StatusHistory[len(cam.StatusHistory)-1].Status)

	alerts := e.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, "cam-05", alerts[0].CameraID)
	assert.Equal(t, models.AlertStatusPending, alerts[0].ConfirmationStatus)
	assert.NotEmpty(t, alerts[0].Weather)

	stats := e.Stats()
	assert.Equal(t, 1, stats.AlertsToday)
	// cam-03 и cam-07 выведены из эксплуатации
	assert.Equal(t, 8, stats.ActiveCameras)
}

func TestTick_SpawnsAlertFromActiveCamera(t *testing.T) {
	// Подготовка: спавн гарантирован, остальные ветви выключены
	e := newTestEngine(&config.Config{SpawnProbability: 1})

	// Действие: крутим шаги, пока не выпадет активная камера
	var spawned *models.Alert
	for i := 0; i < 100 && spawned == nil; i++ {
		spawned = e.Tick()
	}

	// Проверки
	require.NotNil(t, spawned)
	assert.True(t, strings.HasPrefix(spawned.ID, "alert-"))
	assert.Equal(t, models.AlertStatusPending, spawned.ConfirmationStatus)
	assert.NotNil(t, spawned.Notes)
	assert.GreaterOrEqual(t, spawned.Confidence, 0.75)
	assert.LessOrEqual(t, spawned.Confidence, 0.98)

	cam := findCamera(t, e, spawned.CameraID)
	assert.Equal(t, models.CameraStatusAlert, cam.Status)
	assert.Equal(t, spawned.Latitude, cam.Latitude)
	assert.Equal(t, spawned.Longitude, cam.Longitude)

	// Новая тревога встает в начало списка
	assert.Equal(t, spawned.ID, e.Alerts()[0].ID)
	assert.GreaterOrEqual(t, e.Stats().AlertsToday, 2)
}

func TestTick_AlertIDsAreUnique(t *testing.T) {
	// Подготовка: спавн и разрешение гарантированы, камеры осциллируют
	// и порождают много тревог в одну миллисекунду
	e := newTestEngine(&config.Config{SpawnProbability: 1, ResolveProbability: 1})

	seen := map[string]bool{}
	for _, a := range e.Alerts() {
		seen[a.ID] = true
	}

	// Действие
	for i := 0; i < 100; i++ {
		if spawned := e.Tick(); spawned != nil {
			assert.False(t, seen[spawned.ID], "duplicate alert id %s", spawned.ID)
			seen[spawned.ID] = true
		}
	}
}

func TestTick_AlertWindowIsBounded(t *testing.T) {
	// Подготовка
	e := newTestEngine(&config.Config{SpawnProbability: 1, ResolveProbability: 1})

	// Действие
	spawnedTotal := 1 // стартовая тревога
	for i := 0; i < 300; i++ {
		if e.Tick() != nil {
			spawnedTotal++
		}
	}

	// Проверки: окно ограничено, но счетчик за день только растет
	require.Greater(t, spawnedTotal, rawAlertWindow)
	assert.LessOrEqual(t, len(e.Alerts()), rawAlertWindow)
	assert.Equal(t, spawnedTotal, e.Stats().AlertsToday)
}

func TestTick_ResolveReturnsCameraToActive(t *testing.T) {
	// Подготовка: только разрешение тревог
	e := newTestEngine(&config.Config{ResolveProbability: 1})

	// Действие: крутим, пока cam-05 не вернется в active
	for i := 0; i < 1000; i++ {
		e.Tick()
		if findCamera(t, e, "cam-05").Status == models.CameraStatusActive {
			break
		}
	}

	// Проверки: камера вернулась, но сама запись тревоги не закрыта
	cam := findCamera(t, e, "cam-05")
	assert.Equal(t, models.CameraStatusActive, cam.Status)
	assert.Len(t, e.Alerts(), 1)
}

func TestTick_FlipTogglesConnectivity(t *testing.T) {
	// Подготовка: только потеря/восстановление связи
	e := newTestEngine(&config.Config{FlipProbability: 1})

	// Действие: крутим, пока cam-03 (выведенная из эксплуатации) не оживет
	for i := 0; i < 1000; i++ {
		e.Tick()
		if findCamera(t, e, "cam-03").Status == models.CameraStatusActive {
			break
		}
	}

	// Проверки
	assert.Equal(t, models.CameraStatusActive, findCamera(t, e, "cam-03").Status)
}

func TestTick_FalsePositiveCounterIsIndependent(t *testing.T) {
	// Подготовка: все ветви статусов выключены
	e := newTestEngine(&config.Config{FalsePositiveProbability: 1})

	// Действие
	for i := 0; i < 5; i++ {
		e.Tick()
	}

	// Проверки: счетчик растет, статусы камер не тронуты
	assert.Equal(t, 5, e.Stats().FalsePositives)
	assert.Len(t, e.Alerts(), 1)
}

func TestTick_CameraSetIsStable(t *testing.T) {
	// Подготовка
	e := newTestEngine(&config.Config{
		SpawnProbability:   0.5,
		ResolveProbability: 0.5,
		FlipProbability:    0.5,
	})

	before := make(map[string]bool)
	for _, cam := range e.Cameras() {
		before[cam.ID] = true
	}

	// Действие
	for i := 0; i < 500; i++ {
		e.Tick()
	}

	// Проверки: движок меняет только статусы, набор камер неизменен
	cameras := e.Cameras()
	require.Len(t, cameras, len(before))
	for _, cam := range cameras {
		assert.True(t, before[cam.ID], "unexpected camera %s", cam.ID)
	}
}

func TestTick_StatusHistoryTailMatchesStatus(t *testing.T) {
	// Подготовка
	e := newTestEngine(&config.Config{
		SpawnProbability:         0.3,
		ResolveProbability:       0.5,
		FlipProbability:          0.2,
		FalsePositiveProbability: 0.1,
	})

	// Действие
	for i := 0; i < 500; i++ {
		e.Tick()
	}

	// Проверки: хвост истории каждой камеры равен ее текущему статусу,
	// временные метки истории не убывают
	for _, cam := range e.Cameras() {
		require.NotEmpty(t, cam.StatusHistory, "camera %s has empty history", cam.ID)
		assert.Equal(t, cam.Status, cam.StatusHistory[len(cam.StatusHistory)-1].Status, "camera %s", cam.ID)
		for i := 1; i < len(cam.StatusHistory); i++ {
			assert.False(t, cam.StatusHistory[i].Timestamp.Before(cam.StatusHistory[i-1].Timestamp), "camera %s history out of order", cam.ID)
		}
	}
}

func TestSnapshots_AreDeepCopies(t *testing.T) {
	// Подготовка
	e := newTestEngine(&config.Config{})

	// Действие: портим снимки
	cameras := e.Cameras()
	cameras[0].Status = models.CameraStatusAlert
	cameras[0].StatusHistory[0].Status = models.CameraStatusAlert

	alerts := e.Alerts()
	alerts[0].ConfirmationStatus = models.AlertStatusConfirmed

	// Проверки: внутреннее состояние движка не изменилось
	assert.Equal(t, models.CameraStatusActive, e.Cameras()[0].Status)
	assert.Equal(t, models.CameraStatusActive, e.Cameras()[0].StatusHistory[0].Status)
	assert.Equal(t, models.AlertStatusPending, e.Alerts()[0].ConfirmationStatus)
}
