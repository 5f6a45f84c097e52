package simulation

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/shenikar/forest_fire_monitoring/internal/config"
	"github.com/shenikar/forest_fire_monitoring/internal/models"
)

// rawAlertWindow - сколько последних тревог движок хранит у себя
const rawAlertWindow = 20

// initialAlertCameraID - камера, которая при старте переводится в тревогу,
// чтобы панель не была пустой при первой загрузке
const initialAlertCameraID = "cam-05"

// Engine - движок симуляции, заменяющий реальный конвейер детекции.
// Движок единолично владеет "сырыми" списками камер и тревог: он меняет
// только статусы камер и порождает тревоги, камеры не добавляет и не удаляет.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
	cfg *config.Config

	cameras []models.Camera
	alerts  []models.Alert
	stats   models.Stats

	// lastAlertUnixMs гарантирует уникальность id тревог,
	// созданных в одну и ту же миллисекунду
	lastAlertUnixMs int64
}

// NewEngine создает движок с посевным набором камер и одной стартовой
// тревогой на камере initialAlertCameraID
func NewEngine(cfg *config.Config, rng *rand.Rand) *Engine {
	e := &Engine{
		rng:     rng,
		cfg:     cfg,
		cameras: models.SeedCameras(),
	}

	now := time.Now()
	for i := range e.cameras {
		cam := &e.cameras[i]
		if cam.ID != initialAlertCameraID || cam.Status != models.CameraStatusActive {
			continue
		}
		cam.Status = models.CameraStatusAlert
		cam.StatusHistory = append(cam.StatusHistory, models.CameraStatusHistory{
			Status:    models.CameraStatusAlert,
			Timestamp: now,
		})
		e.alerts = append(e.alerts, e.newAlert(*cam, now))
		e.stats.AlertsToday = 1
		break
	}

	e.stats.ActiveCameras = e.countActiveCameras()
	return e
}

// Tick выполняет один шаг симуляции. Ветви независимы и вероятностны:
//   - активная камера с вероятностью SpawnProbability переходит в тревогу
//     и порождает новую запись Alert;
//   - иначе камера в тревоге с вероятностью ResolveProbability возвращается
//     в активное состояние (сама запись Alert при этом не закрывается);
//   - иначе с вероятностью FlipProbability камера теряет или восстанавливает
//     связь (active <-> inactive);
//   - независимо от всего с вероятностью FalsePositiveProbability
//     увеличивается счетчик ложных срабатываний.
//
// Возвращает порожденную на этом шаге тревогу или nil.
func (e *Engine) Tick() *models.Alert {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.cameras) == 0 {
		return nil
	}

	var spawned *models.Alert

	now := time.Now()
	cam := &e.cameras[e.rng.Intn(len(e.cameras))]

	switch {
	case cam.Status == models.CameraStatusActive && e.rng.Float64() < e.cfg.SpawnProbability:
		e.transition(cam, models.CameraStatusAlert, now)
		alert := e.newAlert(*cam, now)
		e.alerts = append([]models.Alert{alert}, e.alerts...)
		if len(e.alerts) > rawAlertWindow {
			e.alerts = e.alerts[:rawAlertWindow]
		}
		e.stats.AlertsToday++
		spawned = &alert

	case cam.Status == models.CameraStatusAlert && e.rng.Float64() < e.cfg.ResolveProbability:
		e.transition(cam, models.CameraStatusActive, now)

	case e.rng.Float64() < e.cfg.FlipProbability:
		if cam.Status == models.CameraStatusInactive {
			e.transition(cam, models.CameraStatusActive, now)
		} else {
			e.transition(cam, models.CameraStatusInactive, now)
		}
	}

	if e.rng.Float64() < e.cfg.FalsePositiveProbability {
		e.stats.FalsePositives++
	}

	e.stats.ActiveCameras = e.countActiveCameras()
	return spawned
}

// transition меняет статус камеры и дописывает запись в историю,
// сохраняя инвариант "хвост истории равен текущему статусу"
func (e *Engine) transition(cam *models.Camera, status models.CameraStatus, now time.Time) {
	cam.Status = status
	cam.StatusHistory = append(cam.StatusHistory, models.CameraStatusHistory{
		Status:    status,
		Timestamp: now,
	})
}

func (e *Engine) newAlert(cam models.Camera, now time.Time) models.Alert {
	unixMs := now.UnixMilli()
	if unixMs <= e.lastAlertUnixMs {
		unixMs = e.lastAlertUnixMs + 1
	}
	e.lastAlertUnixMs = unixMs

	return models.Alert{
		ID:                 fmt.Sprintf("alert-%d", unixMs),
		CameraID:           cam.ID,
		CameraName:         cam.Name,
		Image:              fmt.Sprintf("https://picsum.photos/seed/%d/400/300", unixMs),
		ImageWithBox:       fmt.Sprintf("https://picsum.photos/seed/%d-box/400/300", unixMs),
		ImageZoom:          fmt.Sprintf("https://picsum.photos/seed/%d-zoom/400/300", unixMs),
		ImagePrevFrame:     fmt.Sprintf("https://picsum.photos/seed/%d-prev/400/300", unixMs),
		Confidence:         0.75 + e.rng.Float64()*(0.98-0.75),
		Timestamp:          now,
		Latitude:           cam.Latitude,
		Longitude:          cam.Longitude,
		ConfirmationStatus: models.AlertStatusPending,
		Notes:              []models.AlertNote{},
		Weather:            fmt.Sprintf("Soleado, %d°C, Viento %dkm/h N", 25+e.rng.Intn(10), 5+e.rng.Intn(15)),
	}
}

func (e *Engine) countActiveCameras() int {
	count := 0
	for _, cam := range e.cameras {
		if cam.Status != models.CameraStatusInactive {
			count++
		}
	}
	return count
}

// Cameras возвращает глубокую копию сырого списка камер
func (e *Engine) Cameras() []models.Camera {
	e.mu.Lock()
	defer e.mu.Unlock()

	cameras := make([]models.Camera, len(e.cameras))
	for i, cam := range e.cameras {
		cameras[i] = cam.Clone()
	}
	return cameras
}

// Alerts возвращает глубокую копию сырого списка тревог, новые первыми
func (e *Engine) Alerts() []models.Alert {
	e.mu.Lock()
	defer e.mu.Unlock()

	alerts := make([]models.Alert, len(e.alerts))
	for i, alert := range e.alerts {
		alerts[i] = alert.Clone()
	}
	return alerts
}

// Stats возвращает текущую сводку симуляции
func (e *Engine) Stats() models.Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}
