package simulation

import (
	"context"
	"time"

	"github.com/shenikar/forest_fire_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

// TickFunc вызывается после каждого шага симуляции; spawned - тревога,
// порожденная этим шагом, или nil
type TickFunc func(ctx context.Context, spawned *models.Alert)

// Simulator запускает движок по таймеру. Сама логика переходов живет в
// Engine.Tick(), поэтому в тестах ее можно дергать напрямую без таймеров.
type Simulator struct {
	engine   *Engine
	interval time.Duration
	logger   *logrus.Logger
	onTick   TickFunc
}

// NewSimulator создает симулятор с заданным интервалом шага
func NewSimulator(engine *Engine, interval time.Duration, logger *logrus.Logger, onTick TickFunc) *Simulator {
	return &Simulator{
		engine:   engine,
		interval: interval,
		logger:   logger,
		onTick:   onTick,
	}
}

// Start запускает горутину с циклом симуляции. Цикл останавливается
// отменой контекста.
func (s *Simulator) Start(ctx context.Context) {
	s.logger.WithField("interval", s.interval.String()).Info("Starting simulation loop...")
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping simulation loop.")
				return
			case <-ticker.C:
				spawned := s.engine.Tick()
				if spawned != nil {
					s.logger.WithFields(logrus.Fields{
						"alert_id":  spawned.ID,
						"camera_id": spawned.CameraID,
					}).Info("Simulation spawned a new alert")
				}
				if s.onTick != nil {
					s.onTick(ctx, spawned)
				}
			}
		}
	}()
}
