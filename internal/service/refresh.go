package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_response_system/internal/config"
)

// RefreshRunner периодически обновляет снимок в фоновой горутине.
// Неудачное обновление не роняет процесс: предыдущий снимок остается
// действующим, следующая попытка выполняется через RetryInterval.
type RefreshRunner struct {
	service  MonitorService
	logger   *logrus.Logger
	interval time.Duration
	retry    time.Duration
}

// NewRefreshRunner создает координатор обновлений
func NewRefreshRunner(service MonitorService, logger *logrus.Logger, cfg *config.Config) *RefreshRunner {
	return &RefreshRunner{
		service:  service,
		logger:   logger,
		interval: cfg.RefreshInterval,
		retry:    cfg.RetryInterval,
	}
}

// Start запускает цикл обновления. Первое обновление выполняется сразу.
func (r *RefreshRunner) Start(ctx context.Context) {
	r.logger.Info("Starting snapshot refresh runner...")
	go func() {
		r.service.Bootstrap(ctx)

		delay := r.runOnce(ctx)
		timer := time.NewTimer(delay)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Stopping snapshot refresh runner.")
				return
			case <-timer.C:
				timer.Reset(r.runOnce(ctx))
			}
		}
	}()
}

// runOnce выполняет одно обновление и возвращает задержку до следующего
func (r *RefreshRunner) runOnce(ctx context.Context) time.Duration {
	if err := r.service.Refresh(ctx); err != nil {
		r.logger.WithError(err).Error("Snapshot refresh failed, will retry")
		return r.retry
	}
	return r.interval
}
