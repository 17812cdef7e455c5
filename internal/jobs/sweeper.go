package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"clinic/internal/service"
)

// Sweeper периодически отменяет pending-записи, чей слот уже начался,
// и возвращает их слоты в свободные.
type Sweeper struct {
	appointments service.AppointmentService
	logger       *zap.Logger
	cron         *cron.Cron
	spec         string
}

func NewSweeper(appointments service.AppointmentService, spec string, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		appointments: appointments,
		logger:       logger,
		cron:         cron.New(),
		spec:         spec,
	}
}

func (s *Sweeper) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.run)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("фоновая отмена просроченных записей запущена", zap.String("spec", s.spec))
	return nil
}

func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		s.logger.Warn("фоновая задача не завершилась вовремя")
	}
}

func (s *Sweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.appointments.CancelStale(ctx); err != nil {
		s.logger.Error("ошибка фоновой отмены просроченных записей", zap.Error(err))
	}
}
