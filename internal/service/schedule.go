package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"clinic/internal/domain"
	"clinic/internal/repository"
)

type ScheduleServiceImpl struct {
	repo       repository.ScheduleRepository
	doctorRepo repository.DoctorRepository
	slotRepo   repository.SlotRepository
	logger     *zap.Logger
}

func NewScheduleService(
	repo repository.ScheduleRepository,
	doctorRepo repository.DoctorRepository,
	slotRepo repository.SlotRepository,
	logger *zap.Logger,
) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		repo:       repo,
		doctorRepo: doctorRepo,
		slotRepo:   slotRepo,
		logger:     logger,
	}
}

func (s *ScheduleServiceImpl) RegisterShift(ctx context.Context, doctorID int64, dto domain.CreateScheduleDTO) (int64, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return 0, err
	}
	if doctor.Status != domain.DoctorStatusActive {
		return 0, domain.ErrInvalidRequest
	}

	if !dto.Shift.Valid() {
		return 0, domain.ErrInvalidRequest
	}

	workDate, err := time.Parse("2006-01-02", dto.WorkDate)
	if err != nil {
		return 0, domain.ErrInvalidRequest
	}

	today := time.Now().Truncate(24 * time.Hour)
	if workDate.Before(today) {
		return 0, domain.ErrInvalidRequest
	}

	schedule := domain.Schedule{
		DoctorID: doctorID,
		WorkDate: workDate,
		Shift:    dto.Shift,
	}
	slots := domain.BuildSlots(doctorID, workDate, dto.Shift)

	id, err := s.repo.CreateWithSlots(ctx, schedule, slots)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateShift) {
			return 0, err
		}
		s.logger.Error("ошибка регистрации смены",
			zap.Int64("doctorID", doctorID),
			zap.String("workDate", dto.WorkDate),
			zap.String("shift", string(dto.Shift)),
			zap.Error(err),
		)
		return 0, err
	}

	s.logger.Info("смена зарегистрирована",
		zap.Int64("scheduleID", id),
		zap.Int64("doctorID", doctorID),
		zap.String("workDate", dto.WorkDate),
		zap.String("shift", string(dto.Shift)),
		zap.Int("slots", len(slots)),
	)

	return id, nil
}

func (s *ScheduleServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	schedule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка получения расписания", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleServiceImpl) ListByDoctor(ctx context.Context, doctorID int64) ([]domain.Schedule, error) {
	if _, err := s.doctorRepo.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}

	schedules, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		s.logger.Error("ошибка получения расписаний врача", zap.Int64("doctorID", doctorID), zap.Error(err))
		return nil, err
	}

	return schedules, nil
}

func (s *ScheduleServiceImpl) CancelShift(ctx context.Context, doctorID, scheduleID int64) (int64, error) {
	schedule, err := s.repo.GetByID(ctx, scheduleID)
	if err != nil {
		return 0, err
	}

	// Чужая смена для врача неотличима от несуществующей.
	if schedule.DoctorID != doctorID {
		return 0, domain.ErrNotFound
	}

	cancelled, err := s.repo.DeleteCascade(ctx, scheduleID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка отмены смены", zap.Int64("scheduleID", scheduleID), zap.Error(err))
		}
		return 0, err
	}

	if cancelled > 0 {
		s.logger.Info("при отмене смены отменены зависимые записи",
			zap.Int64("scheduleID", scheduleID),
			zap.Int64("cancelled", cancelled),
		)
	}

	return cancelled, nil
}

func (s *ScheduleServiceImpl) ListSlots(ctx context.Context, doctorID int64, from, to time.Time) ([]domain.Slot, error) {
	if _, err := s.doctorRepo.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}

	if to.Before(from) {
		return nil, domain.ErrInvalidRequest
	}

	slots, err := s.slotRepo.ListByDoctor(ctx, doctorID, from, to)
	if err != nil {
		s.logger.Error("ошибка получения слотов врача", zap.Int64("doctorID", doctorID), zap.Error(err))
		return nil, err
	}

	return slots, nil
}
