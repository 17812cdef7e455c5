package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"clinic/internal/domain"
	"clinic/internal/repository"
)

type RecordServiceImpl struct {
	repo            repository.RecordRepository
	appointmentRepo repository.AppointmentRepository
	logger          *zap.Logger
}

func NewRecordService(
	repo repository.RecordRepository,
	appointmentRepo repository.AppointmentRepository,
	logger *zap.Logger,
) *RecordServiceImpl {
	return &RecordServiceImpl{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

func (s *RecordServiceImpl) CompleteExamination(ctx context.Context, doctorID int64, dto domain.CompleteExaminationDTO) (*domain.Record, error) {
	var reExamDate *time.Time
	if dto.ReExamDate != "" {
		parsed, err := time.Parse("2006-01-02", dto.ReExamDate)
		if err != nil {
			return nil, domain.ErrInvalidRequest
		}
		if !parsed.After(time.Now()) {
			return nil, domain.ErrInvalidRequest
		}
		reExamDate = &parsed
	}

	record, err := s.repo.CompleteExamination(ctx, doctorID, dto, time.Now(), reExamDate)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) ||
			errors.Is(err, domain.ErrAlreadyCompleted) ||
			errors.Is(err, domain.ErrInvalidState) {
			return nil, err
		}
		s.logger.Error("ошибка завершения осмотра",
			zap.Int64("doctorID", doctorID),
			zap.Int64("appointmentID", dto.AppointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("осмотр завершён",
		zap.Int64("recordID", record.ID),
		zap.Int64("appointmentID", dto.AppointmentID),
		zap.Int64("doctorID", doctorID),
	)

	return record, nil
}

func (s *RecordServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка получения медкарты", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}
	return record, nil
}

func (s *RecordServiceImpl) GetByAppointmentID(ctx context.Context, appointmentID int64) (*domain.Record, error) {
	if _, err := s.appointmentRepo.GetByID(ctx, appointmentID); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка получения медкарты", zap.Int64("appointmentID", appointmentID), zap.Error(err))
		}
		return nil, err
	}
	return record, nil
}

func (s *RecordServiceImpl) List(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	records, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка медкарт", zap.Error(err))
		return nil, 0, err
	}

	return records, total, nil
}
