package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"clinic/internal/domain"
	"clinic/internal/repository"
)

type AppointmentServiceImpl struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	slotRepo    repository.SlotRepository
	logger      *zap.Logger
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	slotRepo repository.SlotRepository,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		repo:        repo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		slotRepo:    slotRepo,
		logger:      logger,
	}
}

func (s *AppointmentServiceImpl) Create(ctx context.Context, patientID int64, dto domain.CreateAppointmentDTO) (int64, error) {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return 0, err
	}

	switch {
	case dto.IsSlotBooking():
		return s.createForSlot(ctx, patientID, *dto.DoctorID, *dto.SlotID)
	case dto.IsServiceBooking():
		return s.createForService(ctx, patientID, *dto.ServiceID)
	default:
		// Запрос обязан назвать либо пару врач+слот, либо услугу.
		return 0, domain.ErrInvalidRequest
	}
}

func (s *AppointmentServiceImpl) createForSlot(ctx context.Context, patientID, doctorID, slotID int64) (int64, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return 0, err
	}
	if doctor.Status != domain.DoctorStatusActive {
		return 0, domain.ErrInvalidRequest
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return 0, err
	}
	if slot.DoctorID != doctorID {
		return 0, domain.ErrInvalidRequest
	}
	if slot.StartTime.Before(time.Now()) {
		return 0, domain.ErrSlotUnavailable
	}

	id, err := s.repo.CreateWithSlot(ctx, patientID, doctorID, slotID)
	if err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) || errors.Is(err, domain.ErrNotFound) {
			return 0, err
		}
		s.logger.Error("ошибка записи на слот",
			zap.Int64("patientID", patientID),
			zap.Int64("slotID", slotID),
			zap.Error(err),
		)
		return 0, err
	}

	s.logger.Info("создана запись на приём",
		zap.Int64("appointmentID", id),
		zap.Int64("patientID", patientID),
		zap.Int64("doctorID", doctorID),
		zap.Int64("slotID", slotID),
	)

	return id, nil
}

func (s *AppointmentServiceImpl) createForService(ctx context.Context, patientID, serviceID int64) (int64, error) {
	id, err := s.repo.CreateForService(ctx, patientID, serviceID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка записи на услугу",
				zap.Int64("patientID", patientID),
				zap.Int64("serviceID", serviceID),
				zap.Error(err),
			)
		}
		return 0, err
	}

	s.logger.Info("создана запись на услугу",
		zap.Int64("appointmentID", id),
		zap.Int64("patientID", patientID),
		zap.Int64("serviceID", serviceID),
	)

	return id, nil
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка получения записи", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentServiceImpl) Confirm(ctx context.Context, doctorID, id int64) error {
	if err := s.checkDoctorOwnership(ctx, doctorID, id); err != nil {
		return err
	}

	err := s.repo.UpdateStatus(ctx, id,
		[]domain.AppointmentStatus{domain.AppointmentStatusPending},
		domain.AppointmentStatusConfirmed,
	)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrInvalidState) {
			s.logger.Error("ошибка подтверждения записи", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}

	s.logger.Info("запись подтверждена", zap.Int64("appointmentID", id), zap.Int64("doctorID", doctorID))
	return nil
}

func (s *AppointmentServiceImpl) StartExamination(ctx context.Context, doctorID, id int64) error {
	if err := s.checkDoctorOwnership(ctx, doctorID, id); err != nil {
		return err
	}

	err := s.repo.UpdateStatus(ctx, id,
		[]domain.AppointmentStatus{domain.AppointmentStatusConfirmed},
		domain.AppointmentStatusExamining,
	)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrInvalidState) {
			s.logger.Error("ошибка начала осмотра", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}

	s.logger.Info("осмотр начат", zap.Int64("appointmentID", id), zap.Int64("doctorID", doctorID))
	return nil
}

func (s *AppointmentServiceImpl) Cancel(ctx context.Context, patientID, id int64) error {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Чужая запись для пациента неотличима от несуществующей.
	if appointment.PatientID != patientID {
		return domain.ErrNotFound
	}

	if err := s.repo.CancelAndRelease(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrInvalidState) {
			s.logger.Error("ошибка отмены записи", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}

	s.logger.Info("запись отменена", zap.Int64("appointmentID", id), zap.Int64("patientID", patientID))
	return nil
}

func (s *AppointmentServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка записей", zap.Error(err))
		return nil, 0, err
	}

	total, err := s.repo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка подсчёта записей", zap.Error(err))
		return nil, 0, err
	}

	return appointments, total, nil
}

func (s *AppointmentServiceImpl) CancelStale(ctx context.Context) (int64, error) {
	cancelled, err := s.repo.CancelStalePending(ctx, time.Now())
	if err != nil {
		s.logger.Error("ошибка отмены просроченных записей", zap.Error(err))
		return 0, err
	}

	if cancelled > 0 {
		s.logger.Info("отменены просроченные записи", zap.Int64("cancelled", cancelled))
	}

	return cancelled, nil
}

func (s *AppointmentServiceImpl) checkDoctorOwnership(ctx context.Context, doctorID, id int64) error {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment.DoctorID == nil || *appointment.DoctorID != doctorID {
		return domain.ErrNotFound
	}
	return nil
}
