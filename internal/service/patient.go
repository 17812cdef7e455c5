package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"clinic/internal/domain"
	"clinic/internal/repository"
)

type PatientServiceImpl struct {
	repo     repository.PatientRepository
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewPatientService(repo repository.PatientRepository, userRepo repository.UserRepository, logger *zap.Logger) *PatientServiceImpl {
	return &PatientServiceImpl{
		repo:     repo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *PatientServiceImpl) Create(ctx context.Context, userID int64, dto domain.CreatePatientDTO) (int64, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user.Role != domain.UserRolePatient {
		return 0, domain.ErrInvalidRequest
	}

	dob, err := time.Parse("2006-01-02", dto.DOB)
	if err != nil {
		return 0, domain.ErrInvalidRequest
	}
	if dob.After(time.Now()) {
		return 0, domain.ErrInvalidRequest
	}

	if existing, err := s.repo.GetByUserID(ctx, userID); err == nil && existing != nil {
		return 0, errors.New("анкета пациента уже существует")
	}

	id, err := s.repo.Create(ctx, userID, dto, dob)
	if err != nil {
		s.logger.Error("ошибка создания анкеты пациента", zap.Int64("userID", userID), zap.Error(err))
		return 0, err
	}

	return id, nil
}

func (s *PatientServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	patient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка получения пациента", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}
	return patient, nil
}

func (s *PatientServiceImpl) GetByUserID(ctx context.Context, userID int64) (*domain.Patient, error) {
	patient, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка получения пациента", zap.Int64("userID", userID), zap.Error(err))
		}
		return nil, err
	}
	return patient, nil
}

func (s *PatientServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdatePatientDTO) error {
	if err := s.repo.Update(ctx, id, dto); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка обновления пациента", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}
	return nil
}
