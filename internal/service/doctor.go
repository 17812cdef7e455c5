package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"clinic/internal/domain"
	"clinic/internal/repository"
)

type DoctorServiceImpl struct {
	repo        repository.DoctorRepository
	userRepo    repository.UserRepository
	catalogRepo repository.CatalogRepository
	logger      *zap.Logger
}

func NewDoctorService(
	repo repository.DoctorRepository,
	userRepo repository.UserRepository,
	catalogRepo repository.CatalogRepository,
	logger *zap.Logger,
) *DoctorServiceImpl {
	return &DoctorServiceImpl{
		repo:        repo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (s *DoctorServiceImpl) Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error) {
	user, err := s.userRepo.GetByID(ctx, dto.UserID)
	if err != nil {
		return 0, err
	}
	if user.Role != domain.UserRoleDoctor {
		return 0, domain.ErrInvalidRequest
	}

	if _, err := s.catalogRepo.GetSpecialtyByID(ctx, dto.SpecialtyID); err != nil {
		return 0, err
	}

	if existing, err := s.repo.GetByUserID(ctx, dto.UserID); err == nil && existing != nil {
		return 0, errors.New("профиль врача уже существует")
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания профиля врача", zap.Int64("userID", dto.UserID), zap.Error(err))
		return 0, err
	}

	return id, nil
}

func (s *DoctorServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	doctor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка получения врача", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}
	return doctor, nil
}

func (s *DoctorServiceImpl) GetByUserID(ctx context.Context, userID int64) (*domain.Doctor, error) {
	doctor, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка получения врача", zap.Int64("userID", userID), zap.Error(err))
		}
		return nil, err
	}
	return doctor, nil
}

func (s *DoctorServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error {
	if dto.SpecialtyID != nil {
		if _, err := s.catalogRepo.GetSpecialtyByID(ctx, *dto.SpecialtyID); err != nil {
			return err
		}
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка обновления врача", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}

	return nil
}

func (s *DoctorServiceImpl) List(ctx context.Context, filter domain.DoctorFilter) ([]domain.Doctor, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	doctors, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка врачей", zap.Error(err))
		return nil, 0, err
	}

	return doctors, total, nil
}
