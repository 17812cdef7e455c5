package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"clinic/internal/domain"
	"clinic/internal/repository"
)

type CatalogServiceImpl struct {
	repo   repository.CatalogRepository
	logger *zap.Logger
}

func NewCatalogService(repo repository.CatalogRepository, logger *zap.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *CatalogServiceImpl) CreateSpecialty(ctx context.Context, dto domain.CreateSpecialtyDTO) (int64, error) {
	id, err := s.repo.CreateSpecialty(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания специальности", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (s *CatalogServiceImpl) GetSpecialtyByID(ctx context.Context, id int64) (*domain.Specialty, error) {
	specialty, err := s.repo.GetSpecialtyByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка получения специальности", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}
	return specialty, nil
}

func (s *CatalogServiceImpl) UpdateSpecialty(ctx context.Context, id int64, dto domain.UpdateSpecialtyDTO) error {
	if err := s.repo.UpdateSpecialty(ctx, id, dto); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка обновления специальности", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}
	return nil
}

func (s *CatalogServiceImpl) DeleteSpecialty(ctx context.Context, id int64) error {
	if err := s.repo.DeleteSpecialty(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка удаления специальности", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}
	return nil
}

func (s *CatalogServiceImpl) ListSpecialties(ctx context.Context) ([]domain.Specialty, error) {
	specialties, err := s.repo.ListSpecialties(ctx)
	if err != nil {
		s.logger.Error("ошибка получения списка специальностей", zap.Error(err))
		return nil, err
	}
	return specialties, nil
}

func (s *CatalogServiceImpl) CreateService(ctx context.Context, dto domain.CreateServiceDTO) (int64, error) {
	id, err := s.repo.CreateService(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания услуги", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (s *CatalogServiceImpl) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	service, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка получения услуги", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}
	return service, nil
}

func (s *CatalogServiceImpl) UpdateService(ctx context.Context, id int64, dto domain.UpdateServiceDTO) error {
	if err := s.repo.UpdateService(ctx, id, dto); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка обновления услуги", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}
	return nil
}

func (s *CatalogServiceImpl) DeleteService(ctx context.Context, id int64) error {
	if err := s.repo.DeleteService(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("ошибка удаления услуги", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}
	return nil
}

func (s *CatalogServiceImpl) ListServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.repo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ошибка получения списка услуг", zap.Error(err))
		return nil, err
	}
	return services, nil
}
