package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinic/internal/domain"
)

type CatalogRepo struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) CatalogRepository {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) CreateSpecialty(ctx context.Context, dto domain.CreateSpecialtyDTO) (int64, error) {
	query := `
		INSERT INTO specialties (name, description, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	if err := r.db.QueryRow(ctx, query, dto.Name, dto.Description, time.Now()).Scan(&id); err != nil {
		return 0, fmt.Errorf("ошибка создания специальности: %w", err)
	}

	return id, nil
}

func (r *CatalogRepo) GetSpecialtyByID(ctx context.Context, id int64) (*domain.Specialty, error) {
	var specialty domain.Specialty
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, created_at FROM specialties WHERE id = $1`, id,
	).Scan(&specialty.ID, &specialty.Name, &specialty.Description, &specialty.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения специальности: %w", err)
	}

	return &specialty, nil
}

func (r *CatalogRepo) UpdateSpecialty(ctx context.Context, id int64, dto domain.UpdateSpecialtyDTO) error {
	query := `
		UPDATE specialties
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description)
		WHERE id = $3
	`

	tag, err := r.db.Exec(ctx, query, dto.Name, dto.Description, id)
	if err != nil {
		return fmt.Errorf("ошибка обновления специальности: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *CatalogRepo) DeleteSpecialty(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM specialties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления специальности: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *CatalogRepo) ListSpecialties(ctx context.Context) ([]domain.Specialty, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description, created_at FROM specialties ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка специальностей: %w", err)
	}
	defer rows.Close()

	var specialties []domain.Specialty
	for rows.Next() {
		var specialty domain.Specialty
		if err := rows.Scan(&specialty.ID, &specialty.Name, &specialty.Description, &specialty.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки специальности: %w", err)
		}
		specialties = append(specialties, specialty)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return specialties, nil
}

func (r *CatalogRepo) CreateService(ctx context.Context, dto domain.CreateServiceDTO) (int64, error) {
	query := `
		INSERT INTO services (name, price, duration_minutes, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	if err := r.db.QueryRow(ctx, query, dto.Name, dto.Price, dto.DurationMinutes, time.Now()).Scan(&id); err != nil {
		return 0, fmt.Errorf("ошибка создания услуги: %w", err)
	}

	return id, nil
}

func (r *CatalogRepo) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	var service domain.Service
	err := r.db.QueryRow(ctx,
		`SELECT id, name, price, duration_minutes, created_at FROM services WHERE id = $1`, id,
	).Scan(&service.ID, &service.Name, &service.Price, &service.DurationMinutes, &service.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения услуги: %w", err)
	}

	return &service, nil
}

func (r *CatalogRepo) UpdateService(ctx context.Context, id int64, dto domain.UpdateServiceDTO) error {
	query := `
		UPDATE services
		SET name = COALESCE($1, name),
		    price = COALESCE($2, price),
		    duration_minutes = COALESCE($3, duration_minutes)
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query, dto.Name, dto.Price, dto.DurationMinutes, id)
	if err != nil {
		return fmt.Errorf("ошибка обновления услуги: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *CatalogRepo) DeleteService(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления услуги: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *CatalogRepo) ListServices(ctx context.Context) ([]domain.Service, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, price, duration_minutes, created_at FROM services ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка услуг: %w", err)
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var service domain.Service
		if err := rows.Scan(&service.ID, &service.Name, &service.Price, &service.DurationMinutes, &service.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки услуги: %w", err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return services, nil
}
