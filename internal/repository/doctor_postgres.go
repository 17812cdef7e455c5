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

type DoctorRepo struct {
	db *pgxpool.Pool
}

func NewDoctorRepository(db *pgxpool.Pool) DoctorRepository {
	return &DoctorRepo{db: db}
}

const doctorSelect = `
	SELECT d.id, d.user_id, d.specialty_id, d.price, d.room, d.status, d.created_at, d.updated_at,
	       u.first_name || ' ' || u.last_name AS full_name,
	       s.name AS specialty_name
	FROM doctors d
	JOIN users u ON d.user_id = u.id
	JOIN specialties s ON d.specialty_id = s.id
`

func (r *DoctorRepo) Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error) {
	query := `
		INSERT INTO doctors (user_id, specialty_id, price, room, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.UserID,
		dto.SpecialtyID,
		dto.Price,
		dto.Room,
		domain.DoctorStatusActive,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания врача: %w", err)
	}

	return id, nil
}

func (r *DoctorRepo) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	return r.getByField(ctx, "d.id", id)
}

func (r *DoctorRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Doctor, error) {
	return r.getByField(ctx, "d.user_id", userID)
}

func (r *DoctorRepo) getByField(ctx context.Context, field string, value int64) (*domain.Doctor, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1`, doctorSelect, field)

	var doctor domain.Doctor
	err := r.db.QueryRow(ctx, query, value).Scan(
		&doctor.ID,
		&doctor.UserID,
		&doctor.SpecialtyID,
		&doctor.Price,
		&doctor.Room,
		&doctor.Status,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
		&doctor.FullName,
		&doctor.SpecialtyName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения врача: %w", err)
	}

	return &doctor, nil
}

func (r *DoctorRepo) Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error {
	query := `
		UPDATE doctors
		SET specialty_id = COALESCE($1, specialty_id),
		    price = COALESCE($2, price),
		    room = COALESCE($3, room),
		    status = COALESCE($4, status),
		    updated_at = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		dto.SpecialtyID,
		dto.Price,
		dto.Room,
		dto.Status,
		time.Now(),
		id,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления врача: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *DoctorRepo) List(ctx context.Context, filter domain.DoctorFilter) ([]domain.Doctor, int, error) {
	conditions := " WHERE 1=1"
	var args []interface{}
	argPos := 1

	if filter.SpecialtyID != nil {
		conditions += fmt.Sprintf(" AND d.specialty_id = $%d", argPos)
		args = append(args, *filter.SpecialtyID)
		argPos++
	}

	if filter.Status != nil {
		conditions += fmt.Sprintf(" AND d.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	countQuery := `SELECT COUNT(*) FROM doctors d` + conditions

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка получения количества врачей: %w", err)
	}

	query := doctorSelect + conditions + fmt.Sprintf(" ORDER BY d.id LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка врачей: %w", err)
	}
	defer rows.Close()

	var doctors []domain.Doctor
	for rows.Next() {
		var doctor domain.Doctor
		if err := rows.Scan(
			&doctor.ID,
			&doctor.UserID,
			&doctor.SpecialtyID,
			&doctor.Price,
			&doctor.Room,
			&doctor.Status,
			&doctor.CreatedAt,
			&doctor.UpdatedAt,
			&doctor.FullName,
			&doctor.SpecialtyName,
		); err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования строки врача: %w", err)
		}
		doctors = append(doctors, doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return doctors, total, nil
}
