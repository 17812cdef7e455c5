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

type PatientRepo struct {
	db *pgxpool.Pool
}

func NewPatientRepository(db *pgxpool.Pool) PatientRepository {
	return &PatientRepo{db: db}
}

const patientColumns = `id, user_id, dob, gender, address, insurance_number, insurance_term, note_pmh, created_at, updated_at`

func (r *PatientRepo) Create(ctx context.Context, userID int64, dto domain.CreatePatientDTO, dob time.Time) (int64, error) {
	query := `
		INSERT INTO patients (user_id, dob, gender, address, insurance_number, insurance_term, note_pmh, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		userID,
		dob,
		dto.Gender,
		dto.Address,
		dto.InsuranceNumber,
		dto.InsuranceTerm,
		dto.NotePMH,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания профиля пациента: %w", err)
	}

	return id, nil
}

func (r *PatientRepo) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	return r.getByField(ctx, "id", id)
}

func (r *PatientRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Patient, error) {
	return r.getByField(ctx, "user_id", userID)
}

func (r *PatientRepo) getByField(ctx context.Context, field string, value int64) (*domain.Patient, error) {
	query := fmt.Sprintf(`SELECT %s FROM patients WHERE %s = $1`, patientColumns, field)

	var patient domain.Patient
	err := r.db.QueryRow(ctx, query, value).Scan(
		&patient.ID,
		&patient.UserID,
		&patient.DOB,
		&patient.Gender,
		&patient.Address,
		&patient.InsuranceNumber,
		&patient.InsuranceTerm,
		&patient.NotePMH,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения профиля пациента: %w", err)
	}

	return &patient, nil
}

func (r *PatientRepo) Update(ctx context.Context, id int64, dto domain.UpdatePatientDTO) error {
	query := `
		UPDATE patients
		SET address = COALESCE($1, address),
		    insurance_number = COALESCE($2, insurance_number),
		    insurance_term = COALESCE($3, insurance_term),
		    note_pmh = COALESCE($4, note_pmh),
		    updated_at = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		dto.Address,
		dto.InsuranceNumber,
		dto.InsuranceTerm,
		dto.NotePMH,
		time.Now(),
		id,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления профиля пациента: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
