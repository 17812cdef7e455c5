package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinic/internal/domain"
)

type RecordRepo struct {
	db *pgxpool.Pool
}

func NewRecordRepository(db *pgxpool.Pool) RecordRepository {
	return &RecordRepo{db: db}
}

const recordColumns = `id, doctor_id, patient_id, service_id, appointment_id, exam_date,
	diagnosis, symptoms, soap_notes, prescription, re_exam_date, created_at`

func (r *RecordRepo) CompleteExamination(ctx context.Context, doctorID int64, dto domain.CompleteExaminationDTO, examDate time.Time, reExamDate *time.Time) (*domain.Record, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	// Запись блокируется до конца транзакции: два конкурентных завершения
	// одного приёма сериализуются, второе увидит статус completed.
	var (
		patientID int64
		serviceID *int64
		status    domain.AppointmentStatus
	)
	err = tx.QueryRow(ctx,
		`SELECT patient_id, service_id, status FROM appointments WHERE id = $1 AND doctor_id = $2 FOR UPDATE`,
		dto.AppointmentID, doctorID,
	).Scan(&patientID, &serviceID, &status)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения записи на приём: %w", err)
	}

	if status == domain.AppointmentStatusCompleted {
		return nil, domain.ErrAlreadyCompleted
	}
	if !status.CanTransition(domain.AppointmentStatusCompleted) {
		return nil, domain.ErrInvalidState
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO records (doctor_id, patient_id, service_id, appointment_id, exam_date,
			diagnosis, symptoms, soap_notes, prescription, re_exam_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s
	`, recordColumns)

	var record domain.Record
	err = tx.QueryRow(ctx, insertQuery,
		doctorID,
		patientID,
		serviceID,
		dto.AppointmentID,
		examDate,
		dto.Diagnosis,
		dto.Symptoms,
		dto.SOAPNotes,
		dto.Prescription,
		reExamDate,
		time.Now(),
	).Scan(
		&record.ID,
		&record.DoctorID,
		&record.PatientID,
		&record.ServiceID,
		&record.AppointmentID,
		&record.ExamDate,
		&record.Diagnosis,
		&record.Symptoms,
		&record.SOAPNotes,
		&record.Prescription,
		&record.ReExamDate,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания медкарты: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE appointments SET status = $1, updated_at = $2 WHERE id = $3`,
		domain.AppointmentStatusCompleted, time.Now(), dto.AppointmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка обновления статуса записи: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return &record, nil
}

func (r *RecordRepo) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	return r.getByField(ctx, "id", id)
}

func (r *RecordRepo) GetByAppointmentID(ctx context.Context, appointmentID int64) (*domain.Record, error) {
	return r.getByField(ctx, "appointment_id", appointmentID)
}

func (r *RecordRepo) getByField(ctx context.Context, field string, value int64) (*domain.Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM records WHERE %s = $1`, recordColumns, field)

	var record domain.Record
	err := r.db.QueryRow(ctx, query, value).Scan(
		&record.ID,
		&record.DoctorID,
		&record.PatientID,
		&record.ServiceID,
		&record.AppointmentID,
		&record.ExamDate,
		&record.Diagnosis,
		&record.Symptoms,
		&record.SOAPNotes,
		&record.Prescription,
		&record.ReExamDate,
		&record.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения медкарты: %w", err)
	}

	return &record, nil
}

func (r *RecordRepo) List(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, int, error) {
	var conditions []string
	var args []any

	if filter.PatientID != nil {
		args = append(args, *filter.PatientID)
		conditions = append(conditions, fmt.Sprintf("patient_id = $%d", len(args)))
	}
	if filter.DoctorID != nil {
		args = append(args, *filter.DoctorID)
		conditions = append(conditions, fmt.Sprintf("doctor_id = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM records`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта медкарт: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM records%s ORDER BY exam_date DESC`, recordColumns, where)

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка медкарт: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var record domain.Record
		if err := rows.Scan(
			&record.ID,
			&record.DoctorID,
			&record.PatientID,
			&record.ServiceID,
			&record.AppointmentID,
			&record.ExamDate,
			&record.Diagnosis,
			&record.Symptoms,
			&record.SOAPNotes,
			&record.Prescription,
			&record.ReExamDate,
			&record.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования строки медкарты: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return records, total, nil
}
