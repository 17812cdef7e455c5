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

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) AppointmentRepository {
	return &AppointmentRepo{db: db}
}

const appointmentSelect = `
	SELECT a.id, a.patient_id, a.doctor_id, a.slot_id, a.service_id, a.status,
	       a.created_at, a.updated_at,
	       pu.first_name || ' ' || pu.last_name AS patient_name,
	       COALESCE(du.first_name || ' ' || du.last_name, '') AS doctor_name,
	       COALESCE(srv.name, '') AS service_name,
	       sl.start_time, sl.end_time
	FROM appointments a
	JOIN patients p ON p.id = a.patient_id
	JOIN users pu ON pu.id = p.user_id
	LEFT JOIN doctors d ON d.id = a.doctor_id
	LEFT JOIN users du ON du.id = d.user_id
	LEFT JOIN services srv ON srv.id = a.service_id
	LEFT JOIN slots sl ON sl.id = a.slot_id
`

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var appointment domain.Appointment
	err := row.Scan(
		&appointment.ID,
		&appointment.PatientID,
		&appointment.DoctorID,
		&appointment.SlotID,
		&appointment.ServiceID,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
		&appointment.PatientName,
		&appointment.DoctorName,
		&appointment.ServiceName,
		&appointment.SlotStart,
		&appointment.SlotEnd,
	)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepo) CreateWithSlot(ctx context.Context, patientID, doctorID, slotID int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	// Сначала захватываем слот условным UPDATE: при конкурентной записи
	// на один слот побеждает ровно одна транзакция.
	if err := bookSlot(ctx, tx, slotID); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO appointments (patient_id, doctor_id, slot_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id
	`

	var id int64
	err = tx.QueryRow(ctx, query,
		patientID,
		doctorID,
		slotID,
		domain.AppointmentStatusPending,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания записи на приём: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return id, nil
}

func (r *AppointmentRepo) CreateForService(ctx context.Context, patientID, serviceID int64) (int64, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM services WHERE id = $1)`, serviceID).Scan(&exists); err != nil {
		return 0, fmt.Errorf("ошибка проверки услуги: %w", err)
	}
	if !exists {
		return 0, domain.ErrNotFound
	}

	query := `
		INSERT INTO appointments (patient_id, service_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		patientID,
		serviceID,
		domain.AppointmentStatusPending,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания записи на услугу: %w", err)
	}

	return id, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := scanAppointment(r.db.QueryRow(ctx, appointmentSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения записи на приём: %w", err)
	}
	return appointment, nil
}

func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id int64, from []domain.AppointmentStatus, to domain.AppointmentStatus) error {
	args := []any{to, time.Now(), id}
	placeholders := make([]string, 0, len(from))
	for _, status := range from {
		args = append(args, status)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}

	query := fmt.Sprintf(
		`UPDATE appointments SET status = $1, updated_at = $2 WHERE id = $3 AND status IN (%s)`,
		strings.Join(placeholders, ", "),
	)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса записи: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM appointments WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("ошибка проверки записи: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrInvalidState
	}

	return nil
}

func (r *AppointmentRepo) CancelAndRelease(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE appointments
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status IN ($4, $5)
		RETURNING slot_id
	`

	var slotID *int64
	err = tx.QueryRow(ctx, query,
		domain.AppointmentStatusCancelled,
		time.Now(),
		id,
		domain.AppointmentStatusPending,
		domain.AppointmentStatusConfirmed,
	).Scan(&slotID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM appointments WHERE id = $1)`, id).Scan(&exists); err != nil {
				return fmt.Errorf("ошибка проверки записи: %w", err)
			}
			if !exists {
				return domain.ErrNotFound
			}
			return domain.ErrInvalidState
		}
		return fmt.Errorf("ошибка отмены записи: %w", err)
	}

	if slotID != nil {
		if err := freeSlot(ctx, tx, *slotID); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	where, args := buildAppointmentWhere(filter)

	query := appointmentSelect + where + ` ORDER BY a.created_at DESC`

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
		return nil, fmt.Errorf("ошибка получения списка записей: %w", err)
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки записи: %w", err)
		}
		appointments = append(appointments, *appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return appointments, nil
}

func (r *AppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	where, args := buildAppointmentWhere(filter)

	query := `
		SELECT COUNT(*)
		FROM appointments a
		LEFT JOIN slots sl ON sl.id = a.slot_id
	` + where

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта записей: %w", err)
	}

	return count, nil
}

func buildAppointmentWhere(filter domain.AppointmentFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.PatientID != nil {
		args = append(args, *filter.PatientID)
		conditions = append(conditions, fmt.Sprintf("a.patient_id = $%d", len(args)))
	}
	if filter.DoctorID != nil {
		args = append(args, *filter.DoctorID)
		conditions = append(conditions, fmt.Sprintf("a.doctor_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("sl.start_time >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("sl.start_time <= $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *AppointmentRepo) CancelStalePending(ctx context.Context, now time.Time) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE appointments a
		SET status = $1, updated_at = $2
		FROM slots sl
		WHERE sl.id = a.slot_id
		AND a.status = $3
		AND sl.start_time < $4
		RETURNING a.slot_id
	`

	rows, err := tx.Query(ctx, query,
		domain.AppointmentStatusCancelled,
		now,
		domain.AppointmentStatusPending,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("ошибка отмены просроченных записей: %w", err)
	}

	var slotIDs []int64
	for rows.Next() {
		var slotID int64
		if err := rows.Scan(&slotID); err != nil {
			rows.Close()
			return 0, fmt.Errorf("ошибка сканирования идентификатора слота: %w", err)
		}
		slotIDs = append(slotIDs, slotID)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	for _, slotID := range slotIDs {
		if err := freeSlot(ctx, tx, slotID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return int64(len(slotIDs)), nil
}
