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

type ScheduleRepo struct {
	db *pgxpool.Pool
}

func NewScheduleRepository(db *pgxpool.Pool) ScheduleRepository {
	return &ScheduleRepo{db: db}
}

func (r *ScheduleRepo) CreateWithSlots(ctx context.Context, schedule domain.Schedule, slots []domain.Slot) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	// Уникальный индекс (doctor_id, work_date, shift) отсекает повторную
	// регистрацию смены и при конкурентных запросах.
	query := `
		INSERT INTO schedules (doctor_id, work_date, shift, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (doctor_id, work_date, shift) DO NOTHING
		RETURNING id
	`

	var id int64
	err = tx.QueryRow(ctx, query,
		schedule.DoctorID,
		schedule.WorkDate,
		schedule.Shift,
		domain.ScheduleStatusActive,
		time.Now(),
	).Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrDuplicateShift
		}
		return 0, fmt.Errorf("ошибка создания расписания: %w", err)
	}

	for _, slot := range slots {
		_, err = tx.Exec(ctx,
			`INSERT INTO slots (schedule_id, doctor_id, start_time, end_time, status) VALUES ($1, $2, $3, $4, $5)`,
			id, slot.DoctorID, slot.StartTime, slot.EndTime, domain.SlotStatusFree,
		)
		if err != nil {
			return 0, fmt.Errorf("ошибка создания слота: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return id, nil
}

func (r *ScheduleRepo) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	query := `
		SELECT id, doctor_id, work_date, shift, status, created_at
		FROM schedules
		WHERE id = $1
	`

	var schedule domain.Schedule
	err := r.db.QueryRow(ctx, query, id).Scan(
		&schedule.ID,
		&schedule.DoctorID,
		&schedule.WorkDate,
		&schedule.Shift,
		&schedule.Status,
		&schedule.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения расписания: %w", err)
	}

	return &schedule, nil
}

func (r *ScheduleRepo) ListByDoctor(ctx context.Context, doctorID int64) ([]domain.Schedule, error) {
	query := `
		SELECT id, doctor_id, work_date, shift, status, created_at
		FROM schedules
		WHERE doctor_id = $1
		ORDER BY work_date, shift
	`

	rows, err := r.db.Query(ctx, query, doctorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка расписаний: %w", err)
	}
	defer rows.Close()

	var schedules []domain.Schedule
	for rows.Next() {
		var schedule domain.Schedule
		if err := rows.Scan(
			&schedule.ID,
			&schedule.DoctorID,
			&schedule.WorkDate,
			&schedule.Shift,
			&schedule.Status,
			&schedule.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки расписания: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	for i := range schedules {
		slots, err := r.slotsBySchedule(ctx, schedules[i].ID)
		if err != nil {
			return nil, err
		}
		schedules[i].Slots = slots
	}

	return schedules, nil
}

func (r *ScheduleRepo) slotsBySchedule(ctx context.Context, scheduleID int64) ([]domain.Slot, error) {
	query := fmt.Sprintf(`SELECT %s FROM slots WHERE schedule_id = $1 ORDER BY start_time`, slotColumns)

	rows, err := r.db.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения слотов расписания: %w", err)
	}
	defer rows.Close()

	var slots []domain.Slot
	for rows.Next() {
		var slot domain.Slot
		if err := rows.Scan(
			&slot.ID,
			&slot.ScheduleID,
			&slot.DoctorID,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Status,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки слота: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return slots, nil
}

func (r *ScheduleRepo) DeleteCascade(ctx context.Context, id int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	var lockedID int64
	err = tx.QueryRow(ctx, `SELECT id FROM schedules WHERE id = $1 FOR UPDATE`, id).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("ошибка проверки расписания: %w", err)
	}

	// Записи на удаляемые слоты не осиротевают, а отменяются.
	cancelQuery := `
		UPDATE appointments
		SET status = $1, updated_at = $2
		WHERE slot_id IN (SELECT id FROM slots WHERE schedule_id = $3)
		AND status IN ($4, $5, $6)
	`

	tag, err := tx.Exec(ctx, cancelQuery,
		domain.AppointmentStatusCancelled,
		time.Now(),
		id,
		domain.AppointmentStatusPending,
		domain.AppointmentStatusConfirmed,
		domain.AppointmentStatusExamining,
	)
	if err != nil {
		return 0, fmt.Errorf("ошибка отмены зависимых записей: %w", err)
	}
	cancelled := tag.RowsAffected()

	if _, err := tx.Exec(ctx, `DELETE FROM slots WHERE schedule_id = $1`, id); err != nil {
		return 0, fmt.Errorf("ошибка удаления слотов: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id); err != nil {
		return 0, fmt.Errorf("ошибка удаления расписания: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return cancelled, nil
}
