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

type SlotRepo struct {
	db *pgxpool.Pool
}

func NewSlotRepository(db *pgxpool.Pool) SlotRepository {
	return &SlotRepo{db: db}
}

const slotColumns = `id, schedule_id, doctor_id, start_time, end_time, status`

func (r *SlotRepo) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	query := fmt.Sprintf(`SELECT %s FROM slots WHERE id = $1`, slotColumns)

	var slot domain.Slot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.ScheduleID,
		&slot.DoctorID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения слота: %w", err)
	}

	return &slot, nil
}

func (r *SlotRepo) ListByDoctor(ctx context.Context, doctorID int64, from, to time.Time) ([]domain.Slot, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM slots
		WHERE doctor_id = $1 AND start_time >= $2 AND start_time < $3
		ORDER BY start_time
	`, slotColumns)

	rows, err := r.db.Query(ctx, query, doctorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка слотов: %w", err)
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

// bookSlot занимает свободный слот условным UPDATE: при конкурентных
// вызовах побеждает ровно один, остальные получают ErrSlotUnavailable.
func bookSlot(ctx context.Context, q querier, slotID int64) error {
	tag, err := q.Exec(ctx,
		`UPDATE slots SET status = $1 WHERE id = $2 AND status = $3`,
		domain.SlotStatusBooked, slotID, domain.SlotStatusFree,
	)
	if err != nil {
		return fmt.Errorf("ошибка бронирования слота: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM slots WHERE id = $1)`, slotID).Scan(&exists); err != nil {
			return fmt.Errorf("ошибка проверки слота: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrSlotUnavailable
	}

	return nil
}

// freeSlot возвращает слот в свободное состояние (отмена записи).
func freeSlot(ctx context.Context, q querier, slotID int64) error {
	_, err := q.Exec(ctx,
		`UPDATE slots SET status = $1 WHERE id = $2`,
		domain.SlotStatusFree, slotID,
	)
	if err != nil {
		return fmt.Errorf("ошибка освобождения слота: %w", err)
	}

	return nil
}
