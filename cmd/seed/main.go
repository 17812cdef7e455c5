package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinic/config"
	"clinic/internal/domain"
	"clinic/pkg/auth"
	"clinic/pkg/database"
)

// Наполняет базу тестовыми данными: справочники, врачи со сменами
// на неделю вперёд и пациенты. Пароль у всех пользователей "password".
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("запуск наполнения базы")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("конфигурация: %v", err)
	}

	pool, err := database.NewPostgresDB(cfg.Postgres)
	if err != nil {
		log.Fatalf("подключение к БД: %v", err)
	}
	defer pool.Close()

	gofakeit.Seed(time.Now().UnixNano())

	ctx := context.Background()

	specialtyIDs, err := seedSpecialties(ctx, pool)
	if err != nil {
		log.Fatalf("специальности: %v", err)
	}
	if err := seedServices(ctx, pool); err != nil {
		log.Fatalf("услуги: %v", err)
	}

	passwordHash, err := auth.HashPassword("password")
	if err != nil {
		log.Fatalf("хеширование пароля: %v", err)
	}

	doctorIDs, err := seedDoctors(ctx, pool, specialtyIDs, passwordHash, 10)
	if err != nil {
		log.Fatalf("врачи: %v", err)
	}
	if err := seedSchedules(ctx, pool, doctorIDs); err != nil {
		log.Fatalf("расписания: %v", err)
	}
	if err := seedPatients(ctx, pool, passwordHash, 50); err != nil {
		log.Fatalf("пациенты: %v", err)
	}

	log.Println("наполнение базы завершено")
}

func seedSpecialties(ctx context.Context, pool *pgxpool.Pool) ([]int64, error) {
	names := []string{
		"Терапия",
		"Кардиология",
		"Дерматология",
		"Неврология",
		"Офтальмология",
		"Педиатрия",
	}

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		var id int64
		err := pool.QueryRow(ctx, `
			INSERT INTO specialties (name, description, created_at)
			VALUES ($1, $2, now())
			ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
			RETURNING id
		`, name, gofakeit.Sentence(8)).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	log.Printf("специальности: %d", len(ids))
	return ids, nil
}

func seedServices(ctx context.Context, pool *pgxpool.Pool) error {
	services := []struct {
		name     string
		price    float64
		duration int
	}{
		{"Общий анализ крови", 500, 15},
		{"ЭКГ", 900, 20},
		{"УЗИ брюшной полости", 1500, 30},
		{"Флюорография", 700, 10},
		{"Вакцинация", 1200, 15},
	}

	for _, s := range services {
		_, err := pool.Exec(ctx, `
			INSERT INTO services (name, price, duration_minutes, created_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (name) DO NOTHING
		`, s.name, s.price, s.duration)
		if err != nil {
			return err
		}
	}

	log.Printf("услуги: %d", len(services))
	return nil
}

func seedDoctors(ctx context.Context, pool *pgxpool.Pool, specialtyIDs []int64, passwordHash string, count int) ([]int64, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	ids := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		var userID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO users (first_name, last_name, email, phone, password_hash, role, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, 'doctor', TRUE, now(), now())
			RETURNING id
		`,
			gofakeit.FirstName(),
			gofakeit.LastName(),
			fmt.Sprintf("doctor%d@clinic.local", i+1),
			fmt.Sprintf("+7900%07d", gofakeit.Number(0, 9999999)),
			passwordHash,
		).Scan(&userID)
		if err != nil {
			return nil, err
		}

		specialtyID := specialtyIDs[gofakeit.Number(0, len(specialtyIDs)-1)]

		var doctorID int64
		err = tx.QueryRow(ctx, `
			INSERT INTO doctors (user_id, specialty_id, price, room, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, 'active', now(), now())
			RETURNING id
		`,
			userID,
			specialtyID,
			float64(gofakeit.Number(800, 3000)),
			fmt.Sprintf("%d", gofakeit.Number(100, 420)),
		).Scan(&doctorID)
		if err != nil {
			return nil, err
		}

		ids = append(ids, doctorID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	log.Printf("врачи: %d", len(ids))
	return ids, nil
}

func seedSchedules(ctx context.Context, pool *pgxpool.Pool, doctorIDs []int64) error {
	shifts := []domain.Shift{domain.ShiftMorning, domain.ShiftAfternoon, domain.ShiftEvening}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	total := 0
	for _, doctorID := range doctorIDs {
		for day := 1; day <= 7; day++ {
			workDate := time.Now().AddDate(0, 0, day).Truncate(24 * time.Hour)
			shift := shifts[gofakeit.Number(0, len(shifts)-1)]

			var scheduleID int64
			err := tx.QueryRow(ctx, `
				INSERT INTO schedules (doctor_id, work_date, shift, status, created_at)
				VALUES ($1, $2, $3, 'active', now())
				ON CONFLICT (doctor_id, work_date, shift) DO NOTHING
				RETURNING id
			`, doctorID, workDate, shift).Scan(&scheduleID)
			if err != nil {
				continue
			}

			for _, slot := range domain.BuildSlots(doctorID, workDate, shift) {
				_, err := tx.Exec(ctx, `
					INSERT INTO slots (schedule_id, doctor_id, start_time, end_time, status)
					VALUES ($1, $2, $3, $4, 'free')
				`, scheduleID, doctorID, slot.StartTime, slot.EndTime)
				if err != nil {
					return err
				}
			}
			total++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	log.Printf("смены: %d", total)
	return nil
}

func seedPatients(ctx context.Context, pool *pgxpool.Pool, passwordHash string, count int) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	genders := []string{"male", "female"}

	for i := 0; i < count; i++ {
		var userID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO users (first_name, last_name, email, phone, password_hash, role, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, 'patient', TRUE, now(), now())
			RETURNING id
		`,
			gofakeit.FirstName(),
			gofakeit.LastName(),
			fmt.Sprintf("patient%d@clinic.local", i+1),
			fmt.Sprintf("+7901%07d", gofakeit.Number(0, 9999999)),
			passwordHash,
		).Scan(&userID)
		if err != nil {
			return err
		}

		dob := gofakeit.DateRange(
			time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2007, 12, 31, 0, 0, 0, 0, time.UTC),
		)

		_, err = tx.Exec(ctx, `
			INSERT INTO patients (user_id, dob, gender, address, insurance_number, insurance_term, note_pmh, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, '', '', now(), now())
		`,
			userID,
			dob,
			genders[gofakeit.Number(0, 1)],
			gofakeit.Address().Address,
			fmt.Sprintf("INS-%08d", gofakeit.Number(0, 99999999)),
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	log.Printf("пациенты: %d", count)
	return nil
}
