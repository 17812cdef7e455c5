package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinic/internal/domain"
)

// querier покрывает и пул, и транзакцию — условные UPDATE по слотам
// выполняются теми же запросами внутри и вне транзакций.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repositories struct {
	User        UserRepository
	Auth        AuthRepository
	Patient     PatientRepository
	Doctor      DoctorRepository
	Catalog     CatalogRepository
	Schedule    ScheduleRepository
	Slot        SlotRepository
	Appointment AppointmentRepository
	Record      RecordRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Auth:        NewAuthRepository(db),
		Patient:     NewPatientRepository(db),
		Doctor:      NewDoctorRepository(db),
		Catalog:     NewCatalogRepository(db),
		Schedule:    NewScheduleRepository(db),
		Slot:        NewSlotRepository(db),
		Appointment: NewAppointmentRepository(db),
		Record:      NewRecordRepository(db),
	}
}

type UserRepository interface {
	Create(ctx context.Context, user domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Update(ctx context.Context, id int64, user domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByUserID(ctx context.Context, userID int64) error
}

type PatientRepository interface {
	Create(ctx context.Context, userID int64, dto domain.CreatePatientDTO, dob time.Time) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Patient, error)
	Update(ctx context.Context, id int64, dto domain.UpdatePatientDTO) error
}

type DoctorRepository interface {
	Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Doctor, error)
	Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error
	List(ctx context.Context, filter domain.DoctorFilter) ([]domain.Doctor, int, error)
}

type CatalogRepository interface {
	CreateSpecialty(ctx context.Context, dto domain.CreateSpecialtyDTO) (int64, error)
	GetSpecialtyByID(ctx context.Context, id int64) (*domain.Specialty, error)
	UpdateSpecialty(ctx context.Context, id int64, dto domain.UpdateSpecialtyDTO) error
	DeleteSpecialty(ctx context.Context, id int64) error
	ListSpecialties(ctx context.Context) ([]domain.Specialty, error)

	CreateService(ctx context.Context, dto domain.CreateServiceDTO) (int64, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	UpdateService(ctx context.Context, id int64, dto domain.UpdateServiceDTO) error
	DeleteService(ctx context.Context, id int64) error
	ListServices(ctx context.Context) ([]domain.Service, error)
}

type ScheduleRepository interface {
	// CreateWithSlots сохраняет расписание и его слоты одной транзакцией;
	// дубликат (doctor_id, work_date, shift) возвращает domain.ErrDuplicateShift.
	CreateWithSlots(ctx context.Context, schedule domain.Schedule, slots []domain.Slot) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]domain.Schedule, error)
	// DeleteCascade отменяет зависимые записи, удаляет слоты и расписание
	// одной транзакцией; возвращает число отменённых записей.
	DeleteCascade(ctx context.Context, id int64) (int64, error)
}

type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	ListByDoctor(ctx context.Context, doctorID int64, from, to time.Time) ([]domain.Slot, error)
}

type AppointmentRepository interface {
	// CreateWithSlot бронирует свободный слот и создаёт запись одной
	// транзакцией; проигравший гонку получает domain.ErrSlotUnavailable.
	CreateWithSlot(ctx context.Context, patientID, doctorID, slotID int64) (int64, error)
	CreateForService(ctx context.Context, patientID, serviceID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	// UpdateStatus переводит запись из from в to; несовпадение текущего
	// статуса возвращает domain.ErrInvalidState.
	UpdateStatus(ctx context.Context, id int64, from []domain.AppointmentStatus, to domain.AppointmentStatus) error
	// CancelAndRelease отменяет запись и освобождает её слот одной транзакцией.
	CancelAndRelease(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error)
	// CancelStalePending отменяет pending-записи, чей слот уже начался,
	// и освобождает слоты; возвращает число отменённых записей.
	CancelStalePending(ctx context.Context, now time.Time) (int64, error)
}

type RecordRepository interface {
	// CompleteExamination создаёт медкарту и переводит запись в completed
	// одной транзакцией: либо оба изменения видимы, либо ни одного.
	CompleteExamination(ctx context.Context, doctorID int64, dto domain.CompleteExaminationDTO, examDate time.Time, reExamDate *time.Time) (*domain.Record, error)
	GetByID(ctx context.Context, id int64) (*domain.Record, error)
	GetByAppointmentID(ctx context.Context, appointmentID int64) (*domain.Record, error)
	List(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, int, error)
}
