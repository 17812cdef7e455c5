package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"clinic/config"
	"clinic/internal/domain"
	"clinic/internal/repository"
)

type Deps struct {
	Repos  *repository.Repositories
	Logger *zap.Logger
	Config *config.Config
}

type Services struct {
	User        UserService
	Auth        AuthService
	Patient     PatientService
	Doctor      DoctorService
	Catalog     CatalogService
	Schedule    ScheduleService
	Appointment AppointmentService
	Record      RecordService
}

func NewServices(deps Deps) *Services {
	return &Services{
		User:        NewUserService(deps.Repos.User, deps.Logger),
		Auth:        NewAuthService(deps.Repos.Auth, deps.Repos.User, deps.Config.JWT, deps.Logger),
		Patient:     NewPatientService(deps.Repos.Patient, deps.Repos.User, deps.Logger),
		Doctor:      NewDoctorService(deps.Repos.Doctor, deps.Repos.User, deps.Repos.Catalog, deps.Logger),
		Catalog:     NewCatalogService(deps.Repos.Catalog, deps.Logger),
		Schedule:    NewScheduleService(deps.Repos.Schedule, deps.Repos.Doctor, deps.Repos.Slot, deps.Logger),
		Appointment: NewAppointmentService(deps.Repos.Appointment, deps.Repos.Patient, deps.Repos.Doctor, deps.Repos.Slot, deps.Logger),
		Record:      NewRecordService(deps.Repos.Record, deps.Repos.Appointment, deps.Logger),
	}
}

type UserService interface {
	Create(ctx context.Context, dto domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthService interface {
	Register(ctx context.Context, dto domain.RegisterRequest) (int64, error)
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(token string) (*TokenClaims, error)
}

type PatientService interface {
	Create(ctx context.Context, userID int64, dto domain.CreatePatientDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Patient, error)
	Update(ctx context.Context, id int64, dto domain.UpdatePatientDTO) error
}

type DoctorService interface {
	Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Doctor, error)
	Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error
	List(ctx context.Context, filter domain.DoctorFilter) ([]domain.Doctor, int, error)
}

type CatalogService interface {
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

type ScheduleService interface {
	// RegisterShift создаёт смену врача и нарезает её на слоты.
	RegisterShift(ctx context.Context, doctorID int64, dto domain.CreateScheduleDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]domain.Schedule, error)
	// CancelShift удаляет смену вместе со слотами и отменяет зависимые записи.
	CancelShift(ctx context.Context, doctorID, scheduleID int64) (int64, error)
	ListSlots(ctx context.Context, doctorID int64, from, to time.Time) ([]domain.Slot, error)
}

type AppointmentService interface {
	Create(ctx context.Context, patientID int64, dto domain.CreateAppointmentDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Confirm(ctx context.Context, doctorID, id int64) error
	StartExamination(ctx context.Context, doctorID, id int64) error
	Cancel(ctx context.Context, patientID, id int64) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error)
	// CancelStale отменяет pending-записи на уже начавшиеся слоты.
	CancelStale(ctx context.Context) (int64, error)
}

type RecordService interface {
	CompleteExamination(ctx context.Context, doctorID int64, dto domain.CompleteExaminationDTO) (*domain.Record, error)
	GetByID(ctx context.Context, id int64) (*domain.Record, error)
	GetByAppointmentID(ctx context.Context, appointmentID int64) (*domain.Record, error)
	List(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, int, error)
}
