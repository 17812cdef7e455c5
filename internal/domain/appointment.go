package domain

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusExamining AppointmentStatus = "examining"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment — запись пациента либо на слот врача, либо на услугу.
// Заполнена ровно одна из пар {DoctorID, SlotID} / {ServiceID}.
type Appointment struct {
	ID        int64             `json:"id"`
	PatientID int64             `json:"patient_id"`
	DoctorID  *int64            `json:"doctor_id"`
	SlotID    *int64            `json:"slot_id"`
	ServiceID *int64            `json:"service_id"`
	Status    AppointmentStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`

	PatientName string     `json:"patient_name,omitempty"`
	DoctorName  string     `json:"doctor_name,omitempty"`
	ServiceName string     `json:"service_name,omitempty"`
	SlotStart   *time.Time `json:"slot_start,omitempty"`
	SlotEnd     *time.Time `json:"slot_end,omitempty"`
}

type CreateAppointmentDTO struct {
	DoctorID  *int64 `json:"doctor_id"`
	SlotID    *int64 `json:"slot_id"`
	ServiceID *int64 `json:"service_id"`
}

// IsSlotBooking сообщает, что запрошена запись на слот врача.
func (d CreateAppointmentDTO) IsSlotBooking() bool {
	return d.DoctorID != nil && d.SlotID != nil && d.ServiceID == nil
}

// IsServiceBooking сообщает, что запрошена запись на услугу без слота.
func (d CreateAppointmentDTO) IsServiceBooking() bool {
	return d.DoctorID == nil && d.SlotID == nil && d.ServiceID != nil
}

type AppointmentFilter struct {
	PatientID *int64             `json:"patient_id"`
	DoctorID  *int64             `json:"doctor_id"`
	Status    *AppointmentStatus `json:"status"`
	StartDate *time.Time         `json:"start_date"`
	EndDate   *time.Time         `json:"end_date"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// CanTransition описывает разрешённые переходы статусов записи.
func (s AppointmentStatus) CanTransition(to AppointmentStatus) bool {
	switch to {
	case AppointmentStatusConfirmed:
		return s == AppointmentStatusPending
	case AppointmentStatusExamining:
		return s == AppointmentStatusConfirmed
	case AppointmentStatusCompleted:
		return s == AppointmentStatusConfirmed || s == AppointmentStatusExamining
	case AppointmentStatusCancelled:
		return s == AppointmentStatusPending || s == AppointmentStatusConfirmed
	default:
		return false
	}
}

// Terminal сообщает, что из статуса нет исходящих переходов.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}
