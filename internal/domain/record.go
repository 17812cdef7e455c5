package domain

import (
	"time"
)

// Record — медицинская карта осмотра; создаётся ровно один раз,
// в одной транзакции с переводом записи в статус completed.
type Record struct {
	ID            int64      `json:"id"`
	DoctorID      int64      `json:"doctor_id"`
	PatientID     int64      `json:"patient_id"`
	ServiceID     *int64     `json:"service_id"`
	AppointmentID int64      `json:"appointment_id"`
	ExamDate      time.Time  `json:"exam_date"`
	Diagnosis     string     `json:"diagnosis"`
	Symptoms      string     `json:"symptoms"`
	SOAPNotes     string     `json:"soap_notes"`
	Prescription  string     `json:"prescription"`
	ReExamDate    *time.Time `json:"re_exam_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CompleteExaminationDTO struct {
	AppointmentID int64  `json:"appointment_id" binding:"required"`
	Diagnosis     string `json:"diagnosis" binding:"required"`
	Symptoms      string `json:"symptoms"`
	SOAPNotes     string `json:"soap_notes"`
	Prescription  string `json:"prescription"`
	ReExamDate    string `json:"re_exam_date"`
}

type RecordFilter struct {
	PatientID *int64 `json:"patient_id"`
	DoctorID  *int64 `json:"doctor_id"`
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
}
