package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clinic/internal/domain"
)

func newRecordService(store *fakeStore) *RecordServiceImpl {
	return NewRecordService(fakeRecordRepo{store}, fakeAppointmentRepo{store}, zap.NewNop())
}

// examiningAppointment доводит запись до статуса examining и возвращает её id.
func examiningAppointment(t *testing.T, store *fakeStore, doctorID, patientID int64) int64 {
	t.Helper()

	slot := store.addSlot(doctorID, time.Now().Add(24*time.Hour))
	appointments := newAppointmentService(store)

	id, err := appointments.Create(context.Background(), patientID, domain.CreateAppointmentDTO{
		DoctorID: &doctorID,
		SlotID:   &slot.ID,
	})
	require.NoError(t, err)
	require.NoError(t, appointments.Confirm(context.Background(), doctorID, id))
	require.NoError(t, appointments.StartExamination(context.Background(), doctorID, id))

	return id
}

func TestCompleteExamination(t *testing.T) {
	store := newFakeStore()
	svc := newRecordService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)
	patient := store.addPatient()
	appointmentID := examiningAppointment(t, store, doctor.ID, patient.ID)

	record, err := svc.CompleteExamination(context.Background(), doctor.ID, domain.CompleteExaminationDTO{
		AppointmentID: appointmentID,
		Diagnosis:     "ОРВИ",
		Symptoms:      "кашель, температура 38",
		Prescription:  "постельный режим",
	})
	require.NoError(t, err)
	assert.Equal(t, appointmentID, record.AppointmentID)
	assert.Equal(t, patient.ID, record.PatientID)
	assert.Equal(t, "ОРВИ", record.Diagnosis)
	assert.Nil(t, record.ReExamDate)

	appointment, err := fakeAppointmentRepo{store}.GetByID(context.Background(), appointmentID)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusCompleted, appointment.Status)

	// Повторное завершение того же приёма не проходит.
	_, err = svc.CompleteExamination(context.Background(), doctor.ID, domain.CompleteExaminationDTO{
		AppointmentID: appointmentID,
		Diagnosis:     "ОРВИ",
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
}

func TestCompleteExaminationFromConfirmed(t *testing.T) {
	store := newFakeStore()
	svc := newRecordService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)
	patient := store.addPatient()
	slot := store.addSlot(doctor.ID, time.Now().Add(24*time.Hour))

	appointments := newAppointmentService(store)
	id, err := appointments.Create(context.Background(), patient.ID, domain.CreateAppointmentDTO{
		DoctorID: &doctor.ID,
		SlotID:   &slot.ID,
	})
	require.NoError(t, err)

	// Из pending завершить приём нельзя.
	_, err = svc.CompleteExamination(context.Background(), doctor.ID, domain.CompleteExaminationDTO{
		AppointmentID: id,
		Diagnosis:     "здоров",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	// Из confirmed — можно, минуя examining.
	require.NoError(t, appointments.Confirm(context.Background(), doctor.ID, id))
	_, err = svc.CompleteExamination(context.Background(), doctor.ID, domain.CompleteExaminationDTO{
		AppointmentID: id,
		Diagnosis:     "здоров",
	})
	assert.NoError(t, err)
}

func TestCompleteExaminationOwnership(t *testing.T) {
	store := newFakeStore()
	svc := newRecordService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)
	other := store.addDoctor(domain.DoctorStatusActive)
	patient := store.addPatient()
	appointmentID := examiningAppointment(t, store, doctor.ID, patient.ID)

	_, err := svc.CompleteExamination(context.Background(), other.ID, domain.CompleteExaminationDTO{
		AppointmentID: appointmentID,
		Diagnosis:     "ОРВИ",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.CompleteExamination(context.Background(), doctor.ID, domain.CompleteExaminationDTO{
		AppointmentID: 9999,
		Diagnosis:     "ОРВИ",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompleteExaminationReExamDate(t *testing.T) {
	store := newFakeStore()
	svc := newRecordService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)
	patient := store.addPatient()

	tests := []struct {
		name       string
		reExamDate string
	}{
		{"неверный формат", "29.08.2026"},
		{"дата в прошлом", "2020-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CompleteExamination(context.Background(), doctor.ID, domain.CompleteExaminationDTO{
				AppointmentID: 1,
				Diagnosis:     "ОРВИ",
				ReExamDate:    tt.reExamDate,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}

	appointmentID := examiningAppointment(t, store, doctor.ID, patient.ID)
	future := time.Now().Add(14 * 24 * time.Hour).Format("2006-01-02")

	record, err := svc.CompleteExamination(context.Background(), doctor.ID, domain.CompleteExaminationDTO{
		AppointmentID: appointmentID,
		Diagnosis:     "ОРВИ",
		ReExamDate:    future,
	})
	require.NoError(t, err)
	require.NotNil(t, record.ReExamDate)
	assert.Equal(t, future, record.ReExamDate.Format("2006-01-02"))
}

func TestGetRecordByAppointmentID(t *testing.T) {
	store := newFakeStore()
	svc := newRecordService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)
	patient := store.addPatient()
	appointmentID := examiningAppointment(t, store, doctor.ID, patient.ID)

	// Приём ещё не завершён, медкарты нет.
	_, err := svc.GetByAppointmentID(context.Background(), appointmentID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	created, err := svc.CompleteExamination(context.Background(), doctor.ID, domain.CompleteExaminationDTO{
		AppointmentID: appointmentID,
		Diagnosis:     "ОРВИ",
	})
	require.NoError(t, err)

	record, err := svc.GetByAppointmentID(context.Background(), appointmentID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, record.ID)

	_, err = svc.GetByAppointmentID(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
