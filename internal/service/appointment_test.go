package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clinic/internal/domain"
)

func newAppointmentService(store *fakeStore) *AppointmentServiceImpl {
	return NewAppointmentService(
		fakeAppointmentRepo{store},
		fakePatientRepo{store},
		store,
		fakeSlotRepo{store},
		zap.NewNop(),
	)
}

func TestCreateAppointmentForSlot(t *testing.T) {
	store := newFakeStore()
	svc := newAppointmentService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)
	patient := store.addPatient()
	slot := store.addSlot(doctor.ID, time.Now().Add(24*time.Hour))

	id, err := svc.Create(context.Background(), patient.ID, domain.CreateAppointmentDTO{
		DoctorID: &doctor.ID,
		SlotID:   &slot.ID,
	})
	require.NoError(t, err)

	appointment, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusPending, appointment.Status)
	assert.Equal(t, patient.ID, appointment.PatientID)

	got, err := fakeSlotRepo{store}.GetByID(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotStatusBooked, got.Status)
}

func TestCreateAppointmentShapeValidation(t *testing.T) {
	store := newFakeStore()
	svc := newAppointmentService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)
	patient := store.addPatient()
	slot := store.addSlot(doctor.ID, time.Now().Add(24*time.Hour))
	serviceID := int64(500)

	tests := []struct {
		name string
		dto  domain.CreateAppointmentDTO
	}{
		{"пустой запрос", domain.CreateAppointmentDTO{}},
		{"только врач", domain.CreateAppointmentDTO{DoctorID: &doctor.ID}},
		{"только слот", domain.CreateAppointmentDTO{SlotID: &slot.ID}},
		{"врач, слот и услуга", domain.CreateAppointmentDTO{DoctorID: &doctor.ID, SlotID: &slot.ID, ServiceID: &serviceID}},
		{"услуга и слот", domain.CreateAppointmentDTO{SlotID: &slot.ID, ServiceID: &serviceID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), patient.ID, tt.dto)
			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}
}

func TestCreateAppointmentSlotChecks(t *testing.T) {
	store := newFakeStore()
	svc := newAppointmentService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)
	other := store.addDoctor(domain.DoctorStatusActive)
	patient := store.addPatient()

	// Слот другого врача.
	foreignSlot := store.addSlot(other.ID, time.Now().Add(24*time.Hour))
	_, err := svc.Create(context.Background(), patient.ID, domain.CreateAppointmentDTO{
		DoctorID: &doctor.ID,
		SlotID:   &foreignSlot.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	// Слот в прошлом.
	pastSlot := store.addSlot(doctor.ID, time.Now().Add(-time.Hour))
	_, err = svc.Create(context.Background(), patient.ID, domain.CreateAppointmentDTO{
		DoctorID: &doctor.ID,
		SlotID:   &pastSlot.ID,
	})
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

	// Несуществующий слот.
	missing := int64(9999)
	_, err = svc.Create(context.Background(), patient.ID, domain.CreateAppointmentDTO{
		DoctorID: &doctor.ID,
		SlotID:   &missing,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConcurrentSlotBooking(t *testing.T) {
	store := newFakeStore()
	svc := newAppointmentService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)
	slot := store.addSlot(doctor.ID, time.Now().Add(24*time.Hour))

	const workers = 20
	patients := make([]*domain.Patient, workers)
	for i := range patients {
		patients[i] = store.addPatient()
	}

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), patients[i].ID, domain.CreateAppointmentDTO{
				DoctorID: &doctor.ID,
				SlotID:   &slot.ID,
			})
		}(i)
	}
	wg.Wait()

	// Ровно один победитель, остальные получают ErrSlotUnavailable.
	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
		}
	}
	assert.Equal(t, 1, winners)
}

func TestConfirmAndExamineFlow(t *testing.T) {
	store := newFakeStore()
	svc := newAppointmentService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)
	patient := store.addPatient()
	slot := store.addSlot(doctor.ID, time.Now().Add(24*time.Hour))

	id, err := svc.Create(context.Background(), patient.ID, domain.CreateAppointmentDTO{
		DoctorID: &doctor.ID,
		SlotID:   &slot.ID,
	})
	require.NoError(t, err)

	// Начать осмотр неподтверждённой записи нельзя.
	err = svc.StartExamination(context.Background(), doctor.ID, id)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	require.NoError(t, svc.Confirm(context.Background(), doctor.ID, id))

	// Повторное подтверждение не проходит.
	err = svc.Confirm(context.Background(), doctor.ID, id)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	require.NoError(t, svc.StartExamination(context.Background(), doctor.ID, id))

	appointment, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusExamining, appointment.Status)
}

func TestConfirmForeignAppointment(t *testing.T) {
	store := newFakeStore()
	svc := newAppointmentService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)
	other := store.addDoctor(domain.DoctorStatusActive)
	patient := store.addPatient()
	slot := store.addSlot(doctor.ID, time.Now().Add(24*time.Hour))

	id, err := svc.Create(context.Background(), patient.ID, domain.CreateAppointmentDTO{
		DoctorID: &doctor.ID,
		SlotID:   &slot.ID,
	})
	require.NoError(t, err)

	// Чужая запись для врача неотличима от несуществующей.
	err = svc.Confirm(context.Background(), other.ID, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelReleasesSlot(t *testing.T) {
	store := newFakeStore()
	svc := newAppointmentService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)
	patient := store.addPatient()
	second := store.addPatient()
	slot := store.addSlot(doctor.ID, time.Now().Add(24*time.Hour))

	id, err := svc.Create(context.Background(), patient.ID, domain.CreateAppointmentDTO{
		DoctorID: &doctor.ID,
		SlotID:   &slot.ID,
	})
	require.NoError(t, err)

	// Чужую запись пациент отменить не может.
	err = svc.Cancel(context.Background(), second.ID, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.Cancel(context.Background(), patient.ID, id))

	// Слот освобождён, другой пациент записывается на него.
	_, err = svc.Create(context.Background(), second.ID, domain.CreateAppointmentDTO{
		DoctorID: &doctor.ID,
		SlotID:   &slot.ID,
	})
	assert.NoError(t, err)

	// Повторная отмена уже отменённой записи не проходит.
	err = svc.Cancel(context.Background(), patient.ID, id)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestCreateAppointmentForService(t *testing.T) {
	store := newFakeStore()
	svc := newAppointmentService(store)
	patient := store.addPatient()
	serviceID := int64(7)

	id, err := svc.Create(context.Background(), patient.ID, domain.CreateAppointmentDTO{
		ServiceID: &serviceID,
	})
	require.NoError(t, err)

	appointment, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, appointment.DoctorID)
	assert.Nil(t, appointment.SlotID)
	require.NotNil(t, appointment.ServiceID)
	assert.Equal(t, serviceID, *appointment.ServiceID)
}

func TestCancelStale(t *testing.T) {
	store := newFakeStore()
	svc := newAppointmentService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)
	patient := store.addPatient()

	// Запись создаётся на будущий слот, затем его время "проходит".
	slot := store.addSlot(doctor.ID, time.Now().Add(time.Minute))
	id, err := svc.Create(context.Background(), patient.ID, domain.CreateAppointmentDTO{
		DoctorID: &doctor.ID,
		SlotID:   &slot.ID,
	})
	require.NoError(t, err)

	store.mu.Lock()
	store.slots[slot.ID].StartTime = time.Now().Add(-time.Hour)
	store.mu.Unlock()

	cancelled, err := svc.CancelStale(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), cancelled)

	appointment, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusCancelled, appointment.Status)

	got, err := fakeSlotRepo{store}.GetByID(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotStatusFree, got.Status)
}
