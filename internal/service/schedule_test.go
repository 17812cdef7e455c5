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

func newScheduleService(store *fakeStore) *ScheduleServiceImpl {
	return NewScheduleService(
		fakeScheduleRepo{store},
		store,
		fakeSlotRepo{store},
		zap.NewNop(),
	)
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func TestRegisterShift(t *testing.T) {
	store := newFakeStore()
	svc := newScheduleService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)

	id, err := svc.RegisterShift(context.Background(), doctor.ID, domain.CreateScheduleDTO{
		WorkDate: futureDate(),
		Shift:    domain.ShiftMorning,
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	schedules, err := svc.ListByDoctor(context.Background(), doctor.ID)
	require.NoError(t, err)
	require.Len(t, schedules, 1)

	// Утренняя смена нарезается на 8 получасовых слотов.
	from := time.Now()
	to := from.AddDate(0, 0, 14)
	slots, err := svc.ListSlots(context.Background(), doctor.ID, from, to)
	require.NoError(t, err)
	assert.Len(t, slots, 8)
}

func TestRegisterShiftDuplicate(t *testing.T) {
	store := newFakeStore()
	svc := newScheduleService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)

	dto := domain.CreateScheduleDTO{WorkDate: futureDate(), Shift: domain.ShiftEvening}

	_, err := svc.RegisterShift(context.Background(), doctor.ID, dto)
	require.NoError(t, err)

	_, err = svc.RegisterShift(context.Background(), doctor.ID, dto)
	assert.ErrorIs(t, err, domain.ErrDuplicateShift)

	// Другая смена в тот же день регистрируется свободно.
	dto.Shift = domain.ShiftMorning
	_, err = svc.RegisterShift(context.Background(), doctor.ID, dto)
	assert.NoError(t, err)
}

func TestRegisterShiftValidation(t *testing.T) {
	store := newFakeStore()
	svc := newScheduleService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)

	_, err := svc.RegisterShift(context.Background(), doctor.ID, domain.CreateScheduleDTO{
		WorkDate: futureDate(),
		Shift:    "night",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = svc.RegisterShift(context.Background(), doctor.ID, domain.CreateScheduleDTO{
		WorkDate: "07-09-2026",
		Shift:    domain.ShiftMorning,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = svc.RegisterShift(context.Background(), doctor.ID, domain.CreateScheduleDTO{
		WorkDate: "2020-01-01",
		Shift:    domain.ShiftMorning,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = svc.RegisterShift(context.Background(), 9999, domain.CreateScheduleDTO{
		WorkDate: futureDate(),
		Shift:    domain.ShiftMorning,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	inactive := store.addDoctor(domain.DoctorStatusInactive)
	_, err = svc.RegisterShift(context.Background(), inactive.ID, domain.CreateScheduleDTO{
		WorkDate: futureDate(),
		Shift:    domain.ShiftMorning,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestCancelShift(t *testing.T) {
	store := newFakeStore()
	svc := newScheduleService(store)
	doctor := store.addDoctor(domain.DoctorStatusActive)
	patient := store.addPatient()

	scheduleID, err := svc.RegisterShift(context.Background(), doctor.ID, domain.CreateScheduleDTO{
		WorkDate: futureDate(),
		Shift:    domain.ShiftMorning,
	})
	require.NoError(t, err)

	// Пациент записывается на один из слотов смены.
	slots, err := svc.ListSlots(context.Background(), doctor.ID, time.Now(), time.Now().AddDate(0, 0, 14))
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	appointmentRepo := fakeAppointmentRepo{store}
	appointmentID, err := appointmentRepo.CreateWithSlot(context.Background(), patient.ID, doctor.ID, slots[0].ID)
	require.NoError(t, err)

	cancelled, err := svc.CancelShift(context.Background(), doctor.ID, scheduleID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cancelled)

	appointment, err := appointmentRepo.GetByID(context.Background(), appointmentID)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusCancelled, appointment.Status)

	// Слоты смены удалены вместе с расписанием.
	slots, err = svc.ListSlots(context.Background(), doctor.ID, time.Now(), time.Now().AddDate(0, 0, 14))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestCancelShiftOwnership(t *testing.T) {
	store := newFakeStore()
	svc := newScheduleService(store)
	owner := store.addDoctor(domain.DoctorStatusActive)
	other := store.addDoctor(domain.DoctorStatusActive)

	scheduleID, err := svc.RegisterShift(context.Background(), owner.ID, domain.CreateScheduleDTO{
		WorkDate: futureDate(),
		Shift:    domain.ShiftAfternoon,
	})
	require.NoError(t, err)

	_, err = svc.CancelShift(context.Background(), other.ID, scheduleID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.CancelShift(context.Background(), owner.ID, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
