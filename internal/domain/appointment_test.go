package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusCanTransition(t *testing.T) {
	allowed := map[AppointmentStatus][]AppointmentStatus{
		AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
		AppointmentStatusConfirmed: {AppointmentStatusExamining, AppointmentStatusCompleted, AppointmentStatusCancelled},
		AppointmentStatusExamining: {AppointmentStatusCompleted},
		AppointmentStatusCompleted: {},
		AppointmentStatusCancelled: {},
	}

	all := []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusConfirmed,
		AppointmentStatusExamining,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	}

	for from, targets := range allowed {
		allowedSet := make(map[AppointmentStatus]bool)
		for _, to := range targets {
			allowedSet[to] = true
		}
		for _, to := range all {
			got := from.CanTransition(to)
			assert.Equal(t, allowedSet[to], got, "%s -> %s", from, to)
		}
	}
}

func TestAppointmentStatusTerminal(t *testing.T) {
	assert.True(t, AppointmentStatusCompleted.Terminal())
	assert.True(t, AppointmentStatusCancelled.Terminal())
	assert.False(t, AppointmentStatusPending.Terminal())
	assert.False(t, AppointmentStatusConfirmed.Terminal())
	assert.False(t, AppointmentStatusExamining.Terminal())
}

func TestCreateAppointmentDTOShape(t *testing.T) {
	doctorID := int64(1)
	slotID := int64(2)
	serviceID := int64(3)

	slotBooking := CreateAppointmentDTO{DoctorID: &doctorID, SlotID: &slotID}
	assert.True(t, slotBooking.IsSlotBooking())
	assert.False(t, slotBooking.IsServiceBooking())

	serviceBooking := CreateAppointmentDTO{ServiceID: &serviceID}
	assert.True(t, serviceBooking.IsServiceBooking())
	assert.False(t, serviceBooking.IsSlotBooking())

	// Смешанные и пустые формы не проходят ни одну проверку.
	mixed := CreateAppointmentDTO{DoctorID: &doctorID, SlotID: &slotID, ServiceID: &serviceID}
	assert.False(t, mixed.IsSlotBooking())
	assert.False(t, mixed.IsServiceBooking())

	onlyDoctor := CreateAppointmentDTO{DoctorID: &doctorID}
	assert.False(t, onlyDoctor.IsSlotBooking())
	assert.False(t, onlyDoctor.IsServiceBooking())

	empty := CreateAppointmentDTO{}
	assert.False(t, empty.IsSlotBooking())
	assert.False(t, empty.IsServiceBooking())
}
