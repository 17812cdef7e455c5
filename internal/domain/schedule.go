package domain

import (
	"time"
)

type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftEvening   Shift = "evening"
)

// SlotDuration — шаг нарезки смены на слоты.
const SlotDuration = 30 * time.Minute

type shiftWindow struct {
	startHour int
	endHour   int
}

var shiftWindows = map[Shift]shiftWindow{
	ShiftMorning:   {startHour: 8, endHour: 12},
	ShiftAfternoon: {startHour: 13, endHour: 17},
	ShiftEvening:   {startHour: 18, endHour: 21},
}

func (s Shift) Valid() bool {
	_, ok := shiftWindows[s]
	return ok
}

// Window возвращает абсолютные границы смены для указанной даты.
func (s Shift) Window(workDate time.Time) (time.Time, time.Time) {
	w := shiftWindows[s]
	year, month, day := workDate.Date()
	start := time.Date(year, month, day, w.startHour, 0, 0, 0, workDate.Location())
	end := time.Date(year, month, day, w.endHour, 0, 0, 0, workDate.Location())
	return start, end
}

type ScheduleStatus string

const (
	ScheduleStatusActive ScheduleStatus = "active"
)

type Schedule struct {
	ID        int64          `json:"id"`
	DoctorID  int64          `json:"doctor_id"`
	WorkDate  time.Time      `json:"work_date"`
	Shift     Shift          `json:"shift"`
	Status    ScheduleStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	Slots     []Slot         `json:"slots,omitempty"`
}

type SlotStatus string

const (
	SlotStatusFree   SlotStatus = "free"
	SlotStatusBooked SlotStatus = "booked"
)

type Slot struct {
	ID         int64      `json:"id"`
	ScheduleID int64      `json:"schedule_id"`
	DoctorID   int64      `json:"doctor_id"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    time.Time  `json:"end_time"`
	Status     SlotStatus `json:"status"`
}

// BuildSlots нарезает смену на непересекающиеся смежные слоты по SlotDuration,
// упорядоченные по времени начала.
func BuildSlots(doctorID int64, workDate time.Time, shift Shift) []Slot {
	start, end := shift.Window(workDate)

	var slots []Slot
	for t := start; t.Add(SlotDuration).Before(end) || t.Add(SlotDuration).Equal(end); t = t.Add(SlotDuration) {
		slots = append(slots, Slot{
			DoctorID:  doctorID,
			StartTime: t,
			EndTime:   t.Add(SlotDuration),
			Status:    SlotStatusFree,
		})
	}

	return slots
}

type CreateScheduleDTO struct {
	WorkDate string `json:"work_date" binding:"required"`
	Shift    Shift  `json:"shift" binding:"required,oneof=morning afternoon evening"`
}

type ScheduleFilter struct {
	DoctorID  *int64     `json:"doctor_id"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
}
