package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSlots(t *testing.T) {
	workDate := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		shift     Shift
		wantCount int
		wantFirst string
		wantLast  string
	}{
		{ShiftMorning, 8, "08:00", "11:30"},
		{ShiftAfternoon, 8, "13:00", "16:30"},
		{ShiftEvening, 6, "18:00", "20:30"},
	}

	for _, tt := range tests {
		t.Run(string(tt.shift), func(t *testing.T) {
			slots := BuildSlots(42, workDate, tt.shift)

			require.Len(t, slots, tt.wantCount)
			assert.Equal(t, tt.wantFirst, slots[0].StartTime.Format("15:04"))
			assert.Equal(t, tt.wantLast, slots[len(slots)-1].StartTime.Format("15:04"))

			for i, slot := range slots {
				assert.Equal(t, int64(42), slot.DoctorID)
				assert.Equal(t, SlotStatusFree, slot.Status)
				assert.Equal(t, SlotDuration, slot.EndTime.Sub(slot.StartTime))
				if i > 0 {
					// Слоты смежны и не пересекаются.
					assert.Equal(t, slots[i-1].EndTime, slot.StartTime)
				}
			}
		})
	}
}

func TestShiftWindow(t *testing.T) {
	workDate := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	start, end := ShiftMorning.Window(workDate)
	assert.Equal(t, 8, start.Hour())
	assert.Equal(t, 12, end.Hour())
	assert.Equal(t, workDate.Day(), start.Day())
}

func TestShiftValid(t *testing.T) {
	assert.True(t, ShiftMorning.Valid())
	assert.True(t, ShiftAfternoon.Valid())
	assert.True(t, ShiftEvening.Valid())
	assert.False(t, Shift("night").Valid())
	assert.False(t, Shift("").Valid())
}
