package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/types"
)

func defaultSchedule() Schedule {
	return Schedule{
		DayStart:            types.TimeString(DefaultDayStart),
		DayEnd:              types.TimeString(DefaultDayEnd),
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		BookingWindowDays:   DefaultBookingWindowDays,
	}
}

func TestSchedule_Grid(t *testing.T) {
	grid := defaultSchedule().Grid()

	// 09:00-17:00 по часу: последний слот 16:00, его конец совпадает с 17:00
	require.Len(t, grid, 8)
	assert.Equal(t, types.TimeString("09:00"), grid[0])
	assert.Equal(t, types.TimeString("16:00"), grid[len(grid)-1])

	for i := 1; i < len(grid); i++ {
		assert.True(t, grid[i-1].IsBefore(grid[i]), "grid must be ascending")
	}
}

func TestSchedule_Grid_PartialLastSlot(t *testing.T) {
	s := Schedule{
		DayStart:            "09:00",
		DayEnd:              "10:30",
		SlotDurationMinutes: 60,
		BookingWindowDays:   7,
	}

	// Слот 10:00 закончился бы в 11:00 - за пределами дня, поэтому не предлагается
	grid := s.Grid()
	require.Len(t, grid, 1)
	assert.Equal(t, types.TimeString("09:00"), grid[0])
}

func TestSchedule_ContainsSlot(t *testing.T) {
	s := defaultSchedule()

	assert.True(t, s.ContainsSlot("09:00"))
	assert.True(t, s.ContainsSlot("16:00"))
	assert.False(t, s.ContainsSlot("08:00"))
	assert.False(t, s.ContainsSlot("17:00"))
	assert.False(t, s.ContainsSlot("09:30"), "off-grid time is not a slot")
}

func TestSchedule_Window(t *testing.T) {
	s := defaultSchedule()
	now := time.Date(2025, 10, 15, 13, 45, 0, 0, time.UTC)

	end := s.WindowEnd(now)
	assert.Equal(t, time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC), end)

	assert.True(t, s.ContainsDate(now, now), "today is inside the window")
	assert.True(t, s.ContainsDate(end, now), "last day is inside the window")
	assert.False(t, s.ContainsDate(end.AddDate(0, 0, 1), now))
	assert.False(t, s.ContainsDate(now.AddDate(0, 0, -1), now))
}

func TestSchedule_Validate(t *testing.T) {
	require.NoError(t, defaultSchedule().Validate())

	tests := []struct {
		name   string
		mutate func(*Schedule)
	}{
		{name: "zero slot duration", mutate: func(s *Schedule) { s.SlotDurationMinutes = 0 }},
		{name: "zero window", mutate: func(s *Schedule) { s.BookingWindowDays = 0 }},
		{name: "bad day start", mutate: func(s *Schedule) { s.DayStart = "9am" }},
		{name: "bad day end", mutate: func(s *Schedule) { s.DayEnd = "" }},
		{name: "empty grid", mutate: func(s *Schedule) { s.DayStart = "17:00"; s.DayEnd = "09:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultSchedule()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSchedule)
		})
	}
}

func TestDateOnly(t *testing.T) {
	d := DateOnly(time.Date(2025, 10, 15, 13, 45, 12, 99, time.UTC))
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), d)
}
