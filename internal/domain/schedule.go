package domain

import (
	"errors"
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/types"
)

var (
	// ErrInvalidSchedule returned when the configured grid is unusable
	ErrInvalidSchedule = errors.New("invalid schedule configuration")
)

// Schedule is the single daily appointment grid every doctor works on.
// Slots are generated from DayStart with a fixed step; a slot whose end
// would run past DayEnd is not offered.
type Schedule struct {
	DayStart            types.TimeString
	DayEnd              types.TimeString
	SlotDurationMinutes int
	BookingWindowDays   int
}

// Validate checks that the grid yields at least one slot and a usable window.
func (s Schedule) Validate() error {
	if s.SlotDurationMinutes <= 0 {
		return ErrInvalidSchedule
	}
	if s.BookingWindowDays <= 0 {
		return ErrInvalidSchedule
	}
	if err := s.DayStart.Validate(); err != nil {
		return ErrInvalidSchedule
	}
	if err := s.DayEnd.Validate(); err != nil {
		return ErrInvalidSchedule
	}
	if len(s.Grid()) == 0 {
		return ErrInvalidSchedule
	}
	return nil
}

// Grid returns every slot of the day in ascending order.
func (s Schedule) Grid() []types.TimeString {
	slots := make([]types.TimeString, 0)
	current := s.DayStart

	for current.IsBefore(s.DayEnd) {
		slotEnd, err := current.AddMinutes(s.SlotDurationMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(s.DayEnd) {
			break
		}

		slots = append(slots, current)

		current, err = current.AddMinutes(s.SlotDurationMinutes)
		if err != nil {
			break
		}
	}

	return slots
}

// ContainsSlot reports whether slot is a grid value.
func (s Schedule) ContainsSlot(slot types.TimeString) bool {
	for _, gridSlot := range s.Grid() {
		if gridSlot == slot {
			return true
		}
	}
	return false
}

// WindowEnd returns the last bookable date for a window starting at start.
func (s Schedule) WindowEnd(start time.Time) time.Time {
	return DateOnly(start).AddDate(0, 0, s.BookingWindowDays-1)
}

// ContainsDate reports whether date falls inside the booking window
// starting at start.
func (s Schedule) ContainsDate(date, start time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(start)) && !d.After(s.WindowEnd(start))
}

// DateOnly strips the clock part of t.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayAvailability is one entry of an availability scan: a date and whether
// the doctor still has at least one open slot on it.
type DayAvailability struct {
	Date       time.Time
	HasOpening bool
}
