package domain

// Default schedule values. The canonical daily grid is hourly slots from
// 09:00 to 16:00 inclusive: 8 slots, the last one starting an hour before
// the end of the working day.
const (
	DefaultDayStart            = "09:00"
	DefaultDayEnd              = "17:00"
	DefaultSlotDurationMinutes = 60
	DefaultBookingWindowDays   = 21
)

// DefaultAppointmentPurpose is used when the patient does not state one.
const DefaultAppointmentPurpose = "Regular checkup"

// MinLeaveNoticeDays is how far ahead a doctor must request leave,
// so that already-bookable dates are never pulled out from under patients.
const MinLeaveNoticeDays = DefaultBookingWindowDays

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
