package domain

import "time"

// LeaveStatus represents the review state of a leave request
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// Leave represents a doctor's leave request
type Leave struct {
	ID         int64
	DoctorID   int64
	LeaveDate  time.Time
	ReturnDate time.Time
	DaysCount  int
	Reason     string
	Status     LeaveStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeResolved reports whether the request is still awaiting a decision.
func (l *Leave) CanBeResolved() bool {
	return l.Status == LeaveStatusPending
}
