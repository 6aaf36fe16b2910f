package domain

import "time"

// BillType classifies what a bill was issued for
type BillType string

const (
	BillTypeAppointment BillType = "appointment"
	BillTypeRoom        BillType = "room"
	BillTypeMedicines   BillType = "medicines"
)

// PaymentStatus represents the payment state of a bill
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Bill represents a charge issued to a patient. A bill is created pending
// and only ever mutated by payment flipping it to paid.
type Bill struct {
	ID            int64
	PatientID     int64
	Type          BillType
	Amount        float64
	Date          time.Time
	PaymentStatus PaymentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPaid reports whether the bill has been settled.
func (b *Bill) IsPaid() bool {
	return b.PaymentStatus == PaymentStatusPaid
}
