package models

import (
	"time"
)

// PaymentStatus labels the paid flag of an appointment for receipts.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

// Appointment is a booked consultation with one dermatologist.
// ID is assigned by the repository on save.
type Appointment struct {
	ID            int           `json:"id"`
	Patient       Patient       `json:"patient"`
	Dermatologist Dermatologist `json:"dermatologist"`
	Date          string        `json:"date"` // YYYY-MM-DD
	Time          string        `json:"time"` // HH:MM
	Paid          bool          `json:"paid"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// NewAppointment creates an unpaid appointment.
func NewAppointment(p Patient, d Dermatologist, date, clock string) *Appointment {
	return &Appointment{
		Patient:       p,
		Dermatologist: d,
		Date:          date,
		Time:          clock,
	}
}

// Clone returns a deep copy of a.
func (a *Appointment) Clone() *Appointment {
	out := *a
	out.Dermatologist = a.Dermatologist.Clone()
	return &out
}

// PaymentStatus returns the receipt label of the paid flag.
func (a *Appointment) PaymentStatus() PaymentStatus {
	if a.Paid {
		return PaymentPaid
	}
	return PaymentPending
}

// MarkPaid flips the paid flag. It never goes back to unpaid.
func (a *Appointment) MarkPaid() {
	a.Paid = true
}

// Reschedule moves the appointment. Empty values and a nil dermatologist
// leave the corresponding field untouched.
func (a *Appointment) Reschedule(d *Dermatologist, date, clock string) {
	if d != nil {
		a.Dermatologist = *d
	}
	if date != "" {
		a.Date = date
	}
	if clock != "" {
		a.Time = clock
	}
}
