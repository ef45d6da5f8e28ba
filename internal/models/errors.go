package models

import "errors"

var (
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrDermatologistNotFound    = errors.New("dermatologist not found")
	ErrPaymentNotConfirmed      = errors.New("registration fee payment not confirmed")
	ErrNoStructuredAvailability = errors.New("dermatologist has no bookable weekday schedule")
)
