package services

import (
	"fmt"
	"strings"

	"clinic-appointments/internal/models"
)

const (
	receiptRule = "================================"
	updateRule  = "======================================"
)

func paymentLabel(a *models.Appointment) string {
	if a.Paid {
		return string(a.PaymentStatus()) + " ✅"
	}
	return string(a.PaymentStatus()) + " ❌"
}

// Receipt renders the booking confirmation for a.
func Receipt(a *models.Appointment, feeLabel string) string {
	var b strings.Builder
	fmt.Fprintln(&b, "🏥🧾 Clinic Appointment Receipt")
	fmt.Fprintln(&b, receiptRule)
	writeAppointment(&b, a, "Date          ", "Time          ")
	fmt.Fprintf(&b, "💵 Registration  : %s\n", feeLabel)
	fmt.Fprintf(&b, "💳 Payment Status : %s\n", paymentLabel(a))
	fmt.Fprintln(&b, receiptRule)
	return b.String()
}

// UpdatedReceipt renders the confirmation printed after an update.
func UpdatedReceipt(a *models.Appointment) string {
	var b strings.Builder
	fmt.Fprintln(&b, "🏥🧾 Clinic Appointment Update Receipt")
	fmt.Fprintln(&b, updateRule)
	writeAppointment(&b, a, "New Date      ", "New Time      ")
	fmt.Fprintf(&b, "💳 Payment Status : %s\n", paymentLabel(a))
	fmt.Fprintln(&b, updateRule)
	fmt.Fprintln(&b, "✅ Appointment Updated Successfully!")
	return b.String()
}

// InvoiceText renders a printable invoice.
func InvoiceText(inv *models.Invoice) string {
	a := &inv.Appointment
	var b strings.Builder
	fmt.Fprintln(&b, "🧾 Clinic Invoice")
	fmt.Fprintln(&b, receiptRule)
	fmt.Fprintf(&b, "🔖 Invoice Ref    : %s\n", inv.Reference)
	fmt.Fprintf(&b, "🗓️ Issued         : %s\n", inv.IssuedAt.Format("2006-01-02 15:04"))
	writeAppointment(&b, a, "Date          ", "Time          ")
	fmt.Fprintln(&b, receiptRule)
	fmt.Fprintf(&b, "Registration Fee  : %s %.2f\n", inv.Currency, inv.Fee)
	fmt.Fprintf(&b, "Total Due         : %s %.2f\n", inv.Currency, inv.Fee)
	fmt.Fprintf(&b, "💳 Payment Status : %s\n", paymentLabel(a))
	fmt.Fprintln(&b, receiptRule)
	return b.String()
}

// Summary is the one-line form used in lists.
func Summary(a *models.Appointment) string {
	return fmt.Sprintf("#%d  %s  with %s on %s at %s  [%s]",
		a.ID, a.Patient.Name, a.Dermatologist.Name, a.Date, a.Time, a.PaymentStatus())
}

func writeAppointment(b *strings.Builder, a *models.Appointment, dateLabel, timeLabel string) {
	fmt.Fprintf(b, "📅 Appointment ID : %d\n", a.ID)
	fmt.Fprintf(b, "🧑 Patient Name   : %s\n", a.Patient.Name)
	fmt.Fprintf(b, "🪪 NIC            : %s\n", a.Patient.NIC)
	fmt.Fprintf(b, "📧 Email          : %s\n", a.Patient.Email)
	fmt.Fprintf(b, "📞 Phone          : %s\n", a.Patient.Phone)
	fmt.Fprintf(b, "👩‍⚕️ Dermatologist  : %s\n", a.Dermatologist.Name)
	fmt.Fprintf(b, "📆 %s : %s\n", dateLabel, a.Date)
	fmt.Fprintf(b, "⏰ %s : %s\n", timeLabel, a.Time)
}
