// Package console is the interactive front-desk menu.
package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"clinic-appointments/internal/models"
	"clinic-appointments/internal/services"
	"clinic-appointments/internal/utils"
)

const (
	msgInvalidChoice = "Invalid choice. Please try again."
	msgInvalidNumber = "Invalid input. Please enter a number."
	msgNotFound      = "Appointment not found."
	msgNoResults     = "No appointments found."
)

// Console reads operator input line by line and drives the services.
type Console struct {
	appointments *services.AppointmentService
	invoices     *services.InvoiceService
	in           *bufio.Reader
	out          printer
	log          *zap.Logger
}

func New(appointments *services.AppointmentService, invoices *services.InvoiceService, in io.Reader, out io.Writer, log *zap.Logger) *Console {
	return &Console{
		appointments: appointments,
		invoices:     invoices,
		in:           bufio.NewReader(in),
		out:          printer{w: out},
		log:          log,
	}
}

// Run shows the menu until the operator exits or input ends.
// Only input read failures are returned.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		c.menu()
		line, err := c.readLine()
		if err != nil {
			return c.endOfInput(err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.out.failure(msgInvalidNumber)
			continue
		}

		switch choice {
		case 1:
			err = c.book(ctx)
		case 2:
			err = c.view(ctx)
		case 3:
			err = c.search(ctx)
		case 4:
			err = c.update(ctx)
		case 5:
			err = c.invoice(ctx)
		case 6:
			c.out.line("Exiting system. Goodbye!")
			return nil
		default:
			c.out.failure(msgInvalidChoice)
		}
		if err != nil {
			return c.endOfInput(err)
		}
	}
}

func (c *Console) menu() {
	c.out.line("")
	c.out.line("--- Clinic Management System ---")
	c.out.info("1. Book Appointment")
	c.out.info("2. View Appointments")
	c.out.info("3. Search Appointment")
	c.out.info("4. Update Appointment")
	c.out.info("5. Generate Invoice")
	c.out.info("6. Exit")
	c.out.prompt("Choose an option: ")
}

func (c *Console) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		c.out.line("")
		c.log.Debug("input closed, leaving menu")
		return nil
	}
	return err
}

func (c *Console) book(ctx context.Context) error {
	var (
		patient models.Patient
		err     error
	)
	if patient.NIC, err = c.promptValid("Enter NIC (minimum 9 characters): ", utils.IsValidNic, "NIC must be at least 9 characters."); err != nil {
		return err
	}
	if patient.Name, err = c.promptValid("Enter Name (minimum 4 characters): ", utils.IsValidName, "Name must be at least 4 characters."); err != nil {
		return err
	}
	if patient.Email, err = c.promptValid("Enter Email Address: ", utils.IsValidEmail, "Please enter a valid email address."); err != nil {
		return err
	}
	if patient.Phone, err = c.promptValid("Enter Phone Number (10 digits): ", utils.IsValidPhone, "Phone number must be exactly 10 digits."); err != nil {
		return err
	}

	index, slots, err := c.chooseSlots()
	if err != nil || slots == nil {
		return err
	}
	date, err := c.chooseFrom("Available Dates:", slots.Dates, "Select an available date by entering the corresponding number: ")
	if err != nil {
		return err
	}
	clock, err := c.chooseFrom("Available Time Slots:", slots.Times, "Select an available time slot by entering the corresponding number: ")
	if err != nil {
		return err
	}

	c.out.info("The registration fee is " + c.invoices.FeeLabel() + ". Do you confirm the payment? (yes/no)")
	confirmed, err := c.confirm()
	if err != nil {
		return err
	}

	a, err := c.appointments.Book(ctx, &services.BookAppointmentCommand{
		Patient:            patient,
		DermatologistIndex: index,
		Date:               date,
		Time:               clock,
		PaymentConfirmed:   confirmed,
	})
	if err != nil {
		c.reportFailure(err)
		return nil
	}

	c.out.block(services.Receipt(a, c.invoices.FeeLabel()))
	c.out.success("Appointment successfully booked!")
	return nil
}

func (c *Console) view(ctx context.Context) error {
	all, err := c.appointments.ListAll(ctx)
	if err != nil {
		c.reportFailure(err)
		return nil
	}
	c.out.info("List of Appointments:")
	c.printList(all)
	return nil
}

func (c *Console) search(ctx context.Context) error {
	c.out.prompt("Enter Patient Name or Appointment ID to search: ")
	query, err := c.readLine()
	if err != nil {
		return err
	}
	found, err := c.appointments.Search(ctx, strings.TrimSpace(query))
	if err != nil {
		c.reportFailure(err)
		return nil
	}
	c.printList(found)
	return nil
}

func (c *Console) update(ctx context.Context) error {
	id, ok, err := c.promptID("Enter Appointment ID to update: ")
	if err != nil || !ok {
		return err
	}
	if _, err := c.appointments.Get(ctx, id); err != nil {
		c.reportFailure(err)
		return nil
	}

	index, slots, err := c.chooseSlots()
	if err != nil || slots == nil {
		return err
	}
	date, err := c.chooseFrom("Available Dates:", slots.Dates, "Select a new date by entering the corresponding number: ")
	if err != nil {
		return err
	}
	clock, err := c.chooseFrom("Available Time Slots:", slots.Times, "Select a new time slot by entering the corresponding number: ")
	if err != nil {
		return err
	}

	a, err := c.appointments.Update(ctx, id, &services.UpdateAppointmentCommand{
		DermatologistIndex: &index,
		Date:               &date,
		Time:               &clock,
	})
	if err != nil {
		c.reportFailure(err)
		return nil
	}
	c.out.block(services.UpdatedReceipt(a))
	return nil
}

func (c *Console) invoice(ctx context.Context) error {
	id, ok, err := c.promptID("Enter Appointment ID to generate invoice: ")
	if err != nil || !ok {
		return err
	}
	inv, err := c.invoices.Generate(ctx, id)
	if err != nil {
		c.reportFailure(err)
		return nil
	}
	c.out.block(services.InvoiceText(inv))
	if inv.Appointment.Paid {
		return nil
	}

	c.out.info("Settle the registration fee of " + c.invoices.FeeLabel() + " now? (yes/no)")
	settle, err := c.confirm()
	if err != nil || !settle {
		return err
	}
	if _, err := c.appointments.MarkPaid(ctx, id); err != nil {
		c.reportFailure(err)
		return nil
	}
	c.out.success("Payment recorded. Appointment marked as paid.")
	return nil
}

// chooseSlots lists the roster and returns the chosen 1-based index with its
// slots. Slots is nil when the dermatologist has none to offer.
func (c *Console) chooseSlots() (int, *services.Slots, error) {
	roster := c.appointments.Dermatologists()
	c.out.info("Available Dermatologists:")
	for i, d := range roster {
		c.out.linef("%d. %s (Available: %s)", i+1, d.Name, d.Schedule())
	}
	index, err := c.promptChoice("Select a dermatologist (enter number): ", len(roster))
	if err != nil {
		return 0, nil, err
	}

	slots, err := c.appointments.Slots(index)
	if err != nil {
		c.reportFailure(err)
		return 0, nil, nil
	}
	return index, slots, nil
}

func (c *Console) chooseFrom(title string, options []string, prompt string) (string, error) {
	c.out.info(title)
	for i, o := range options {
		c.out.linef("%d. %s", i+1, o)
	}
	n, err := c.promptChoice(prompt, len(options))
	if err != nil {
		return "", err
	}
	return options[n-1], nil
}

// promptChoice asks until a number in [1, limit] is entered.
func (c *Console) promptChoice(prompt string, limit int) (int, error) {
	for {
		c.out.prompt(prompt)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= limit {
			return n, nil
		}
		c.out.failure(msgInvalidChoice)
	}
}

// promptValid asks until valid accepts the trimmed answer.
func (c *Console) promptValid(prompt string, valid func(string) bool, hint string) (string, error) {
	for {
		c.out.prompt(prompt)
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if valid(line) {
			return line, nil
		}
		c.out.failure(hint)
	}
}

// promptID reads one appointment id. ok is false when the answer is not a number.
func (c *Console) promptID(prompt string) (id int, ok bool, err error) {
	c.out.prompt(prompt)
	line, err := c.readLine()
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		c.out.failure(msgInvalidNumber)
		return 0, false, nil
	}
	return id, true, nil
}

func (c *Console) confirm() (bool, error) {
	line, err := c.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes"), nil
}

func (c *Console) printList(list []*models.Appointment) {
	if len(list) == 0 {
		c.out.info(msgNoResults)
		return
	}
	for _, a := range list {
		c.out.line(services.Summary(a))
	}
}

func (c *Console) reportFailure(err error) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, models.ErrAppointmentNotFound):
		c.out.failure(msgNotFound)
	case errors.Is(err, models.ErrPaymentNotConfirmed):
		c.out.failure("Registration fee payment not confirmed. Appointment not booked.")
	case errors.Is(err, models.ErrDermatologistNotFound):
		c.out.failure("Dermatologist not found.")
	case errors.Is(err, models.ErrNoStructuredAvailability):
		c.out.failure("This dermatologist has no bookable slots.")
	case errors.As(err, &verr):
		for _, f := range verr.Fields {
			c.out.failure(f)
		}
	default:
		c.log.Error("operation failed", zap.Error(err))
		c.out.failure("Something went wrong. Please try again.")
	}
}

// readLine returns the next line without its terminator, whatever its length.
// A final unterminated line is returned before io.EOF.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
