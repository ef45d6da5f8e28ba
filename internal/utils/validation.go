package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of appointment dates.
const DateLayout = "2006-01-02"

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@.+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern  = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// IsValidNic reports whether s is a usable national identity credential.
func IsValidNic(s string) bool {
	return utf8.RuneCountInString(s) >= 9
}

// IsValidName reports whether s is long enough to be a patient name.
func IsValidName(s string) bool {
	return utf8.RuneCountInString(s) >= 4
}

// IsValidEmail checks the local@domain shape only.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhone requires exactly ten decimal digits.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsValidDate checks the YYYY-MM-DD shape. Calendar validity is not checked.
func IsValidDate(s string) bool {
	return datePattern.MatchString(s)
}

// IsValidTime checks the HH:MM shape. Ranges are not checked, so "25:99" passes.
func IsValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// IsValidFutureDate reports whether s is a real calendar date that is not
// earlier than today's local date.
func IsValidFutureDate(s string) bool {
	return IsValidFutureDateAt(s, time.Now())
}

// IsValidFutureDateAt is IsValidFutureDate with an explicit "now".
func IsValidFutureDateAt(s string, now time.Time) bool {
	d, err := time.ParseInLocation(DateLayout, s, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !d.Before(today)
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// tagMessages maps custom tags to the text shown to the operator.
var tagMessages = map[string]string{
	"nic":         "must be at least 9 characters",
	"personname":  "must be at least 4 characters",
	"clinicemail": "must look like local@domain",
	"phone10":     "must be exactly 10 digits",
	"isodate":     "must be formatted as YYYY-MM-DD",
	"hhmm":        "must be formatted as HH:MM",
	"required":    "is required",
	"min":         "is out of range",
}

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		register := func(tag string, pred func(string) bool) {
			// Registration only fails for empty tags or nil funcs.
			_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return pred(fl.Field().String())
			})
		}
		register("nic", IsValidNic)
		register("personname", IsValidName)
		register("clinicemail", IsValidEmail)
		register("phone10", IsValidPhone)
		register("isodate", IsValidDate)
		register("hhmm", IsValidTime)
		validate = v
	})
	return validate
}

// Validate performs validation on a struct.
func Validate(s interface{}) error {
	return validatorInstance().Struct(s)
}

// FormatValidationError formats validation errors into "field: reason" strings.
func FormatValidationError(err error) []string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		msg, ok := tagMessages[e.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed %q check", e.Tag())
		}
		messages = append(messages, e.Field()+": "+msg)
	}
	return messages
}

// BindAndValidate binds the request body to a struct and validates it.
// If either step fails it sends a 400 response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, "Invalid request payload: "+err.Error())
		return false
	}
	if err := Validate(obj); err != nil {
		ValidationFailed(c, FormatValidationError(err))
		return false
	}
	return true
}
