package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the input format for all dates (mm-dd-YYYY)
const DateLayout = "01-02-2006"

var phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

// New builds the validator shared by the services, with the custom rules the
// request structs reference registered.
func New() *validator.Validate {
	v := validator.New()
	// Registration only fails for a blank tag name.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidPhoneNumber(fl.Field().String())
	})
	return v
}

// ValidPhoneNumber reports whether s is in XXX-XXX-XXXX format
func ValidPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

// ValidCardNumber reports whether s is a 13-19 character card number with no
// separators
func ValidCardNumber(s string) bool {
	if len(s) < 13 || len(s) > 19 {
		return false
	}
	return !strings.ContainsAny(s, " -")
}

// ParseDate converts an mm-dd-YYYY string to a point in time in the local
// zone, midnight. Rejects impossible dates like 02-30-2024.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// ParseProductType normalizes a product type answer. Accepts "equipment" or
// "service" in any case and returns the stored capitalized form.
func ParseProductType(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equipment":
		return "Equipment", true
	case "service":
		return "Service", true
	}
	return "", false
}
