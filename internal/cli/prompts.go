package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"customer-tracker/internal/database/models"
	"customer-tracker/internal/validation"
)

// readLine reads one line of input, trimmed. ok is false once input is
// exhausted, which ends the session the same way option 14 does.
func (m *Menu) readLine(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptPhone loops until a phone number in XXX-XXX-XXXX format is entered
func (m *Menu) promptPhone() (string, bool) {
	for {
		phone, ok := m.readLine("Phone number (XXX-XXX-XXXX format): ")
		if !ok {
			return "", false
		}
		if validation.ValidPhoneNumber(phone) {
			return phone, true
		}
	}
}

// promptCard loops until a card number of valid length is entered
func (m *Menu) promptCard() (string, bool) {
	for {
		card, ok := m.readLine("Customer's card number (enter number with no dashes): ")
		if !ok {
			return "", false
		}
		if validation.ValidCardNumber(card) {
			return card, true
		}
	}
}

// promptDate loops until a date in mm-dd-YYYY format is entered
func (m *Menu) promptDate(label string) (time.Time, bool) {
	for {
		raw, ok := m.readLine(label)
		if !ok {
			return time.Time{}, false
		}
		date, err := validation.ParseDate(raw)
		if err == nil {
			return date, true
		}
	}
}

// promptProductType loops until "equipment" or "service" is entered
func (m *Menu) promptProductType() (models.ProductType, bool) {
	for {
		raw, ok := m.readLine("Equipment or Service: ")
		if !ok {
			return "", false
		}
		if parsed, valid := validation.ParseProductType(raw); valid {
			return models.ProductType(parsed), true
		}
	}
}

// promptPrice loops until a number is entered, rounded to cents
func (m *Menu) promptPrice(label string) (float64, bool) {
	for {
		raw, ok := m.readLine(label)
		if !ok {
			return 0, false
		}
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(m.out, "Enter a number!")
			continue
		}
		return roundCents(price), true
	}
}

// promptID loops until an integer is entered
func (m *Menu) promptID(label string) (uint, bool) {
	for {
		raw, ok := m.readLine(label)
		if !ok {
			return 0, false
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			fmt.Fprintln(m.out, "Enter a number!")
			continue
		}
		return uint(id), true
	}
}

// roundCents rounds a price to two decimal places
func roundCents(price float64) float64 {
	parsed, err := strconv.ParseFloat(strconv.FormatFloat(price, 'f', 2, 64), 64)
	if err != nil {
		return price
	}
	return parsed
}
