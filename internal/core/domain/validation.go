package domain

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

const PhoneLength = 10

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateName accepts a non-empty name made of letters and spaces only.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return &ValidationError{Field: "name", Value: name, Reason: "must contain only letters and spaces"}
		}
	}
	return nil
}

func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Value: email, Reason: "must be a valid e-mail address"}
	}
	return nil
}

// ValidatePhone accepts exactly ten ASCII digits.
func ValidatePhone(phone string) error {
	if len(phone) != PhoneLength {
		return &ValidationError{Field: "phone", Value: phone, Reason: "must contain exactly 10 digits"}
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return &ValidationError{Field: "phone", Value: phone, Reason: "must contain exactly 10 digits"}
		}
	}
	return nil
}

// ValidateClient runs the client predicates in form order and returns the
// first failure.
func ValidateClient(c *Client) error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	if err := ValidateEmail(c.Email); err != nil {
		return err
	}
	return ValidatePhone(c.Phone)
}

func ValidateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "product name", Reason: "must not be empty"}
	}
	return nil
}

// ParsePrice parses a non-negative real number that fits a float64.
func ParsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "price", Value: raw, Reason: "must be a number"}
	}
	if price.IsNegative() {
		return decimal.Zero, &ValidationError{Field: "price", Value: raw, Reason: "must not be negative"}
	}
	// The store keeps prices as REAL.
	if f, _ := price.Float64(); math.IsInf(f, 0) {
		return decimal.Zero, &ValidationError{Field: "price", Value: raw, Reason: "is too large"}
	}
	return price, nil
}

func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return &ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}
	return nil
}
