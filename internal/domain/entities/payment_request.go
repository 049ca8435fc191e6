package entities

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// PaymentRequest is the input of a request-to-pay. It is never persisted on its own.
type PaymentRequest struct {
	Amount       decimal.Decimal
	Currency     string `validate:"required,len=3,alpha"`
	Payer        string `validate:"required,number,min=6,max=15"`
	ExternalID   string `validate:"required,max=64"`
	PayerMessage string `validate:"max=160"`
	PayeeNote    string `validate:"max=160"`
}

// NormalizePayer strips whitespace and a leading '+' from a phone number.
func NormalizePayer(payer string) string {
	payer = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, payer)
	return strings.TrimLeft(payer, "+")
}

// Normalized returns a copy with the payer normalized and text fields trimmed.
func (r PaymentRequest) Normalized() PaymentRequest {
	r.Payer = NormalizePayer(r.Payer)
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	r.ExternalID = strings.TrimSpace(r.ExternalID)
	r.PayerMessage = strings.TrimSpace(r.PayerMessage)
	r.PayeeNote = strings.TrimSpace(r.PayeeNote)
	return r
}

// Validate checks a normalized request. Every failure is a validation error.
func (r PaymentRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return NewValidationError("amount must be greater than zero")
	}
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return NewValidationError(fmt.Sprintf("invalid %s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
		}
		return NewValidationError(err.Error())
	}
	return nil
}

// ValidatePayer checks a single, already normalized payer identifier.
func ValidatePayer(payer string) error {
	if err := validate.Var(payer, "required,number,min=6,max=15"); err != nil {
		return NewValidationError("invalid payer")
	}
	return nil
}
