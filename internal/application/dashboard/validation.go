package dashboard

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/acme/dashboard-gateway/internal/domain/billing"
)

// msgMissingFields is the top-level message for any invoice form
// validation failure
const msgMissingFields = "Missing Fields. Failed to Update Invoice."

// InvoiceFormValues is the raw invoice form data as submitted by the
// presentation shell, before coercion
type InvoiceFormValues struct {
	CustomerID string
	Amount     string
	Status     string
}

// invoiceFormPayload is the declarative validation schema for invoice
// create/update. Amount is coerced to a number before the rules run.
type invoiceFormPayload struct {
	CustomerID string  `validate:"required"`
	Amount     float64 `validate:"gt=0"`
	Status     string  `validate:"oneof=pending paid"`
}

// invoiceFieldRules maps schema fields to their form key and the exact
// user-facing message. Field names and messages are part of the gateway's
// compatibility contract.
var invoiceFieldRules = map[string]struct {
	key     string
	message string
}{
	"CustomerID": {"customerId", "Please select a customer."},
	"Amount":     {"amount", "Please enter an amount greater than 0."},
	"Status":     {"status", "Please select an invoice status."},
}

var formValidator = validator.New()

// ValidateInvoiceForm coerces and validates raw invoice form values.
// On success it returns the payload with amount converted from display
// units to integer minor units. On failure it returns field-keyed error
// lists; no network call is made by the caller in that case.
func ValidateInvoiceForm(values InvoiceFormValues) (*billing.NewInvoice, map[string][]string) {
	payload := invoiceFormPayload{
		CustomerID: strings.TrimSpace(values.CustomerID),
		Status:     strings.TrimSpace(values.Status),
	}

	// Coercion failure leaves the amount at zero, which the gt=0 rule
	// then reports with the amount message.
	if amount, err := strconv.ParseFloat(strings.TrimSpace(values.Amount), 64); err == nil {
		payload.Amount = amount
	}

	if err := formValidator.Struct(payload); err != nil {
		fieldErrors := make(map[string][]string)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				rule, ok := invoiceFieldRules[fe.StructField()]
				if !ok {
					continue
				}
				fieldErrors[rule.key] = append(fieldErrors[rule.key], rule.message)
			}
		}
		return nil, fieldErrors
	}

	cents := decimal.NewFromFloat(payload.Amount).Mul(oneHundred).Round(0).IntPart()
	return &billing.NewInvoice{
		CustomerID: payload.CustomerID,
		Amount:     cents,
		Status:     billing.InvoiceStatus(payload.Status),
	}, nil
}
