package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme/dashboard-gateway/internal/domain/billing"
)

func TestValidateInvoiceForm_Valid(t *testing.T) {
	invoice, fieldErrors := ValidateInvoiceForm(InvoiceFormValues{
		CustomerID: "cust-1",
		Amount:     "50",
		Status:     "paid",
	})

	require.Nil(t, fieldErrors)
	require.NotNil(t, invoice)
	assert.Equal(t, "cust-1", invoice.CustomerID)
	assert.Equal(t, int64(5000), invoice.Amount)
	assert.Equal(t, billing.InvoiceStatusPaid, invoice.Status)
}

func TestValidateInvoiceForm_FractionalAmount(t *testing.T) {
	invoice, fieldErrors := ValidateInvoiceForm(InvoiceFormValues{
		CustomerID: "cust-1",
		Amount:     "19.99",
		Status:     "pending",
	})

	require.Nil(t, fieldErrors)
	assert.Equal(t, int64(1999), invoice.Amount)
}

func TestValidateInvoiceForm_EmptyForm(t *testing.T) {
	invoice, fieldErrors := ValidateInvoiceForm(InvoiceFormValues{})

	assert.Nil(t, invoice)
	require.NotNil(t, fieldErrors)
	assert.Equal(t, []string{"Please select a customer."}, fieldErrors["customerId"])
	assert.Equal(t, []string{"Please enter an amount greater than 0."}, fieldErrors["amount"])
	assert.Equal(t, []string{"Please select an invoice status."}, fieldErrors["status"])
}

func TestValidateInvoiceForm_MissingCustomerAndAmount(t *testing.T) {
	invoice, fieldErrors := ValidateInvoiceForm(InvoiceFormValues{
		CustomerID: "",
		Amount:     "0",
		Status:     "pending",
	})

	assert.Nil(t, invoice)
	require.NotNil(t, fieldErrors)
	assert.Contains(t, fieldErrors, "customerId")
	assert.Contains(t, fieldErrors, "amount")
	assert.NotContains(t, fieldErrors, "status")
}

func TestValidateInvoiceForm_UnparsableAmount(t *testing.T) {
	invoice, fieldErrors := ValidateInvoiceForm(InvoiceFormValues{
		CustomerID: "cust-1",
		Amount:     "not-a-number",
		Status:     "paid",
	})

	assert.Nil(t, invoice)
	require.NotNil(t, fieldErrors)
	assert.Equal(t, []string{"Please enter an amount greater than 0."}, fieldErrors["amount"])
}

func TestValidateInvoiceForm_NegativeAmount(t *testing.T) {
	invoice, fieldErrors := ValidateInvoiceForm(InvoiceFormValues{
		CustomerID: "cust-1",
		Amount:     "-10",
		Status:     "paid",
	})

	assert.Nil(t, invoice)
	require.NotNil(t, fieldErrors)
	assert.Contains(t, fieldErrors, "amount")
}

func TestValidateInvoiceForm_UnknownStatus(t *testing.T) {
	invoice, fieldErrors := ValidateInvoiceForm(InvoiceFormValues{
		CustomerID: "cust-1",
		Amount:     "25",
		Status:     "overdue",
	})

	assert.Nil(t, invoice)
	require.NotNil(t, fieldErrors)
	assert.Equal(t, []string{"Please select an invoice status."}, fieldErrors["status"])
}

func TestValidateInvoiceForm_TrimsWhitespace(t *testing.T) {
	invoice, fieldErrors := ValidateInvoiceForm(InvoiceFormValues{
		CustomerID: "  cust-1  ",
		Amount:     " 12.50 ",
		Status:     " paid ",
	})

	require.Nil(t, fieldErrors)
	assert.Equal(t, "cust-1", invoice.CustomerID)
	assert.Equal(t, int64(1250), invoice.Amount)
}
