package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme/dashboard-gateway/internal/domain/billing"
	"github.com/acme/dashboard-gateway/internal/domain/shared"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)
	return client, server
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{BaseURL: "http://localhost:8091"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10*time.Second, cfg.Timeout)

	cfg = Config{}
	assert.ErrorIs(t, cfg.Validate(), ErrMissingBaseURL)
}

func TestClient_BypassesUpstreamCaching(t *testing.T) {
	var cacheControl string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		cacheControl = r.Header.Get("Cache-Control")
		w.Write([]byte(`[]`))
	})

	var out []billing.Invoice
	err := client.get(context.Background(), "/invoices/latest", nil, &out)

	require.NoError(t, err)
	assert.Equal(t, "no-store", cacheControl)
}

func TestClient_Get_DecodesJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"inv-1","customerId":"cust-a","amount":5000,"status":"paid","date":"2024-01-02"}]`))
	})

	var out []billing.Invoice
	err := client.get(context.Background(), "/invoices/latest", nil, &out)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "inv-1", out[0].ID)
	assert.Equal(t, int64(5000), out[0].Amount)
}

func TestClient_Get_MalformedJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"oops`))
	})

	var out []billing.Invoice
	err := client.get(context.Background(), "/invoices/latest", nil, &out)

	assert.ErrorIs(t, err, shared.ErrInvalidResponse)
}

func TestClient_Get_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	var out billing.Invoice
	err := client.get(context.Background(), "/invoices/missing", nil, &out)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestClient_Get_ServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	var out billing.Invoice
	err := client.get(context.Background(), "/invoices/inv-1", nil, &out)

	assert.ErrorIs(t, err, shared.ErrRequestFailed)
}

func TestClient_Get_BackendUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	var out billing.Invoice
	err = client.get(context.Background(), "/invoices/inv-1", nil, &out)

	assert.ErrorIs(t, err, shared.ErrBackendUnavailable)
}

func TestClient_GetInt_BareNumber(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`42`))
	})

	n, err := client.getInt(context.Background(), "/invoices/numberOfInvoices", nil)

	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestClient_GetInt_QuotedNumber(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("\"1250\"\n"))
	})

	n, err := client.getInt(context.Background(), "/invoices/sumOfPaidInvoices", nil)

	require.NoError(t, err)
	assert.Equal(t, int64(1250), n)
}

func TestClient_GetInt_NotANumber(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":42}`))
	})

	_, err := client.getInt(context.Background(), "/invoices/numberOfInvoices", nil)

	assert.ErrorIs(t, err, shared.ErrInvalidResponse)
}

func TestInvoiceClient_ListFiltered_SendsQueryAndPage(t *testing.T) {
	var gotPath, gotQuery, gotPage string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		gotPage = r.URL.Query().Get("currentPage")
		w.Write([]byte(`[]`))
	})

	invoices := NewInvoiceClient(client)
	_, err := invoices.ListFiltered(context.Background(), "acme", 2)

	require.NoError(t, err)
	assert.Equal(t, "/invoices/getFilteredInvoices", gotPath)
	assert.Equal(t, "acme", gotQuery)
	assert.Equal(t, "2", gotPage)
}

func TestInvoiceClient_Create_SendsFormFields(t *testing.T) {
	var gotPath string
	var gotParams map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotParams = r.URL.Query()
		w.Write([]byte(`{}`))
	})

	invoices := NewInvoiceClient(client)
	err := invoices.Create(context.Background(), billing.NewInvoice{
		CustomerID: "cust-a",
		Amount:     5000,
		Status:     billing.InvoiceStatusPending,
	})

	require.NoError(t, err)
	assert.Equal(t, "/invoices/save", gotPath)
	assert.Equal(t, []string{"cust-a"}, gotParams["customerId"])
	assert.Equal(t, []string{"5000"}, gotParams["amount"])
	assert.Equal(t, []string{"pending"}, gotParams["status"])
	assert.NotContains(t, gotParams, "id")
}

func TestInvoiceClient_Update_SendsID(t *testing.T) {
	var gotPath string
	var gotParams map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotParams = r.URL.Query()
		w.Write([]byte(`{}`))
	})

	invoices := NewInvoiceClient(client)
	err := invoices.Update(context.Background(), "inv-1", billing.NewInvoice{
		CustomerID: "cust-a",
		Amount:     1999,
		Status:     billing.InvoiceStatusPaid,
	})

	require.NoError(t, err)
	assert.Equal(t, "/invoices/update", gotPath)
	assert.Equal(t, []string{"inv-1"}, gotParams["id"])
	assert.Equal(t, []string{"1999"}, gotParams["amount"])
}

func TestInvoiceClient_Delete(t *testing.T) {
	var gotPath, gotID string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotID = r.URL.Query().Get("id")
		w.Write([]byte(`{}`))
	})

	invoices := NewInvoiceClient(client)
	err := invoices.Delete(context.Background(), "inv-1")

	require.NoError(t, err)
	assert.Equal(t, "/invoices/delete", gotPath)
	assert.Equal(t, "inv-1", gotID)
}

func TestCustomerClient_ListWithTotals_DecodesMongoID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/getFilteredAggregation", r.URL.Path)
		assert.Equal(t, "acme", r.URL.Query().Get("query"))
		w.Write([]byte(`[{"_id":"cust-a","name":"Acme Corp","email":"billing@acme.test","imageUrl":"/customers/acme.png","total_invoices":4,"total_pending":123456,"total_paid":99}]`))
	})

	customers := NewCustomerClient(client)
	totals, err := customers.ListWithTotals(context.Background(), "acme")

	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, "cust-a", totals[0].ID)
	assert.Equal(t, int64(123456), totals[0].TotalPending)
}

func TestUserClient_FindByEmail_EscapesPath(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"id":"user-1","name":"Test User","email":"user@example.com","password":"$2a$10$hash"}`))
	})

	users := NewUserClient(client)
	user, err := users.FindByEmail(context.Background(), "user@example.com")

	require.NoError(t, err)
	assert.Equal(t, "/users/email/user@example.com", gotPath)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
}
