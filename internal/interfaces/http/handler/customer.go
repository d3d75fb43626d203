package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/acme/dashboard-gateway/internal/application/dashboard"
)

// CustomerHandler serves the customer dropdown and table
type CustomerHandler struct {
	BaseHandler
	service *dashboard.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(service *dashboard.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// List handles GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.service.Customers(c.Request.Context())
	if err != nil {
		h.FetchFailed(c, err)
		return
	}
	h.Success(c, customers)
}

// Table handles GET /customers/table?query=
func (h *CustomerHandler) Table(c *gin.Context) {
	rows, err := h.service.FilteredCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.FetchFailed(c, err)
		return
	}
	h.Success(c, rows)
}
