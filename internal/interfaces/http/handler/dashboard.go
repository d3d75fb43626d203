package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/acme/dashboard-gateway/internal/application/dashboard"
)

// DashboardHandler serves the overview widgets
type DashboardHandler struct {
	BaseHandler
	service *dashboard.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// LatestInvoices handles GET /dashboard/latest-invoices
func (h *DashboardHandler) LatestInvoices(c *gin.Context) {
	views, err := h.service.LatestInvoices(c.Request.Context())
	if err != nil {
		h.FetchFailed(c, err)
		return
	}
	h.Success(c, views)
}

// Cards handles GET /dashboard/cards
func (h *DashboardHandler) Cards(c *gin.Context) {
	cards, err := h.service.CardData(c.Request.Context())
	if err != nil {
		h.FetchFailed(c, err)
		return
	}
	h.Success(c, cards)
}

// Revenues handles GET /dashboard/revenues
func (h *DashboardHandler) Revenues(c *gin.Context) {
	revenues, err := h.service.Revenues(c.Request.Context())
	if err != nil {
		h.FetchFailed(c, err)
		return
	}
	h.Success(c, revenues)
}
