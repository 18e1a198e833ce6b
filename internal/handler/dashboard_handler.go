package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/koperasindo/koperasi-api/internal/service"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

// DashboardHandler serves the console overview aggregates
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary returns store totals, request status counts and monthly aggregates
// GET /v1/dashboard/summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"summary": summary})
}
