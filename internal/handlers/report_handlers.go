package handlers

import (
	"net/http"

	"resto_admin_backend/internal/services"
	"resto_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetDashboardOverview returns today's sales, order count, occupancy,
// active staff, and the top-products ranking.
func (h *ReportHandler) GetDashboardOverview(c *gin.Context) {
	overview, err := h.reportService.GetOverview(c.Request.Context())
	if err != nil {
		if respondRemoteFailure(c, err, "GetDashboardOverview") {
			return
		}
		utils.LogError(err, "GetDashboardOverview: Error from reportService.GetOverview")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build dashboard overview.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetSalesReport returns the payment breakdown, cash drawer totals, and
// the order list sorted most recent first.
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	report, err := h.reportService.GetSalesReport(c.Request.Context())
	if err != nil {
		if respondRemoteFailure(c, err, "GetSalesReport") {
			return
		}
		utils.LogError(err, "GetSalesReport: Error from reportService.GetSalesReport")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build sales report.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, report)
}
