package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/plantpass/pos-api/internal/application/service"
	"github.com/plantpass/pos-api/internal/presentation/http/dto/response"
)

// TrackingHandler handles order tracking, analytics and export.
type TrackingHandler struct {
	trackingService *service.TrackingService
	exportService   *service.ExportService
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(trackingService *service.TrackingService, exportService *service.ExportService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService, exportService: exportService}
}

// RecentUnpaid lists the most recent submitted-but-unpaid orders
func (h *TrackingHandler) RecentUnpaid(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	txs, err := h.trackingService.RecentUnpaid(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Recent unpaid orders retrieved", txs)
}

// SalesAnalytics returns the backend's running sales summary
func (h *TrackingHandler) SalesAnalytics(c *gin.Context) {
	analytics, err := h.trackingService.SalesAnalytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales analytics retrieved", analytics)
}

// ExportTransactions streams the transaction log as an .xlsx download
func (h *TrackingHandler) ExportTransactions(c *gin.Context) {
	data, filename, err := h.exportService.TransactionsWorkbook(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
