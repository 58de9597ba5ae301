package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shambaledger/farm_ledger_app/internal/apperrors"
	portssvc "github.com/shambaledger/farm_ledger_app/internal/core/ports/services"
	"github.com/shambaledger/farm_ledger_app/internal/export"
	"github.com/shambaledger/farm_ledger_app/internal/middleware"
)

// exportHandler hands complete report view-models to the export collaborator.
type exportHandler struct {
	reportingService portssvc.ReportingService
}

// newExportHandler creates a new exportHandler
func newExportHandler(rs portssvc.ReportingService) *exportHandler {
	return &exportHandler{reportingService: rs}
}

// registerExportRoutes registers report export routes
func registerExportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newExportHandler(reportingService)

	exportGroup := rg.Group("/export")
	{
		exportGroup.GET("/:report", h.exportReport)
	}
}

// exportReport godoc
// @Summary Export a financial report
// @Description Renders a report in the requested format. Only csv is rendered; pdf and xlsx are recognized but unimplemented
// @Tags export
// @Produce text/csv
// @Param report path string true "Report name (trial-balance, balance-sheet, profit-and-loss, cash-flow)"
// @Param format query string false "Export format (csv, pdf, xlsx)" default(csv)
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} map[string]string "Unknown report or format"
// @Failure 501 {object} map[string]string "Format not implemented"
// @Failure 500 {object} map[string]string "Failed to export report"
// @Router /export/{report} [get]
func (h *exportHandler) exportReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reportName := c.Param("report")
	format := export.Format(c.DefaultQuery("format", string(export.FormatCSV)))

	var buf bytes.Buffer
	var err error
	switch reportName {
	case "trial-balance":
		tb, derr := h.reportingService.TrialBalance(c.Request.Context())
		if derr == nil {
			err = export.WriteTrialBalance(&buf, tb, format)
		} else {
			err = derr
		}
	case "balance-sheet":
		bs, derr := h.reportingService.BalanceSheet(c.Request.Context())
		if derr == nil {
			err = export.WriteBalanceSheet(&buf, bs, format)
		} else {
			err = derr
		}
	case "profit-and-loss":
		pl, derr := h.reportingService.ProfitAndLoss(c.Request.Context())
		if derr == nil {
			err = export.WriteProfitAndLoss(&buf, pl, format)
		} else {
			err = derr
		}
	case "cash-flow":
		cf, derr := h.reportingService.CashFlow(c.Request.Context())
		if derr == nil {
			err = export.WriteCashFlow(&buf, cf, format)
		} else {
			err = derr
		}
	default:
		logger.Warn("Unknown report requested for export", slog.String("report", reportName))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown report: " + reportName})
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnsupportedFormat):
			logger.Warn("Export format not implemented", slog.String("format", string(format)))
			c.JSON(http.StatusNotImplemented, gin.H{"error": "Export format not implemented: " + string(format)})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Unknown export format", slog.String("format", string(format)))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown export format: " + string(format)})
		default:
			logger.Error("Failed to export report", slog.String("report", reportName), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report"})
		}
		return
	}

	filename := reportName + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
	logger.Info("Report exported", slog.String("report", reportName), slog.Int("bytes", buf.Len()))
}
