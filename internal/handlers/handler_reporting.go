package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/shambaledger/farm_ledger_app/internal/core/ports/services"
	"github.com/shambaledger/farm_ledger_app/internal/dto"
	"github.com/shambaledger/farm_ledger_app/internal/middleware"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/cash-flow", h.getCashFlow)
	}
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Lists every chart account with debit/credit totals grouped by category, plus the ledger-wide balance check
// @Tags reports
// @Produce json
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate trial balance report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate trial balance report"})
		return
	}

	logger.Info("Trial balance report generated", slog.Bool("balanced", report.IsBalanced))
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Presents assets against liabilities plus equity with the tolerant balanced check and derived ratios
// @Tags reports
// @Produce json
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate balance sheet report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate balance sheet report"})
		return
	}

	logger.Info("Balance sheet report generated", slog.Bool("balanced", report.IsBalanced))
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Derives gross and net profit with margins as percentages of revenue
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate profit and loss report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate profit and loss report"})
		return
	}

	logger.Info("Profit and loss report generated", slog.String("net_profit", report.NetProfit.String()))
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// getCashFlow godoc
// @Summary Generate cash flow statement
// @Description Nets inflows against outflows per pre-classified activity; non-cash accounts are excluded
// @Tags reports
// @Produce json
// @Success 200 {object} dto.CashFlowResponse
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.CashFlow(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate cash flow statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate cash flow statement"})
		return
	}

	logger.Info("Cash flow statement generated", slog.String("net_cash_change", report.NetCashChange.String()))
	c.JSON(http.StatusOK, dto.ToCashFlowResponse(report))
}
