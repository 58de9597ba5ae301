package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shambaledger/farm_ledger_app/internal/apperrors"
	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	portssvc "github.com/shambaledger/farm_ledger_app/internal/core/ports/services"
	"github.com/shambaledger/farm_ledger_app/internal/dto"
	"github.com/shambaledger/farm_ledger_app/internal/middleware"
)

// ledgerHandler handles HTTP requests for the ledger snapshot.
type ledgerHandler struct {
	ledgerService portssvc.LedgerService
	viewService   portssvc.EntryViewService
}

// newLedgerHandler creates a new ledgerHandler
func newLedgerHandler(ls portssvc.LedgerService, vs portssvc.EntryViewService) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls, viewService: vs}
}

// registerLedgerRoutes registers routes related to the ledger snapshot
func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerService, vs portssvc.EntryViewService) {
	h := newLedgerHandler(ls, vs)

	ledgerGroup := rg.Group("/ledger")
	{
		ledgerGroup.POST("/entries", h.ingestEntries)
		ledgerGroup.GET("/entries", h.listEntries)
		ledgerGroup.GET("/validation", h.validateLedger)
	}
}

// ingestEntries godoc
// @Summary Ingest a batch of ledger entries
// @Description Validates and stores double-entry ledger lines; the whole batch is rejected on the first malformed line
// @Tags ledger
// @Accept json
// @Produce json
// @Param entries body dto.CreateEntriesRequest true "Entries to ingest"
// @Success 201 {object} map[string]int
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to store entries"
// @Router /ledger/entries [post]
func (h *ledgerHandler) ingestEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid ingest request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	entries := make([]domain.LedgerEntry, 0, len(req.Entries))
	for i, line := range req.Entries {
		entry, err := line.ToDomain()
		if err != nil {
			logger.Warn("Invalid entry in ingest request", slog.Int("index", i), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		entries = append(entries, entry)
	}

	count, err := h.ledgerService.IngestEntries(c.Request.Context(), entries, req.Replace)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidEntry) || errors.Is(err, apperrors.ErrUnknownAccount) {
			logger.Warn("Ingest batch rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to ingest entries", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store ledger entries"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ingested": count})
}

// listEntries godoc
// @Summary List ledger entries
// @Description Returns the filtered, sorted view of the entry snapshot
// @Tags ledger
// @Produce json
// @Param q query string false "Case-insensitive substring match on account, category and description"
// @Param category query string false "Category filter (ASSETS, LIABILITIES, EQUITY, REVENUE, EXPENSES)"
// @Param range query string false "Date range (ALL, LAST_7_DAYS, LAST_30_DAYS, LAST_90_DAYS, THIS_YEAR)" default(ALL)
// @Param sortBy query string false "Sort field (DATE, ACCOUNT, DESCRIPTION, CATEGORY, BALANCE, DEBIT, CREDIT)" default(DATE)
// @Param order query string false "Sort order (ASC, DESC)" default(ASC)
// @Success 200 {array} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid view parameters"
// @Failure 500 {object} map[string]string "Failed to build view"
// @Router /ledger/entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, err := viewParamsFromQuery(c)
	if err != nil {
		logger.Warn("Invalid view parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.viewService.ViewEntries(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected view parameters", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build entry view", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build entry view"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// validateLedger godoc
// @Summary Validate the ledger
// @Description Runs the exact debits-equal-credits check; an imbalance is a 200 with isBalanced=false, never an error
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.LedgerCheckResponse
// @Failure 500 {object} map[string]string "Failed to validate ledger"
// @Router /ledger/validation [get]
func (h *ledgerHandler) validateLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	check, err := h.ledgerService.ValidateLedger(c.Request.Context())
	if err != nil {
		logger.Error("Failed to validate ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate ledger"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerCheckResponse(check))
}

// viewParamsFromQuery parses the view controls, falling back to the defaults
// the screens open with. Enum values are matched case-insensitively.
func viewParamsFromQuery(c *gin.Context) (domain.ViewParams, error) {
	params := domain.DefaultViewParams()
	params.Query = c.Query("q")

	if category := c.Query("category"); category != "" && !strings.EqualFold(category, "all") {
		params.Category = domain.AccountCategory(strings.ToUpper(category))
	}
	if dateRange := c.Query("range"); dateRange != "" {
		params.Range = domain.DateRange(strings.ToUpper(dateRange))
	}
	if sortBy := c.Query("sortBy"); sortBy != "" {
		params.SortBy = domain.SortField(strings.ToUpper(sortBy))
	}
	if order := c.Query("order"); order != "" {
		params.Order = domain.SortOrder(strings.ToUpper(order))
	}
	return params, nil
}
