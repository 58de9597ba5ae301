package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shambaledger/farm_ledger_app/internal/apperrors"
	portssvc "github.com/shambaledger/farm_ledger_app/internal/core/ports/services"
	"github.com/shambaledger/farm_ledger_app/internal/dto"
	"github.com/shambaledger/farm_ledger_app/internal/middleware"
)

// accountHandler handles HTTP requests for the chart of accounts
type accountHandler struct {
	accountService portssvc.AccountService
}

// newAccountHandler creates a new accountHandler
func newAccountHandler(as portssvc.AccountService) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers routes related to the chart of accounts
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountService) {
	h := newAccountHandler(accountService)

	accountsGroup := rg.Group("/accounts")
	{
		accountsGroup.GET("", h.listAccounts)
		accountsGroup.GET("/:name", h.getAccount)
	}
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Returns every account with its category, subcategory, normal side and cash flow activity
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list chart of accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// getAccount godoc
// @Summary Classify an account name
// @Description Maps an account name to its chart entry; unknown names are a 404, never a silent default
// @Tags accounts
// @Produce json
// @Param name path string true "Account name"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Unknown account"
// @Failure 500 {object} map[string]string "Failed to classify account"
// @Router /accounts/{name} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	account, err := h.accountService.Classify(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownAccount) {
			logger.Warn("Unknown account requested", slog.String("account", name))
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown account: " + name})
		} else {
			logger.Error("Failed to classify account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to classify account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
