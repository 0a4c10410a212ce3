package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	portssvc "github.com/SergioDaniel16/mipymes/internal/core/ports/services"
	"github.com/SergioDaniel16/mipymes/internal/dto"
	"github.com/SergioDaniel16/mipymes/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests for the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers routes for the chart of accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.registerAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.GET("/code/:code", h.getAccountByCode)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deactivateAccount)
	}
}

// registerAccount godoc
// @Summary Register a new account in the catalog
// @Description Creates a new account with its code, type, nature and opening balance
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.RegisterAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input or nature/type mismatch"
// @Failure 409 {object} map[string]string "Account code already registered"
// @Router /accounts [post]
func (h *accountHandler) registerAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.RegisterAccount(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register account")
		return
	}

	logger.Info("Account registered", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Lists accounts ordered by code; filter with active, type or q
// @Tags accounts
// @Produce json
// @Param active query bool false "Only active accounts" default(true)
// @Param type query string false "Filter by account type"
// @Param q query string false "Search by name"
// @Success 200 {array} dto.AccountResponse
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if query := c.Query("q"); query != "" {
		accounts, err := h.accountService.SearchAccounts(c.Request.Context(), query)
		if err != nil {
			respondServiceError(c, logger, err, "Failed to search accounts")
			return
		}
		c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
		return
	}

	if accountType := c.Query("type"); accountType != "" {
		accounts, err := h.accountService.ListAccountsByType(c.Request.Context(), domain.AccountType(accountType))
		if err != nil {
			respondServiceError(c, logger, err, "Failed to list accounts by type")
			return
		}
		c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
		return
	}

	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "true"))
	accounts, err := h.accountService.ListAccounts(c.Request.Context(), activeOnly)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getAccountByCode godoc
// @Summary Get an account by catalog code
// @Tags accounts
// @Produce json
// @Param code path string true "Account code"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/code/{code} [get]
func (h *accountHandler) getAccountByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.accountService.GetAccountByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates catalog fields of an account; the balance is only changed by posting entries
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Param updatedBy query string false "User performing the update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("id"), req, c.Query("updatedBy"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update account")
		return
	}

	logger.Info("Account updated", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Marks an account inactive; its history and balance remain
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Param requestedBy query string true "User performing the deactivation"
// @Success 204 "No content"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{id} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	if err := h.accountService.DeactivateAccount(c.Request.Context(), accountID, c.Query("requestedBy")); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate account")
		return
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	c.Status(http.StatusNoContent)
}
