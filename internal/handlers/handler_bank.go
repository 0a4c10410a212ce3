package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SergioDaniel16/mipymes/internal/core/ports/services"
	"github.com/SergioDaniel16/mipymes/internal/dto"
	"github.com/SergioDaniel16/mipymes/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	defaultMovementPageSize = 50
	maxMovementPageSize     = 200
)

// bankHandler handles HTTP requests for the bank auxiliary ledger.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

func newBankHandler(bs portssvc.BankSvcFacade) *bankHandler {
	return &bankHandler{bankService: bs}
}

// registerBankRoutes registers routes for bank accounts and movements.
func registerBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newBankHandler(bankService)

	banks := rg.Group("/bank-accounts")
	{
		banks.POST("", h.registerBankAccount)
		banks.GET("", h.listBankAccounts)
		banks.GET("/summary", h.bankSummary)
		banks.GET("/:id", h.getBankAccount)
		banks.PUT("/:id/statement-balance", h.updateStatementBalance)
		banks.POST("/:id/movements", h.registerMovement)
		banks.GET("/:id/movements", h.listMovements)
		banks.GET("/:id/outstanding-checks", h.listOutstandingChecks)
		banks.POST("/movements/:movementID/reconcile", h.reconcileMovement)
	}
}

// registerBankAccount godoc
// @Summary Register a bank account
// @Description Creates a bank account; the opening balance seeds both the books and the statement balance
// @Tags bank
// @Accept json
// @Produce json
// @Param account body dto.RegisterBankAccountRequest true "Bank account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 409 {object} map[string]string "Account number already registered"
// @Router /bank-accounts [post]
func (h *bankHandler) registerBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.bankService.RegisterBankAccount(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register bank account")
		return
	}

	logger.Info("Bank account registered", slog.String("bank_account_id", account.BankAccountID))
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account))
}

// listBankAccounts godoc
// @Summary List bank accounts
// @Tags bank
// @Produce json
// @Param active query bool false "Only active accounts" default(true)
// @Success 200 {array} dto.BankAccountResponse
// @Router /bank-accounts [get]
func (h *bankHandler) listBankAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	activeOnly := c.DefaultQuery("active", "true") == "true"
	accounts, err := h.bankService.ListBankAccounts(c.Request.Context(), activeOnly)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list bank accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponses(accounts))
}

// bankSummary godoc
// @Summary Bank position summary
// @Description Aggregates books and statement balances across all active bank accounts
// @Tags bank
// @Produce json
// @Success 200 {object} domain.BankSummary
// @Router /bank-accounts/summary [get]
func (h *bankHandler) bankSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.bankService.BankSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate bank summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getBankAccount godoc
// @Summary Get a bank account by ID
// @Tags bank
// @Produce json
// @Param id path string true "Bank account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} map[string]string "Bank account not found"
// @Router /bank-accounts/{id} [get]
func (h *bankHandler) getBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.bankService.GetBankAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve bank account")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// updateStatementBalance godoc
// @Summary Record the statement balance
// @Description Sets the balance reported by the bank, used to derive the reconciliation difference
// @Tags bank
// @Accept json
// @Produce json
// @Param id path string true "Bank account ID"
// @Param request body dto.UpdateBankStatementBalanceRequest true "Statement balance"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} map[string]string "Bank account not found"
// @Router /bank-accounts/{id}/statement-balance [put]
func (h *bankHandler) updateStatementBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateBankStatementBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStatementBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.bankService.UpdateStatementBalance(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update statement balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// registerMovement godoc
// @Summary Record a bank movement
// @Description Records a movement and applies its signed effect to the books balance atomically
// @Tags bank
// @Accept json
// @Produce json
// @Param id path string true "Bank account ID"
// @Param movement body dto.RegisterBankMovementRequest true "Movement details"
// @Success 201 {object} dto.BankMovementResponse
// @Failure 400 {object} map[string]string "Unknown movement type or inactive account"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Router /bank-accounts/{id}/movements [post]
func (h *bankHandler) registerMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterBankMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterBankMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movement, account, err := h.bankService.RegisterMovement(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register bank movement")
		return
	}

	logger.Info("Bank movement registered",
		slog.String("movement_id", movement.MovementID),
		slog.String("bank_account_id", account.BankAccountID),
		slog.String("books_balance", account.BooksBalance.String()))
	c.JSON(http.StatusCreated, dto.ToBankMovementResponse(movement))
}

// listMovements godoc
// @Summary List movements of a bank account
// @Description Lists movements newest first; with from/to returns the period chronologically
// @Tags bank
// @Produce json
// @Param id path string true "Bank account ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Param from query string false "Period start (RFC 3339)"
// @Param to query string false "Period end (RFC 3339)"
// @Success 200 {array} dto.BankMovementResponse
// @Router /bank-accounts/{id}/movements [get]
func (h *bankHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankAccountID := c.Param("id")

	if c.Query("from") != "" || c.Query("to") != "" {
		from, err := time.Parse(time.RFC3339, c.Query("from"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date: " + err.Error()})
			return
		}
		to, err := time.Parse(time.RFC3339, c.Query("to"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date: " + err.Error()})
			return
		}
		movements, err := h.bankService.ListMovementsByDateRange(c.Request.Context(), bankAccountID, from, to)
		if err != nil {
			respondServiceError(c, logger, err, "Failed to list bank movements by date range")
			return
		}
		c.JSON(http.StatusOK, dto.ToBankMovementResponses(movements))
		return
	}

	limit, offset := paginationParams(c, defaultMovementPageSize, maxMovementPageSize)
	movements, err := h.bankService.ListMovements(c.Request.Context(), bankAccountID, limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list bank movements")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankMovementResponses(movements))
}

// listOutstandingChecks godoc
// @Summary List outstanding checks
// @Description Lists issued checks not yet seen on a bank statement, oldest first
// @Tags bank
// @Produce json
// @Param id path string true "Bank account ID"
// @Success 200 {array} dto.BankMovementResponse
// @Router /bank-accounts/{id}/outstanding-checks [get]
func (h *bankHandler) listOutstandingChecks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	movements, err := h.bankService.ListOutstandingChecks(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list outstanding checks")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankMovementResponses(movements))
}

// reconcileMovement godoc
// @Summary Reconcile a bank movement
// @Description Marks a pending movement as seen on the bank statement
// @Tags bank
// @Produce json
// @Param movementID path string true "Movement ID"
// @Param reconciledBy query string false "User reconciling the movement"
// @Success 200 {object} dto.BankMovementResponse
// @Failure 404 {object} map[string]string "Movement not found"
// @Failure 409 {object} map[string]string "Movement already reconciled"
// @Router /bank-accounts/movements/{movementID}/reconcile [post]
func (h *bankHandler) reconcileMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("movementID")

	movement, err := h.bankService.ReconcileMovement(c.Request.Context(), movementID, c.Query("reconciledBy"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reconcile bank movement")
		return
	}

	logger.Info("Bank movement reconciled", slog.String("movement_id", movementID))
	c.JSON(http.StatusOK, dto.ToBankMovementResponse(movement))
}
