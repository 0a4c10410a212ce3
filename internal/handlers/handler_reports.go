package handlers

import (
	"net/http"
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	portssvc "github.com/SergioDaniel16/mipymes/internal/core/ports/services"
	"github.com/SergioDaniel16/mipymes/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportsHandler handles HTTP requests for financial reports. Reports are
// served as their domain structures; they carry no client input back.
type reportsHandler struct {
	reportingService portssvc.ReportingService
}

func newReportsHandler(rs portssvc.ReportingService) *reportsHandler {
	return &reportsHandler{reportingService: rs}
}

// registerReportRoutes registers routes for financial reports.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportsHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/income-statement", h.incomeStatement)
	}
}

// asOfParam parses the asOf query parameter, defaulting to now.
func asOfParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("asOf")
	if raw == "" {
		return time.Now().UTC(), true
	}
	asOf, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date: " + err.Error()})
		return time.Time{}, false
	}
	return asOf, true
}

// trialBalance godoc
// @Summary Trial balance
// @Description Generates the trial balance from current account balances
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (RFC 3339), defaults to now"
// @Param type query string false "Restrict to one account type (ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE)"
// @Param nonZero query bool false "Skip zero-balance accounts, defaults to true"
// @Success 200 {object} domain.TrialBalance
// @Router /reports/trial-balance [get]
func (h *reportsHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOf, ok := asOfParam(c)
	if !ok {
		return
	}
	typeFilter := domain.AccountType(c.Query("type"))
	nonZeroOnly := c.DefaultQuery("nonZero", "true") == "true"

	report, err := h.reportingService.TrialBalance(c.Request.Context(), asOf, typeFilter, nonZeroOnly)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate trial balance")
		return
	}
	c.JSON(http.StatusOK, report)
}

// balanceSheet godoc
// @Summary Balance sheet
// @Description Generates the statement of financial position
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (RFC 3339), defaults to now"
// @Success 200 {object} domain.BalanceSheet
// @Router /reports/balance-sheet [get]
func (h *reportsHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOf, ok := asOfParam(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, report)
}

// incomeStatement godoc
// @Summary Income statement
// @Description Generates the profit and loss statement for a period; without from/to it covers the year to date
// @Tags reports
// @Produce json
// @Param from query string false "Period start (RFC 3339)"
// @Param to query string false "Period end (RFC 3339)"
// @Success 200 {object} domain.IncomeStatement
// @Router /reports/income-statement [get]
func (h *reportsHandler) incomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if c.Query("from") == "" && c.Query("to") == "" {
		report, err := h.reportingService.YearToDateIncomeStatement(c.Request.Context())
		if err != nil {
			respondServiceError(c, logger, err, "Failed to generate income statement")
			return
		}
		c.JSON(http.StatusOK, report)
		return
	}

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

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate income statement")
		return
	}
	c.JSON(http.StatusOK, report)
}
