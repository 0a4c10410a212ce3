package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/SergioDaniel16/mipymes/internal/core/ports/services"
	"github.com/SergioDaniel16/mipymes/internal/dto"
	"github.com/SergioDaniel16/mipymes/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	defaultEntryPageSize = 50
	maxEntryPageSize     = 200
)

// journalHandler handles HTTP requests for the journal.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers routes for journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:id", h.getEntry)
		entries.GET("/number/:number", h.getEntryByNumber)
		entries.POST("/:id/post", h.postEntry)
	}
}

// createEntry godoc
// @Summary Record a journal entry
// @Description Records a balanced entry in DRAFT status and assigns the next sequential entry number
// @Tags journal
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Entry with at least two lines"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Unbalanced entry or invalid lines"
// @Router /journal/entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create journal entry")
		return
	}

	logger.Info("Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.Int64("entry_number", entry.EntryNumber))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists entries newest first, excluding voided ones; filter with from/to dates or q
// @Tags journal
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Param from query string false "Period start (RFC 3339)"
// @Param to query string false "Period end (RFC 3339)"
// @Param q query string false "Search by description"
// @Success 200 {array} dto.JournalEntryResponse
// @Router /journal/entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if query := c.Query("q"); query != "" {
		entries, err := h.journalService.SearchEntries(c.Request.Context(), query)
		if err != nil {
			respondServiceError(c, logger, err, "Failed to search journal entries")
			return
		}
		c.JSON(http.StatusOK, dto.ToJournalEntryResponses(entries))
		return
	}

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
		entries, err := h.journalService.ListEntriesByDateRange(c.Request.Context(), from, to)
		if err != nil {
			respondServiceError(c, logger, err, "Failed to list journal entries by date range")
			return
		}
		c.JSON(http.StatusOK, dto.ToJournalEntryResponses(entries))
		return
	}

	limit, offset := paginationParams(c, defaultEntryPageSize, maxEntryPageSize)
	entries, err := h.journalService.ListEntries(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponses(entries))
}

// getEntry godoc
// @Summary Get a journal entry by ID
// @Description Retrieves an entry with its lines
// @Tags journal
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /journal/entries/{id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// getEntryByNumber godoc
// @Summary Get a journal entry by its sequential number
// @Tags journal
// @Produce json
// @Param number path int true "Entry number"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /journal/entries/number/{number} [get]
func (h *journalHandler) getEntryByNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry number: " + c.Param("number")})
		return
	}

	entry, err := h.journalService.GetEntryByNumber(c.Request.Context(), number)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// postEntry godoc
// @Summary Post a journal entry to the ledger
// @Description Applies every line to its account balance and transitions the entry to POSTED, atomically
// @Tags journal
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param request body dto.PostJournalEntryRequest true "Actor posting the entry"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry already posted or void"
// @Router /journal/entries/{id}/post [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	var req dto.PostJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.journalService.PostEntry(c.Request.Context(), entryID, req.PostedBy)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post journal entry")
		return
	}

	logger.Info("Journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.Int64("entry_number", entry.EntryNumber))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// paginationParams reads limit/offset query parameters, clamping the limit.
func paginationParams(c *gin.Context, defaultLimit, maxLimit int) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
