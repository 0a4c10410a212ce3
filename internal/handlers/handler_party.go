package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	portssvc "github.com/SergioDaniel16/mipymes/internal/core/ports/services"
	"github.com/SergioDaniel16/mipymes/internal/dto"
	"github.com/SergioDaniel16/mipymes/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partyHandler handles HTTP requests for one party kind. The same handler
// serves the /customers and /suppliers groups, bound to its kind.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
	kind         domain.PartyKind
}

func newPartyHandler(ps portssvc.PartySvcFacade, kind domain.PartyKind) *partyHandler {
	return &partyHandler{partyService: ps, kind: kind}
}

// registerPartyRoutes registers the customer, supplier and document routes.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	registerPartyKindRoutes(rg.Group("/customers"), newPartyHandler(partyService, domain.CustomerParty))
	registerPartyKindRoutes(rg.Group("/suppliers"), newPartyHandler(partyService, domain.SupplierParty))

	h := newPartyHandler(partyService, "")
	documents := rg.Group("/documents")
	{
		documents.GET("/:id", h.getDocument)
		documents.GET("/number/:number", h.getDocumentByNumber)
		documents.POST("/:id/payments", h.applyPayment)
	}
}

func registerPartyKindRoutes(g *gin.RouterGroup, h *partyHandler) {
	g.POST("", h.registerParty)
	g.GET("", h.listParties)
	g.GET("/open-documents", h.listOpenDocuments)
	g.GET("/overdue-documents", h.listOverdueDocuments)
	g.GET("/aging", h.agingSummary)
	g.GET("/:id", h.getParty)
	g.GET("/code/:code", h.getPartyByCode)
	g.PUT("/:id", h.updateParty)
	g.DELETE("/:id", h.deactivateParty)
	g.GET("/:id/documents", h.listDocumentsByParty)
	g.POST("/:id/documents", h.registerDocument)
}

// registerParty godoc
// @Summary Register a customer or supplier
// @Tags parties
// @Accept json
// @Produce json
// @Param party body dto.RegisterPartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 409 {object} map[string]string "Party code already registered for the kind"
// @Router /customers [post]
func (h *partyHandler) registerParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	req.Kind = h.kind

	party, err := h.partyService.RegisterParty(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register party")
		return
	}

	logger.Info("Party registered",
		slog.String("party_id", party.PartyID),
		slog.String("kind", string(party.Kind)),
		slog.String("code", party.Code))
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List customers or suppliers
// @Description Lists parties of the group's kind; filter with active or q
// @Tags parties
// @Produce json
// @Param active query bool false "Only active parties" default(true)
// @Param q query string false "Search by name"
// @Success 200 {array} dto.PartyResponse
// @Router /customers [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if query := c.Query("q"); query != "" {
		parties, err := h.partyService.SearchParties(c.Request.Context(), h.kind, query)
		if err != nil {
			respondServiceError(c, logger, err, "Failed to search parties")
			return
		}
		c.JSON(http.StatusOK, dto.ToPartyResponses(parties))
		return
	}

	activeOnly := c.DefaultQuery("active", "true") == "true"
	parties, err := h.partyService.ListParties(c.Request.Context(), h.kind, activeOnly)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list parties")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponses(parties))
}

// getParty godoc
// @Summary Get a party by ID
// @Tags parties
// @Produce json
// @Param id path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Router /customers/{id} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	party, err := h.partyService.GetPartyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// getPartyByCode godoc
// @Summary Get a party of the group's kind by code
// @Tags parties
// @Produce json
// @Param code path string true "Party code"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Router /customers/code/{code} [get]
func (h *partyHandler) getPartyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	party, err := h.partyService.GetPartyByCode(c.Request.Context(), h.kind, c.Param("code"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// updateParty godoc
// @Summary Update a party
// @Description Updates master data of a party; the balance only changes through documents and payments
// @Tags parties
// @Accept json
// @Produce json
// @Param id path string true "Party ID"
// @Param party body dto.UpdatePartyRequest true "Fields to update"
// @Param updatedBy query string false "User performing the update"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Router /customers/{id} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), c.Param("id"), req, c.Query("updatedBy"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update party")
		return
	}

	logger.Info("Party updated", slog.String("party_id", party.PartyID))
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// deactivateParty godoc
// @Summary Deactivate a party
// @Description Marks a party inactive; its documents remain
// @Tags parties
// @Produce json
// @Param id path string true "Party ID"
// @Param requestedBy query string true "User performing the deactivation"
// @Success 204 "No content"
// @Failure 404 {object} map[string]string "Party not found"
// @Router /customers/{id} [delete]
func (h *partyHandler) deactivateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	if err := h.partyService.DeactivateParty(c.Request.Context(), partyID, c.Query("requestedBy")); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate party")
		return
	}

	logger.Info("Party deactivated", slog.String("party_id", partyID))
	c.Status(http.StatusNoContent)
}

// registerDocument godoc
// @Summary Record an open document for a party
// @Description Records a receivable or payable and increases the party balance by its amount
// @Tags parties
// @Accept json
// @Produce json
// @Param id path string true "Party ID"
// @Param document body dto.RegisterDocumentRequest true "Document details"
// @Success 201 {object} dto.OpenDocumentResponse
// @Failure 400 {object} map[string]string "Invalid amount or inactive party"
// @Failure 409 {object} map[string]string "Document number already registered"
// @Router /customers/{id}/documents [post]
func (h *partyHandler) registerDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	document, err := h.partyService.RegisterDocument(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register document")
		return
	}

	logger.Info("Document registered",
		slog.String("document_id", document.DocumentID),
		slog.String("document_number", document.DocumentNumber))
	c.JSON(http.StatusCreated, dto.ToOpenDocumentResponse(document, time.Now().UTC()))
}

// listDocumentsByParty godoc
// @Summary List every document of a party
// @Tags parties
// @Produce json
// @Param id path string true "Party ID"
// @Success 200 {array} dto.OpenDocumentResponse
// @Router /customers/{id}/documents [get]
func (h *partyHandler) listDocumentsByParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documents, err := h.partyService.ListDocumentsByParty(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToOpenDocumentResponses(documents, time.Now().UTC()))
}

// listOpenDocuments godoc
// @Summary List open documents for the group's kind
// @Description Lists pending and partially paid documents, oldest due date first
// @Tags parties
// @Produce json
// @Success 200 {array} dto.OpenDocumentResponse
// @Router /customers/open-documents [get]
func (h *partyHandler) listOpenDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documents, err := h.partyService.ListOpenDocuments(c.Request.Context(), h.kind)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list open documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToOpenDocumentResponses(documents, time.Now().UTC()))
}

// listOverdueDocuments godoc
// @Summary List overdue documents for the group's kind
// @Tags parties
// @Produce json
// @Success 200 {array} dto.OpenDocumentResponse
// @Router /customers/overdue-documents [get]
func (h *partyHandler) listOverdueDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documents, err := h.partyService.ListOverdueDocuments(c.Request.Context(), h.kind)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list overdue documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToOpenDocumentResponses(documents, time.Now().UTC()))
}

// agingSummary godoc
// @Summary Aging summary for the group's kind
// @Description Summarizes open and overdue amounts across documents
// @Tags parties
// @Produce json
// @Success 200 {object} domain.AgingSummary
// @Router /customers/aging [get]
func (h *partyHandler) agingSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.partyService.AgingSummary(c.Request.Context(), h.kind)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate aging summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getDocument godoc
// @Summary Get a document by ID
// @Tags parties
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.OpenDocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Router /documents/{id} [get]
func (h *partyHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	document, err := h.partyService.GetDocumentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToOpenDocumentResponse(document, time.Now().UTC()))
}

// getDocumentByNumber godoc
// @Summary Get a document by its number
// @Tags parties
// @Produce json
// @Param number path string true "Document number"
// @Success 200 {object} dto.OpenDocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Router /documents/number/{number} [get]
func (h *partyHandler) getDocumentByNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	document, err := h.partyService.GetDocumentByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToOpenDocumentResponse(document, time.Now().UTC()))
}

// applyPayment godoc
// @Summary Apply a payment to a document
// @Description Applies a full or partial payment, updating the document status and the party balance atomically
// @Tags parties
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param payment body dto.ApplyPaymentRequest true "Payment details"
// @Success 200 {object} dto.OpenDocumentResponse
// @Failure 400 {object} map[string]string "Payment exceeds remaining amount"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Document already settled"
// @Router /documents/{id}/payments [post]
func (h *partyHandler) applyPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("id")

	var req dto.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	document, err := h.partyService.ApplyPayment(c.Request.Context(), documentID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to apply payment")
		return
	}

	logger.Info("Payment applied",
		slog.String("document_id", documentID),
		slog.String("status", string(document.Status)))
	c.JSON(http.StatusOK, dto.ToOpenDocumentResponse(document, time.Now().UTC()))
}
