package handlers

import (
	"errors"
	"net/http"

	"haki/services/consultation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConsultationHandler covers consultation booking between users and lawyers.
type ConsultationHandler struct {
	ConsultationService consultation.ConsultationService
}

// NewConsultationHandler creates a new ConsultationHandler.
func NewConsultationHandler(cs consultation.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{ConsultationService: cs}
}

// RequestHandler handles POST /api/consultations.
func (h *ConsultationHandler) RequestHandler(c *gin.Context) {
	logger := getLogger(c)

	var req consultation.ConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.UserID = currentUserID(c)

	cons, err := h.ConsultationService.Request(req)
	if err != nil {
		logger.Warn("Consultation request failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cons)
}

// RespondHandler handles PUT /api/consultations/:id/respond. Lawyers accept
// or decline requests addressed to them.
func (h *ConsultationHandler) RespondHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Decision string `json:"decision" binding:"required"`
		Note     string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	cons, err := h.ConsultationService.Respond(c.Param("id"), currentUserID(c), req.Decision, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, consultation.ErrNotYours):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, consultation.ErrBadTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Consultation response failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to respond to consultation"})
		}
		return
	}
	c.JSON(http.StatusOK, cons)
}

// CancelHandler handles DELETE /api/consultations/:id.
func (h *ConsultationHandler) CancelHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.ConsultationService.Cancel(c.Param("id"), currentUserID(c)); err != nil {
		switch {
		case errors.Is(err, consultation.ErrNotYours):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, consultation.ErrBadTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Consultation cancel failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel consultation"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Consultation cancelled"})
}

// CompleteHandler handles PUT /api/consultations/:id/complete.
func (h *ConsultationHandler) CompleteHandler(c *gin.Context) {
	logger := getLogger(c)

	cons, err := h.ConsultationService.Complete(c.Param("id"), currentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, consultation.ErrNotYours):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, consultation.ErrBadTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Consultation completion failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete consultation"})
		}
		return
	}
	c.JSON(http.StatusOK, cons)
}

// ListMineHandler handles GET /api/consultations. Users see consultations
// they requested; lawyers see consultations addressed to them.
func (h *ConsultationHandler) ListMineHandler(c *gin.Context) {
	logger := getLogger(c)

	page := parsePage(c.Query("page"))
	pageSize := parsePageSize(c.Query("pageSize"))

	var (
		list interface{}
		err  error
	)
	if c.Query("as") == "lawyer" {
		list, err = h.ConsultationService.ListForLawyer(currentUserID(c), c.Query("status"), page, pageSize)
	} else {
		list, err = h.ConsultationService.ListForUser(currentUserID(c), page, pageSize)
	}
	if err != nil {
		logger.Error("Consultation list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list consultations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": list})
}
