package handlers

import (
	"net/http"

	"haki/services/glossary"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GlossaryHandler covers the public legal glossary and its admin management.
type GlossaryHandler struct {
	GlossaryService glossary.GlossaryService
}

// NewGlossaryHandler creates a new GlossaryHandler.
func NewGlossaryHandler(gs glossary.GlossaryService) *GlossaryHandler {
	return &GlossaryHandler{GlossaryService: gs}
}

// SearchHandler handles GET /api/glossary. Public.
func (h *GlossaryHandler) SearchHandler(c *gin.Context) {
	logger := getLogger(c)

	terms, err := h.GlossaryService.Search(c.Query("q"), c.Query("language"),
		parsePage(c.Query("page")), parsePageSize(c.Query("pageSize")))
	if err != nil {
		logger.Error("Glossary search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Glossary search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": terms})
}

// CreateTermHandler handles POST /api/admin/glossary.
func (h *GlossaryHandler) CreateTermHandler(c *gin.Context) {
	logger := getLogger(c)

	var req glossary.TermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	term, err := h.GlossaryService.CreateTerm(req, currentUserID(c))
	if err != nil {
		logger.Error("Glossary term creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create term"})
		return
	}
	c.JSON(http.StatusCreated, term)
}

// UpdateTermHandler handles PUT /api/admin/glossary/:id.
func (h *GlossaryHandler) UpdateTermHandler(c *gin.Context) {
	logger := getLogger(c)

	var req glossary.TermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	term, err := h.GlossaryService.UpdateTerm(c.Param("id"), req, currentUserID(c))
	if err != nil {
		logger.Error("Glossary term update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update term"})
		return
	}
	c.JSON(http.StatusOK, term)
}

// DeleteTermHandler handles DELETE /api/admin/glossary/:id.
func (h *GlossaryHandler) DeleteTermHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.GlossaryService.DeleteTerm(c.Param("id"), currentUserID(c), currentRole(c)); err != nil {
		logger.Error("Glossary term deletion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete term"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Term deleted"})
}

// ImportCSVHandler handles POST /api/admin/glossary/import. The multipart
// "file" field carries a CSV of term,definition,language,category rows.
func (h *GlossaryHandler) ImportCSVHandler(c *gin.Context) {
	logger := getLogger(c)

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is required"})
		return
	}
	defer file.Close()

	report, err := h.GlossaryService.ImportCSV(file, currentUserID(c), currentRole(c))
	if err != nil {
		logger.Warn("Glossary import rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
