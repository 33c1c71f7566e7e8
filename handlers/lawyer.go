package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"haki/models"
	"haki/services/lawyer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LawyerHandler covers the verification application workflow and the
// public lawyer directory.
type LawyerHandler struct {
	LawyerService lawyer.LawyerService
}

// NewLawyerHandler creates a new LawyerHandler.
func NewLawyerHandler(ls lawyer.LawyerService) *LawyerHandler {
	return &LawyerHandler{LawyerService: ls}
}

// SubmitApplicationHandler handles POST /api/lawyer-applications.
func (h *LawyerHandler) SubmitApplicationHandler(c *gin.Context) {
	logger := getLogger(c)

	var req lawyer.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.UserID = currentUserID(c)

	app, err := h.LawyerService.SubmitApplication(req)
	if err != nil {
		if errors.Is(err, lawyer.ErrApplicationExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Application submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		return
	}
	c.JSON(http.StatusCreated, app)
}

// GetMyApplicationHandler handles GET /api/lawyer-applications/me. The
// client's application-status screen keys off has_application.
func (h *LawyerHandler) GetMyApplicationHandler(c *gin.Context) {
	logger := getLogger(c)

	app, err := h.LawyerService.GetLatestApplication(currentUserID(c))
	if err != nil {
		if errors.Is(err, lawyer.ErrNoApplication) {
			c.JSON(http.StatusOK, gin.H{"has_application": false})
			return
		}
		logger.Error("Failed to fetch application", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch application"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"has_application": true, "application": app})
}

// ResubmitApplicationHandler handles PUT /api/lawyer-applications/me.
// Allowed only while the application is flagged for resubmission.
func (h *LawyerHandler) ResubmitApplicationHandler(c *gin.Context) {
	logger := getLogger(c)

	var req lawyer.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.UserID = currentUserID(c)

	app, err := h.LawyerService.ResubmitApplication(req)
	if err != nil {
		if errors.Is(err, lawyer.ErrNotResubmission) || errors.Is(err, lawyer.ErrNoApplication) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Application resubmission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resubmit application"})
		return
	}
	c.JSON(http.StatusOK, app)
}

// AppealHandler handles POST /api/lawyer-applications/me/appeal.
func (h *LawyerHandler) AppealHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Note string `json:"note" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	app, err := h.LawyerService.AppealRejection(currentUserID(c), req.Note)
	if err != nil {
		if errors.Is(err, lawyer.ErrNotRejected) || errors.Is(err, lawyer.ErrNoApplication) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Appeal failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit appeal"})
		return
	}
	c.JSON(http.StatusOK, app)
}

// AppealSuspensionHandler handles POST /api/lawyers/me/suspension-appeal.
// A suspended lawyer contests the suspension; the note lands in the admin
// suspension queue.
func (h *LawyerHandler) AppealSuspensionHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Note string `json:"note" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.LawyerService.AppealSuspension(currentUserID(c), req.Note); err != nil {
		switch {
		case errors.Is(err, lawyer.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, lawyer.ErrNotSuspended), errors.Is(err, lawyer.ErrAppealPending):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Suspension appeal failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit appeal"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appeal submitted"})
}

// SearchDirectoryHandler handles GET /api/directory. Public: anyone can
// browse verified lawyers.
func (h *LawyerHandler) SearchDirectoryHandler(c *gin.Context) {
	logger := getLogger(c)

	var q models.DirectoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}

	profiles, err := h.LawyerService.SearchDirectory(q)
	if err != nil {
		logger.Error("Directory search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Directory search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": profiles})
}

// GetProfileHandler handles GET /api/directory/:id.
func (h *LawyerHandler) GetProfileHandler(c *gin.Context) {
	profile, err := h.LawyerService.GetProfile(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lawyer not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMyProfileHandler handles PATCH /api/lawyers/me/profile.
func (h *LawyerHandler) UpdateMyProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Bio       string   `json:"bio"`
		Languages []string `json:"languages"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, err := h.LawyerService.UpdateProfileBio(currentUserID(c), req.Bio, req.Languages)
	if err != nil {
		logger.Error("Profile update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func parsePage(s string) int64 {
	page, err := strconv.ParseInt(s, 10, 64)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func parsePageSize(s string) int64 {
	size, err := strconv.ParseInt(s, 10, 64)
	if err != nil || size < 1 || size > 100 {
		return 20
	}
	return size
}
