package handlers

import (
	"errors"
	"net/http"
	"time"

	"haki/models"
	"haki/services/audit"
	"haki/services/forum"
	"haki/services/lawyer"
	"haki/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	UserService   user.UserService
	LawyerService lawyer.LawyerService
	ForumService  forum.ForumService
	AuditService  audit.AuditService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(us user.UserService, ls lawyer.LawyerService, fs forum.ForumService, as audit.AuditService) *AdminHandler {
	return &AdminHandler{
		UserService:   us,
		LawyerService: ls,
		ForumService:  fs,
		AuditService:  as,
	}
}

// GetAllUsersHandler returns all users (with sensitive fields excluded).
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.UserService.GetAllUsers()
	if err != nil {
		zap.L().Error("Failed to fetch all users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListApplicationsHandler returns the verification queue, optionally
// filtered by status.
func (ah *AdminHandler) ListApplicationsHandler(c *gin.Context) {
	apps, err := ah.LawyerService.ListApplications(c.Query("status"),
		parsePage(c.Query("page")), parsePageSize(c.Query("pageSize")))
	if err != nil {
		zap.L().Error("Failed to list applications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": apps})
}

// DecideApplicationHandler records an accept/reject/resubmission decision
// on a pending application.
func (ah *AdminHandler) DecideApplicationHandler(c *gin.Context) {
	var req struct {
		Decision string `json:"decision" binding:"required"`
		Note     string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	app, err := ah.LawyerService.DecideApplication(c.Param("id"), currentUserID(c), currentRole(c), req.Decision, req.Note)
	if err != nil {
		if errors.Is(err, lawyer.ErrInvalidDecision) || errors.Is(err, lawyer.ErrNoApplication) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("Application decision failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decide application"})
		return
	}
	c.JSON(http.StatusOK, app)
}

// ImportRollBookHandler ingests the bar roll book CSV used for automatic
// roll-number matching.
func (ah *AdminHandler) ImportRollBookHandler(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is required"})
		return
	}
	defer file.Close()

	report, err := ah.LawyerService.ImportRollBook(file, currentUserID(c), currentRole(c))
	if err != nil {
		zap.L().Warn("Roll book import rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// ListSuspendedHandler returns the suspension queue with appeal notes,
// appealed profiles first. Reason and note are hidden from public profile
// JSON, so the queue view carries them explicitly.
func (ah *AdminHandler) ListSuspendedHandler(c *gin.Context) {
	profiles, err := ah.LawyerService.ListSuspended(
		parsePage(c.Query("page")), parsePageSize(c.Query("pageSize")))
	if err != nil {
		zap.L().Error("Failed to list suspended lawyers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list suspended lawyers"})
		return
	}

	type suspendedView struct {
		models.LawyerProfile
		SuspensionReason string     `json:"suspensionReason"`
		AppealNote       string     `json:"appealNote,omitempty"`
		AppealedAt       *time.Time `json:"appealedAt,omitempty"`
	}
	results := make([]suspendedView, 0, len(profiles))
	for _, p := range profiles {
		results = append(results, suspendedView{
			LawyerProfile:    p,
			SuspensionReason: p.SuspensionReason,
			AppealNote:       p.AppealNote,
			AppealedAt:       p.AppealedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// SuspendLawyerHandler suspends a verified lawyer, optionally until a date.
func (ah *AdminHandler) SuspendLawyerHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
		Until  string `json:"until"` // RFC 3339, empty for indefinite
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	var until *time.Time
	if req.Until != "" {
		t, err := time.Parse(time.RFC3339, req.Until)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "until must be RFC 3339"})
			return
		}
		until = &t
	}

	if err := ah.LawyerService.SuspendLawyer(c.Param("id"), currentUserID(c), currentRole(c), req.Reason, until); err != nil {
		if errors.Is(err, lawyer.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("Suspension failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to suspend lawyer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lawyer suspended"})
}

// LiftSuspensionHandler reinstates a suspended lawyer.
func (ah *AdminHandler) LiftSuspensionHandler(c *gin.Context) {
	if err := ah.LawyerService.LiftSuspension(c.Param("id"), currentUserID(c), currentRole(c)); err != nil {
		switch {
		case errors.Is(err, lawyer.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, lawyer.ErrNotSuspended):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			zap.L().Error("Suspension lift failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to lift suspension"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Suspension lifted"})
}

// HideThreadHandler removes a forum thread from public view.
func (ah *AdminHandler) HideThreadHandler(c *gin.Context) {
	if err := ah.ForumService.HideThread(c.Param("id"), currentUserID(c), currentRole(c)); err != nil {
		zap.L().Error("Thread hide failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hide thread"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thread hidden"})
}

// HideReplyHandler removes a forum reply from public view.
func (ah *AdminHandler) HideReplyHandler(c *gin.Context) {
	if err := ah.ForumService.HideReply(c.Param("id"), currentUserID(c), currentRole(c)); err != nil {
		zap.L().Error("Reply hide failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hide reply"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reply hidden"})
}

// ListAuditHandler returns the audit trail, newest first.
func (ah *AdminHandler) ListAuditHandler(c *gin.Context) {
	q := models.AuditQuery{
		ActorID:  c.Query("actorId"),
		Action:   c.Query("action"),
		Page:     parsePage(c.Query("page")),
		PageSize: parsePageSize(c.Query("pageSize")),
	}

	entries, err := ah.AuditService.List(q)
	if err != nil {
		zap.L().Error("Audit listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": entries})
}
