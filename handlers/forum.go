package handlers

import (
	"errors"
	"net/http"

	"haki/services/forum"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ForumHandler covers the community question board.
type ForumHandler struct {
	ForumService forum.ForumService
}

// NewForumHandler creates a new ForumHandler.
func NewForumHandler(fs forum.ForumService) *ForumHandler {
	return &ForumHandler{ForumService: fs}
}

// CreateThreadHandler handles POST /api/forum/threads.
func (h *ForumHandler) CreateThreadHandler(c *gin.Context) {
	logger := getLogger(c)

	var req forum.ThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.AuthorID = currentUserID(c)

	thread, err := h.ForumService.CreateThread(req)
	if err != nil {
		logger.Error("Thread creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create thread"})
		return
	}
	c.JSON(http.StatusCreated, thread)
}

// ListThreadsHandler handles GET /api/forum/threads.
func (h *ForumHandler) ListThreadsHandler(c *gin.Context) {
	logger := getLogger(c)

	threads, err := h.ForumService.ListThreads(c.Query("category"),
		parsePage(c.Query("page")), parsePageSize(c.Query("pageSize")))
	if err != nil {
		logger.Error("Thread listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list threads"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": threads})
}

// GetThreadHandler handles GET /api/forum/threads/:id.
func (h *ForumHandler) GetThreadHandler(c *gin.Context) {
	thread, replies, err := h.ForumService.GetThread(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Thread not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"thread": thread, "replies": replies})
}

// ReplyHandler handles POST /api/forum/threads/:id/replies.
func (h *ForumHandler) ReplyHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reply, err := h.ForumService.Reply(c.Param("id"), currentUserID(c), req.Body)
	if err != nil {
		logger.Warn("Reply failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, reply)
}

// DeleteThreadHandler handles DELETE /api/forum/threads/:id. Authors can
// soft-delete their own threads.
func (h *ForumHandler) DeleteThreadHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.ForumService.DeleteThread(c.Param("id"), currentUserID(c)); err != nil {
		if errors.Is(err, forum.ErrNotAuthor) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Thread deletion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete thread"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thread deleted"})
}

// ReportThreadHandler handles POST /api/forum/threads/:id/report.
func (h *ForumHandler) ReportThreadHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.ForumService.ReportThread(c.Param("id")); err != nil {
		logger.Error("Thread report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to report thread"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thread reported"})
}
