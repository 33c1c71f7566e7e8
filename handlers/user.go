package handlers

import (
	"net/http"

	"haki/models"
	"haki/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler covers authenticated profile operations.
type UserHandler struct {
	UserService user.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us user.UserService) *UserHandler {
	return &UserHandler{UserService: us}
}

// GetMeHandler handles GET /api/users/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	logger := getLogger(c)

	usr, err := h.UserService.GetUserByID(currentUserID(c))
	if err != nil {
		logger.Error("User not found", zap.String("id", currentUserID(c)), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateMeHandler handles PATCH /api/users/me.
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = currentUserID(c)

	usr, err := h.UserService.UpdateUser(req)
	if err != nil {
		logger.Error("Failed to update user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdatePasswordHandler handles PUT /api/users/me/password.
func (h *UserHandler) UpdatePasswordHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.UserService.UpdateUserPassword(currentUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		logger.Warn("Password update failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated, sign in again"})
}

// DeleteMeHandler handles DELETE /api/users/me.
func (h *UserHandler) DeleteMeHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.UserService.DeleteUser(currentUserID(c)); err != nil {
		logger.Error("Failed to delete user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// UpdateFCMTokenHandler handles PUT /api/users/me/fcm-token. The token is
// where reminders and decision notifications land.
func (h *UserHandler) UpdateFCMTokenHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updateReq := models.UserUpdateRequest{ID: currentUserID(c), FCMToken: req.FCMToken}
	if _, err := h.UserService.UpdateUser(updateReq); err != nil {
		logger.Error("Failed to update FCM token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update FCM token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FCM token updated"})
}
