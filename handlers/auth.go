package handlers

import (
	"errors"
	"net/http"

	"haki/models"
	"haki/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler covers registration, login and password recovery.
type AuthHandler struct {
	UserService user.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us user.UserService) *AuthHandler {
	return &AuthHandler{UserService: us}
}

// InitiateRegistrationHandler handles POST /api/auth/register.
// It opens an OTP-verified registration session and returns its ID.
func (h *AuthHandler) InitiateRegistrationHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UserBasicRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sessionID, err := h.UserService.InitiateRegistration(req)
	if err != nil {
		logger.Error("Registration initiation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "message": "OTP sent"})
}

// VerifyOTPHandler handles POST /api/auth/register/verify.
func (h *AuthHandler) VerifyOTPHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
		OTP       string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid OTP verification request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.UserService.VerifyRegistrationOTP(req.SessionID, req.OTP); err != nil {
		logger.Warn("OTP verification failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP verified"})
}

// FinalizeRegistrationHandler handles POST /api/auth/register/finalize.
// It creates the account and returns an auth token.
func (h *AuthHandler) FinalizeRegistrationHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserService.FinalizeRegistration(req.SessionID)
	if err != nil {
		logger.Error("Registration finalization failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/auth/logout. It revokes the caller's token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.UserService.RevokeAuthToken(currentUserID(c)); err != nil {
		logger.Error("Token revocation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// ForgotPasswordHandler handles POST /api/auth/forgot-password. The response
// never reveals whether the email exists.
func (h *AuthHandler) ForgotPasswordHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	_ = h.UserService.InitiatePasswordReset(req.Email)
	c.JSON(http.StatusOK, gin.H{"message": "If the account exists, a reset code has been sent"})
}

// ResetPasswordHandler handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPasswordHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email       string `json:"email" binding:"required"`
		OTP         string `json:"otp" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.UserService.ResetPassword(req.Email, req.OTP, req.NewPassword); err != nil {
		logger.Warn("Password reset failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset"})
}

// SelectRoleHandler handles POST /api/auth/select-role. A verified guest
// completes onboarding by choosing the registered user role.
func (h *AuthHandler) SelectRoleHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	usr, err := h.UserService.SelectRole(currentUserID(c), req.Role)
	if err != nil {
		logger.Warn("Role selection failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}
