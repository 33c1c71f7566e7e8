package user

import (
	userRepo "haki/database/repository/user"
	"haki/models"
)

type UserService interface {
	// Registration
	InitiateRegistration(basicData models.UserBasicRegistrationData) (string, error)
	VerifyRegistrationOTP(sessionID string, providedOTP string) error
	FinalizeRegistration(sessionID string) (*AuthResponse, error)

	// Authentication
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeAuthToken(userID string) error

	// User Management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(req models.UserUpdateRequest) (*models.User, error)
	UpdateUserPassword(userID, currentPassword, newPassword string) error
	InitiatePasswordReset(email string) error
	ResetPassword(email, providedOTP, newPassword string) error
	DeleteUser(userID string) error

	// Onboarding
	SelectRole(userID, role string) (*models.User, error)

	// Admin / Utility
	GetAllUsers() ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID            string `json:"id"`
	Token         string `json:"token"`
	Username      string `json:"username,omitempty"`
	Email         string `json:"email,omitempty"`
	Role          string `json:"role"`
	IsVerified    bool   `json:"isVerified"`
	PendingLawyer bool   `json:"pendingLawyer"`
}
