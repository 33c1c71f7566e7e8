package user

import (
	"fmt"

	"haki/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies email/password credentials and issues a fresh auth
// token, replacing any previously active token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: lookup failed", zap.String("email", email), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, AuthTokenDuration)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateFields(usr.ID, bson.M{"token_hash": tokenHash}); err != nil {
		utils.GetLogger().Error("Authenticate: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	cacheAuthToken(usr.ID, tokenHash)

	return &AuthResponse{
		ID:            usr.ID,
		Token:         token,
		Username:      usr.Username,
		Email:         usr.Email,
		Role:          usr.Role,
		IsVerified:    usr.IsVerified,
		PendingLawyer: usr.PendingLawyer,
	}, nil
}

// RevokeAuthToken clears the user's active token, signing them out everywhere.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateFields(userID, bson.M{"token_hash": ""}); err != nil {
		return fmt.Errorf("failed to revoke auth token: %w", err)
	}
	dropCachedAuthToken(userID)
	return nil
}
