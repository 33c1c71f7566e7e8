// Package session resolves bearer tokens into session snapshots for the
// access gate.
package session

import (
	"context"
	"errors"

	lawyerRepo "haki/database/repository/lawyer"
	userRepo "haki/database/repository/user"
	"haki/services/access"
	"haki/utils"
)

var ErrInvalidToken = errors.New("invalid or revoked auth token")

// DefaultSessionService implements access.ProfileFetcher and
// access.ApplicationStatusFetcher over the user and application stores.
type DefaultSessionService struct {
	Users userRepo.UserRepository
	Apps  lawyerRepo.ApplicationRepository
}

// FetchProfile validates the token, checks it is still the user's active
// token, and returns the session snapshot. The auth cache is consulted
// first so the hot path skips the database.
func (s *DefaultSessionService) FetchProfile(ctx context.Context, token string) (access.SessionSnapshot, error) {
	if _, err := utils.ValidateToken(token); err != nil {
		return access.Guest(), ErrInvalidToken
	}
	userID, err := utils.ExtractIDFromToken(token)
	if err != nil {
		return access.Guest(), ErrInvalidToken
	}

	tokenHash := utils.HashToken(token)
	if !s.tokenHashValid(ctx, userID, tokenHash) {
		return access.Guest(), ErrInvalidToken
	}

	user, err := s.Users.GetByID(userID)
	if err != nil {
		return access.Guest(), err
	}

	return access.SessionSnapshot{
		UserID:        user.ID,
		Role:          user.Role,
		IsVerified:    user.IsVerified,
		PendingLawyer: user.PendingLawyer,
	}, nil
}

// tokenHashValid checks the presented token hash against the cached active
// hash, falling back to the user document on a cache miss.
func (s *DefaultSessionService) tokenHashValid(ctx context.Context, userID, tokenHash string) bool {
	if client := utils.GetAuthCacheClient(); client != nil {
		cached, err := client.Get(ctx, utils.AuthCachePrefix+userID).Result()
		if err == nil {
			return cached == tokenHash
		}
	}

	user, err := s.Users.GetByTokenHash(tokenHash)
	if err != nil || user == nil {
		return false
	}
	return user.ID == userID
}

// FetchStatus returns the user's latest application status, or empty when
// no application exists.
func (s *DefaultSessionService) FetchStatus(ctx context.Context, userID string) (string, error) {
	app, err := s.Apps.GetLatestByUserID(userID)
	if err != nil {
		return "", err
	}
	if app == nil {
		return "", nil
	}
	return app.Status, nil
}
