package user

import (
	"fmt"

	"haki/models"
	"haki/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// GetUserByEmail retrieves a user by its email address.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// UpdateUser applies the mutable profile fields.
func (s *DefaultUserService) UpdateUser(req models.UserUpdateRequest) (*models.User, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	fields := bson.M{}
	if req.Username != "" {
		fields["username"] = req.Username
	}
	if req.PhoneNumber != "" {
		fields["phone_number"] = req.PhoneNumber
	}
	if req.County != "" {
		fields["county"] = req.County
	}
	if req.Language != "" {
		fields["language"] = req.Language
	}
	if req.FCMToken != "" {
		fields["fcm_token"] = req.FCMToken
	}
	if len(fields) == 0 {
		return s.GetUserByID(req.ID)
	}

	if err := s.Repo.UpdateFields(req.ID, fields); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.GetUserByID(req.ID)
}

// UpdateUserPassword verifies the current password and stores the new one.
// The active token is revoked so other sessions must sign in again.
func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("UpdateUserPassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to update password")
	}

	if err := s.Repo.UpdateFields(userID, bson.M{"password_hash": string(hashed), "token_hash": ""}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	dropCachedAuthToken(userID)
	return nil
}

// InitiatePasswordReset sends an OTP to the account's phone number.
func (s *DefaultUserService) InitiatePasswordReset(email string) error {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil || usr == nil {
		// Do not reveal whether the account exists.
		utils.GetLogger().Info("InitiatePasswordReset: lookup miss", zap.String("email", email))
		return nil
	}
	return utils.InitiateOTP(usr.Email, usr.PhoneNumber)
}

// ResetPassword verifies the OTP and replaces the password.
func (s *DefaultUserService) ResetPassword(email, providedOTP, newPassword string) error {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil || usr == nil {
		return ErrUserNotFound
	}

	if err := utils.VerifyOTPRecord(usr.Email, providedOTP); err != nil {
		return fmt.Errorf("OTP verification failed: %w", err)
	}

	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("ResetPassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to reset password")
	}

	if err := s.Repo.UpdateFields(usr.ID, bson.M{"password_hash": string(hashed), "token_hash": ""}); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	dropCachedAuthToken(usr.ID)
	return nil
}

// DeleteUser removes the account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	dropCachedAuthToken(userID)
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// SelectRole completes onboarding by picking the account's role. Only the
// registered_user role can be chosen directly; the verified_lawyer role is
// granted through the application workflow and admin roles are provisioned
// out of band.
func (s *DefaultUserService) SelectRole(userID, role string) (*models.User, error) {
	if role != models.RoleUser {
		return nil, fmt.Errorf("role %q cannot be self-assigned", role)
	}

	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if usr.Role != models.RoleGuest {
		return nil, fmt.Errorf("role already selected")
	}

	if err := s.Repo.UpdateFields(userID, bson.M{"role": role}); err != nil {
		return nil, fmt.Errorf("failed to select role: %w", err)
	}
	return s.GetUserByID(userID)
}

// GetAllUsers retrieves all users with sensitive fields excluded.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	proj := bson.M{"password_hash": 0, "token_hash": 0}
	return s.Repo.GetAllWithProjection(proj)
}
