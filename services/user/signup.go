package user

import (
	"fmt"
	"time"

	"haki/models"
	"haki/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// InitiateRegistration validates basic data, checks for duplicates, creates a
// registration session and initiates OTP delivery. It returns the session ID.
func (s *DefaultUserService) InitiateRegistration(basicReq models.UserBasicRegistrationData) (string, error) {
	if basicReq.Email == "" || basicReq.Password == "" || basicReq.Username == "" || basicReq.PhoneNumber == "" {
		return "", fmt.Errorf("all fields are required")
	}

	if err := VerifyPasswordComplexity(basicReq.Password); err != nil {
		return "", err
	}

	existing, err := s.Repo.GetByEmailWithProjection(basicReq.Email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("InitiateRegistration: failed to check for existing user", zap.Error(err))
		return "", fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return "", fmt.Errorf("a user with this email already exists")
	}

	sessionClient := utils.GetAuthCacheClient()
	sessionID := uuid.New().String()

	regSession := models.UserRegistrationSession{
		TempID: sessionID,
		BasicData: &models.UserBasicRegistrationData{
			Username:    basicReq.Username,
			Email:       basicReq.Email,
			Password:    basicReq.Password,
			PhoneNumber: basicReq.PhoneNumber,
		},
		OTPStatus:     "pending",
		CreatedAt:     time.Now(),
		LastUpdatedAt: time.Now(),
	}

	if err := utils.InitiateOTP(basicReq.Email, basicReq.PhoneNumber); err != nil {
		return "", fmt.Errorf("failed to initiate OTP: %w", err)
	}

	if err := SaveUserRegistrationSession(sessionClient, sessionID, regSession, 30*time.Minute); err != nil {
		return "", fmt.Errorf("failed to save registration session: %w", err)
	}

	return sessionID, nil
}

// VerifyRegistrationOTP retrieves the session, verifies the OTP and updates
// the session to "verified".
func (s *DefaultUserService) VerifyRegistrationOTP(sessionID string, providedOTP string) error {
	sessionClient := utils.GetAuthCacheClient()
	regSession, err := GetUserRegistrationSession(sessionClient, sessionID)
	if err != nil {
		return fmt.Errorf("failed to retrieve registration session")
	}

	if err := utils.VerifyOTPRecord(regSession.BasicData.Email, providedOTP); err != nil {
		return fmt.Errorf("OTP verification failed: %w", err)
	}

	regSession.OTPStatus = "verified"
	regSession.LastUpdatedAt = time.Now()
	if err := SaveUserRegistrationSession(sessionClient, sessionID, *regSession, 30*time.Minute); err != nil {
		return fmt.Errorf("failed to update registration session: %w", err)
	}
	return nil
}

// FinalizeRegistration persists the user record from the verified session,
// clears the session and returns an AuthResponse with a fresh token. New
// accounts start as verified guests so the client can route them through
// role selection.
func (s *DefaultUserService) FinalizeRegistration(sessionID string) (*AuthResponse, error) {
	sessionClient := utils.GetAuthCacheClient()
	regSession, err := GetUserRegistrationSession(sessionClient, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve registration session")
	}
	if regSession.OTPStatus != "verified" {
		return nil, fmt.Errorf("OTP not verified")
	}
	if regSession.BasicData == nil {
		return nil, fmt.Errorf("registration session missing basic data")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(regSession.BasicData.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("FinalizeRegistration: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Username:     regSession.BasicData.Username,
		Email:        regSession.BasicData.Email,
		PhoneNumber:  regSession.BasicData.PhoneNumber,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleGuest,
		IsVerified:   true,
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Email, userObj.Role, AuthTokenDuration)
	if err != nil {
		utils.GetLogger().Error("FinalizeRegistration: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	userObj.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("FinalizeRegistration: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	cacheAuthToken(userObj.ID, userObj.TokenHash)

	if err := DeleteUserRegistrationSession(sessionClient, sessionID); err != nil {
		utils.GetLogger().Warn("FinalizeRegistration: failed to clear registration session", zap.Error(err))
	}

	return &AuthResponse{
		ID:         userObj.ID,
		Token:      token,
		Username:   userObj.Username,
		Email:      userObj.Email,
		Role:       userObj.Role,
		IsVerified: userObj.IsVerified,
	}, nil
}
