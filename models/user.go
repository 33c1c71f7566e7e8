// models/user.go
package models

import "time"

// Platform roles. The strings are persisted on the user document and embedded
// in JWT role claims, so they must stay stable.
const (
	RoleGuest      = "guest"
	RoleUser       = "registered_user"
	RoleLawyer     = "verified_lawyer"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// User represents a platform account.
type User struct {
	ID            string    `bson:"id" json:"id"`
	Username      string    `bson:"username" json:"username"`
	Email         string    `bson:"email" json:"email"`
	PhoneNumber   string    `bson:"phone_number" json:"phoneNumber"`
	PasswordHash  string    `bson:"password_hash" json:"-"`
	Role          string    `bson:"role" json:"role"`
	IsVerified    bool      `bson:"is_verified" json:"isVerified"`
	PendingLawyer bool      `bson:"pending_lawyer" json:"pendingLawyer"`
	County        string    `bson:"county,omitempty" json:"county,omitempty"`
	Language      string    `bson:"language,omitempty" json:"language,omitempty"`
	FCMToken      string    `bson:"fcm_token,omitempty" json:"-"`
	TokenHash     string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserBasicRegistrationData carries the fields collected at sign-up.
type UserBasicRegistrationData struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// UserRegistrationSession tracks an in-flight registration flow in Redis.
type UserRegistrationSession struct {
	TempID        string                     `json:"tempId"`
	BasicData     *UserBasicRegistrationData `json:"basicData"`
	OTPStatus     string                     `json:"otpStatus"` // "pending" or "verified"
	CreatedAt     time.Time                  `json:"createdAt"`
	LastUpdatedAt time.Time                  `json:"lastUpdatedAt"`
}

// UserUpdateRequest carries mutable profile fields.
type UserUpdateRequest struct {
	ID          string `json:"id"`
	Username    string `json:"username,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	County      string `json:"county,omitempty"`
	Language    string `json:"language,omitempty"`
	FCMToken    string `json:"fcmToken,omitempty"`
}
