// models/lawyer.go
package models

import "time"

// Lawyer application statuses.
const (
	ApplicationPending      = "pending"
	ApplicationResubmission = "resubmission"
	ApplicationAccepted     = "accepted"
	ApplicationRejected     = "rejected"
)

// Roll book record statuses.
const (
	RollStatusActive    = "active"
	RollStatusSuspended = "suspended"
	RollStatusStruckOff = "struck_off"
)

// LawyerApplication is a verification request from a registered user who
// claims to be an advocate on the bar roll.
type LawyerApplication struct {
	ID              string     `bson:"id" json:"id"`
	UserID          string     `bson:"user_id" json:"userId"`
	FullName        string     `bson:"full_name" json:"fullName"`
	RollNumber      string     `bson:"roll_number" json:"rollNumber"`
	Specialties     []string   `bson:"specialties" json:"specialties"`
	County          string     `bson:"county" json:"county"`
	YearsOfPractice int        `bson:"years_of_practice" json:"yearsOfPractice"`
	DocumentURLs    []string   `bson:"document_urls" json:"documentUrls"`
	Status          string     `bson:"status" json:"status"`
	RollMatch       string     `bson:"roll_match,omitempty" json:"rollMatch,omitempty"`
	ReviewNote      string     `bson:"review_note,omitempty" json:"reviewNote,omitempty"`
	AppealNote      string     `bson:"appeal_note,omitempty" json:"appealNote,omitempty"`
	ReviewedBy      string     `bson:"reviewed_by,omitempty" json:"reviewedBy,omitempty"`
	SubmittedAt     time.Time  `bson:"submitted_at" json:"submittedAt"`
	DecidedAt       *time.Time `bson:"decided_at,omitempty" json:"decidedAt,omitempty"`
}

// LawyerProfile is the public directory entry for a verified lawyer.
type LawyerProfile struct {
	ID               string     `bson:"id" json:"id"`
	UserID           string     `bson:"user_id" json:"userId"`
	FullName         string     `bson:"full_name" json:"fullName"`
	RollNumber       string     `bson:"roll_number" json:"rollNumber"`
	Specialties      []string   `bson:"specialties" json:"specialties"`
	County           string     `bson:"county" json:"county"`
	YearsOfPractice  int        `bson:"years_of_practice" json:"yearsOfPractice"`
	Bio              string     `bson:"bio,omitempty" json:"bio,omitempty"`
	Languages        []string   `bson:"languages,omitempty" json:"languages,omitempty"`
	Suspended        bool       `bson:"suspended" json:"suspended"`
	SuspendedUntil   *time.Time `bson:"suspended_until,omitempty" json:"suspendedUntil,omitempty"`
	SuspensionReason string     `bson:"suspension_reason,omitempty" json:"-"`
	AppealNote       string     `bson:"appeal_note,omitempty" json:"-"`
	AppealedAt       *time.Time `bson:"appealed_at,omitempty" json:"-"`
	CreatedAt        time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time  `bson:"updated_at" json:"updatedAt"`
}

// BarRollRecord is one row of the bar roll book, maintained by admins via CSV
// bulk upload and matched against incoming applications.
type BarRollRecord struct {
	RollNumber     string    `bson:"roll_number" json:"rollNumber"`
	NormalizedRoll string    `bson:"normalized_roll" json:"-"`
	FullName       string    `bson:"full_name" json:"fullName"`
	AdmissionYear  int       `bson:"admission_year" json:"admissionYear"`
	Status         string    `bson:"status" json:"status"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// DirectoryQuery filters the public lawyer directory.
type DirectoryQuery struct {
	Specialty string `form:"specialty"`
	County    string `form:"county"`
	MinYears  int    `form:"minYears"`
	Page      int64  `form:"page"`
	PageSize  int64  `form:"pageSize"`
}
