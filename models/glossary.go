// models/glossary.go
package models

import "time"

// GlossaryTerm is a plain-language explanation of a legal term, shown to
// users in the client and managed from the admin dashboard.
type GlossaryTerm struct {
	ID         string    `bson:"id" json:"id"`
	Term       string    `bson:"term" json:"term"`
	Definition string    `bson:"definition" json:"definition"`
	Language   string    `bson:"language" json:"language"`
	Category   string    `bson:"category,omitempty" json:"category,omitempty"`
	UpdatedBy  string    `bson:"updated_by,omitempty" json:"-"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}
