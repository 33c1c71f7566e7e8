package glossaryRepo

import (
	"haki/models"
)

// GlossaryRepository defines data access for glossary terms.
type GlossaryRepository interface {
	// Create inserts a new glossary term.
	Create(term *models.GlossaryTerm) error
	// GetByID retrieves a term by its unique ID.
	GetByID(id string) (*models.GlossaryTerm, error)
	// Update modifies an existing term.
	Update(term *models.GlossaryTerm) error
	// Delete removes a term by its ID.
	Delete(id string) error
	// Search retrieves terms matching the text query and language, alphabetical.
	Search(query, language string, page, pageSize int64) ([]models.GlossaryTerm, error)
	// UpsertByTerm inserts or replaces a term keyed by (term, language).
	UpsertByTerm(term *models.GlossaryTerm) error
}
