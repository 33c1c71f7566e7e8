// Package glossary manages the plain-language legal term dictionary.
package glossary

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	glossaryRepo "haki/database/repository/glossary"
	"haki/models"
	"haki/services/audit"
	"haki/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TermRequest carries the editable fields of a glossary term.
type TermRequest struct {
	Term       string `json:"term" binding:"required"`
	Definition string `json:"definition" binding:"required"`
	Language   string `json:"language" binding:"required"`
	Category   string `json:"category"`
}

// ImportRowErr records one CSV row the importer could not take.
type ImportRowErr struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportReport summarises a glossary CSV upload.
type ImportReport struct {
	Imported int            `json:"imported"`
	Failed   int            `json:"failed"`
	Errors   []ImportRowErr `json:"errors,omitempty"`
}

type GlossaryService interface {
	CreateTerm(req TermRequest, actorID string) (*models.GlossaryTerm, error)
	UpdateTerm(id string, req TermRequest, actorID string) (*models.GlossaryTerm, error)
	DeleteTerm(id, actorID, actorRole string) error
	Search(query, language string, page, pageSize int64) ([]models.GlossaryTerm, error)
	ImportCSV(r io.Reader, actorID, actorRole string) (*ImportReport, error)
}

// DefaultGlossaryService is the production implementation.
type DefaultGlossaryService struct {
	Repo  glossaryRepo.GlossaryRepository
	Audit audit.AuditService
}

func (s *DefaultGlossaryService) CreateTerm(req TermRequest, actorID string) (*models.GlossaryTerm, error) {
	term := &models.GlossaryTerm{
		ID:         uuid.New().String(),
		Term:       strings.TrimSpace(req.Term),
		Definition: strings.TrimSpace(req.Definition),
		Language:   strings.ToLower(strings.TrimSpace(req.Language)),
		Category:   req.Category,
		UpdatedBy:  actorID,
	}
	if term.Term == "" || term.Definition == "" {
		return nil, fmt.Errorf("term and definition are required")
	}
	if err := s.Repo.Create(term); err != nil {
		return nil, err
	}
	return term, nil
}

func (s *DefaultGlossaryService) UpdateTerm(id string, req TermRequest, actorID string) (*models.GlossaryTerm, error) {
	term, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	term.Term = strings.TrimSpace(req.Term)
	term.Definition = strings.TrimSpace(req.Definition)
	term.Language = strings.ToLower(strings.TrimSpace(req.Language))
	term.Category = req.Category
	term.UpdatedBy = actorID

	if err := s.Repo.Update(term); err != nil {
		return nil, err
	}
	return term, nil
}

func (s *DefaultGlossaryService) DeleteTerm(id, actorID, actorRole string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Audit.Record(actorID, actorRole, "glossary.delete", "glossary_term", id, "")
	return nil
}

func (s *DefaultGlossaryService) Search(query, language string, page, pageSize int64) ([]models.GlossaryTerm, error) {
	return s.Repo.Search(query, strings.ToLower(strings.TrimSpace(language)), page, pageSize)
}

// glossaryCSVHeader is the required first row of a glossary upload.
var glossaryCSVHeader = []string{"term", "definition", "language", "category"}

// ImportCSV upserts terms from an admin-uploaded CSV. Bad rows are reported
// per line; a bad row never aborts the batch.
func (s *DefaultGlossaryService) ImportCSV(r io.Reader, actorID, actorRole string) (*ImportReport, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	report := &ImportReport{}
	line := 1
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, ImportRowErr{Line: line, Reason: "malformed row"})
			continue
		}

		term, reason := termFromRecord(record, actorID)
		if reason != "" {
			report.Failed++
			report.Errors = append(report.Errors, ImportRowErr{Line: line, Reason: reason})
			continue
		}

		if err := s.Repo.UpsertByTerm(term); err != nil {
			utils.GetLogger().Error("glossary: failed to upsert imported term",
				zap.String("term", term.Term), zap.Error(err))
			report.Failed++
			report.Errors = append(report.Errors, ImportRowErr{Line: line, Reason: "storage failure"})
			continue
		}
		report.Imported++
	}

	s.Audit.Record(actorID, actorRole, "glossary.import", "glossary", "",
		fmt.Sprintf("imported=%d failed=%d", report.Imported, report.Failed))
	return report, nil
}

func validateHeader(header []string) error {
	if len(header) != len(glossaryCSVHeader) {
		return fmt.Errorf("unexpected CSV header: want %v", glossaryCSVHeader)
	}
	for i, col := range glossaryCSVHeader {
		if strings.ToLower(strings.TrimSpace(header[i])) != col {
			return fmt.Errorf("unexpected CSV header: want %v", glossaryCSVHeader)
		}
	}
	return nil
}

func termFromRecord(record []string, actorID string) (*models.GlossaryTerm, string) {
	if len(record) != 4 {
		return nil, "wrong column count"
	}
	term := strings.TrimSpace(record[0])
	definition := strings.TrimSpace(record[1])
	language := strings.ToLower(strings.TrimSpace(record[2]))
	if term == "" {
		return nil, "empty term"
	}
	if definition == "" {
		return nil, "empty definition"
	}
	if language == "" {
		return nil, "empty language"
	}
	return &models.GlossaryTerm{
		ID:         uuid.New().String(),
		Term:       term,
		Definition: definition,
		Language:   language,
		Category:   strings.TrimSpace(record[3]),
		UpdatedBy:  actorID,
	}, ""
}
