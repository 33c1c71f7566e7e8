package glossary

import (
	"strings"
	"testing"

	"haki/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGlossaryRepo struct {
	terms  map[string]*models.GlossaryTerm // keyed by term|language
	failOn string
}

func newFakeGlossaryRepo() *fakeGlossaryRepo {
	return &fakeGlossaryRepo{terms: make(map[string]*models.GlossaryTerm)}
}

func key(term, language string) string { return term + "|" + language }

func (f *fakeGlossaryRepo) Create(t *models.GlossaryTerm) error {
	f.terms[key(t.Term, t.Language)] = t
	return nil
}

func (f *fakeGlossaryRepo) GetByID(id string) (*models.GlossaryTerm, error) {
	for _, t := range f.terms {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeGlossaryRepo) Update(t *models.GlossaryTerm) error {
	f.terms[key(t.Term, t.Language)] = t
	return nil
}

func (f *fakeGlossaryRepo) Delete(id string) error {
	for k, t := range f.terms {
		if t.ID == id {
			delete(f.terms, k)
			return nil
		}
	}
	return assert.AnError
}

func (f *fakeGlossaryRepo) Search(query, language string, page, pageSize int64) ([]models.GlossaryTerm, error) {
	var out []models.GlossaryTerm
	for _, t := range f.terms {
		if language != "" && t.Language != language {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeGlossaryRepo) UpsertByTerm(t *models.GlossaryTerm) error {
	if f.failOn != "" && t.Term == f.failOn {
		return assert.AnError
	}
	f.terms[key(t.Term, t.Language)] = t
	return nil
}

type fakeAudit struct {
	actions []string
}

func (f *fakeAudit) Record(actorID, actorRole, action, targetType, targetID, detail string) {
	f.actions = append(f.actions, action)
}

func (f *fakeAudit) List(q models.AuditQuery) ([]models.AuditEntry, error) {
	return nil, nil
}

func TestImportCSV(t *testing.T) {
	repo := newFakeGlossaryRepo()
	auditLog := &fakeAudit{}
	svc := &DefaultGlossaryService{Repo: repo, Audit: auditLog}

	csvData := strings.Join([]string{
		"term,definition,language,category",
		"Plaintiff,The person who starts a court case,en,court",
		"Mdai,Mtu anayefungua kesi mahakamani,sw,court",
		",Missing term,en,court",
		"Bail,,en,court",
	}, "\n")

	report, err := svc.ImportCSV(strings.NewReader(csvData), "admin-1", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 2, report.Failed)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, 4, report.Errors[0].Line)
	assert.Equal(t, 5, report.Errors[1].Line)

	terms, err := svc.Search("", "sw", 1, 20)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "Mdai", terms[0].Term)

	assert.Contains(t, auditLog.actions, "glossary.import")
}

func TestImportCSVRejectsBadHeader(t *testing.T) {
	svc := &DefaultGlossaryService{Repo: newFakeGlossaryRepo(), Audit: &fakeAudit{}}

	csvData := "word,meaning\nPlaintiff,The person who starts a court case"
	_, err := svc.ImportCSV(strings.NewReader(csvData), "admin-1", models.RoleAdmin)
	assert.Error(t, err)
}

func TestImportCSVUpsertsExistingTerm(t *testing.T) {
	repo := newFakeGlossaryRepo()
	svc := &DefaultGlossaryService{Repo: repo, Audit: &fakeAudit{}}

	first := "term,definition,language,category\nBail,Old definition,en,court"
	_, err := svc.ImportCSV(strings.NewReader(first), "admin-1", models.RoleAdmin)
	require.NoError(t, err)

	second := "term,definition,language,category\nBail,Money paid so an accused person can stay free until trial,en,court"
	report, err := svc.ImportCSV(strings.NewReader(second), "admin-1", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)

	stored := repo.terms[key("Bail", "en")]
	require.NotNil(t, stored)
	assert.Contains(t, stored.Definition, "stay free until trial")
}

func TestImportCSVStorageFailureIsPerRow(t *testing.T) {
	repo := newFakeGlossaryRepo()
	repo.failOn = "Bail"
	svc := &DefaultGlossaryService{Repo: repo, Audit: &fakeAudit{}}

	csvData := strings.Join([]string{
		"term,definition,language,category",
		"Bail,Money paid to stay free until trial,en,court",
		"Plaintiff,The person who starts a court case,en,court",
	}, "\n")

	report, err := svc.ImportCSV(strings.NewReader(csvData), "admin-1", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 1, report.Failed)
}

func TestCreateTermNormalizesLanguage(t *testing.T) {
	repo := newFakeGlossaryRepo()
	svc := &DefaultGlossaryService{Repo: repo, Audit: &fakeAudit{}}

	term, err := svc.CreateTerm(TermRequest{
		Term:       " Affidavit ",
		Definition: "A written statement confirmed by oath",
		Language:   " EN ",
	}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "Affidavit", term.Term)
	assert.Equal(t, "en", term.Language)
	assert.NotEmpty(t, term.ID)
}
