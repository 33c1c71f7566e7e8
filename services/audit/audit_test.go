package audit

import (
	"testing"

	"haki/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuditRepo struct {
	entries []models.AuditEntry
	failing bool
}

func (f *fakeAuditRepo) Append(entry *models.AuditEntry) error {
	if f.failing {
		return assert.AnError
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditRepo) List(q models.AuditQuery) ([]models.AuditEntry, error) {
	var out []models.AuditEntry
	for _, e := range f.entries {
		if q.ActorID != "" && e.ActorID != q.ActorID {
			continue
		}
		if q.Action != "" && e.Action != q.Action {
			continue
		}
		if q.TargetType != "" && e.TargetType != q.TargetType {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func TestRecordPopulatesEntry(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := &DefaultAuditService{Repo: repo}

	svc.Record("admin-1", models.RoleAdmin, "lawyer.suspend", "lawyer_profile", "prof-1", "misconduct")

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "admin-1", entry.ActorID)
	assert.Equal(t, models.RoleAdmin, entry.ActorRole)
	assert.Equal(t, "lawyer.suspend", entry.Action)
	assert.Equal(t, "lawyer_profile", entry.TargetType)
	assert.Equal(t, "prof-1", entry.TargetID)
	assert.Equal(t, "misconduct", entry.Detail)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestRecordSwallowsRepoFailure(t *testing.T) {
	repo := &fakeAuditRepo{failing: true}
	svc := &DefaultAuditService{Repo: repo}

	assert.NotPanics(t, func() {
		svc.Record("admin-1", models.RoleAdmin, "glossary.delete", "glossary_term", "term-1", "")
	})
	assert.Empty(t, repo.entries)
}

func TestListFilters(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := &DefaultAuditService{Repo: repo}

	svc.Record("admin-1", models.RoleAdmin, "lawyer.suspend", "lawyer_profile", "prof-1", "")
	svc.Record("admin-2", models.RoleSuperAdmin, "lawyer.unsuspend", "lawyer_profile", "prof-1", "")
	svc.Record("admin-1", models.RoleAdmin, "glossary.delete", "glossary_term", "term-1", "")

	tests := []struct {
		name  string
		query models.AuditQuery
		want  int
	}{
		{"by actor", models.AuditQuery{ActorID: "admin-1"}, 2},
		{"by action", models.AuditQuery{Action: "lawyer.unsuspend"}, 1},
		{"by target type", models.AuditQuery{TargetType: "lawyer_profile"}, 2},
		{"actor and action", models.AuditQuery{ActorID: "admin-1", Action: "glossary.delete"}, 1},
		{"no match", models.AuditQuery{Action: "forum.hide_thread"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := svc.List(tt.query)
			require.NoError(t, err)
			assert.Len(t, entries, tt.want)
		})
	}
}
