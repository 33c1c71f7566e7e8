package forum

import (
	"testing"

	"haki/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeForumRepo struct {
	threads map[string]*models.ForumThread
	replies map[string]*models.ForumReply
}

func newFakeForumRepo() *fakeForumRepo {
	return &fakeForumRepo{
		threads: make(map[string]*models.ForumThread),
		replies: make(map[string]*models.ForumReply),
	}
}

func (f *fakeForumRepo) CreateThread(t *models.ForumThread) error {
	f.threads[t.ID] = t
	return nil
}

func (f *fakeForumRepo) GetThreadByID(id string) (*models.ForumThread, error) {
	t, ok := f.threads[id]
	if !ok {
		return nil, assert.AnError
	}
	cp := *t
	return &cp, nil
}

func (f *fakeForumRepo) UpdateThread(t *models.ForumThread) error {
	f.threads[t.ID] = t
	return nil
}

func (f *fakeForumRepo) ListThreads(category string, page, pageSize int64) ([]models.ForumThread, error) {
	var out []models.ForumThread
	for _, t := range f.threads {
		if t.Hidden || t.Deleted {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeForumRepo) CreateReply(r *models.ForumReply) error {
	f.replies[r.ID] = r
	if t, ok := f.threads[r.ThreadID]; ok {
		t.ReplyCount++
	}
	return nil
}

func (f *fakeForumRepo) ListReplies(threadID string, page, pageSize int64) ([]models.ForumReply, error) {
	var out []models.ForumReply
	for _, r := range f.replies {
		if r.ThreadID == threadID && !r.Hidden {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeForumRepo) HideReply(id string) error {
	r, ok := f.replies[id]
	if !ok {
		return assert.AnError
	}
	r.Hidden = true
	return nil
}

func (f *fakeForumRepo) IncrementReportCount(threadID string) error {
	t, ok := f.threads[threadID]
	if !ok {
		return assert.AnError
	}
	t.ReportCount++
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

func newTestForum() (*DefaultForumService, *fakeForumRepo, *fakeAudit) {
	repo := newFakeForumRepo()
	auditLog := &fakeAudit{}
	return &DefaultForumService{Repo: repo, Audit: auditLog}, repo, auditLog
}

func TestCreateAndReadThread(t *testing.T) {
	svc, _, _ := newTestForum()

	thread, err := svc.CreateThread(ThreadRequest{
		AuthorID: "user-1",
		Title:    "Can my landlord evict me without notice?",
		Body:     "He gave me two days to leave.",
		Category: "housing",
	})
	require.NoError(t, err)

	_, err = svc.Reply(thread.ID, "lawyer-1", "Notice periods are set by the tenancy agreement and the law.")
	require.NoError(t, err)

	got, replies, err := svc.GetThread(thread.ID)
	require.NoError(t, err)
	assert.Equal(t, thread.ID, got.ID)
	assert.Len(t, replies, 1)
}

func TestDeleteThreadOnlyByAuthor(t *testing.T) {
	svc, repo, _ := newTestForum()

	thread, err := svc.CreateThread(ThreadRequest{
		AuthorID: "user-1", Title: "Question", Body: "Body", Category: "general",
	})
	require.NoError(t, err)

	err = svc.DeleteThread(thread.ID, "user-2")
	assert.ErrorIs(t, err, ErrNotAuthor)

	require.NoError(t, svc.DeleteThread(thread.ID, "user-1"))
	assert.True(t, repo.threads[thread.ID].Deleted)

	// Soft-deleted threads disappear from reads.
	_, _, err = svc.GetThread(thread.ID)
	assert.Error(t, err)
}

func TestHiddenThreadNotServed(t *testing.T) {
	svc, _, auditLog := newTestForum()

	thread, err := svc.CreateThread(ThreadRequest{
		AuthorID: "user-1", Title: "Spam", Body: "Spam body", Category: "general",
	})
	require.NoError(t, err)

	require.NoError(t, svc.HideThread(thread.ID, "admin-1", models.RoleAdmin))
	assert.Contains(t, auditLog.actions, "forum.hide_thread")

	_, _, err = svc.GetThread(thread.ID)
	assert.Error(t, err)

	_, err = svc.Reply(thread.ID, "user-2", "reply")
	assert.Error(t, err)
}

func TestReportThreadBumpsCounter(t *testing.T) {
	svc, repo, _ := newTestForum()

	thread, err := svc.CreateThread(ThreadRequest{
		AuthorID: "user-1", Title: "Borderline", Body: "Body", Category: "general",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ReportThread(thread.ID))
	require.NoError(t, svc.ReportThread(thread.ID))
	assert.Equal(t, 2, repo.threads[thread.ID].ReportCount)
}
