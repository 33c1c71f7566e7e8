package consultation

import (
	"testing"
	"time"

	"haki/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConsultationRepo struct {
	items map[string]*models.Consultation
}

func newFakeConsultationRepo() *fakeConsultationRepo {
	return &fakeConsultationRepo{items: make(map[string]*models.Consultation)}
}

func (f *fakeConsultationRepo) Create(c *models.Consultation) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeConsultationRepo) GetByID(id string) (*models.Consultation, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, assert.AnError
	}
	cp := *c
	return &cp, nil
}

func (f *fakeConsultationRepo) Update(c *models.Consultation) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeConsultationRepo) ListByUser(userID string, page, pageSize int64) ([]models.Consultation, error) {
	var out []models.Consultation
	for _, c := range f.items {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeConsultationRepo) ListByLawyer(lawyerID, status string, page, pageSize int64) ([]models.Consultation, error) {
	var out []models.Consultation
	for _, c := range f.items {
		if c.LawyerID == lawyerID && (status == "" || c.Status == status) {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.LawyerProfile
}

func newFakeProfileRepo(profiles ...*models.LawyerProfile) *fakeProfileRepo {
	f := &fakeProfileRepo{profiles: make(map[string]*models.LawyerProfile)}
	for _, p := range profiles {
		f.profiles[p.ID] = p
	}
	return f
}

func (f *fakeProfileRepo) Create(p *models.LawyerProfile) error {
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) GetByID(id string) (*models.LawyerProfile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, assert.AnError
	}
	return p, nil
}

func (f *fakeProfileRepo) GetByUserID(userID string) (*models.LawyerProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) Update(p *models.LawyerProfile) error {
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) Search(q models.DirectoryQuery) ([]models.LawyerProfile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) ListSuspended(page, pageSize int64) ([]models.LawyerProfile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) ListSuspendedExpiring() ([]models.LawyerProfile, error) {
	return nil, nil
}

type fakeNotifier struct {
	sent []string
}

func (f *fakeNotifier) NotifyUser(userID, title, body string) {
	f.sent = append(f.sent, userID+": "+title)
}

func newTestService(profiles ...*models.LawyerProfile) (*DefaultConsultationService, *fakeConsultationRepo, *fakeNotifier) {
	repo := newFakeConsultationRepo()
	notifier := &fakeNotifier{}
	svc := &DefaultConsultationService{
		Repo:     repo,
		Profiles: newFakeProfileRepo(profiles...),
		Notify:   notifier,
	}
	return svc, repo, notifier
}

func lawyerProfile() *models.LawyerProfile {
	return &models.LawyerProfile{ID: "prof-1", UserID: "lawyer-1", FullName: "Wanjiku Kamau"}
}

func TestRequestConsultation(t *testing.T) {
	svc, _, notifier := newTestService(lawyerProfile())

	cons, err := svc.Request(ConsultationRequest{
		UserID:     "user-1",
		LawyerID:   "prof-1",
		Subject:    "Tenancy dispute",
		ProposedAt: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ConsultationRequested, cons.Status)
	assert.Equal(t, "prof-1", cons.LawyerID)
	assert.Len(t, notifier.sent, 1)
}

func TestRequestConsultationRejectsPastTime(t *testing.T) {
	svc, _, _ := newTestService(lawyerProfile())

	_, err := svc.Request(ConsultationRequest{
		UserID:     "user-1",
		LawyerID:   "prof-1",
		Subject:    "Tenancy dispute",
		ProposedAt: time.Now().Add(-time.Hour).Format(time.RFC3339),
	})
	assert.Error(t, err)
}

func TestRequestConsultationRejectsSuspendedLawyer(t *testing.T) {
	profile := lawyerProfile()
	profile.Suspended = true
	svc, _, _ := newTestService(profile)

	_, err := svc.Request(ConsultationRequest{
		UserID:     "user-1",
		LawyerID:   "prof-1",
		Subject:    "Tenancy dispute",
		ProposedAt: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	assert.Error(t, err)
}

func TestRespondAcceptAndComplete(t *testing.T) {
	svc, _, notifier := newTestService(lawyerProfile())

	cons, err := svc.Request(ConsultationRequest{
		UserID:     "user-1",
		LawyerID:   "prof-1",
		Subject:    "Land succession",
		ProposedAt: time.Now().Add(72 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)

	accepted, err := svc.Respond(cons.ID, "lawyer-1", models.ConsultationAccepted, "see you then")
	require.NoError(t, err)
	assert.Equal(t, models.ConsultationAccepted, accepted.Status)
	assert.NotEmpty(t, notifier.sent)

	completed, err := svc.Complete(cons.ID, "lawyer-1")
	require.NoError(t, err)
	assert.Equal(t, models.ConsultationCompleted, completed.Status)
}

func TestRespondByWrongLawyer(t *testing.T) {
	svc, _, _ := newTestService(lawyerProfile())

	cons, err := svc.Request(ConsultationRequest{
		UserID:     "user-1",
		LawyerID:   "prof-1",
		Subject:    "Employment claim",
		ProposedAt: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)

	_, err = svc.Respond(cons.ID, "someone-else", models.ConsultationAccepted, "")
	assert.ErrorIs(t, err, ErrNotYours)
}

func TestRespondTwiceIsRejected(t *testing.T) {
	svc, _, _ := newTestService(lawyerProfile())

	cons, err := svc.Request(ConsultationRequest{
		UserID:     "user-1",
		LawyerID:   "prof-1",
		Subject:    "Employment claim",
		ProposedAt: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)

	_, err = svc.Respond(cons.ID, "lawyer-1", models.ConsultationDeclined, "")
	require.NoError(t, err)

	_, err = svc.Respond(cons.ID, "lawyer-1", models.ConsultationAccepted, "")
	assert.ErrorIs(t, err, ErrBadTransition)
}

func TestCancelOnlyByOwner(t *testing.T) {
	svc, repo, _ := newTestService(lawyerProfile())

	cons, err := svc.Request(ConsultationRequest{
		UserID:     "user-1",
		LawyerID:   "prof-1",
		Subject:    "Bail inquiry",
		ProposedAt: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)

	err = svc.Cancel(cons.ID, "user-2")
	assert.ErrorIs(t, err, ErrNotYours)

	require.NoError(t, svc.Cancel(cons.ID, "user-1"))
	stored, err := repo.GetByID(cons.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ConsultationCancelled, stored.Status)
}

func TestCompleteRequiresAccepted(t *testing.T) {
	svc, _, _ := newTestService(lawyerProfile())

	cons, err := svc.Request(ConsultationRequest{
		UserID:     "user-1",
		LawyerID:   "prof-1",
		Subject:    "Bail inquiry",
		ProposedAt: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)

	_, err = svc.Complete(cons.ID, "lawyer-1")
	assert.ErrorIs(t, err, ErrBadTransition)
}
