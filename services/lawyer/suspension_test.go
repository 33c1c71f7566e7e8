package lawyer

import (
	"testing"
	"time"

	"haki/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	profiles map[string]*models.LawyerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.LawyerProfile)}
}

func (f *fakeProfileRepo) Create(profile *models.LawyerProfile) error {
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) GetByID(id string) (*models.LawyerProfile, error) {
	if p, ok := f.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, assert.AnError
}

func (f *fakeProfileRepo) GetByUserID(userID string) (*models.LawyerProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) Update(profile *models.LawyerProfile) error {
	cp := *profile
	f.profiles[profile.ID] = &cp
	return nil
}

func (f *fakeProfileRepo) Search(q models.DirectoryQuery) ([]models.LawyerProfile, error) {
	var out []models.LawyerProfile
	for _, p := range f.profiles {
		if !p.Suspended {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) ListSuspended(page, pageSize int64) ([]models.LawyerProfile, error) {
	var out []models.LawyerProfile
	for _, p := range f.profiles {
		if p.Suspended {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) ListSuspendedExpiring() ([]models.LawyerProfile, error) {
	var out []models.LawyerProfile
	now := time.Now()
	for _, p := range f.profiles {
		if p.Suspended && p.SuspendedUntil != nil && !p.SuspendedUntil.After(now) {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeNotify struct {
	messages []string
}

func (f *fakeNotify) NotifyUser(userID, title, body string) {
	f.messages = append(f.messages, title)
}

func suspendedProfile(t *testing.T, profiles *fakeProfileRepo) *models.LawyerProfile {
	t.Helper()
	p := &models.LawyerProfile{
		ID:         "prof-1",
		UserID:     "user-1",
		FullName:   "Wanjiku Njeri Kamau",
		RollNumber: "P105/4321",
		Suspended:  true,
	}
	require.NoError(t, profiles.Create(p))
	return p
}

func TestAppealSuspension(t *testing.T) {
	profiles := newFakeProfileRepo()
	auditLog := &fakeAudit{}
	suspendedProfile(t, profiles)
	svc := &DefaultLawyerService{Profiles: profiles, Audit: auditLog}

	require.NoError(t, svc.AppealSuspension("user-1", "The complaint was withdrawn."))

	stored := profiles.profiles["prof-1"]
	assert.Equal(t, "The complaint was withdrawn.", stored.AppealNote)
	require.NotNil(t, stored.AppealedAt)
	assert.Contains(t, auditLog.actions, "lawyer.suspension_appeal")

	queue, err := svc.ListSuspended(1, 20)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, "The complaint was withdrawn.", queue[0].AppealNote)
}

func TestAppealSuspensionRequiresSuspension(t *testing.T) {
	profiles := newFakeProfileRepo()
	require.NoError(t, profiles.Create(&models.LawyerProfile{ID: "prof-1", UserID: "user-1"}))
	svc := &DefaultLawyerService{Profiles: profiles, Audit: &fakeAudit{}}

	err := svc.AppealSuspension("user-1", "please")
	assert.ErrorIs(t, err, ErrNotSuspended)

	err = svc.AppealSuspension("nobody", "please")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestAppealSuspensionOncePerSuspension(t *testing.T) {
	profiles := newFakeProfileRepo()
	suspendedProfile(t, profiles)
	svc := &DefaultLawyerService{Profiles: profiles, Audit: &fakeAudit{}}

	require.NoError(t, svc.AppealSuspension("user-1", "first appeal"))
	err := svc.AppealSuspension("user-1", "second appeal")
	assert.ErrorIs(t, err, ErrAppealPending)
}

func TestLiftSuspensionClearsAppeal(t *testing.T) {
	profiles := newFakeProfileRepo()
	notify := &fakeNotify{}
	suspendedProfile(t, profiles)
	svc := &DefaultLawyerService{Profiles: profiles, Audit: &fakeAudit{}, Notify: notify}

	require.NoError(t, svc.AppealSuspension("user-1", "appeal note"))
	require.NoError(t, svc.LiftSuspension("prof-1", "admin-1", models.RoleAdmin))

	stored := profiles.profiles["prof-1"]
	assert.False(t, stored.Suspended)
	assert.Empty(t, stored.AppealNote)
	assert.Nil(t, stored.AppealedAt)
	assert.Contains(t, notify.messages, "Suspension lifted")

	err := svc.AppealSuspension("user-1", "again")
	assert.ErrorIs(t, err, ErrNotSuspended)
}
