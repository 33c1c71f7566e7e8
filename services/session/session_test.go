package session

import (
	"context"
	"testing"
	"time"

	"haki/models"
	"haki/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, assert.AnError
	}
	return u, nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }

func (f *fakeUserRepo) GetByTokenHash(tokenHash string) (*models.User, error) {
	for _, u := range f.users {
		if u.TokenHash == tokenHash {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(u *models.User) error { return nil }
func (f *fakeUserRepo) Update(u *models.User) error { return nil }

func (f *fakeUserRepo) UpdateFields(id string, fields bson.M) error { return nil }
func (f *fakeUserRepo) Delete(id string) error                      { return nil }

func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return f.GetByID(id)
}

func (f *fakeUserRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetAllWithProjection(projection bson.M) ([]models.User, error) {
	return nil, nil
}

type fakeAppRepo struct {
	latest *models.LawyerApplication
}

func (f *fakeAppRepo) Create(app *models.LawyerApplication) error          { return nil }
func (f *fakeAppRepo) GetByID(id string) (*models.LawyerApplication, error) { return nil, nil }

func (f *fakeAppRepo) GetLatestByUserID(userID string) (*models.LawyerApplication, error) {
	return f.latest, nil
}

func (f *fakeAppRepo) Update(app *models.LawyerApplication) error { return nil }

func (f *fakeAppRepo) ListByStatus(status string, page, pageSize int64) ([]models.LawyerApplication, error) {
	return nil, nil
}

func issueToken(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, time.Hour)
	require.NoError(t, err)
	user.TokenHash = utils.HashToken(token)
	return token
}

func TestFetchProfile(t *testing.T) {
	usr := &models.User{ID: "u1", Email: "a@b.co", Role: models.RoleUser, IsVerified: true}
	token := issueToken(t, usr)
	svc := &DefaultSessionService{Users: newFakeUserRepo(usr), Apps: &fakeAppRepo{}}

	snap, err := svc.FetchProfile(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u1", snap.UserID)
	assert.Equal(t, models.RoleUser, snap.Role)
	assert.True(t, snap.IsVerified)
}

func TestFetchProfileRejectsGarbageToken(t *testing.T) {
	svc := &DefaultSessionService{Users: newFakeUserRepo(), Apps: &fakeAppRepo{}}

	_, err := svc.FetchProfile(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestFetchProfileRejectsRevokedToken(t *testing.T) {
	usr := &models.User{ID: "u1", Email: "a@b.co", Role: models.RoleUser}
	token := issueToken(t, usr)
	usr.TokenHash = "something-else" // revoked: active hash no longer matches

	svc := &DefaultSessionService{Users: newFakeUserRepo(usr), Apps: &fakeAppRepo{}}

	_, err := svc.FetchProfile(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestFetchStatus(t *testing.T) {
	svc := &DefaultSessionService{
		Users: newFakeUserRepo(),
		Apps:  &fakeAppRepo{latest: &models.LawyerApplication{Status: models.ApplicationAccepted}},
	}

	status, err := svc.FetchStatus(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationAccepted, status)
}

func TestFetchStatusWithoutApplication(t *testing.T) {
	svc := &DefaultSessionService{Users: newFakeUserRepo(), Apps: &fakeAppRepo{}}

	status, err := svc.FetchStatus(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, status)
}
