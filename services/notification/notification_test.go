package notification

import (
	"testing"

	"haki/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, assert.AnError
}

func (f *fakeUserRepo) GetAll() ([]models.User, error)                 { return nil, nil }
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error)  { return nil, assert.AnError }
func (f *fakeUserRepo) GetByTokenHash(h string) (*models.User, error)  { return nil, assert.AnError }
func (f *fakeUserRepo) Create(user *models.User) error                 { return nil }
func (f *fakeUserRepo) Update(user *models.User) error                 { return nil }
func (f *fakeUserRepo) UpdateFields(id string, fields bson.M) error    { return nil }
func (f *fakeUserRepo) Delete(id string) error                         { return nil }
func (f *fakeUserRepo) GetByIDWithProjection(id string, p bson.M) (*models.User, error) {
	return f.GetByID(id)
}
func (f *fakeUserRepo) GetByEmailWithProjection(e string, p bson.M) (*models.User, error) {
	return nil, assert.AnError
}
func (f *fakeUserRepo) GetAllWithProjection(p bson.M) ([]models.User, error) { return nil, nil }

func TestNotifyUserIsBestEffort(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{
		"with-token": {ID: "with-token", FCMToken: "device-token"},
		"no-token":   {ID: "no-token"},
	}}
	svc := &DefaultNotificationService{Users: repo}

	// Unknown user, missing token, and an uninitialized FCM client must
	// all fall through without surfacing an error to the caller.
	assert.NotPanics(t, func() {
		svc.NotifyUser("missing", "Title", "Body")
		svc.NotifyUser("no-token", "Title", "Body")
		svc.NotifyUser("with-token", "Title", "Body")
	})
}
