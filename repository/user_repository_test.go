package repository

import (
	"path/filepath"
	"testing"

	"github.com/nguyendat030805/FinalProjectMobile/configs"
	"github.com/nguyendat030805/FinalProjectMobile/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestUsers(t *testing.T) *UserRepository {
	t.Helper()
	d := configs.NewDatabase(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, d.Initialize())
	t.Cleanup(func() { d.Close() })
	return NewUserRepository(d)
}

func TestCreateDuplicateUsernameFails(t *testing.T) {
	r := newTestUsers(t)

	// admin is part of the factory seed
	err := r.Create(&entity.User{Username: "admin", Password: "x", Role: "user"})
	assert.Error(t, err)

	users, err := r.Fetch()
	require.NoError(t, err)
	assert.Len(t, users, 4)
}

func TestFindByCredentials(t *testing.T) {
	r := newTestUsers(t)

	user, err := r.FindByCredentials("admin", "123456")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin", user.Role)

	user, err = r.FindByCredentials("admin", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = r.FindByCredentials("nobody", "123456")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSeedPasswordsAreHashed(t *testing.T) {
	r := newTestUsers(t)

	user, err := r.FindByUsername("user1")
	require.NoError(t, err)
	assert.NotEqual(t, "password1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password1")))
}

func TestUpdateAndDeleteUser(t *testing.T) {
	r := newTestUsers(t)

	guest, err := r.FindByUsername("guest1")
	require.NoError(t, err)

	require.NoError(t, r.Update(guest.ID, map[string]any{"role": "user"}))
	got, err := r.FindByID(guest.ID)
	require.NoError(t, err)
	assert.Equal(t, "user", got.Role)

	require.NoError(t, r.Delete(guest.ID))
	_, err = r.FindByID(guest.ID)
	assert.Error(t, err)
}

func TestSearchUsers(t *testing.T) {
	r := newTestUsers(t)

	got, err := r.Search("guest")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "guest1", got[0].Username)

	// role keyword also matches
	got, err = r.Search("admin")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "admin", got[0].Username)
}
