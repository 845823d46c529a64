package service

import (
	"testing"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	require.NoError(t, storage.Init(t.TempDir()))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	setup(t)
	service := UserService{}

	err := service.Register("Alice Silva", "alice", "secret")
	assert.NoError(t, err)

	err = service.Register("Outra Alice", "alice", "different")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	// first record must be unaffected
	user, err := service.Login("alice", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "Alice Silva", user.Name)
}

func TestLoginWrongPassword(t *testing.T) {
	setup(t)
	service := UserService{}

	require.NoError(t, service.Register("Alice Silva", "alice", "secret"))

	_, err := service.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login("bob", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginNeverExposesPasswordHash(t *testing.T) {
	setup(t)
	service := UserService{}

	require.NoError(t, service.Register("Alice Silva", "alice", "secret"))

	user, err := service.Login("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice Silva", user.Name)
	assert.Empty(t, user.Password)
}

func TestRegisterStoresHashNotRawPassword(t *testing.T) {
	setup(t)
	service := UserService{}

	require.NoError(t, service.Register("Alice Silva", "alice", "secret"))

	users, err := storage.Load[struct {
		Password string `json:"senha"`
	}](storage.GetStore(), storage.UsersCollection)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NotEqual(t, "secret", users[0].Password)
	assert.NotEmpty(t, users[0].Password)
}
