package services

import (
	"testing"

	"github.com/Fryupi/magazin/entity"
	"github.com/Fryupi/magazin/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	user, token, err := env.auth.Register(&RegisterIn{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "secret1",
		Role:     entity.RoleBuyer,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.Password)
	assert.True(t, user.Balance.Equal(decimal.NewFromInt(10000)), "new users start with the demo balance")
}

func TestRegisterDefaultsToBuyer(t *testing.T) {
	env := newTestEnv(t)

	user, _, err := env.auth.Register(&RegisterIn{Username: "bob", Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBuyer, user.Role)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.auth.Register(&RegisterIn{
		Username: "bob", Email: "bob@example.com", Password: "secret1", Role: "admin",
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice", entity.RoleBuyer, 0)

	_, _, err := env.auth.Register(&RegisterIn{
		Username: "alice", Email: "other@example.com", Password: "secret1",
	})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice", entity.RoleBuyer, 0)

	_, _, err := env.auth.Register(&RegisterIn{
		Username: "alice2", Email: "alice@example.com", Password: "secret1",
	})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.auth.Register(&RegisterIn{
		Username: "alice", Email: "alice@example.com", Password: "secret1", Role: entity.RoleSeller,
	})
	require.NoError(t, err)

	token, user, err := env.auth.Login("alice", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, entity.RoleSeller, user.Role)

	_, _, err = env.auth.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = env.auth.Login("nobody", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
