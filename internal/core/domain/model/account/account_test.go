package account_test

import (
	"testing"

	"opspro/internal/core/domain/model/account"
	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("should create account with hashed password", func(t *testing.T) {
		a, err := account.NewAccount("manager", "secret", kernel.RoleManager)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "manager", a.Username())
		assert.Equal(t, kernel.RoleManager, a.Role())
		assert.NotEmpty(t, a.PasswordHash())
		assert.NotContains(t, a.PasswordHash(), "secret")
	})

	t.Run("should reject empty username", func(t *testing.T) {
		_, err := account.NewAccount("", "secret", kernel.RoleManager)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject empty password", func(t *testing.T) {
		_, err := account.NewAccount("manager", "", kernel.RoleManager)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject invalid role", func(t *testing.T) {
		_, err := account.NewAccount("manager", "secret", kernel.RoleUnknown)

		require.Error(t, err)
	})

	t.Run("zero value account fails validation", func(t *testing.T) {
		var a account.Account

		require.Error(t, a.Validate())
	})
}

func TestAccount_VerifyPassword(t *testing.T) {
	a, err := account.NewAccount("rahul", "delivery123", kernel.RolePartner)
	require.NoError(t, err)

	t.Run("should accept the correct password", func(t *testing.T) {
		require.NoError(t, a.VerifyPassword("delivery123"))
	})

	t.Run("should reject a wrong password with AuthError", func(t *testing.T) {
		err := a.VerifyPassword("wrong")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrAuth)
	})
}

func TestRestoreAccount(t *testing.T) {
	id, _ := kernel.NewID(3)

	t.Run("should restore persisted state and verify against stored hash", func(t *testing.T) {
		created, err := account.NewAccount("rahul", "delivery123", kernel.RolePartner)
		require.NoError(t, err)

		restored, err := account.RestoreAccount(id, created.Username(), created.PasswordHash(), created.Role())

		require.NoError(t, err)
		assert.True(t, restored.ID().IsEqual(id))
		require.NoError(t, restored.VerifyPassword("delivery123"))
		require.Error(t, restored.VerifyPassword("other"))
	})

	t.Run("should reject missing id or empty hash", func(t *testing.T) {
		var zeroID kernel.ID

		_, err := account.RestoreAccount(zeroID, "rahul", "hash", kernel.RolePartner)
		require.Error(t, err)

		_, err = account.RestoreAccount(id, "rahul", "", kernel.RolePartner)
		require.Error(t, err)
	})
}

func TestAccount_AttachID(t *testing.T) {
	id, _ := kernel.NewID(3)

	a, err := account.NewAccount("manager", "secret", kernel.RoleManager)
	require.NoError(t, err)

	require.NoError(t, a.AttachID(id))
	assert.True(t, a.ID().IsEqual(id))

	other, _ := kernel.NewID(4)
	attachErr := a.AttachID(other)
	require.Error(t, attachErr)
	assert.Equal(t, account.ErrAccountIDAlreadyAttached, attachErr)
}
