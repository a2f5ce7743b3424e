package guard_test

import (
	"errors"
	"testing"

	"opspro/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("should create a constructed guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("should not be returned")))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero value fails with provided error", func(t *testing.T) {
		var g guard.ConstructorGuard
		sentinel := errors.New("object must be created via NewObject")

		err := g.Validate(sentinel)

		require.Error(t, err)
		assert.Equal(t, sentinel, err)
	})

	t.Run("zero value fails with default error when nil is provided", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("constructed guard passes even with nil error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(nil))
	})

	t.Run("guard embedded in a struct detects zero value", func(t *testing.T) {
		type command struct {
			guard guard.ConstructorGuard
		}

		var notConstructed command
		constructed := command{guard: guard.NewConstructorGuard()}

		require.Error(t, notConstructed.guard.Validate(nil))
		require.NoError(t, constructed.guard.Validate(nil))
	})
}
