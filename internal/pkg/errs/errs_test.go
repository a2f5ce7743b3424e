package errs_test

import (
	"errors"
	"testing"

	"opspro/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Run("NewValidationError", func(t *testing.T) {
		err := errs.NewValidationError("prepTime")

		assert.Equal(t, "prepTime", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "validation failed: prepTime", err.Error())
		assert.Equal(t, errs.ErrValidation, err.Unwrap())
	})

	t.Run("NewValidationErrorWithCause", func(t *testing.T) {
		cause := errors.New("0 is not greater than 0")
		err := errs.NewValidationErrorWithCause("prepTime", cause)

		assert.Equal(t, "prepTime", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "validation failed: prepTime (cause: 0 is not greater than 0)", err.Error())
		assert.Equal(t, errs.ErrValidation, err.Unwrap())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("order already has a partner")

		assert.Equal(t, "order already has a partner", err.Details)
		assert.Equal(t, "invalid state: order already has a partner", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("status is DELIVERED")
		err := errs.NewInvalidStateErrorWithCause("order is terminal", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "invalid state: order is terminal (cause: status is DELIVERED)", err.Error())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("PREP", "PICKED")

		assert.Equal(t, "PREP", err.From)
		assert.Equal(t, "PICKED", err.To)
		assert.Equal(t, "invalid transition: PREP -> PICKED", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithDetails", func(t *testing.T) {
		err := errs.NewInvalidTransitionErrorWithDetails("READY", "PICKED", "only the assigned partner may pick up")

		assert.Equal(t,
			"invalid transition: READY -> PICKED (only the assigned partner may pick up)",
			err.Error())
	})
}

func TestPartnerUnavailableError(t *testing.T) {
	err := errs.NewPartnerUnavailableError(int64(42))

	assert.Equal(t, int64(42), err.PartnerID)
	assert.Equal(t, "partner unavailable: 42", err.Error())
	assert.Equal(t, errs.ErrPartnerUnavailable, err.Unwrap())
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", int64(123))

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, int64(123), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", int64(123), cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestAuthError(t *testing.T) {
	err := errs.NewAuthError("manager role required")

	assert.Equal(t, "manager role required", err.Details)
	assert.Equal(t, "not authorized: manager role required", err.Error())
	assert.Equal(t, errs.ErrAuth, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrValidation)
		require.Error(t, errs.ErrInvalidState)
		require.Error(t, errs.ErrInvalidTransition)
		require.Error(t, errs.ErrPartnerUnavailable)
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrAuth)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "validation failed", errs.ErrValidation.Error())
		assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
		assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "partner unavailable", errs.ErrPartnerUnavailable.Error())
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "not authorized", errs.ErrAuth.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewValidationError("items"), errs.ErrValidation)
		require.ErrorIs(t, errs.NewInvalidStateError("assigned"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewInvalidTransitionError("PREP", "DELIVERED"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewPartnerUnavailableError(1), errs.ErrPartnerUnavailable)
		require.ErrorIs(t, errs.NewObjectNotFoundError("partnerId", 7), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewAuthError("no session"), errs.ErrAuth)
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewInvalidStateError("first line\nsecond line")
		assert.Contains(t, err.Error(), "first line second line")
		assert.NotContains(t, err.Error(), "\n")
	})
}
