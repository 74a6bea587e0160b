package errs_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		cause := errors.New("hello\nworld")
		err := errs.NewValueIsInvalidErrorWithCause("text", cause)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("zip")

		assert.Equal(t, "zip", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: zip", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("zip", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: zip (cause: missing required field)", err.Error())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("delivered", "dispatched")

		assert.Equal(t, "delivered", err.From)
		assert.Equal(t, "dispatched", err.To)
		assert.Equal(t, "invalid status transition: delivered -> dispatched", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("order is terminal")
		err := errs.NewInvalidTransitionErrorWithCause("cancelled", "confirmed", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid status transition: cancelled -> confirmed (cause: order is terminal)",
			err.Error())
	})
}

func TestPersistenceError(t *testing.T) {
	t.Run("NewPersistenceError", func(t *testing.T) {
		cause := errors.New("context deadline exceeded")
		err := errs.NewPersistenceError("order update", cause)

		assert.Equal(t, "order update", err.Operation)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"persistence failure: order update, outcome unknown (cause: context deadline exceeded)",
			err.Error())
		assert.Equal(t, errs.ErrPersistenceFailure, err.Unwrap())
	})
}

func TestPaymentDeclinedError(t *testing.T) {
	t.Run("NewPaymentDeclinedError", func(t *testing.T) {
		err := errs.NewPaymentDeclinedError("ch_123")

		assert.Equal(t, "ch_123", err.Reference)
		assert.Equal(t, "payment declined: reference is: ch_123", err.Error())
		assert.Equal(t, errs.ErrPaymentDeclined, err.Unwrap())
	})

	t.Run("without reference", func(t *testing.T) {
		err := errs.NewPaymentDeclinedError("")
		assert.Equal(t, "payment declined", err.Error())
	})

	t.Run("NewPaymentDeclinedErrorWithCause", func(t *testing.T) {
		cause := errors.New("card expired")
		err := errs.NewPaymentDeclinedErrorWithCause("ch_456", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "payment declined: reference is: ch_456 (cause: card expired)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid status transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "persistence failure", errs.ErrPersistenceFailure.Error())
		assert.Equal(t, "payment declined", errs.ErrPaymentDeclined.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("zip"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInvalidTransitionError("delivered", "cancelled"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewPersistenceError("update", errors.New("timeout")), errs.ErrPersistenceFailure)
		require.ErrorIs(t, errs.NewPaymentDeclinedError(""), errs.ErrPaymentDeclined)
	})
}
