package errs_test

import (
	"errors"
	"testing"

	"freightflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("driverId")

		assert.Equal(t, "driverId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: driverId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("brokerId", cause)

		assert.Equal(t, "brokerId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: brokerId (cause: missing required field)", err.Error())
	})

	t.Run("classified by errors.Is", func(t *testing.T) {
		var err error = errs.NewValueIsRequiredError("loadId")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("7 is not a valid status")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: 7 is not a valid status)", err.Error())
	})
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("submissionId", "bol-123")

		assert.Equal(t, "submissionId", err.ParamName)
		assert.Equal(t, "bol-123", err.ID)
		assert.Equal(t, "object not found: bol-123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("submissionId", "bol-123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: submissionId, ID is: bol-123 (cause: record not found)",
			err.Error())
	})
}

func TestNotAuthorizedError(t *testing.T) {
	err := errs.NewNotAuthorizedError("approve submission", "broker-2")

	assert.Equal(t, "approve submission", err.Operation)
	assert.Equal(t, "broker-2", err.ActorID)
	assert.Equal(t, "not authorized: approve submission by broker-2", err.Error())
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func TestGatewayError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewGatewayErrorWithCause("messaging", cause)

	assert.Equal(t, "messaging", err.Gateway)
	assert.Equal(t, "gateway failure: messaging (cause: connection refused)", err.Error())
	assert.ErrorIs(t, err, errs.ErrGatewayFailure)
}

func TestInvariantViolationError(t *testing.T) {
	err := errs.NewInvariantViolationError("submission already has an invoice")

	assert.Equal(t, "submission already has an invoice", err.Invariant)
	assert.Equal(t, "invariant violation: submission already has an invoice", err.Error())
	assert.ErrorIs(t, err, errs.ErrInvariantViolation)
}

func TestSanitizeNewlines(t *testing.T) {
	err := errs.NewObjectNotFoundError("submissionId", "line1\nline2")
	assert.Contains(t, err.Error(), "line1 line2")
	assert.NotContains(t, err.Error(), "\n")
}
