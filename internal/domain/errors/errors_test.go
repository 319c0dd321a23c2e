package errors

import (
	"net/http"
	"testing"

	"citycard/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrInsufficientFunds.WrapMessage("pay card 12")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "INSUFFICIENT_FUNDS", appErr.ErrorCode())
	assert.Equal(t, "Insufficient funds", appErr.Message())
	assert.True(t, errors.Is(err, ErrInsufficientFunds))
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("phone is required")

	assert.Equal(t, "phone is required", detailed.Details())
	assert.True(t, errors.Is(errors.Wrap(detailed, "register"), ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrUserNotFound))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("relation \"public.users\" does not exist")
	err := NewDatabaseExecuteError(cause, "find user by phone")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, cause.Error(), err.Message())
	assert.Equal(t, "find user by phone", err.Details())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "database execution failed")
}
