package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ZheltovAS/RR-test-task/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestNewNotFoundErrorMatchesSentinel(t *testing.T) {
	err := apperrors.NewNotFoundError("organization with INN 1234567890 not found")

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, 404, err.Code)
	assert.Contains(t, err.Error(), "1234567890")
}

func TestAppErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.NewAppError(500, "failed to begin transaction", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to begin transaction")
	assert.Contains(t, err.Error(), "connection refused")

	// Wrapping through fmt keeps the chain intact.
	wrapped := fmt.Errorf("save payment: %w", err)
	var appErr *apperrors.AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, 500, appErr.Code)
}
