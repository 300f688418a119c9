package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_WrapsKind(t *testing.T) {
	err := notFound("Movie", 7)

	assert.Equal(t, "Movie with ID 7 not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)

	wrapped := fmt.Errorf("get movie: %w", err)
	assert.ErrorIs(t, wrapped, ErrNotFound)

	var ue *Error
	assert.True(t, errors.As(wrapped, &ue))
	assert.Equal(t, "Movie with ID 7 not found", ue.Message)
}
