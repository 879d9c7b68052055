package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	err := Validation("title must be between %d and %d characters", 3, 200)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "title must be between 3 and 200 characters", err.Error())

	assert.ErrorIs(t, Forbidden("no access"), ErrForbidden)
	assert.ErrorIs(t, NotFound("post not found"), ErrNotFound)
}

func TestKinds_AreDistinct(t *testing.T) {
	err := NotFound("post not found")
	assert.False(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrForbidden))
}

func TestKinds_SurviveWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", Forbidden("no access"))
	assert.ErrorIs(t, err, ErrForbidden)
}
