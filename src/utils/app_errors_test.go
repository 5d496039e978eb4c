package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	notFound := NotFound("quest %s not found", "abc")
	invalid := Invalid("ids are not a permutation")

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsValidation(notFound))
	assert.True(t, IsValidation(invalid))
	assert.False(t, IsNotFound(invalid))

	assert.False(t, IsNotFound(nil))
	assert.False(t, IsValidation(nil))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestKindsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("reorder failed: %w", Invalid("duplicate id"))
	assert.True(t, IsValidation(wrapped))
	assert.Equal(t, "reorder failed: duplicate id", wrapped.Error())
}

func TestTxFailedWraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := TxFailed(cause, "transaction did not commit")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "transaction did not commit: connection reset", err.Error())
	assert.False(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}
