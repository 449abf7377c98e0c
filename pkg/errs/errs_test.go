package errs

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	v := Validation("product_number", "must not be blank")
	assert.True(t, IsValidation(v))
	assert.False(t, IsNotFound(v))
	assert.Equal(t, "validation error: product_number must not be blank", v.Error())

	n := NotFound("battery", 7)
	assert.True(t, IsNotFound(n))
	assert.Equal(t, "battery 7 not found", n.Error())

	wrapped := fmt.Errorf("handover: %w", n)
	assert.True(t, IsNotFound(wrapped))
}

func TestStorageWrapping(t *testing.T) {
	assert.Nil(t, Storage("batteries", "read", nil))

	s := Storage("batteries", "read", fs.ErrNotExist)
	assert.True(t, IsStorage(s))
	assert.True(t, errors.Is(s, fs.ErrNotExist))
	assert.Equal(t, "storage error: read batteries: file does not exist", s.Error())

	// already wrapped errors keep their original table and op
	again := Storage("battery_checks", "write", s)
	assert.Same(t, s, again)
}
