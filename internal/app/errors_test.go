package app

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationError(t *testing.T) {
	err := NewOperationError("open", "a.txt", fs.ErrPermission)
	assert.Equal(t, "open a.txt: permission denied", err.Error())
	assert.ErrorIs(t, err, fs.ErrPermission)

	assert.Equal(t, "reload", NewOperationError("reload", "", nil).Error())

	var nilErr *OperationError
	assert.Empty(t, nilErr.Error())
	assert.NoError(t, nilErr.Unwrap())
}

func TestInitError(t *testing.T) {
	cause := errors.New("no tty")
	err := &InitError{Component: "backend", Err: cause}
	assert.Equal(t, "init backend: no tty", err.Error())
	assert.ErrorIs(t, err, cause)
}
