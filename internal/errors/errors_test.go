package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessage(t *testing.T) {
	plain := New(CodeInvalidInput, "bad field name")
	assert.Equal(t, "bad field name", plain.Error())

	caused := ImportError("roster import failed", fmt.Errorf("row 3 truncated"))
	assert.Equal(t, "roster import failed: row 3 truncated", caused.Error())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	base := fmt.Errorf("connection refused")
	wrapped := Wrap(base, "store unavailable")
	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.ErrorIs(t, wrapped, base)

	// wrapping an AppError keeps its code
	rewrapped := Wrap(ConfigInvalid("SERVER_PORT must be numeric"), "configuration validation failed")
	assert.Equal(t, CodeConfigInvalid, GetCode(rewrapped))
}

func TestWrapf(t *testing.T) {
	err := Wrapf(fmt.Errorf("boom"), "loading %s", "roster.xlsx")
	assert.Equal(t, "loading roster.xlsx: boom", err.Error())
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeExportError, GetCode(ExportError("failed to save workbook", nil)))
	assert.Equal(t, "UNKNOWN", GetCode(errors.New("naked")))
	assert.True(t, IsAppError(NotFound("filter state")))
	assert.False(t, IsAppError(errors.New("naked")))
}
