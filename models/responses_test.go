package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSubmissionResult(t *testing.T) {
	t.Run("Both emails delivered", func(t *testing.T) {
		result := NewSubmissionResult(true, true)
		assert.True(t, result.Success)
		assert.Equal(t, MsgSubmitOK, result.Message)
		assert.Empty(t, result.Warning)
	})

	t.Run("Confirmation failed", func(t *testing.T) {
		result := NewSubmissionResult(true, false)
		assert.True(t, result.Success)
		assert.Equal(t, MsgSubmitNoConfirmation, result.Message)
		assert.Equal(t, WarnConfirmationFailed, result.Warning)
	})

	t.Run("Notification failed", func(t *testing.T) {
		result := NewSubmissionResult(false, true)
		assert.True(t, result.Success)
		assert.Equal(t, MsgSubmitNoNotification, result.Message)
		assert.Equal(t, WarnNotificationFailed, result.Warning)
	})

	t.Run("Both emails failed", func(t *testing.T) {
		result := NewSubmissionResult(false, false)
		assert.True(t, result.Success)
		assert.Equal(t, MsgSubmitNoEmail, result.Message)
		assert.Equal(t, WarnAllEmailFailed, result.Warning)
	})
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Violations: []string{MsgNaamRequired, MsgEmailInvalid}}
	assert.Contains(t, err.Error(), MsgNaamRequired)
	assert.Contains(t, err.Error(), MsgEmailInvalid)
}
