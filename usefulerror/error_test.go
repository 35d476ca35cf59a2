package usefulerror

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsefulErrorBuilder_Error(t *testing.T) {
	tests := []struct {
		name     string
		builder  func() *usefulErrorBuilder
		expected string
	}{
		{
			name: "wrapped error wins",
			builder: func() *usefulErrorBuilder {
				return Useful().Wrap(errors.New("no such process")).Msg("ignored")
			},
			expected: "no such process",
		},
		{
			name: "msg only",
			builder: func() *usefulErrorBuilder {
				return Useful().Msg("hook exited with status 1")
			},
			expected: "hook exited with status 1",
		},
		{
			name: "code and msg",
			builder: func() *usefulErrorBuilder {
				return Useful().WithCode(ErrCodeHookSkip).Msg("hook exited with status 1")
			},
			expected: "HookSkip: hook exited with status 1",
		},
		{
			name: "code only",
			builder: func() *usefulErrorBuilder {
				return Useful().WithCode(ErrCodeInvalidChord)
			},
			expected: "unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.builder().Error())
		})
	}
}

func TestUsefulErrorBuilder_Defaults(t *testing.T) {
	err := Useful()

	assert.Equal(t, "An error occurred, but no human-readable message is available.", err.HumanError())
	assert.Equal(t, "No additional help is available for this error.", err.Help())
	assert.Equal(t, "No additional help is available for this error.", err.AdditionalHelp())
	assert.Equal(t, "unknown", err.Code())
}

func TestUsefulErrorBuilder_ChainedMethods(t *testing.T) {
	err := Useful().
		WithCode(ErrCodeProcessNotFound).
		Msg("pid 4242 not found").
		WithHumanError("Target process 4242 does not exist").
		WithHelp("Check the pid with ps").
		WithAdditionalHelp("The process may have exited")

	assert.Equal(t, "ProcessNotFound: pid 4242 not found", err.Error())
	assert.Equal(t, "Target process 4242 does not exist", err.HumanError())
	assert.Equal(t, "Check the pid with ps", err.Help())
	assert.Equal(t, "The process may have exited", err.AdditionalHelp())
	assert.Equal(t, ErrCodeProcessNotFound, err.Code())
}

func TestUsefulErrorBuilder_Unwrap(t *testing.T) {
	err := Useful().WithCode(ErrCodeNotFound).Wrap(os.ErrProcessDone)

	assert.ErrorIs(t, err, os.ErrProcessDone)
	assert.ErrorIs(t, fmt.Errorf("outer: %w", err), os.ErrProcessDone)
}

func TestAsUsefulError(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expectOk bool
	}{
		{name: "nil error", input: nil, expectOk: false},
		{name: "builder", input: Useful().Msg("test"), expectOk: true},
		{name: "wrapped builder", input: fmt.Errorf("ctx: %w", Useful().Msg("test")), expectOk: true},
		{name: "regular error", input: errors.New("regular error"), expectOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := AsUsefulError(tt.input)
			assert.Equal(t, tt.expectOk, ok)
			if tt.expectOk {
				assert.Implements(t, (*UsefulError)(nil), result)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	notFound := Useful().WithCode(ErrCodeProcessNotFound).Msg("gone")

	assert.True(t, HasCode(notFound, ErrCodeProcessNotFound))
	assert.True(t, HasCode(fmt.Errorf("listener: %w", notFound), ErrCodeProcessNotFound))
	assert.False(t, HasCode(notFound, ErrCodeListenerFailure))
	assert.False(t, HasCode(errors.New("plain"), ErrCodeProcessNotFound))
	assert.False(t, HasCode(nil, ErrCodeProcessNotFound))

	outer := Useful().WithCode(ErrCodeListenerFailure).Wrap(notFound)
	assert.True(t, HasCode(outer, ErrCodeListenerFailure))
	assert.True(t, HasCode(outer, ErrCodeProcessNotFound))
}
