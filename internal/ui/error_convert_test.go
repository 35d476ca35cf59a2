package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigtoggle/sigtoggle/internal/chord"
	"github.com/sigtoggle/sigtoggle/internal/keyboard"
	"github.com/sigtoggle/sigtoggle/internal/process"
	"github.com/sigtoggle/sigtoggle/usefulerror"
)

func Test_convertToUsefulError(t *testing.T) {
	_, chordErr := chord.Parse("ctrl+hyper")
	require.Error(t, chordErr)

	tests := []struct {
		name           string
		inputError     error
		wantCode       string
		wantHumanError string
		wantContains   string
		wantNil        bool
	}{
		{
			name: "AlreadyUseful",
			inputError: usefulerror.Useful().
				WithCode("CUSTOM").
				WithHumanError("Already useful").
				Msg("test"),
			wantCode:       "CUSTOM",
			wantHumanError: "Already useful",
		},
		{
			name:       "WrappedUseful",
			inputError: fmt.Errorf("listener: %w", usefulerror.Useful().WithCode(usefulerror.ErrCodeHookSkip).Msg("skip")),
			wantCode:   usefulerror.ErrCodeHookSkip,
		},
		{
			name:       "ProcessNotFound",
			inputError: fmt.Errorf("pid 42: %w", process.ErrNotFound),
			wantCode:   usefulerror.ErrCodeProcessNotFound,
		},
		{
			name:       "ESRCH",
			inputError: fmt.Errorf("kill: %w", syscall.ESRCH),
			wantCode:   usefulerror.ErrCodeProcessNotFound,
		},
		{
			name:         "InvalidPid",
			inputError:   fmt.Errorf("%w: %d", process.ErrInvalidPid, -1),
			wantCode:     usefulerror.ErrCodeInvalidArgument,
			wantContains: "-1",
		},
		{
			name:         "InvalidChord",
			inputError:   chordErr,
			wantCode:     usefulerror.ErrCodeInvalidChord,
			wantContains: "hyper",
		},
		{
			name:       "NoKeyboard",
			inputError: keyboard.ErrNoKeyboard,
			wantCode:   usefulerror.ErrCodeListenerFailure,
		},
		{
			name:         "FileNotExist",
			inputError:   &fs.PathError{Op: "open", Path: "/nonexistent/file.yml", Err: os.ErrNotExist},
			wantCode:     usefulerror.ErrCodeNotFound,
			wantContains: "/nonexistent/file.yml",
		},
		{
			name:         "PermissionDenied",
			inputError:   &fs.PathError{Op: "open", Path: "/dev/input/event3", Err: os.ErrPermission},
			wantCode:     usefulerror.ErrCodePermissionDenied,
			wantContains: "/dev/input/event3",
		},
		{
			name:       "EPERM",
			inputError: fmt.Errorf("failed to send SIGSTOP to process 1: %w", syscall.EPERM),
			wantCode:   usefulerror.ErrCodePermissionDenied,
		},
		{
			name:         "ExitError",
			inputError:   exitError(t, 3),
			wantCode:     usefulerror.ErrCodeLifecycle,
			wantContains: "exit code 3",
		},
		{
			name:         "ContextCanceled",
			inputError:   context.Canceled,
			wantCode:     usefulerror.ErrCodeCanceled,
			wantContains: "canceled",
		},
		{
			name:       "UnexpectedEOF",
			inputError: io.ErrUnexpectedEOF,
			wantCode:   usefulerror.ErrCodeUnexpectedEOF,
		},
		{
			name:       "WrappedError",
			inputError: fmt.Errorf("failed to read config: %w", os.ErrNotExist),
			wantCode:   usefulerror.ErrCodeNotFound,
		},
		{
			name:           "UnknownError",
			inputError:     errors.New("some unknown error"),
			wantCode:       usefulerror.ErrCodeUnknown,
			wantHumanError: "some unknown error",
		},
		{
			name: "UnknownWrappedError",
			inputError: fmt.Errorf("more context: %w",
				fmt.Errorf("outer context: %w",
					errors.New("root cause error"))),
			wantCode:       usefulerror.ErrCodeUnknown,
			wantHumanError: "root cause error",
		},
		{
			name:       "Nil",
			inputError: nil,
			wantNil:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := convertToUsefulError(tt.inputError)

			if tt.wantNil {
				assert.Nil(t, result)
				return
			}

			assert.NotNil(t, result)
			assert.Equal(t, tt.wantCode, result.Code())

			if tt.wantHumanError != "" {
				assert.Equal(t, tt.wantHumanError, result.HumanError())
			}

			if tt.wantContains != "" {
				assert.Contains(t, result.HumanError(), tt.wantContains)
			}
		})
	}
}

func exitError(t *testing.T, code int) error {
	t.Helper()

	err := exec.Command("/bin/sh", "-c", fmt.Sprintf("exit %d", code)).Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)

	return err
}

func TestExtractPathFromError(t *testing.T) {
	tests := []struct {
		name     string
		inputErr error
		wantPath string
	}{
		{
			name:     "PathError",
			inputErr: &fs.PathError{Op: "open", Path: "/some/path", Err: os.ErrNotExist},
			wantPath: "/some/path",
		},
		{
			name:     "LinkError",
			inputErr: &os.LinkError{Op: "link", Old: "/old/path", New: "/new/path", Err: os.ErrPermission},
			wantPath: "/old/path",
		},
		{
			name:     "generic error",
			inputErr: errors.New("some error"),
			wantPath: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := extractPathFromError(tt.inputErr)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}
