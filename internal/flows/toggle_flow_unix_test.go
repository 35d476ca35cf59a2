//go:build unix

package flows

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigtoggle/sigtoggle/config"
	"github.com/sigtoggle/sigtoggle/internal/feedback"
	"github.com/sigtoggle/sigtoggle/internal/hooks"
	"github.com/sigtoggle/sigtoggle/internal/process"
)

func waitForStopped(t *testing.T, probe process.Probe, pid int, stopped bool) *process.Handle {
	t.Helper()

	var h *process.Handle
	require.Eventually(t, func() bool {
		var err error
		h, err = probe.Find(pid)
		return err == nil && h.Stopped() == stopped
	}, 2*time.Second, 10*time.Millisecond)

	return h
}

func TestToggleRealProcess(t *testing.T) {
	cmd := exec.Command("sleep", "30")
	require.NoError(t, cmd.Start())
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	})

	pid := cmd.Process.Pid

	probe, err := process.NewProbe()
	require.NoError(t, err)

	runner := hooks.NewShellRunner(hooks.ShellRunnerConfig{
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})

	var warnings []string
	flow := NewToggleFlow(ToggleFlowConfig{Hooks: config.Hooks{BeforeCont: "false"}},
		runner, feedback.Silent{}, ToggleInteraction{
			ShowWarning: func(message string) { warnings = append(warnings, message) },
		})

	h, err := probe.Find(pid)
	require.NoError(t, err)

	outcome, err := flow.Toggle(context.Background(), h)
	require.NoError(t, err)
	assert.Equal(t, OutcomeStopped, outcome)

	h = waitForStopped(t, probe, pid, true)

	// The before-cont hook always fails, the process has to stay stopped.
	outcome, err = flow.Toggle(context.Background(), h)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Len(t, warnings, 1)

	h, err = probe.Find(pid)
	require.NoError(t, err)
	assert.True(t, h.Stopped())
}
