package run

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigtoggle/sigtoggle/config"
	"github.com/sigtoggle/sigtoggle/internal/feedback"
	"github.com/sigtoggle/sigtoggle/internal/hooks"
	"github.com/sigtoggle/sigtoggle/internal/keyboard"
	"github.com/sigtoggle/sigtoggle/internal/process"
	"github.com/sigtoggle/sigtoggle/internal/ui"
	"github.com/sigtoggle/sigtoggle/usefulerror"
)

type fixedProbe struct {
	handle *process.Handle
}

func (p fixedProbe) Find(pid int) (*process.Handle, error) {
	if p.handle == nil || p.handle.Pid() != pid {
		return nil, fmt.Errorf("pid %d: %w", pid, process.ErrNotFound)
	}

	return p.handle, nil
}

type sourceFunc func(ctx context.Context, h keyboard.KeyHandler) error

func (f sourceFunc) Listen(ctx context.Context, h keyboard.KeyHandler) error {
	return f(ctx, h)
}

func testDependencies(probe process.Probe, source keyboard.Source, sourceCreated *bool) dependencies {
	return dependencies{
		newProbe: func() (process.Probe, error) { return probe, nil },
		newSource: func() (keyboard.Source, error) {
			if sourceCreated != nil {
				*sourceCreated = true
			}
			return source, nil
		},
		runner:    hooks.Func(func(context.Context, string) (int, error) { return 0, nil }),
		newPulser: func(bool) feedback.Pulser { return feedback.Silent{} },
	}
}

func testConfig(pid int) config.Config {
	cfg := config.DefaultConfig()
	cfg.Pid = pid
	cfg.Quiet = true
	return cfg
}

func TestMain(m *testing.M) {
	ui.SetVerbosityLevel(ui.VerbosityLevelSilent)
	m.Run()
}

func TestParsePid(t *testing.T) {
	cases := []struct {
		name    string
		arg     string
		pid     int
		wantErr bool
	}{
		{"plain", "1234", 1234, false},
		{"surrounding space", " 42 ", 42, false},
		{"not a number", "firefox", 0, true},
		{"empty", "", 0, true},
		{"float", "12.5", 0, true},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			pid, err := parsePid(test.arg)
			if test.wantErr {
				assert.Error(t, err)
				assert.True(t, usefulerror.HasCode(err, usefulerror.ErrCodeInvalidArgument))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.pid, pid)
		})
	}
}

func TestExecuteMissingProcessNeverStartsListener(t *testing.T) {
	created := false
	source := sourceFunc(func(context.Context, keyboard.KeyHandler) error {
		t.Fatal("listener must not be started")
		return nil
	})

	err := execute(context.Background(), testConfig(4242), testDependencies(fixedProbe{}, source, &created))
	require.Error(t, err)
	assert.True(t, usefulerror.HasCode(err, usefulerror.ErrCodeProcessNotFound))
	assert.ErrorIs(t, err, process.ErrNotFound)
	assert.False(t, created)
}

func TestExecuteInvalidChord(t *testing.T) {
	cfg := testConfig(10)
	cfg.Key = "ctrl+nosuchkey"

	created := false
	err := execute(context.Background(), cfg, testDependencies(fixedProbe{}, nil, &created))
	require.Error(t, err)
	assert.True(t, usefulerror.HasCode(err, usefulerror.ErrCodeInvalidChord))
	assert.False(t, created)
}

func TestExecuteProbeFailure(t *testing.T) {
	deps := testDependencies(fixedProbe{}, nil, nil)
	deps.newProbe = func() (process.Probe, error) { return nil, process.ErrUnsupported }

	err := execute(context.Background(), testConfig(10), deps)
	assert.ErrorIs(t, err, process.ErrUnsupported)
}

func TestExecuteInterruptIsClean(t *testing.T) {
	probe := fixedProbe{handle: process.NewHandle(10, "target", process.StateSleeping)}
	ctx, cancel := context.WithCancel(context.Background())

	source := sourceFunc(func(ctx context.Context, _ keyboard.KeyHandler) error {
		cancel()
		<-ctx.Done()
		return nil
	})

	err := execute(ctx, testConfig(10), testDependencies(probe, source, nil))
	assert.NoError(t, err)
}

func TestExecuteListenerFailure(t *testing.T) {
	probe := fixedProbe{handle: process.NewHandle(10, "target", process.StateSleeping)}
	source := sourceFunc(func(context.Context, keyboard.KeyHandler) error {
		return errors.New("device unplugged")
	})

	err := execute(context.Background(), testConfig(10), testDependencies(probe, source, nil))
	require.Error(t, err)
	assert.True(t, usefulerror.HasCode(err, usefulerror.ErrCodeListenerFailure))
}

func TestExecuteSourceCreationFailure(t *testing.T) {
	probe := fixedProbe{handle: process.NewHandle(10, "target", process.StateSleeping)}
	deps := testDependencies(probe, nil, nil)
	deps.newSource = func() (keyboard.Source, error) { return nil, keyboard.ErrNoKeyboard }

	err := execute(context.Background(), testConfig(10), deps)
	assert.ErrorIs(t, err, keyboard.ErrNoKeyboard)
}

func TestRefreshTargetState(t *testing.T) {
	report := ui.NewReportData()
	report.Pid = 10
	report.RecordToggle(false)

	// stopped by someone else after our last continue
	refreshTargetState(fixedProbe{handle: process.NewHandle(10, "target", process.StateStopped)}, report)
	assert.True(t, report.LeftStopped())

	refreshTargetState(fixedProbe{handle: process.NewHandle(10, "target", process.StateRunning)}, report)
	assert.False(t, report.LeftStopped())

	// a vanished target keeps the last known state
	report.TargetStopped = true
	refreshTargetState(fixedProbe{}, report)
	assert.True(t, report.LeftStopped())
}
