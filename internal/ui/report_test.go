package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportData(t *testing.T) {
	data := NewReportData()
	assert.Equal(t, OutcomeInterrupted, data.Outcome)

	data.RecordToggle(true)
	data.RecordToggle(false)
	data.RecordToggle(true)
	data.Skips = 4
	assert.Equal(t, 2, data.Stops)
	assert.Equal(t, 1, data.Continues)
	assert.Equal(t, 3, data.Toggles())

	data.StartTime = time.Now().Add(-time.Minute)
	data.Finalize()
	assert.GreaterOrEqual(t, data.Duration, time.Minute)
}

func TestReportDataLeftStopped(t *testing.T) {
	cases := []struct {
		name          string
		startsStopped bool
		toggles       []bool
		want          bool
	}{
		{"running, untouched", false, nil, false},
		{"running, stopped", false, []bool{true}, true},
		{"running, stopped then continued", false, []bool{true, false}, false},
		{"stopped, untouched", true, nil, true},
		{"stopped, continued", true, []bool{false}, false},
		{"stopped, continued then stopped", true, []bool{false, true}, true},
		{"stopped, continued, stopped, continued", true, []bool{false, true, false}, false},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			data := NewReportData()
			data.TargetStopped = test.startsStopped

			for _, stopped := range test.toggles {
				data.RecordToggle(stopped)
			}

			assert.Equal(t, test.want, data.LeftStopped())
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", formatDuration(250*time.Millisecond))
	assert.Equal(t, "1.5s", formatDuration(1500*time.Millisecond))
	assert.Equal(t, "on", boolToOnOff(true))
	assert.Equal(t, "off", boolToOnOff(false))
}

func TestSessionOutcomeString(t *testing.T) {
	assert.Equal(t, "interrupted", OutcomeInterrupted.String())
	assert.Equal(t, "process_gone", OutcomeProcessGone.String())
	assert.Equal(t, "error", OutcomeError.String())
}
