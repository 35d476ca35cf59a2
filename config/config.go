package config

import (
	"fmt"

	"github.com/sigtoggle/sigtoggle/internal/chord"
	"github.com/sigtoggle/sigtoggle/usefulerror"
)

// DefaultKey is the trigger used when --key is not given.
const DefaultKey = "f12"

// Hooks are shell command lines run around each signal. An empty command
// line is not run.
type Hooks struct {
	// BeforeStop gates the stop signal. A nonzero exit status skips the toggle.
	BeforeStop string `mapstructure:"before-stop"`
	AfterStop  string `mapstructure:"after-stop"`

	// BeforeCont gates the continue signal. A nonzero exit status skips the toggle.
	BeforeCont string `mapstructure:"before-cont"`
	AfterCont  string `mapstructure:"after-cont"`
}

// Config is the toggle configuration for one run of sigtoggle. It is built
// once at startup and never modified afterwards.
type Config struct {
	// Pid of the target process. Always taken from the command line.
	Pid int `mapstructure:"-"`

	// Key is the textual trigger chord, eg. "ctrl+alt+p".
	Key string `mapstructure:"key"`

	// Twice requires the chord to be matched twice within the double press
	// window before the toggle fires.
	Twice bool `mapstructure:"twice"`

	// Quiet disables the audible feedback.
	Quiet bool `mapstructure:"quiet"`

	Hooks `mapstructure:",squash"`

	Debug bool `mapstructure:"debug"`

	// EventLog is the path of the JSON lines event log. Empty disables it.
	EventLog string `mapstructure:"event-log"`

	// ConfigFile is the YAML file the values were read from, if any.
	ConfigFile string `mapstructure:"config"`
}

func DefaultConfig() Config {
	return Config{
		Key: DefaultKey,
	}
}

// Chord parses the configured trigger.
func (c Config) Chord() (chord.Chord, error) {
	ch, err := chord.Parse(c.Key)
	if err != nil {
		return chord.Chord{}, usefulerror.Useful().
			WithCode(usefulerror.ErrCodeInvalidChord).
			WithHumanError(fmt.Sprintf("Invalid trigger key: %q", c.Key)).
			WithHelp("Combine key names with '+', eg. ctrl+alt+p or f12").
			WithAdditionalHelp("Run 'sigtoggle keys' to list the accepted key names").
			Wrap(err)
	}

	return ch, nil
}

// Validate checks the configuration before any listener or probe is started.
func (c Config) Validate() error {
	if c.Pid <= 0 {
		return usefulerror.Useful().
			WithCode(usefulerror.ErrCodeInvalidArgument).
			WithHumanError(fmt.Sprintf("Invalid pid: %d", c.Pid)).
			WithHelp("Pass the pid of a running process, eg. sigtoggle $(pgrep -n firefox)").
			Msg(fmt.Sprintf("invalid pid %d", c.Pid))
	}

	if _, err := c.Chord(); err != nil {
		return err
	}

	return nil
}

// HasHooks reports whether any hook command line is configured.
func (c Config) HasHooks() bool {
	return c.BeforeStop != "" || c.AfterStop != "" || c.BeforeCont != "" || c.AfterCont != ""
}
