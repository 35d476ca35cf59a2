//go:build linux

package keyboard

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/safedep/dry/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

// inputEvent mirrors struct input_event from linux/input.h.
type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

func readInputEvent(r io.Reader) (inputEvent, error) {
	var ev inputEvent
	err := binary.Read(r, binary.NativeEndian, &ev)
	return ev, err
}

// toKeyEvent keeps key presses and releases. Autorepeat is dropped, a held
// key is already in the pressed set.
func toKeyEvent(ev inputEvent) (KeyEvent, bool) {
	if ev.Type != evKey {
		return KeyEvent{}, false
	}

	switch ev.Value {
	case valuePress:
		return KeyEvent{Key: KeyForCode(ev.Code), Pressed: true}, true
	case valueRelease:
		return KeyEvent{Key: KeyForCode(ev.Code), Pressed: false}, true
	default:
		return KeyEvent{}, false
	}
}

type EvdevConfig struct {
	// Devices are event device paths to read. Discovered from DevicesFile
	// when empty.
	Devices []string

	DevicesFile string
}

func DefaultEvdevConfig() EvdevConfig {
	return EvdevConfig{DevicesFile: DevicesFile}
}

// EvdevSource reads key events from every keyboard event device. Reading
// /dev/input requires membership of the input group or root.
type EvdevSource struct {
	config EvdevConfig
}

var _ Source = (*EvdevSource)(nil)

func NewEvdevSource(config EvdevConfig) *EvdevSource {
	if config.DevicesFile == "" {
		config.DevicesFile = DevicesFile
	}

	return &EvdevSource{config: config}
}

// NewSource returns the key source for the running platform.
func NewSource() (Source, error) {
	return NewEvdevSource(DefaultEvdevConfig()), nil
}

func (s *EvdevSource) devices() ([]string, error) {
	if len(s.config.Devices) > 0 {
		return s.config.Devices, nil
	}

	file, err := os.Open(s.config.DevicesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.config.DevicesFile, err)
	}

	defer file.Close()
	return FindKeyboards(file)
}

func (s *EvdevSource) open() ([]*os.File, error) {
	paths, err := s.devices()
	if err != nil {
		return nil, err
	}

	var (
		files    []*os.File
		openErrs []error
	)

	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			log.Warnf("Skipping keyboard %s: %v", path, err)
			openErrs = append(openErrs, err)
			continue
		}

		log.Debugf("Listening on keyboard %s", path)
		files = append(files, file)
	}

	if len(files) == 0 {
		if len(openErrs) == 0 {
			return nil, ErrNoKeyboard
		}

		return nil, fmt.Errorf("%w: %w", ErrNoKeyboard, errors.Join(openErrs...))
	}

	return files, nil
}

func (s *EvdevSource) Listen(ctx context.Context, h KeyHandler) error {
	files, err := s.open()
	if err != nil {
		return err
	}

	events := make(chan KeyEvent)
	g, gctx := errgroup.WithContext(ctx)

	for _, file := range files {
		g.Go(func() error {
			return readDevice(gctx, file, events)
		})
	}

	// Closing the devices unblocks the readers.
	g.Go(func() error {
		<-gctx.Done()

		for _, file := range files {
			file.Close()
		}

		return nil
	})

	// All handler calls happen here, one at a time.
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case ev := <-events:
				if err := dispatch(gctx, h, ev); err != nil {
					return err
				}
			}
		}
	})

	return g.Wait()
}

func readDevice(ctx context.Context, file *os.File, events chan<- KeyEvent) error {
	r := bufio.NewReader(file)

	for {
		raw, err := readInputEvent(r)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("failed to read %s: %w", file.Name(), err)
		}

		ev, ok := toKeyEvent(raw)
		if !ok {
			continue
		}

		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}
