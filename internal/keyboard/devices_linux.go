//go:build linux

package keyboard

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// DevicesFile lists the input devices known to the kernel.
	DevicesFile = "/proc/bus/input/devices"

	inputDir = "/dev/input"

	// Keyboards support autorepeat, power buttons and similar do not.
	evRepBit = 0x14
)

// FindKeyboards returns the event device paths of every keyboard listed in
// a /proc/bus/input/devices formatted reader.
func FindKeyboards(r io.Reader) ([]string, error) {
	var (
		paths    []string
		handlers []string
		evBits   uint64
	)

	flush := func() {
		defer func() {
			handlers = nil
			evBits = 0
		}()

		if evBits&(1<<evRepBit) == 0 {
			return
		}

		isKeyboard := false
		event := ""
		for _, h := range handlers {
			if h == "kbd" {
				isKeyboard = true
			}

			if strings.HasPrefix(h, "event") {
				event = h
			}
		}

		if isKeyboard && event != "" {
			paths = append(paths, filepath.Join(inputDir, event))
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "H: Handlers="):
			handlers = strings.Fields(strings.TrimPrefix(line, "H: Handlers="))
		case strings.HasPrefix(line, "B: EV="):
			bits, err := strconv.ParseUint(strings.TrimPrefix(line, "B: EV="), 16, 64)
			if err != nil {
				return nil, fmt.Errorf("malformed device capability %q: %w", line, err)
			}

			evBits = bits
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read device list: %w", err)
	}

	flush()
	return paths, nil
}
