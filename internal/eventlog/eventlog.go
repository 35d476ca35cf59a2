package eventlog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of event being logged
type EventType string

const (
	EventTypeSessionStarted   EventType = "session_started"
	EventTypeProcessStopped   EventType = "process_stopped"
	EventTypeProcessContinued EventType = "process_continued"
	EventTypeToggleSkipped    EventType = "toggle_skipped"
	EventTypeSessionEnded     EventType = "session_ended"
	EventTypeError            EventType = "error"
)

// Event is one line of the event log
type Event struct {
	Timestamp   time.Time              `json:"timestamp"`
	EventType   EventType              `json:"event_type"`
	SessionID   string                 `json:"session_id"`
	Message     string                 `json:"message"`
	Pid         int                    `json:"pid,omitempty"`
	ProcessName string                 `json:"process_name,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

// Logger writes events as JSON lines
type Logger struct {
	file      *os.File
	writer    io.Writer
	sessionID string
	mu        sync.Mutex
	active    bool
}

var (
	globalLogger *Logger
	once         sync.Once
)

// NewLogger returns a logger writing to w. Every event it writes carries
// the same freshly generated session id.
func NewLogger(w io.Writer) *Logger {
	return &Logger{
		writer:    w,
		sessionID: uuid.NewString(),
		active:    true,
	}
}

// InitializeWithFile sets up the global event logger with a specific file path
func InitializeWithFile(filePath string) error {
	var initErr error
	once.Do(func() {
		file, err := openLogFile(filePath)
		if err != nil {
			initErr = err
			return
		}

		globalLogger = NewLogger(file)
		globalLogger.file = file
	})
	return initErr
}

// reinitializeForTest resets and reinitializes the logger for testing purposes
func reinitializeForTest(filePath string) error {
	if globalLogger != nil {
		globalLogger.Close()
	}

	globalLogger = nil
	once = sync.Once{}

	return InitializeWithFile(filePath)
}

func openLogFile(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// SessionID identifies this run of sigtoggle in the log
func (l *Logger) SessionID() string {
	return l.sessionID
}

// Log writes an event to the log file
func (l *Logger) Log(event Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.active {
		return nil
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	event.SessionID = l.sessionID

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	_, err = l.writer.Write(append(data, '\n'))
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	if l.file != nil {
		l.file.Sync()
	}

	return nil
}

// Close closes the logger
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.active {
		return nil
	}

	l.active = false
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Global logging functions

// LogEvent logs an event using the global logger
func LogEvent(event Event) error {
	if globalLogger == nil {
		// If logger is not initialized, silently drop the event
		return nil
	}
	return globalLogger.Log(event)
}

// LogSessionStarted records the target and trigger of a run
func LogSessionStarted(pid int, processName, key string, twice bool) {
	LogEvent(Event{
		EventType:   EventTypeSessionStarted,
		Message:     fmt.Sprintf("Watching %s for process %d", key, pid),
		Pid:         pid,
		ProcessName: processName,
		Details: map[string]interface{}{
			"key":   key,
			"twice": twice,
		},
	})
}

// LogProcessStopped logs a delivered stop signal
func LogProcessStopped(pid int, processName string) {
	LogEvent(Event{
		EventType:   EventTypeProcessStopped,
		Message:     fmt.Sprintf("Stopped process %d", pid),
		Pid:         pid,
		ProcessName: processName,
	})
}

// LogProcessContinued logs a delivered continue signal
func LogProcessContinued(pid int, processName string) {
	LogEvent(Event{
		EventType:   EventTypeProcessContinued,
		Message:     fmt.Sprintf("Continued process %d", pid),
		Pid:         pid,
		ProcessName: processName,
	})
}

// LogToggleSkipped logs a toggle vetoed by its before hook
func LogToggleSkipped(pid int, processName, signal, hook string, status int) {
	LogEvent(Event{
		EventType:   EventTypeToggleSkipped,
		Message:     fmt.Sprintf("Skipped SIG%s for process %d", signal, pid),
		Pid:         pid,
		ProcessName: processName,
		Details: map[string]interface{}{
			"signal":      signal,
			"hook":        hook,
			"exit_status": status,
		},
	})
}

// LogSessionEnded logs the end of a run with its reason
func LogSessionEnded(pid int, reason string) {
	LogEvent(Event{
		EventType: EventTypeSessionEnded,
		Message:   fmt.Sprintf("Session ended: %s", reason),
		Pid:       pid,
	})
}

// LogError logs an error event
func LogError(message string, err error) {
	event := Event{
		EventType: EventTypeError,
		Message:   message,
		Details: map[string]interface{}{
			"error": err.Error(),
		},
	}
	LogEvent(event)
}

// Close closes the global logger
func Close() error {
	if globalLogger != nil {
		return globalLogger.Close()
	}
	return nil
}

// IsInitialized returns whether the global logger is initialized
func IsInitialized() bool {
	if globalLogger == nil {
		return false
	}

	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	return globalLogger.active
}
