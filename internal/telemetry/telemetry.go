// Package telemetry provides a JSONL event stream for recording what the intro
// orchestrator did. Every phase entry, ignored activation, dropped timer,
// navigation, and teardown is recorded as a structured JSON event, so a run
// can be audited or replayed after the fact.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event kinds identify the type of telemetry event.
const (
	KindIntroStart         = "intro_start"
	KindPhaseEnter         = "phase_enter"
	KindActivationIgnored  = "activation_ignored"
	KindTimerStale         = "timer_stale"
	KindNavigate           = "navigate"
	KindNavigateSuppressed = "navigate_suppressed"
	KindTeardown           = "teardown"
)

// Event represents a single telemetry record. Each event carries a timestamp,
// a kind tag, the orchestrator session it belongs to, and optional structured
// data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	SessionID string    `json:"session,omitempty"`
	Phase     string    `json:"phase,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// NewSessionID returns a fresh identifier for one orchestrator instance.
func NewSessionID() string {
	return uuid.NewString()
}

// Emitter writes telemetry events to a JSONL file. It is safe for concurrent
// use by multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	path string
	file *os.File
	enc  *json.Encoder
	mu   sync.Mutex
}

// NewEmitter creates a new Emitter that writes JSONL events to the file at
// path. The file is created if it does not exist, or appended to if it does.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		path: path,
		file: f,
		enc:  json.NewEncoder(f),
	}, nil
}

// Path returns the file the emitter writes to, or "" for a nil emitter.
func (e *Emitter) Path() string {
	if e == nil {
		return ""
	}
	return e.path
}

// Emit writes a single event to the JSONL file. It is safe for concurrent use.
// Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}

// Decode parses one JSONL line into an Event.
func Decode(line []byte) (Event, error) {
	var evt Event
	if err := json.Unmarshal(line, &evt); err != nil {
		return Event{}, fmt.Errorf("telemetry: decode event: %w", err)
	}
	return evt, nil
}
