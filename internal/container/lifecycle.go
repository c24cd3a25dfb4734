package container

import (
	"errors"
	"fmt"
	"sync"
)

// State is a step of the bootstrap lifecycle.
type State int

const (
	StateCreated State = iota
	StateNamespaceEntered
	StateWaitingForIdentityMap
	StateIdentityMapped
	StateCapabilitiesDropped
	StateExeced
	StateFailed
)

var stateNames = map[State]string{
	StateCreated:               "Created",
	StateNamespaceEntered:      "NamespaceEntered",
	StateWaitingForIdentityMap: "WaitingForIdentityMap",
	StateIdentityMapped:        "IdentityMapped",
	StateCapabilitiesDropped:   "CapabilitiesDropped",
	StateExeced:                "Execed",
	StateFailed:                "Failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState is the inverse of String.
func ParseState(name string) (State, bool) {
	for s, n := range stateNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateExeced || s == StateFailed
}

// ErrIllegalTransition is returned for any move that skips or repeats a
// state.
var ErrIllegalTransition = errors.New("illegal lifecycle transition")

// Lifecycle tracks one launch through the bootstrap states. Only the
// immediate successor of the current state, or Failed, can be entered.
type Lifecycle struct {
	mu       sync.Mutex
	state    State
	failedAt State
	trace    []State
}

// NewLifecycle starts in Created.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{state: StateCreated, trace: []State{StateCreated}}
}

// Advance moves to the next state.
func (l *Lifecycle) Advance(to State) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.Terminal() || to == StateFailed || to != l.state+1 {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, l.state, to)
	}
	l.state = to
	l.trace = append(l.trace, to)
	return nil
}

// Fail moves to Failed and returns the stage reached before the failure.
// Failing an already failed lifecycle keeps the original stage.
func (l *Lifecycle) Fail() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.state {
	case StateFailed:
		return l.failedAt
	case StateExeced:
		return StateExeced
	}
	l.failedAt = l.state
	l.state = StateFailed
	l.trace = append(l.trace, StateFailed)
	return l.failedAt
}

// State returns the current state.
func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// FailedStage returns the stage recorded by Fail.
func (l *Lifecycle) FailedStage() (State, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failedAt, l.state == StateFailed
}

// Trace returns every state entered, in order.
func (l *Lifecycle) Trace() []State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]State(nil), l.trace...)
}

// StageError is a bootstrap failure together with the last state reached.
type StageError struct {
	Stage    State
	ExitCode int
	Err      error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("bootstrap failed at %s (exit %d): %v", e.Stage, e.ExitCode, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
