package launcher

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"nsboot/internal/container"
	"nsboot/internal/readiness"
	osinterface "nsboot/pkg/os"
)

// Handle is the host's reference to one isolated process. It exclusively
// owns the launch's readiness endpoint and command and is never reused.
type Handle struct {
	pid       int
	process   osinterface.Process
	cmd       osinterface.Command
	channel   *readiness.Endpoint
	mapper    IdentityMapper
	lifecycle *container.Lifecycle

	mu       sync.Mutex
	released bool

	waitOnce sync.Once
	exitCode int
	waitErr  error
}

func newHandle(process osinterface.Process, cmd osinterface.Command, channel *readiness.Endpoint, mapper IdentityMapper) *Handle {
	return &Handle{
		pid:       process.Pid(),
		process:   process,
		cmd:       cmd,
		channel:   channel,
		mapper:    mapper,
		lifecycle: container.NewLifecycle(),
	}
}

// Pid is the isolated process's pid in the host's pid namespace.
func (h *Handle) Pid() int {
	return h.pid
}

// State is the current lifecycle state.
func (h *Handle) State() container.State {
	return h.lifecycle.State()
}

// FailedStage is the last state reached before a failure.
func (h *Handle) FailedStage() (container.State, bool) {
	return h.lifecycle.FailedStage()
}

// Trace lists every state the launch went through.
func (h *Handle) Trace() []container.State {
	return h.lifecycle.Trace()
}

// Wait reaps the process and returns its exit status. After a successful
// launch that is the target's own status. Repeated calls return the first
// result.
func (h *Handle) Wait() (int, error) {
	h.waitOnce.Do(func() {
		err := h.cmd.Wait()
		h.exitCode = h.cmd.ExitCode()
		if h.exitCode < 0 {
			h.waitErr = fmt.Errorf("failed to reap pid %d: %w", h.pid, err)
		}
		h.mapper.Release(h.pid)
		h.channel.Close()
	})
	return h.exitCode, h.waitErr
}

// Kill sends SIGKILL to the process.
func (h *Handle) Kill() error {
	return h.process.Kill()
}

// await reads the next child report and advances to next.
func (h *Handle) await(next container.State) error {
	msg, err := h.channel.Wait()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("isolated process exited before reaching %s", next)
		}
		return err
	}

	if msg.Kind != readiness.KindStage || msg.Stage != next.String() {
		return unexpectedReport(msg, next)
	}
	return h.lifecycle.Advance(next)
}

// abort tells a parked child to exit. The child may already be gone.
func (h *Handle) abort(reason string) {
	_ = h.channel.Signal(readiness.Message{Kind: readiness.KindAbort, Reason: reason})
}

func (h *Handle) kill() {
	_ = h.process.Kill()
}

func (h *Handle) markReleased() {
	h.mu.Lock()
	h.released = true
	h.mu.Unlock()
}

func (h *Handle) isReleased() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.released
}
