package idmap

import (
	"fmt"
	"path/filepath"
	"strconv"
	"sync"

	errs "nsboot/pkg/errors"
	"nsboot/pkg/logger"
	osinterface "nsboot/pkg/os"
)

const (
	setgroupsFile = "setgroups"
	gidMapFile    = "gid_map"
	uidMapFile    = "uid_map"

	// SetgroupsDeny must reach the kernel before gid_map is written.
	SetgroupsDeny = "deny"
)

// MapError reports a failed Apply. File is empty when the failure happened
// before any control file was touched.
type MapError struct {
	Pid  int
	File string
	Err  error
}

func (e *MapError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("identity map for pid %d: %v", e.Pid, e.Err)
	}
	return fmt.Sprintf("identity map for pid %d: %s: %v", e.Pid, e.File, e.Err)
}

func (e *MapError) Unwrap() error {
	return e.Err
}

// Writer writes uid/gid maps for processes parked in a fresh user namespace.
// Each pid is mapped at most once per Writer.
type Writer struct {
	osInterface osinterface.OsInterface
	procRoot    string
	logger      *logger.Logger

	mu      sync.Mutex
	applied map[int]struct{}
}

// NewWriter creates a writer rooted at /proc.
func NewWriter(osInterface osinterface.OsInterface) *Writer {
	return NewWriterWithRoot(osInterface, "/proc")
}

// NewWriterWithRoot creates a writer whose control files live under
// procRoot/<pid>/.
func NewWriterWithRoot(osInterface osinterface.OsInterface, procRoot string) *Writer {
	return &Writer{
		osInterface: osInterface,
		procRoot:    procRoot,
		logger:      logger.New().WithField("component", "idmap-writer"),
		applied:     make(map[int]struct{}),
	}
}

// Apply validates mapping and writes setgroups, gid_map and uid_map for pid,
// in that order. Validation failures and repeated calls write nothing.
func (w *Writer) Apply(pid int, mapping Mapping) error {
	log := w.logger.WithField("pid", pid)

	if pid <= 0 {
		return &MapError{Pid: pid, Err: fmt.Errorf("%w: invalid pid", errs.ErrInvalidMapping)}
	}

	if err := mapping.Validate(); err != nil {
		log.Error("rejected identity mapping", "error", err)
		return &MapError{Pid: pid, Err: err}
	}

	w.mu.Lock()
	if _, done := w.applied[pid]; done {
		w.mu.Unlock()
		log.Warn("identity mapping requested twice")
		return &MapError{Pid: pid, Err: errs.ErrAlreadyMapped}
	}
	// uid_map and gid_map are write-once in the kernel, so a failed attempt
	// still consumes the pid.
	w.applied[pid] = struct{}{}
	w.mu.Unlock()

	dir := filepath.Join(w.procRoot, strconv.Itoa(pid))

	for _, name := range []string{gidMapFile, uidMapFile} {
		if _, err := w.osInterface.Stat(filepath.Join(dir, name)); err != nil {
			return &MapError{Pid: pid, File: name, Err: fmt.Errorf("mapping file not accessible: %w", err)}
		}
	}

	if err := w.denySetgroups(dir); err != nil {
		return &MapError{Pid: pid, File: setgroupsFile, Err: err}
	}

	if err := w.writeMapping(filepath.Join(dir, gidMapFile), mapping.GID.Render()); err != nil {
		return &MapError{Pid: pid, File: gidMapFile, Err: err}
	}

	if err := w.writeMapping(filepath.Join(dir, uidMapFile), mapping.UID.Render()); err != nil {
		return &MapError{Pid: pid, File: uidMapFile, Err: err}
	}

	log.Info("identity mapping applied",
		"uidEntries", len(mapping.UID),
		"gidEntries", len(mapping.GID))

	return nil
}

// Release forgets pid once its process has been reaped, since the kernel
// recycles pids.
func (w *Writer) Release(pid int) {
	w.mu.Lock()
	delete(w.applied, pid)
	w.mu.Unlock()
}

// denySetgroups writes "deny" to setgroups. Kernels before 3.19 have no such
// file and allow unprivileged gid_map writes without it.
func (w *Writer) denySetgroups(dir string) error {
	path := filepath.Join(dir, setgroupsFile)

	if _, err := w.osInterface.Stat(path); err != nil {
		if w.osInterface.IsNotExist(err) {
			w.logger.Warn("setgroups control file missing, skipping deny", "path", path)
			return nil
		}
		return fmt.Errorf("setgroups file not accessible: %w", err)
	}

	return w.writeMapping(path, SetgroupsDeny)
}

// writeMapping writes content in a single write, as the kernel requires.
func (w *Writer) writeMapping(path, content string) error {
	if err := w.osInterface.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write to %s: %w", path, err)
	}

	w.logger.Debug("wrote user namespace control file", "path", path, "content", content)
	return nil
}
