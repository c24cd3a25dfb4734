// Package isolation detaches the mount table of a freshly created mount
// namespace from the host.
package isolation

import (
	"nsboot/pkg/logger"
)

// Mounter is the part of the syscall surface mount isolation uses.
type Mounter interface {
	Mount(source, target, fstype string, flags uintptr, data string) error
	Unmount(target string, flags int) error
}

// Options selects the steps Setup runs.
type Options struct {
	// PrivateMounts stops mount events propagating to or from the host.
	PrivateMounts bool
	// RemountProc replaces /proc with one for the new pid namespace. It
	// implies PrivateMounts.
	RemountProc bool
}

// Setup runs inside the new mount namespace while the process still holds
// CAP_SYS_ADMIN there.
func Setup(m Mounter, opts Options, log *logger.Logger) error {
	if !opts.PrivateMounts && !opts.RemountProc {
		return nil
	}
	return setup(m, opts, log)
}
