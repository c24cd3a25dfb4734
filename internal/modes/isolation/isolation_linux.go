//go:build linux

package isolation

import (
	"fmt"

	"golang.org/x/sys/unix"

	errs "nsboot/pkg/errors"
	"nsboot/pkg/logger"
)

func setup(m Mounter, opts Options, log *logger.Logger) error {
	if err := makePrivate(m, log); err != nil {
		return err
	}
	if opts.RemountProc {
		return remountProc(m, log)
	}
	return nil
}

// makePrivate makes every mount private
func makePrivate(m Mounter, log *logger.Logger) error {
	log.Debug("making mounts private")

	if err := m.Mount("", "/", "", unix.MS_PRIVATE|unix.MS_REC, ""); err != nil {
		return fmt.Errorf("%w: make / private: %w", errs.ErrInsufficientPrivilege, err)
	}
	return nil
}

// remountProc mounts a proc instance for the calling pid namespace
func remountProc(m Mounter, log *logger.Logger) error {
	log.Debug("remounting /proc")

	// The inherited /proc may be busy; detach it lazily.
	if err := m.Unmount("/proc", unix.MNT_DETACH); err != nil {
		log.Debug("existing /proc unmount", "error", err)
	}

	if err := m.Mount("proc", "/proc", "proc", unix.MS_NOSUID|unix.MS_NODEV|unix.MS_NOEXEC, ""); err != nil {
		return fmt.Errorf("%w: mount /proc: %w", errs.ErrInsufficientPrivilege, err)
	}

	log.Debug("/proc remounted")
	return nil
}
