//go:build linux

package launcher

import (
	"errors"
	"fmt"
	"syscall"

	gocap "github.com/syndtr/gocapability/capability"
	"golang.org/x/sys/unix"

	"nsboot/internal/capability"
	"nsboot/internal/container"
	errs "nsboot/pkg/errors"
)

// sysProcAttr composes the namespace flags into one clone request. The
// child is killed if the host dies, and os/exec always requests SIGCHLD so
// it can be reaped.
//
// With a user namespace the child execs the init binary before its uid_map
// exists, as a uid that is not namespace root, and the kernel clears its
// capabilities at that exec. Ambient capabilities survive it.
func sysProcAttr(spec container.Spec) (*syscall.SysProcAttr, error) {
	attr := &syscall.SysProcAttr{
		Cloneflags: spec.Namespaces.CloneFlags(),
		Pdeathsig:  syscall.SIGKILL,
	}
	if spec.UserNamespace() {
		for _, c := range entrypointCaps(spec) {
			attr.AmbientCaps = append(attr.AmbientCaps, uintptr(c))
		}
	}
	return attr, nil
}

// entrypointCaps is what the entrypoint needs until its own drop: the
// allow-list, the identity switch, narrowing the bounding set and, with a
// mount namespace, the mount isolation.
func entrypointCaps(spec container.Spec) capability.AllowList {
	caps := append([]gocap.Cap{gocap.CAP_SETUID, gocap.CAP_SETGID, gocap.CAP_SETPCAP}, spec.Capabilities...)
	if spec.Namespaces.Has(container.NamespaceMount) {
		caps = append(caps, gocap.CAP_SYS_ADMIN)
	}
	return capability.NewAllowList(caps...)
}

// classifyErrno maps process-creation errnos onto the failure taxonomy.
func classifyErrno(err error) error {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return err
	}

	switch errno {
	case unix.EPERM, unix.EACCES:
		return fmt.Errorf("%w: %w", errs.ErrPermissionDenied, err)
	case unix.EINVAL, unix.ENOSYS, unix.EOPNOTSUPP:
		return fmt.Errorf("%w: %w", errs.ErrUnsupportedConfiguration, err)
	case unix.EAGAIN, unix.ENOMEM, unix.ENOSPC, unix.EUSERS, unix.EMFILE, unix.ENFILE:
		return fmt.Errorf("%w: %w", errs.ErrResourceExhausted, err)
	}
	return err
}
