//go:build !linux

package os

import (
	"fmt"
	"runtime"
	"syscall"

	errs "nsboot/pkg/errors"
)

// DefaultSyscall implements SyscallInterface where only signalling and exec
// are available. Identity and mount calls need Linux namespaces.
type DefaultSyscall struct{}

func unsupported(call string) error {
	return fmt.Errorf("%w: %s is not available on %s", errs.ErrUnsupportedConfiguration, call, runtime.GOOS)
}

func (s *DefaultSyscall) Exec(argv0 string, argv []string, envv []string) error {
	return syscall.Exec(argv0, argv, envv)
}

func (s *DefaultSyscall) Kill(pid int, sig syscall.Signal) error {
	return syscall.Kill(pid, sig)
}

func (s *DefaultSyscall) Setresuid(ruid, euid, suid int) error {
	return unsupported("setresuid")
}

func (s *DefaultSyscall) Setresgid(rgid, egid, sgid int) error {
	return unsupported("setresgid")
}

func (s *DefaultSyscall) Mount(source, target, fstype string, flags uintptr, data string) error {
	return unsupported("mount")
}

func (s *DefaultSyscall) Unmount(target string, flags int) error {
	return unsupported("unmount")
}

var _ SyscallInterface = (*DefaultSyscall)(nil)
