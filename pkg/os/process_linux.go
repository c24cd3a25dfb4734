//go:build linux

package os

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// DefaultSyscall implements SyscallInterface using real syscalls
type DefaultSyscall struct{}

func (s *DefaultSyscall) Exec(argv0 string, argv []string, envv []string) error {
	return unix.Exec(argv0, argv, envv)
}

func (s *DefaultSyscall) Setresuid(ruid, euid, suid int) error {
	return unix.Setresuid(ruid, euid, suid)
}

func (s *DefaultSyscall) Setresgid(rgid, egid, sgid int) error {
	return unix.Setresgid(rgid, egid, sgid)
}

func (s *DefaultSyscall) Kill(pid int, sig syscall.Signal) error {
	return unix.Kill(pid, sig)
}

func (s *DefaultSyscall) Mount(source, target, fstype string, flags uintptr, data string) error {
	return unix.Mount(source, target, fstype, flags, data)
}

func (s *DefaultSyscall) Unmount(target string, flags int) error {
	return unix.Unmount(target, flags)
}

var _ SyscallInterface = (*DefaultSyscall)(nil)
