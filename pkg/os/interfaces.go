package os

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"io"
	"os"
	"syscall"
)

//counterfeiter:generate . SyscallInterface
type SyscallInterface interface {
	// Exec replaces the calling process image. It only returns on failure.
	Exec(argv0 string, argv []string, envv []string) error
	// Setresuid and Setresgid change credentials on every thread of the
	// process.
	Setresuid(ruid, euid, suid int) error
	Setresgid(rgid, egid, sgid int) error
	Kill(pid int, sig syscall.Signal) error
	Mount(source, target, fstype string, flags uintptr, data string) error
	Unmount(target string, flags int) error
}

//counterfeiter:generate . OsInterface
type OsInterface interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
	ReadFile(path string) ([]byte, error)
	Stat(name string) (os.FileInfo, error)
	IsNotExist(err error) bool
	Executable() (string, error)
	Environ() []string
	Getenv(key string) string
	Getpid() int
	Getuid() int
	Getgid() int
}

//counterfeiter:generate . CommandFactory
type CommandFactory interface {
	CreateCommand(name string, args ...string) Command
}

//counterfeiter:generate . Command
type Command interface {
	Start() error
	Wait() error
	Process() Process
	// ExitCode is valid after Wait returns. A signal death is reported as
	// 128+signal, the shell convention.
	ExitCode() int
	SetStdin(r io.Reader)
	SetStdout(w io.Writer)
	SetStderr(w io.Writer)
	SetSysProcAttr(attr *syscall.SysProcAttr)
	SetEnv(env []string)
	// SetExtraFiles passes files to the child starting at descriptor 3.
	SetExtraFiles(files []*os.File)
}

//counterfeiter:generate . Process
type Process interface {
	Pid() int
	Kill() error
}

//counterfeiter:generate . ExecInterface
type ExecInterface interface {
	LookPath(file string) (string, error)
}
