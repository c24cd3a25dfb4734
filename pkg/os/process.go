package os

import (
	"io"
	"os"
	"os/exec"
	"syscall"
)

// DefaultCommandFactory implements CommandFactory using exec.Cmd
type DefaultCommandFactory struct{}

func (f *DefaultCommandFactory) CreateCommand(name string, args ...string) Command {
	return &ExecCommand{cmd: exec.Command(name, args...)}
}

// ExecCommand wraps exec.Cmd to implement Command
type ExecCommand struct {
	cmd *exec.Cmd
}

func (e *ExecCommand) Start() error {
	return e.cmd.Start()
}

func (e *ExecCommand) Wait() error {
	return e.cmd.Wait()
}

func (e *ExecCommand) Process() Process {
	if e.cmd.Process == nil {
		return nil
	}
	return &ExecProcess{process: e.cmd.Process}
}

func (e *ExecCommand) ExitCode() int {
	state := e.cmd.ProcessState
	if state == nil {
		return -1
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}

func (e *ExecCommand) SetStdin(r io.Reader) {
	e.cmd.Stdin = r
}

func (e *ExecCommand) SetStdout(w io.Writer) {
	e.cmd.Stdout = w
}

func (e *ExecCommand) SetStderr(w io.Writer) {
	e.cmd.Stderr = w
}

func (e *ExecCommand) SetSysProcAttr(attr *syscall.SysProcAttr) {
	e.cmd.SysProcAttr = attr
}

// SetEnv sets the environment variables for the command
func (e *ExecCommand) SetEnv(env []string) {
	e.cmd.Env = env
}

func (e *ExecCommand) SetExtraFiles(files []*os.File) {
	e.cmd.ExtraFiles = files
}

// ExecProcess wraps os.Process to implement Process
type ExecProcess struct {
	process *os.Process
}

func (p *ExecProcess) Pid() int {
	return p.process.Pid
}

func (p *ExecProcess) Kill() error {
	return p.process.Kill()
}

// DefaultOs implements OsInterface using real os
type DefaultOs struct{}

func (d *DefaultOs) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (d *DefaultOs) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (d *DefaultOs) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (d *DefaultOs) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (d *DefaultOs) Executable() (string, error) {
	return os.Executable()
}

func (d *DefaultOs) Environ() []string {
	return os.Environ()
}

func (d *DefaultOs) Getenv(key string) string {
	return os.Getenv(key)
}

func (d *DefaultOs) Getpid() int {
	return os.Getpid()
}

func (d *DefaultOs) Getuid() int {
	return os.Getuid()
}

func (d *DefaultOs) Getgid() int {
	return os.Getgid()
}

// DefaultExec implements ExecInterface
type DefaultExec struct{}

func (e *DefaultExec) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// ensure our types implement the interfaces
var _ OsInterface = (*DefaultOs)(nil)
var _ ExecInterface = (*DefaultExec)(nil)
var _ CommandFactory = (*DefaultCommandFactory)(nil)
