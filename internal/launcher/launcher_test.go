//go:build linux

package launcher_test

import (
	"context"
	"errors"
	"os"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gocap "github.com/syndtr/gocapability/capability"
	"golang.org/x/sys/unix"

	"nsboot/internal/capability"
	"nsboot/internal/container"
	"nsboot/internal/entrypoint"
	"nsboot/internal/entrypoint/entrypointfakes"
	"nsboot/internal/idmap"
	"nsboot/internal/launcher"
	"nsboot/internal/readiness"
	errs "nsboot/pkg/errors"
	"nsboot/pkg/os/osfakes"
)

const initPath = "/usr/local/bin/nsboot"

type fileInfo struct{ mode os.FileMode }

func (f fileInfo) Name() string       { return "nsboot" }
func (f fileInfo) Size() int64        { return 0 }
func (f fileInfo) Mode() os.FileMode  { return f.mode }
func (f fileInfo) ModTime() time.Time { return time.Time{} }
func (f fileInfo) IsDir() bool        { return false }
func (f fileInfo) Sys() interface{}   { return nil }

// fixture runs the real entrypoint in a goroutine on duplicates of the
// child's pipe ends, standing in for the re-executed binary.
type fixture struct {
	factory  *osfakes.FakeCommandFactory
	cmd      *osfakes.FakeCommand
	process  *osfakes.FakeProcess
	hostOs   *osfakes.FakeOsInterface
	mapOs    *osfakes.FakeOsInterface
	dropper  *entrypointfakes.FakeCapabilityDropper
	childSys *osfakes.FakeSyscallInterface
	childOs  *osfakes.FakeOsInterface

	mu     sync.Mutex
	events []string

	done     chan struct{}
	exitCode int

	launcher *launcher.HostLauncher
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		factory:  &osfakes.FakeCommandFactory{},
		cmd:      &osfakes.FakeCommand{},
		process:  &osfakes.FakeProcess{},
		hostOs:   &osfakes.FakeOsInterface{},
		mapOs:    &osfakes.FakeOsInterface{},
		dropper:  &entrypointfakes.FakeCapabilityDropper{},
		childSys: &osfakes.FakeSyscallInterface{},
		childOs:  &osfakes.FakeOsInterface{},
		done:     make(chan struct{}),
	}

	f.factory.CreateCommandReturns(f.cmd)
	f.cmd.ProcessReturns(f.process)
	f.process.PidReturns(4242)
	f.hostOs.StatReturns(fileInfo{mode: 0755}, nil)

	f.mapOs.WriteFileStub = func(name string, data []byte, _ os.FileMode) error {
		f.record("write " + name[strings.LastIndex(name, "/")+1:] + " " + strings.TrimSpace(string(data)))
		return nil
	}
	f.childSys.MountStub = func(_, target, _ string, _ uintptr, _ string) error {
		f.record("mount " + target)
		return nil
	}
	f.dropper.DropToStub = func(allow capability.AllowList) error {
		f.record("drop " + allow.String())
		return nil
	}

	f.cmd.StartStub = func() error {
		files := f.cmd.SetExtraFilesArgsForCall(0)
		child := readiness.NewEndpoint(dup(t, files[0]), dup(t, files[1]))

		f.childSys.ExecStub = func(path string, _ []string, _ []string) error {
			f.record("exec " + path)
			child.Close()
			runtime.Goexit()
			return nil
		}

		go func() {
			defer close(f.done)
			f.exitCode = entrypoint.New(child, f.dropper, f.childSys, f.childOs, &osfakes.FakeExecInterface{}).Run()
			child.Close()
		}()
		return nil
	}
	f.cmd.WaitStub = func() error {
		<-f.done
		return nil
	}
	f.cmd.ExitCodeStub = func() int { return f.exitCode }

	f.launcher = launcher.New(f.factory, f.hostOs, idmap.NewWriter(f.mapOs), launcher.Config{
		InitPath:         initPath,
		HeldCapabilities: holding(gocap.CAP_SETUID, gocap.CAP_SETGID, gocap.CAP_NET_BIND_SERVICE),
	})
	return f
}

func holding(caps ...gocap.Cap) func() (capability.AllowList, error) {
	return func() (capability.AllowList, error) {
		return capability.NewAllowList(caps...), nil
	}
}

func dup(t *testing.T, file *os.File) *os.File {
	fd, err := unix.Dup(int(file.Fd()))
	require.NoError(t, err)
	return os.NewFile(uintptr(fd), file.Name())
}

func (f *fixture) record(event string) {
	f.mu.Lock()
	f.events = append(f.events, event)
	f.mu.Unlock()
}

func (f *fixture) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}

func userSpec() container.Spec {
	return container.Spec{
		Path:         "/bin/sh",
		Args:         []string{"sh", "-c", "true"},
		Namespaces:   container.NewNamespaces(container.NamespaceUser, container.NamespacePID, container.NamespaceMount),
		Capabilities: capability.NewAllowList(gocap.CAP_SETUID, gocap.CAP_SETGID),
		Mapping:      idmap.SingleID(1000, 1000),
	}
}

func TestLaunch_UserNamespaceReachesExec(t *testing.T) {
	f := newFixture(t)

	handle, err := f.launcher.Launch(context.Background(), userSpec())

	require.NoError(t, err)
	require.NotNil(t, handle)
	assert.Equal(t, 4242, handle.Pid())
	assert.Equal(t, container.StateExeced, handle.State())
	assert.Equal(t, []container.State{
		container.StateCreated,
		container.StateNamespaceEntered,
		container.StateWaitingForIdentityMap,
		container.StateIdentityMapped,
		container.StateCapabilitiesDropped,
		container.StateExeced,
	}, handle.Trace())

	assert.Equal(t, []string{
		"write setgroups deny",
		"write gid_map 0 1000 1",
		"write uid_map 0 1000 1",
		"mount /",
		"mount /proc",
		"drop CAP_SETGID,CAP_SETUID",
		"exec /bin/sh",
	}, f.recorded())

	code, err := handle.Wait()
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	name, args := f.factory.CreateCommandArgsForCall(0)
	assert.Equal(t, initPath, name)
	assert.Equal(t, []string{launcher.InitCommand}, args)

	attr := f.cmd.SetSysProcAttrArgsForCall(0)
	assert.Equal(t, uintptr(unix.CLONE_NEWUSER|unix.CLONE_NEWPID|unix.CLONE_NEWNS), attr.Cloneflags)
	assert.Equal(t, syscall.SIGKILL, attr.Pdeathsig)
	assert.Equal(t, []uintptr{
		uintptr(gocap.CAP_SETGID),
		uintptr(gocap.CAP_SETUID),
		uintptr(gocap.CAP_SETPCAP),
		uintptr(gocap.CAP_SYS_ADMIN),
	}, attr.AmbientCaps)

	assert.Equal(t, 1, f.childSys.SetresuidCallCount())
	assert.Equal(t, 1, f.childSys.SetresgidCallCount())
}

func TestLaunch_WithoutUserNamespaceSkipsMapping(t *testing.T) {
	f := newFixture(t)
	spec := container.Spec{
		Path:       "/bin/sh",
		Namespaces: container.NewNamespaces(container.NamespaceUTS, container.NamespaceIPC),
	}

	handle, err := f.launcher.Launch(context.Background(), spec)

	require.NoError(t, err)
	assert.Equal(t, container.StateExeced, handle.State())
	assert.Contains(t, handle.Trace(), container.StateIdentityMapped)
	assert.Equal(t, 0, f.mapOs.WriteFileCallCount())
	assert.Equal(t, 0, f.childSys.SetresuidCallCount())
	assert.Empty(t, f.cmd.SetSysProcAttrArgsForCall(0).AmbientCaps)

	_, argv, envv := f.childSys.ExecArgsForCall(0)
	assert.Equal(t, []string{"/bin/sh"}, argv)
	assert.Equal(t, container.DefaultEnv, envv)
}

func TestLaunch_InvalidMappingCreatesNothing(t *testing.T) {
	f := newFixture(t)
	spec := userSpec()
	spec.Mapping = idmap.Mapping{
		UID: idmap.Table{{NamespaceStart: 0, HostStart: 1000, Length: 1}, {NamespaceStart: 0, HostStart: 2000, Length: 1}},
		GID: idmap.Table{{NamespaceStart: 0, HostStart: 1000, Length: 1}},
	}

	handle, err := f.launcher.Launch(context.Background(), spec)

	assert.Nil(t, handle)
	assert.ErrorIs(t, err, errs.ErrInvalidMapping)
	var launchErr *launcher.LaunchError
	require.True(t, errors.As(err, &launchErr))
	assert.Equal(t, "validate", launchErr.Op)
	assert.Equal(t, 0, f.factory.CreateCommandCallCount())
	assert.Equal(t, 0, f.mapOs.WriteFileCallCount())
}

func TestLaunch_AmbientCapsCoverTheAllowList(t *testing.T) {
	f := newFixture(t)
	spec := userSpec()
	spec.Namespaces = container.NewNamespaces(container.NamespaceUser)
	spec.Capabilities = capability.NewAllowList(gocap.CAP_NET_BIND_SERVICE)

	_, err := f.launcher.Launch(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, []uintptr{
		uintptr(gocap.CAP_SETGID),
		uintptr(gocap.CAP_SETUID),
		uintptr(gocap.CAP_SETPCAP),
		uintptr(gocap.CAP_NET_BIND_SERVICE),
	}, f.cmd.SetSysProcAttrArgsForCall(0).AmbientCaps)
}

func TestLaunch_AllowListBeyondHostCreatesNothing(t *testing.T) {
	f := newFixture(t)
	spec := userSpec()
	spec.Capabilities = capability.NewAllowList(gocap.CAP_SETUID, gocap.CAP_SYS_ADMIN)

	handle, err := f.launcher.Launch(context.Background(), spec)

	assert.Nil(t, handle)
	assert.ErrorIs(t, err, errs.ErrInsufficientPrivilege)
	assert.Contains(t, err.Error(), "host does not hold CAP_SYS_ADMIN")
	var launchErr *launcher.LaunchError
	require.True(t, errors.As(err, &launchErr))
	assert.Equal(t, "capabilities", launchErr.Op)
	assert.Equal(t, container.ExitCapabilityFailure, container.ExitCodeForError(err))
	assert.Equal(t, 0, f.factory.CreateCommandCallCount())
}

func TestLaunch_HostCapabilitiesOnlyReadForNonEmptyAllowList(t *testing.T) {
	f := newFixture(t)
	reads := 0
	f.launcher = launcher.New(f.factory, f.hostOs, idmap.NewWriter(f.mapOs), launcher.Config{
		InitPath: initPath,
		HeldCapabilities: func() (capability.AllowList, error) {
			reads++
			return nil, errors.New("capget: ENOSYS")
		},
	})
	spec := userSpec()
	spec.Capabilities = nil

	_, err := f.launcher.Launch(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, 0, reads)

	_, err = f.launcher.Launch(context.Background(), userSpec())
	assert.ErrorIs(t, err, errs.ErrInsufficientPrivilege)
	assert.Equal(t, 1, reads)
}

func TestLaunch_OversizedBootstrapCreatesNothing(t *testing.T) {
	f := newFixture(t)
	spec := userSpec()
	spec.Env = []string{"PATH=/bin", "BLOB=" + strings.Repeat("x", readiness.MaxFrameSize)}

	handle, err := f.launcher.Launch(context.Background(), spec)

	assert.Nil(t, handle)
	assert.ErrorIs(t, err, errs.ErrUnsupportedConfiguration)
	assert.Contains(t, err.Error(), "bootstrap message")
	var launchErr *launcher.LaunchError
	require.True(t, errors.As(err, &launchErr))
	assert.Equal(t, "validate", launchErr.Op)
	assert.Equal(t, 0, f.factory.CreateCommandCallCount())
}

func TestLaunch_StartErrnoClassification(t *testing.T) {
	tests := []struct {
		errno syscall.Errno
		want  error
	}{
		{syscall.EPERM, errs.ErrPermissionDenied},
		{syscall.EACCES, errs.ErrPermissionDenied},
		{syscall.EINVAL, errs.ErrUnsupportedConfiguration},
		{syscall.ENOSYS, errs.ErrUnsupportedConfiguration},
		{syscall.EAGAIN, errs.ErrResourceExhausted},
		{syscall.ENOSPC, errs.ErrResourceExhausted},
		{syscall.EUSERS, errs.ErrResourceExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.errno.Error(), func(t *testing.T) {
			f := newFixture(t)
			f.cmd.StartStub = nil
			f.cmd.StartReturns(&os.PathError{Op: "fork/exec", Path: initPath, Err: tt.errno})

			handle, err := f.launcher.Launch(context.Background(), userSpec())

			assert.Nil(t, handle)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.errno)
			assert.Equal(t, 0, f.mapOs.WriteFileCallCount())
		})
	}
}

func TestLaunch_MapFailureAbortsParkedChild(t *testing.T) {
	f := newFixture(t)
	f.mapOs.WriteFileStub = nil
	f.mapOs.WriteFileReturnsOnCall(1, os.ErrPermission)

	handle, err := f.launcher.Launch(context.Background(), userSpec())

	require.NotNil(t, handle)
	var stageErr *container.StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, container.StateWaitingForIdentityMap, stageErr.Stage)
	assert.Equal(t, container.ExitMapFailure, stageErr.ExitCode)
	assert.ErrorIs(t, err, os.ErrPermission)

	assert.Equal(t, container.StateFailed, handle.State())
	stage, failed := handle.FailedStage()
	assert.True(t, failed)
	assert.Equal(t, container.StateWaitingForIdentityMap, stage)

	code, _ := handle.Wait()
	assert.Equal(t, container.ExitMapFailure, code)
	assert.Equal(t, 0, f.dropper.DropToCallCount())
	assert.Equal(t, 0, f.childSys.ExecCallCount())
	assert.Equal(t, 0, f.process.KillCallCount())
}

func TestLaunch_ChildCapabilityFailure(t *testing.T) {
	f := newFixture(t)
	f.dropper.DropToStub = nil
	f.dropper.DropToReturns(&capability.CapError{Op: "check", Err: errs.ErrInsufficientPrivilege})

	handle, err := f.launcher.Launch(context.Background(), userSpec())

	assert.ErrorIs(t, err, errs.ErrInsufficientPrivilege)
	var stageErr *container.StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, container.StateIdentityMapped, stageErr.Stage)
	assert.Equal(t, container.ExitCapabilityFailure, stageErr.ExitCode)

	code, _ := handle.Wait()
	assert.Equal(t, container.ExitCapabilityFailure, code)
	assert.Equal(t, 0, f.childSys.ExecCallCount())
}

func TestLaunch_ChildDiesBeforeHandshake(t *testing.T) {
	f := newFixture(t)
	f.cmd.StartStub = func() error {
		f.exitCode = 1
		close(f.done)
		return nil
	}

	handle, err := f.launcher.Launch(context.Background(), userSpec())

	require.NotNil(t, handle)
	var stageErr *container.StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, container.StateNamespaceEntered, stageErr.Stage)
	assert.Equal(t, container.ExitLaunchFailure, stageErr.ExitCode)
	assert.Equal(t, 0, f.mapOs.WriteFileCallCount())
}

func TestLaunch_ContextCancelKillsChild(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	killed := make(chan struct{})
	var killOnce sync.Once
	f.process.KillStub = func() error {
		killOnce.Do(func() { close(killed) })
		return nil
	}
	f.dropper.DropToStub = func(capability.AllowList) error {
		cancel()
		<-killed
		return errors.New("killed")
	}

	handle, err := f.launcher.Launch(ctx, userSpec())

	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, handle)
	assert.Equal(t, container.StateFailed, handle.State())
	stage, _ := handle.FailedStage()
	assert.Equal(t, container.StateIdentityMapped, stage)
	assert.GreaterOrEqual(t, f.process.KillCallCount(), 1)
	assert.Equal(t, 0, f.childSys.ExecCallCount())
}
