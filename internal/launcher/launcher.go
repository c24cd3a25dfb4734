// Package launcher is the host half of the bootstrap. It creates the
// isolated process with the requested namespaces, writes its identity
// mapping while it is parked, and follows it through to exec.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"nsboot/internal/capability"
	"nsboot/internal/container"
	"nsboot/internal/idmap"
	"nsboot/internal/readiness"
	errs "nsboot/pkg/errors"
	"nsboot/pkg/logger"
	osinterface "nsboot/pkg/os"
)

// InitCommand is the hidden subcommand the re-executed binary runs as the
// container entrypoint.
const InitCommand = "init"

// LaunchError reports a failure before the isolated process existed. No
// host state was changed.
type LaunchError struct {
	Op  string
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Op, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// IdentityMapper writes the uid/gid maps of a parked child.
type IdentityMapper interface {
	Apply(pid int, mapping idmap.Mapping) error
	Release(pid int)
}

// Config holds per-launcher settings.
type Config struct {
	// InitPath is the binary started as the entrypoint. Empty means the
	// running executable.
	InitPath  string
	LogLevel  string
	LogFormat string
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	// HeldCapabilities reports the host's permitted set. Nil reads it from
	// the running process.
	HeldCapabilities func() (capability.AllowList, error)
}

// HostLauncher launches one isolated process per Launch call.
type HostLauncher struct {
	cmdFactory  osinterface.CommandFactory
	osInterface osinterface.OsInterface
	mapper      IdentityMapper
	config      Config
	logger      *logger.Logger
}

// New creates a launcher.
func New(cmdFactory osinterface.CommandFactory, osInterface osinterface.OsInterface, mapper IdentityMapper, config Config) *HostLauncher {
	return &HostLauncher{
		cmdFactory:  cmdFactory,
		osInterface: osInterface,
		mapper:      mapper,
		config:      config,
		logger:      logger.New().WithField("component", "host-launcher"),
	}
}

// Launch creates the isolated process and drives it to exec.
//
// Errors before the process exists are *LaunchError and come with a nil
// handle. Once the process exists the handle is always returned; on failure
// it is in state Failed, the child has been reaped, and the error is a
// *container.StageError. Cancelling ctx during the handshake aborts and
// kills the child.
func (l *HostLauncher) Launch(ctx context.Context, spec container.Spec) (*Handle, error) {
	spec = spec.WithDefaults()

	log := l.logger.WithFields("command", spec.Path, "namespaces", spec.Namespaces.String())

	if err := spec.Validate(); err != nil {
		log.Error("rejected container spec", "error", err)
		return nil, &LaunchError{Op: "validate", Err: err}
	}

	if err := l.checkHeld(spec.Capabilities); err != nil {
		log.Error("rejected capability allow-list", "error", err)
		return nil, &LaunchError{Op: "capabilities", Err: err}
	}

	bootstrap := readiness.Message{Kind: readiness.KindBootstrap, Payload: l.bootstrap(spec).MarshalWire()}
	if size := len(bootstrap.MarshalWire()); size > readiness.MaxFrameSize {
		return nil, &LaunchError{Op: "validate", Err: fmt.Errorf("%w: bootstrap message is %d bytes, limit %d",
			errs.ErrUnsupportedConfiguration, size, readiness.MaxFrameSize)}
	}

	initPath, err := l.resolveInitPath()
	if err != nil {
		return nil, &LaunchError{Op: "init", Err: err}
	}

	attr, err := sysProcAttr(spec)
	if err != nil {
		return nil, &LaunchError{Op: "configure", Err: err}
	}

	pipes, err := readiness.NewPipes()
	if err != nil {
		return nil, &LaunchError{Op: "pipe", Err: classifyErrno(err)}
	}

	cmd := l.cmdFactory.CreateCommand(initPath, InitCommand)
	cmd.SetSysProcAttr(attr)
	cmd.SetExtraFiles(pipes.ChildFiles())
	cmd.SetEnv(l.osInterface.Environ())
	if l.config.Stdin != nil {
		cmd.SetStdin(l.config.Stdin)
	}
	if l.config.Stdout != nil {
		cmd.SetStdout(l.config.Stdout)
	}
	if l.config.Stderr != nil {
		cmd.SetStderr(l.config.Stderr)
	}

	if err := cmd.Start(); err != nil {
		pipes.Close()
		classified := classifyErrno(err)
		log.Error("failed to create isolated process", "error", classified)
		return nil, &LaunchError{Op: "clone", Err: classified}
	}
	pipes.CloseChildEnds()

	process := cmd.Process()
	if process == nil {
		pipes.Close()
		return nil, &LaunchError{Op: "clone", Err: errors.New("process is nil after start")}
	}

	handle := newHandle(process, cmd, pipes.Host(), l.mapper)
	if err := handle.lifecycle.Advance(container.StateNamespaceEntered); err != nil {
		return handle, l.fail(handle, err)
	}

	log = log.WithField("pid", handle.Pid())
	log.Debug("isolated process created")

	resultChan := make(chan error, 1)
	go func() {
		resultChan <- l.handshake(handle, spec, bootstrap)
	}()

	select {
	case err = <-resultChan:
	case <-ctx.Done():
		select {
		case err = <-resultChan:
		default:
			log.Warn("context cancelled during handshake")
			handle.abort(ctx.Err().Error())
			handle.kill()
			<-resultChan
			err = ctx.Err()
		}
	}

	if err != nil {
		return handle, l.fail(handle, err)
	}

	log.Info("isolated process replaced its image", "trace", handle.Trace())
	return handle, nil
}

// checkHeld rejects an allow-list the host itself does not hold.
func (l *HostLauncher) checkHeld(allow capability.AllowList) error {
	if len(allow) == 0 {
		return nil
	}

	held := l.config.HeldCapabilities
	if held == nil {
		held = capability.Held
	}
	permitted, err := held()
	if err != nil {
		return fmt.Errorf("%w: reading host capabilities: %w", errs.ErrInsufficientPrivilege, err)
	}

	var missing []string
	for _, c := range allow {
		if !permitted.Contains(c) {
			missing = append(missing, capability.NewAllowList(c).String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: host does not hold %s", errs.ErrInsufficientPrivilege, strings.Join(missing, ","))
	}
	return nil
}

// bootstrap is the part of spec the child needs.
func (l *HostLauncher) bootstrap(spec container.Spec) readiness.Bootstrap {
	return readiness.Bootstrap{
		Path:           spec.Path,
		Args:           spec.Args,
		Env:            spec.Env,
		Capabilities:   spec.Capabilities.Names(),
		SwitchIdentity: spec.UserNamespace(),
		LogLevel:       l.config.LogLevel,
		LogFormat:      l.config.LogFormat,
		PrivateMounts:  spec.Namespaces.Has(container.NamespaceMount),
		RemountProc:    spec.Namespaces.Has(container.NamespaceMount) && spec.Namespaces.Has(container.NamespacePID),
	}
}

// handshake runs the host side of the readiness protocol.
func (l *HostLauncher) handshake(h *Handle, spec container.Spec, bootstrap readiness.Message) error {
	if err := h.channel.Signal(bootstrap); err != nil {
		return err
	}

	if err := h.await(container.StateWaitingForIdentityMap); err != nil {
		return err
	}

	if spec.UserNamespace() {
		if err := l.mapper.Apply(h.Pid(), spec.Mapping); err != nil {
			return err
		}
	}

	h.markReleased()
	if err := h.channel.Signal(readiness.Message{Kind: readiness.KindProceed}); err != nil {
		return err
	}

	if err := h.await(container.StateIdentityMapped); err != nil {
		return err
	}
	if err := h.await(container.StateCapabilitiesDropped); err != nil {
		return err
	}

	// Both child ends are close-on-exec: a successful exec reads as EOF.
	msg, err := h.channel.Wait()
	if errors.Is(err, io.EOF) {
		h.channel.Close()
		return h.lifecycle.Advance(container.StateExeced)
	}
	if err != nil {
		return err
	}
	return unexpectedReport(msg, container.StateExeced)
}

// fail moves the handle to Failed, makes sure the child terminates, and
// reaps it.
func (l *HostLauncher) fail(h *Handle, cause error) error {
	stage := h.lifecycle.Fail()

	var reported *childError
	childReported := errors.As(cause, &reported)

	if !childReported {
		h.abort(cause.Error())
	}
	// A child released past the mapping phase never reads the channel
	// again, so only a kill stops it.
	if h.isReleased() && !childReported {
		h.kill()
	}

	exitCode, _ := h.Wait()

	l.logger.Error("launch failed",
		"pid", h.Pid(),
		"stage", stage.String(),
		"childExitCode", exitCode,
		"error", cause)

	return &container.StageError{
		Stage:    stage,
		ExitCode: container.ExitCodeForStage(stage),
		Err:      cause,
	}
}

func (l *HostLauncher) resolveInitPath() (string, error) {
	initPath := l.config.InitPath
	if initPath == "" {
		exe, err := l.osInterface.Executable()
		if err != nil {
			return "", fmt.Errorf("failed to resolve running executable: %w", err)
		}
		initPath = exe
	}

	if !filepath.IsAbs(initPath) {
		return "", fmt.Errorf("%w: init path %s must be absolute", errs.ErrUnsupportedConfiguration, initPath)
	}

	info, err := l.osInterface.Stat(initPath)
	if err != nil {
		if l.osInterface.IsNotExist(err) {
			return "", fmt.Errorf("%w: init binary %s does not exist", errs.ErrUnsupportedConfiguration, initPath)
		}
		return "", fmt.Errorf("failed to stat init binary: %w", err)
	}
	if !info.Mode().IsRegular() || info.Mode().Perm()&0111 == 0 {
		return "", fmt.Errorf("%w: init binary %s is not an executable file", errs.ErrUnsupportedConfiguration, initPath)
	}

	return initPath, nil
}

// childError is a failure the isolated process reported about itself.
type childError struct {
	stage  string
	reason string
}

func (e *childError) Error() string {
	return fmt.Sprintf("isolated process failed after %s: %s", e.stage, e.reason)
}

func (e *childError) Is(target error) bool {
	switch e.stage {
	case container.StateIdentityMapped.String():
		return target == errs.ErrInsufficientPrivilege
	case container.StateCapabilitiesDropped.String():
		return target == errs.ErrImageReplacement
	}
	return false
}

func unexpectedReport(msg readiness.Message, want container.State) error {
	if msg.Kind == readiness.KindFailed {
		return &childError{stage: msg.Stage, reason: msg.Reason}
	}
	return fmt.Errorf("%w: %s %q while waiting for %s", readiness.ErrUnexpectedMessage, msg.Kind, msg.Stage, want)
}
