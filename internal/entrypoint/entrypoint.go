// Package entrypoint runs inside the isolated process. It parks on the
// readiness channel until the host has written the identity mapping, drops
// capabilities and replaces itself with the target command.
package entrypoint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"nsboot/internal/capability"
	"nsboot/internal/container"
	"nsboot/internal/modes/isolation"
	"nsboot/internal/readiness"
	errs "nsboot/pkg/errors"
	"nsboot/pkg/logger"
	osinterface "nsboot/pkg/os"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . CapabilityDropper
type CapabilityDropper interface {
	DropTo(allow capability.AllowList) error
}

//counterfeiter:generate . Channel
type Channel interface {
	Expect(kind readiness.Kind) (readiness.Message, error)
	Signal(msg readiness.Message) error
}

// ContainerEntrypoint is the isolated half of the bootstrap.
type ContainerEntrypoint struct {
	channel          Channel
	dropper          CapabilityDropper
	syscallInterface osinterface.SyscallInterface
	osInterface      osinterface.OsInterface
	execInterface    osinterface.ExecInterface
	logger           *logger.Logger
}

// New wires an entrypoint around the inherited channel.
func New(channel Channel, dropper CapabilityDropper, syscallInterface osinterface.SyscallInterface,
	osInterface osinterface.OsInterface, execInterface osinterface.ExecInterface) *ContainerEntrypoint {
	return &ContainerEntrypoint{
		channel:          channel,
		dropper:          dropper,
		syscallInterface: syscallInterface,
		osInterface:      osInterface,
		execInterface:    execInterface,
		logger:           logger.New().WithField("component", "container-entrypoint"),
	}
}

// Run drives the child side of the handshake and execs the target. It only
// returns on failure, with the exit status for the stage that failed.
func (e *ContainerEntrypoint) Run() int {
	// capset and setres[ug]id act on the calling thread; exec must happen
	// from that same thread. The thread is never unlocked.
	runtime.LockOSThread()

	reached := container.StateNamespaceEntered

	msg, err := e.channel.Expect(readiness.KindBootstrap)
	if err != nil {
		return e.fail(reached, fmt.Errorf("waiting for bootstrap: %w", err))
	}

	var boot readiness.Bootstrap
	if err := boot.UnmarshalWire(msg.Payload); err != nil {
		return e.fail(reached, err)
	}
	e.applyLogSettings(boot)
	log := e.logger.WithFields("pid", e.osInterface.Getpid(), "command", boot.Path)

	reached = container.StateWaitingForIdentityMap
	if err := e.report(reached); err != nil {
		return e.fail(container.StateNamespaceEntered, err)
	}
	log.Debug("waiting for identity mapping", "switchIdentity", boot.SwitchIdentity)

	if _, err := e.channel.Expect(readiness.KindProceed); err != nil {
		return e.fail(reached, fmt.Errorf("waiting for identity mapping: %w", err))
	}

	reached = container.StateIdentityMapped
	if err := e.report(reached); err != nil {
		return e.fail(reached, err)
	}

	if boot.SwitchIdentity {
		if err := e.becomeNamespaceRoot(); err != nil {
			return e.fail(reached, err)
		}
	}

	mounts := isolation.Options{PrivateMounts: boot.PrivateMounts, RemountProc: boot.RemountProc}
	if err := isolation.Setup(e.syscallInterface, mounts, log); err != nil {
		return e.fail(reached, err)
	}

	allow, err := capability.ParseAllowList(boot.Capabilities)
	if err != nil {
		return e.fail(reached, fmt.Errorf("%w: %w", errs.ErrInsufficientPrivilege, err))
	}

	if err := e.dropper.DropTo(allow); err != nil {
		return e.fail(reached, err)
	}

	reached = container.StateCapabilitiesDropped
	if err := e.report(reached); err != nil {
		return e.fail(reached, err)
	}

	commandPath, err := e.resolveCommandPath(boot.Path, boot.Env)
	if err != nil {
		return e.fail(reached, fmt.Errorf("%w: %w", errs.ErrImageReplacement, err))
	}

	args := boot.Args
	if len(args) == 0 {
		args = []string{boot.Path}
	}

	log.Debug("replacing process image", "commandPath", commandPath, "args", args)

	if err := e.syscallInterface.Exec(commandPath, args, boot.Env); err != nil {
		return e.fail(reached, fmt.Errorf("%w: exec %s: %w", errs.ErrImageReplacement, commandPath, err))
	}

	// Exec returned nil without replacing the image. Only fakes do that.
	return e.fail(reached, fmt.Errorf("%w: exec %s returned", errs.ErrImageReplacement, commandPath))
}

// becomeNamespaceRoot switches every id to namespace root, which the
// mapping guarantees exists.
func (e *ContainerEntrypoint) becomeNamespaceRoot() error {
	if err := e.syscallInterface.Setresgid(0, 0, 0); err != nil {
		return fmt.Errorf("%w: setresgid(0): %w", errs.ErrInsufficientPrivilege, err)
	}
	if err := e.syscallInterface.Setresuid(0, 0, 0); err != nil {
		return fmt.Errorf("%w: setresuid(0): %w", errs.ErrInsufficientPrivilege, err)
	}
	return nil
}

func (e *ContainerEntrypoint) report(stage container.State) error {
	return e.channel.Signal(readiness.Message{Kind: readiness.KindStage, Stage: stage.String()})
}

// fail reports the failure to the host unless the host is already gone,
// and returns the exit status for stage.
func (e *ContainerEntrypoint) fail(stage container.State, err error) int {
	code := container.ExitCodeForStage(stage)

	e.logger.Error("bootstrap failed", "stage", stage.String(), "exitCode", code, "error", err)

	if !errors.Is(err, errs.ErrAborted) && !errors.Is(err, io.EOF) {
		if sigErr := e.channel.Signal(readiness.Message{
			Kind:   readiness.KindFailed,
			Stage:  stage.String(),
			Reason: err.Error(),
		}); sigErr != nil {
			e.logger.Debug("could not report failure to host", "error", sigErr)
		}
	}

	return code
}

func (e *ContainerEntrypoint) applyLogSettings(boot readiness.Bootstrap) {
	level := e.logger.GetLevel()
	if boot.LogLevel != "" {
		if parsed, err := logger.ParseLevel(boot.LogLevel); err == nil {
			level = parsed
		}
	}

	if boot.LogFormat == "" {
		e.logger.SetLevel(level)
		return
	}

	// The child owns stderr only; stdout belongs to the target.
	logger.Configure(logger.Config{Level: level, Output: os.Stderr, Format: boot.LogFormat})
	e.logger = logger.New().WithField("component", "container-entrypoint")
}

// resolveCommandPath finds the target the way execvp would, using the
// PATH of the target's environment, then the usual system directories.
func (e *ContainerEntrypoint) resolveCommandPath(command string, env []string) (string, error) {
	if strings.Contains(command, "/") {
		if _, err := e.osInterface.Stat(command); err != nil {
			return "", fmt.Errorf("command %s not found: %w", command, err)
		}
		return command, nil
	}

	var searchPath []string
	for _, kv := range env {
		if strings.HasPrefix(kv, "PATH=") {
			searchPath = filepath.SplitList(strings.TrimPrefix(kv, "PATH="))
		}
	}

	for _, dir := range searchPath {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, command)
		if info, err := e.osInterface.Stat(candidate); err == nil && !info.IsDir() && info.Mode()&0111 != 0 {
			return candidate, nil
		}
	}

	if resolvedPath, err := e.execInterface.LookPath(command); err == nil {
		return resolvedPath, nil
	}

	commonPaths := []string{
		filepath.Join("/bin", command),
		filepath.Join("/usr/bin", command),
		filepath.Join("/usr/local/bin", command),
		filepath.Join("/sbin", command),
		filepath.Join("/usr/sbin", command),
	}

	e.logger.Debug("checking common command locations", "command", command, "paths", commonPaths)

	for _, path := range commonPaths {
		if _, err := e.osInterface.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("command %s not found in PATH or common locations", command)
}
