package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"nsboot/internal/capability"
	"nsboot/internal/container"
	"nsboot/internal/idmap"
	"nsboot/internal/launcher"
	"nsboot/pkg/config"
	"nsboot/pkg/logger"
	osinterface "nsboot/pkg/os"
)

var (
	runSpecPath   string
	runNamespaces []string
	runCaps       []string
	runUIDMaps    []string
	runGIDMaps    []string
	runEnv        []string
	runInitPath   string
)

// Signals the host relays to the isolated process while it runs.
var forwardedSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] -- <command> [args...]",
		Short: "Run a command in new namespaces",
		Long: `Run a command in new namespaces with a reduced capability set.

Examples:
  nsboot run -- /bin/sh
  nsboot run --namespaces user,mount,pid --cap CAP_SETUID,CAP_SETGID -- id
  nsboot run --uid-map 0:1000:1 --gid-map 0:1000:1 -- /bin/true
  nsboot run --spec container.yaml

Without --uid-map/--gid-map a user namespace maps root inside the
namespace to the calling user and group.

Exit status is the command's own, or one of:
  121  the isolated process could not be created
  122  the identity mapping failed
  123  the capability drop failed
  127  the command could not be executed`,
		RunE: runRun,
	}

	cmd.Flags().StringVar(&runSpecPath, "spec", "", "Load the container spec from a YAML file")
	cmd.Flags().StringSliceVarP(&runNamespaces, "namespaces", "n", nil,
		"Namespaces to create (user, mount, pid, uts, ipc, network, cgroup)")
	cmd.Flags().StringSliceVar(&runCaps, "cap", nil, "Capabilities the command keeps, e.g. CAP_NET_BIND_SERVICE")
	cmd.Flags().StringArrayVar(&runUIDMaps, "uid-map", nil, "UID mapping <namespace-id>:<host-id>:<length>, repeatable")
	cmd.Flags().StringArrayVar(&runGIDMaps, "gid-map", nil, "GID mapping <namespace-id>:<host-id>:<length>, repeatable")
	cmd.Flags().StringArrayVarP(&runEnv, "env", "e", nil, "Environment entry KEY=VALUE, repeatable")
	cmd.Flags().StringVar(&runInitPath, "init-path", "", "Binary re-executed as the container entrypoint")

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	osInterface := &osinterface.DefaultOs{}

	spec, err := buildSpec(cmd, args, cfg, osInterface)
	if err != nil {
		return &ExitError{Code: container.ExitLaunchFailure, Err: err}
	}

	initPath := cfg.Launcher.InitPath
	if runInitPath != "" {
		initPath = runInitPath
	}

	l := launcher.New(&osinterface.DefaultCommandFactory{}, osInterface, idmap.NewWriter(osInterface), launcher.Config{
		InitPath:  initPath,
		LogLevel:  cfg.Logging.Level,
		LogFormat: cfg.Logging.Format,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	handle, err := l.Launch(ctx, spec)
	stop()
	if err != nil {
		return &ExitError{Code: container.ExitCodeForError(err), Err: err}
	}

	forwardSignals(handle.Pid(), &osinterface.DefaultSyscall{})

	code, err := handle.Wait()
	if err != nil {
		return &ExitError{Code: container.ExitLaunchFailure, Err: err}
	}
	logger.Debug("container exited", "pid", handle.Pid(), "exitCode", code)

	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// forwardSignals relays termination signals to pid until the process exits.
func forwardSignals(pid int, sys osinterface.SyscallInterface) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, forwardedSignals...)

	go func() {
		for sig := range sigChan {
			if err := sys.Kill(pid, sig.(syscall.Signal)); err != nil {
				logger.Debug("failed to forward signal", "signal", sig, "error", err)
			}
		}
	}()
}

// buildSpec merges, from lowest to highest precedence, the configured
// defaults, the --spec file and the command line.
func buildSpec(cmd *cobra.Command, args []string, defaults *config.Config, osInterface osinterface.OsInterface) (container.Spec, error) {
	spec := container.Spec{
		Namespaces:   defaults.Container.Namespaces,
		Capabilities: defaults.Container.Capabilities,
		Mapping:      defaults.Container.Mapping,
	}

	if runSpecPath != "" {
		fromFile, err := container.LoadSpecFile(runSpecPath)
		if err != nil {
			return container.Spec{}, err
		}
		spec = fromFile
	}

	if len(args) > 0 {
		spec.Path = args[0]
		spec.Args = args
	}
	if spec.Path == "" {
		return container.Spec{}, fmt.Errorf("a command or --spec file is required")
	}

	flags := cmd.Flags()
	if flags.Changed("namespaces") {
		namespaces, err := container.ParseNamespaces(runNamespaces)
		if err != nil {
			return container.Spec{}, err
		}
		spec.Namespaces = namespaces
	}

	if flags.Changed("cap") {
		caps, err := capability.ParseAllowList(runCaps)
		if err != nil {
			return container.Spec{}, err
		}
		spec.Capabilities = caps
	}

	if flags.Changed("uid-map") {
		table, err := parseTable(runUIDMaps)
		if err != nil {
			return container.Spec{}, err
		}
		spec.Mapping.UID = table
	}
	if flags.Changed("gid-map") {
		table, err := parseTable(runGIDMaps)
		if err != nil {
			return container.Spec{}, err
		}
		spec.Mapping.GID = table
	}

	if spec.UserNamespace() {
		rootless := idmap.SingleID(uint32(osInterface.Getuid()), uint32(osInterface.Getgid()))
		if len(spec.Mapping.UID) == 0 {
			spec.Mapping.UID = rootless.UID
		}
		if len(spec.Mapping.GID) == 0 {
			spec.Mapping.GID = rootless.GID
		}
	}

	if flags.Changed("env") {
		spec.Env = withDefaultPath(runEnv)
	}

	return spec, nil
}

func parseTable(values []string) (idmap.Table, error) {
	table := make(idmap.Table, 0, len(values))
	for _, v := range values {
		r, err := idmap.ParseRange(v)
		if err != nil {
			return nil, err
		}
		table = append(table, r)
	}
	return table, nil
}

// withDefaultPath prepends the default PATH unless env sets one.
func withDefaultPath(env []string) []string {
	for _, kv := range env {
		if strings.HasPrefix(kv, "PATH=") {
			return env
		}
	}
	return append(append([]string(nil), container.DefaultEnv...), env...)
}
