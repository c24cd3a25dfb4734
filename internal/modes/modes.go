package modes

import (
	"os"
	"runtime"

	"nsboot/internal/capability"
	"nsboot/internal/container"
	"nsboot/internal/entrypoint"
	"nsboot/internal/readiness"
	"nsboot/pkg/logger"
	osinterface "nsboot/pkg/os"
)

// RunInit runs the re-executed binary as the container entrypoint. It only
// returns when the bootstrap failed, with the exit code for the process.
func RunInit() int {
	initLogger := setupLogger()
	initLogger.Debug("nsboot starting in INIT mode",
		"platform", runtime.GOOS,
		"pid", os.Getpid())

	channel, err := readiness.Inherited()
	if err != nil {
		initLogger.Error("init mode must be started by nsboot run", "error", err)
		return container.ExitLaunchFailure
	}
	defer channel.Close()

	ep := entrypoint.New(channel, &governorDropper{},
		&osinterface.DefaultSyscall{}, &osinterface.DefaultOs{}, &osinterface.DefaultExec{})
	return ep.Run()
}

// governorDropper loads the capability state at drop time, after the
// identity switch, so a load failure surfaces at the capability stage.
type governorDropper struct{}

func (governorDropper) DropTo(allow capability.AllowList) error {
	governor, err := capability.NewGovernor()
	if err != nil {
		return err
	}
	return governor.DropTo(allow)
}

// setupLogger configures the logger based on environment variables. The
// child inherits the host's environment; the bootstrap message may still
// override these settings.
func setupLogger() *logger.Logger {
	config := logger.Config{Level: logger.INFO, Output: os.Stderr, Format: logger.FormatText}

	if logLevel := os.Getenv("NSBOOT_LOG_LEVEL"); logLevel != "" {
		if level, err := logger.ParseLevel(logLevel); err == nil {
			config.Level = level
		}
	}
	if os.Getenv("NSBOOT_LOG_FORMAT") == logger.FormatJSON {
		config.Format = logger.FormatJSON
	}

	logger.Configure(config)
	return logger.New().WithField("mode", "init")
}
