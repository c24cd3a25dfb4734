package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"nsboot/internal/capability"
	"nsboot/internal/container"
	"nsboot/internal/modes/validation"
	errs "nsboot/pkg/errors"
	"nsboot/pkg/logger"
	osinterface "nsboot/pkg/os"
)

var (
	checkNamespaces []string
	checkCaps       []string
)

type checkOutput struct {
	validation.Report `yaml:",inline"`
	Capabilities      *capability.Snapshot `yaml:"capabilities,omitempty"`
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that this host can create the configured namespaces",
		Long: `Check kernel support for each requested namespace, the sysctls that
restrict user namespaces, and the capabilities held by the caller.

The report is printed as YAML. The exit status is non-zero when a check
fails.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}

	cmd.Flags().StringSliceVarP(&checkNamespaces, "namespaces", "n", nil, "Namespaces to check (default: configured namespaces)")
	cmd.Flags().StringSliceVar(&checkCaps, "cap", nil, "Capabilities a container would keep (default: configured capabilities)")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	namespaces := cfg.Container.Namespaces
	if cmd.Flags().Changed("namespaces") {
		parsed, err := container.ParseNamespaces(checkNamespaces)
		if err != nil {
			return err
		}
		namespaces = parsed
	}

	allow := cfg.Container.Capabilities
	if cmd.Flags().Changed("cap") {
		parsed, err := capability.ParseAllowList(checkCaps)
		if err != nil {
			return err
		}
		allow = parsed
	}

	report, checkErr := validation.NewHostValidator(&osinterface.DefaultOs{}).Validate(namespaces)
	out := checkOutput{Report: report}

	if snapshot, err := loadSnapshot(); err != nil {
		logger.Warn("cannot read capability state", "error", err)
	} else {
		out.Capabilities = &snapshot
		held := heldCheck(allow, snapshot)
		out.Checks = append(out.Checks, held)
		if !held.Passed && checkErr == nil {
			checkErr = fmt.Errorf("%w: %s", errs.ErrInsufficientPrivilege, held.Detail)
		}
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}

	return checkErr
}

func loadSnapshot() (capability.Snapshot, error) {
	governor, err := capability.NewGovernor()
	if err != nil {
		return capability.Snapshot{}, err
	}
	return governor.Snapshot()
}

// heldCheck reports whether every capability in allow is permitted.
func heldCheck(allow capability.AllowList, snapshot capability.Snapshot) validation.Check {
	permitted := make(map[string]bool, len(snapshot.Permitted))
	for _, name := range snapshot.Permitted {
		permitted[name] = true
	}

	var missing []string
	for _, name := range allow.Names() {
		if !permitted[name] {
			missing = append(missing, name)
		}
	}

	check := validation.Check{Name: "allow-list held", Passed: len(missing) == 0}
	if len(missing) > 0 {
		check.Detail = fmt.Sprintf("not permitted: %v", missing)
	} else if len(allow) > 0 {
		check.Detail = allow.String()
	}
	return check
}
