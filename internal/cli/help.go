package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"nsboot/internal/container"
	"nsboot/internal/idmap"
	"nsboot/pkg/config"
)

func newHelpConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config-help",
		Short: "Show configuration and spec file examples",
		Long:  "Display the built-in configuration as a nsboot.yaml file and an example container spec",
		Args:  cobra.NoArgs,
		RunE:  runConfigHelp,
	}

	return cmd
}

func runConfigHelp(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	defaults := config.DefaultConfig
	configYAML, err := defaults.ToYAML()
	if err != nil {
		return err
	}

	example := container.Spec{
		Path:       "/bin/sh",
		Args:       []string{"sh", "-c", "id"},
		Env:        container.DefaultEnv,
		Namespaces: container.NewNamespaces(container.NamespaceUser, container.NamespaceMount, container.NamespacePID),
		Mapping:    idmap.SingleID(1000, 1000),
	}
	specYAML, err := yaml.Marshal(example)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "nsboot Configuration Help")
	fmt.Fprintln(out, "=========================")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Built-in defaults as nsboot.yaml:")
	fmt.Fprintln(out, "--------------------------------")
	fmt.Fprint(out, string(configYAML))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "File locations searched (in order):")
	fmt.Fprintln(out, "1. $NSBOOT_CONFIG_PATH")
	fmt.Fprintln(out, "2. ./nsboot.yaml")
	fmt.Fprintln(out, "3. /etc/nsboot/config.yaml")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Environment overrides:")
	fmt.Fprintln(out, "  NSBOOT_LOG_LEVEL, NSBOOT_LOG_FORMAT, NSBOOT_LOG_OUTPUT, NSBOOT_INIT_PATH,")
	fmt.Fprintln(out, "  NSBOOT_NAMESPACES (comma separated), NSBOOT_CAPABILITIES (comma separated)")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Example spec file for 'nsboot run --spec':")
	fmt.Fprintln(out, "------------------------------------------")
	fmt.Fprint(out, string(specYAML))

	return nil
}
