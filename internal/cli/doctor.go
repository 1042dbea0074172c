package cli

import (
	"fmt"

	"github.com/jjarrett21/kitchensink/internal/config"
	"github.com/jjarrett21/kitchensink/internal/preflight"
	"github.com/jjarrett21/kitchensink/internal/scaffold"
	"github.com/spf13/cobra"
)

// newChecker builds the environment checker; tests replace it.
var newChecker = preflight.New

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that Node.js, the generator and the package manager are usable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		checker := newChecker()
		settings := config.Current()

		fmt.Fprintln(out, "Runtime check:")
		names := []string{"node", scaffold.DefaultLauncher}
		if settings.PackageManager != "npm" {
			names = append(names, "npm")
		}
		names = append(names, settings.PackageManager)
		checks := checker.Binaries(names...)
		checks = append(checks, checker.NodeVersion(cmd.Context()))
		for _, c := range checks {
			fmt.Fprintf(out, "  %s %s\n", c.Status.Label(), c.Detail)
		}

		fmt.Fprintln(out, "Config check:")
		configErr := validateConfigFile(cmd)

		if preflight.Failed(checks) {
			return fmt.Errorf("environment is not ready")
		}
		return configErr
	},
}
