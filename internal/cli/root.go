package cli

import (
	"os"

	"github.com/jjarrett21/kitchensink/internal/branding"
	"github.com/jjarrett21/kitchensink/internal/config"
	"github.com/jjarrett21/kitchensink/internal/logger"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [projectName] [extraPackages...]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a Vite React + TypeScript project and sets it up with
Tailwind CSS, TanStack Query, React Router, axios, zod and Vitest.

Extra packages are installed alongside the defaults; packages that are
already part of the defaults are skipped.`,
	Example: `  kitchensink my-app
  kitchensink my-app lodash dayjs
  kitchensink --interactive
  kitchensink my-app --package-manager pnpm --base-url-env VITE_API_URL`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runBootstrap,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		logger.New(os.Stderr, debug).Error("%v", err)
	}
	return err
}

func newLogger(cmd *cobra.Command) *logger.Logger {
	return logger.New(cmd.ErrOrStderr(), debug)
}
