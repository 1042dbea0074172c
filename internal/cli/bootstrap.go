package cli

import (
	"fmt"
	"os"

	"github.com/jjarrett21/kitchensink/internal/bootstrap"
	"github.com/jjarrett21/kitchensink/internal/config"
	"github.com/jjarrett21/kitchensink/internal/input"
	"github.com/jjarrett21/kitchensink/internal/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var interactive bool

// newRunner builds the subprocess runner; tests replace it.
var newRunner = func(cmd *cobra.Command) runner.Runner {
	return &runner.ExecRunner{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&interactive, "interactive", "i", false, "Prompt for the project name and extra packages")
	flags.String("template", config.Default(config.KeyTemplate), "Vite template passed to the generator")
	flags.String("generator", config.Default(config.KeyGenerator), "Generator package run through npx")
	flags.String("package-manager", config.Default(config.KeyPackageManager), "Package manager: npm, pnpm, yarn or bun")
	flags.String("base-url-env", config.Default(config.KeyBaseURLEnv), "Env variable the API client reads its base URL from")
	bindConfigFlags()
}

// bindConfigFlags lets flags override config file and env values.
func bindConfigFlags() {
	flags := rootCmd.Flags()
	_ = viper.BindPFlag(config.KeyTemplate, flags.Lookup("template"))
	_ = viper.BindPFlag(config.KeyGenerator, flags.Lookup("generator"))
	_ = viper.BindPFlag(config.KeyPackageManager, flags.Lookup("package-manager"))
	_ = viper.BindPFlag(config.KeyBaseURLEnv, flags.Lookup("base-url-env"))
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	mode := input.ModeArgs
	if interactive {
		if len(args) > 0 {
			return fmt.Errorf("positional arguments cannot be combined with --interactive")
		}
		mode = input.ModeInteractive
	}

	req, err := input.Resolve(mode, args, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	settings := config.Current()
	opts := bootstrap.Options{
		Name:           req.Name,
		Packages:       req.Packages,
		ParentDir:      cwd,
		Template:       settings.Template,
		Generator:      settings.Generator,
		PackageManager: settings.PackageManager,
		BaseURLEnv:     settings.BaseURLEnv,
	}

	result, err := bootstrap.New(newRunner(cmd), newLogger(cmd)).Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "\nRun the following commands to start:")
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", result.NextSteps(settings.PackageManager))
	return nil
}
