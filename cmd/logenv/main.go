// Command logenv prints the logging property set derived from system
// properties and APP_LOGGING_* environment variables.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Azhovan/logenv/internal/config"
	"github.com/Azhovan/logenv/internal/logger"
	"github.com/Azhovan/logenv/sysprops"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

const (
	appName  = "logenv"
	appShort = "logenv derives logging properties from system properties and the environment"

	logLevelFlagName      = "log-level"
	logLevelShortFlagName = "v"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cmd := rootCmd(settings, sysprops.Default())
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// rootCmd constructs the root Cobra command. Definitions passed with -D go to store.
func rootCmd(settings *config.Settings, store *sysprops.Store) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log := logger.New(cmd.ErrOrStderr(), logLevel)
			cmd.SetContext(logger.WithContext(cmd.Context(), log))
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	cmd.PersistentFlags().StringVarP(&logLevel, logLevelFlagName, logLevelShortFlagName, settings.LogLevel,
		"set the logging level (possible values: trace, debug, info, warn, error)")

	cmd.AddCommand(
		renderCmd(settings, store),
		versionCmd(),
	)

	return cmd
}

// versionCmd constructs the Cobra command that prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the " + appName + " version",

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, runtime.Version()))
		},
	}
}

// versionString formats the version metadata for display.
func versionString(version, runtimeVersion string) string {
	return strings.TrimSpace(version) + ", Go Version: " + runtimeVersion
}
