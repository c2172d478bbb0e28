package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Azhovan/logenv"
	"github.com/Azhovan/logenv/internal/config"
	"github.com/Azhovan/logenv/internal/logger"
	"github.com/Azhovan/logenv/sourceenv"
	"github.com/Azhovan/logenv/sysprops"
)

// renderOptions holds the flags of the render command.
type renderOptions struct {
	defines []string
	format  string
	sources bool

	store *sysprops.Store
}

// renderCmd constructs the command that prints the built property set.
func renderCmd(settings *config.Settings, store *sysprops.Store) *cobra.Command {
	opts := &renderOptions{store: store}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the logging properties for the current environment",
		Long: heredoc.Doc(`
			Build the logging property set from system properties (set with -D)
			and APP_LOGGING_* environment variables, then print it.

			System properties use the app.logging. prefix and win over the
			environment. A property app.logging.quick.<logger>=<level> declares
			a named logger in one entry. When nothing is configured, a console
			default set is printed.
		`),
		Example: heredoc.Doc(`
			APP_LOGGING_ROOTLOGGER_LEVEL=DEBUG logenv render
			logenv render -D app.logging.quick.net.example.Session=WARN --format yaml --sources
		`),

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return config.ValidateFormat(opts.format)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.defines, "define", "D", nil, "set a system property as key=value (repeatable)")
	flags.StringVar(&opts.format, "format", settings.Format, "output format (possible values: "+strings.Join(config.Formats, ", ")+")")
	flags.BoolVar(&opts.sources, "sources", false, "annotate each property with its source (not for the properties format)")

	return cmd
}

// run applies the -D definitions, builds the property set and writes it to w.
func (o *renderOptions) run(ctx context.Context, w io.Writer) error {
	log := logger.FromContext(ctx)

	for _, def := range o.defines {
		if err := o.store.Define(def); err != nil {
			return err
		}
	}

	cfg, err := logenv.NewBuilder().
		WithSystemProperties(sysprops.New(sysprops.Options{Store: o.store})).
		WithEnvironment(sourceenv.New(sourceenv.Options{})).
		Build(ctx)
	if err != nil {
		log.Error().Err(err).Msg("building logging properties failed")
		return err
	}
	if cfg.Defaulted {
		log.Info().Msg("no logging properties found, rendering defaults")
	}

	var dumpOpts []logenv.DumpOption
	switch o.format {
	case config.FormatProperties:
		if _, err := cfg.WriteTo(w); err != nil {
			log.Error().Err(err).Msg("writing logging properties failed")
			return err
		}
		return nil
	case config.FormatJSON:
		dumpOpts = append(dumpOpts, logenv.AsJSON())
	case config.FormatYAML:
		dumpOpts = append(dumpOpts, logenv.AsYAML())
	case config.FormatTOML:
		dumpOpts = append(dumpOpts, logenv.AsTOML())
	}
	if o.sources {
		dumpOpts = append(dumpOpts, logenv.WithSources())
	}

	if err := logenv.DumpEffective(w, cfg, dumpOpts...); err != nil {
		return fmt.Errorf("dump properties: %w", err)
	}
	return nil
}
