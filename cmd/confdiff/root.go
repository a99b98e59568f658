package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wonderfulspam/confdiff/pkg/config"
	"github.com/wonderfulspam/confdiff/pkg/differ"
	"github.com/wonderfulspam/confdiff/pkg/document"
	"github.com/wonderfulspam/confdiff/pkg/loader"
	"github.com/wonderfulspam/confdiff/pkg/logging"
	"github.com/wonderfulspam/confdiff/pkg/renderer"
)

type rootOptions struct {
	oldPath    string
	newPath    string
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "confdiff --old <file> --new <file>",
		Short: "Compare two hierarchical configuration files key by key",
		Long: `confdiff flattens two YAML, JSON or TOML documents into dotted key paths
and reports which keys were added, removed or modified between them.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiff(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.oldPath, "old", "o", "", "Path to the old configuration file")
	cmd.Flags().StringVarP(&opts.newPath, "new", "n", "", "Path to the new configuration file")
	_ = cmd.MarkFlagRequired("old")
	_ = cmd.MarkFlagRequired("new")

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Settings file (default .confdiff.yaml in the working directory)")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newFlattenCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runDiff(cmd *cobra.Command, opts *rootOptions) error {
	settings, logger, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	order, err := differ.OrderingByName(settings.Order)
	if err != nil {
		return err
	}

	l := loader.New(document.Format(settings.InputFormat), logger)
	oldDoc, newDoc, err := l.LoadPair(cmd.Context(), opts.oldPath, opts.newPath)
	if err != nil {
		return err
	}

	result := differ.CompareWith(oldDoc.Root, newDoc.Root, differ.Options{Order: order})
	logger.Debug().
		Int("added", len(result.Added)).
		Int("removed", len(result.Removed)).
		Int("modified", len(result.Modified)).
		Msg(result.Summary())

	return writeOutput(cmd, settings, func(w io.Writer, terminal bool) error {
		r := renderer.New(&renderer.Options{
			Style:      renderer.StyleFor(settings.Color, terminal),
			StringDiff: settings.StringDiff,
		})
		return r.Write(w, result, renderer.Format(settings.Format))
	})
}

// setup resolves settings and builds the logger shared by all commands.
func setup(cmd *cobra.Command, opts *rootOptions) (*config.Settings, zerolog.Logger, error) {
	settings, err := config.Load(cmd.Flags(), opts.configFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	logger, err := logging.New(logging.Config{
		Level:      settings.LogLevel,
		Format:     logging.Format(settings.LogFormat),
		File:       settings.LogFile,
		MaxSizeMB:  settings.LogMaxSizeMB,
		MaxBackups: settings.LogMaxBackups,
		NoColor:    color.NoColor,
		Console:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("setting up logging: %w", err)
	}

	return settings, logger, nil
}

// writeOutput hands the report destination to write: the --output file when
// set, the command's stdout otherwise.
func writeOutput(cmd *cobra.Command, settings *config.Settings, write func(w io.Writer, terminal bool) error) (err error) {
	if settings.Output == "" {
		out := cmd.OutOrStdout()
		return write(out, isTerminal(out))
	}

	f, err := os.Create(settings.Output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	return write(f, false)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
