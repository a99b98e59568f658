package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wonderfulspam/confdiff/pkg/differ"
	"github.com/wonderfulspam/confdiff/pkg/document"
	"github.com/wonderfulspam/confdiff/pkg/loader"
)

func newFlattenCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "flatten <file>",
		Short: "Print every key path of a configuration file with its value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			order, err := differ.OrderingByName(settings.Order)
			if err != nil {
				return err
			}

			doc, err := loader.New(document.Format(settings.InputFormat), logger).
				Load(cmd.Context(), loader.RoleInput, args[0])
			if err != nil {
				return err
			}

			leaves := differ.Flatten(doc.Root)
			paths := make([]string, 0, len(leaves))
			for path := range leaves {
				paths = append(paths, path)
			}
			differ.SortPaths(paths, order)

			logger.Debug().Str("path", doc.Path).Int("paths", len(paths)).Msg("flattened document")

			var buf bytes.Buffer
			for _, path := range paths {
				buf.WriteString(fmt.Sprintf("%s: %s\n", path, document.Render(leaves[path])))
			}

			return writeOutput(cmd, settings, func(w io.Writer, _ bool) error {
				_, err := w.Write(buf.Bytes())
				return err
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the confdiff version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "confdiff %s\n", version)
		},
	}
}
