package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bagtoad/assetgen/internal/manifest"
	"github.com/bagtoad/assetgen/internal/output"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the assets the manifest describes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tSIZE\tSTRATEGY\tCOLOR\tLABEL")
			for _, d := range s.manifest.Descriptors() {
				fmt.Fprintf(w, "%s\t%dx%d\t%s\t%s\t%s\n",
					output.Filename(d.Filename, s.format), d.Width, d.Height, strategyColumn(d), d.Color.Hex(), d.Label)
			}
			return w.Flush()
		},
	}
}

func strategyColumn(d manifest.Descriptor) string {
	if d.Strategy == manifest.ShapeGuide {
		return d.Strategy.String() + " (" + d.Shape.String() + ")"
	}
	return d.Strategy.String()
}
