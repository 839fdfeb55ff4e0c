package main

import (
	"github.com/spf13/cobra"

	"github.com/bagtoad/assetgen/internal/report"
	"github.com/bagtoad/assetgen/internal/verify"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the output directory against the manifest",
		Long: `check compares the output directory with the manifest and reports
missing assets, assets with the wrong size or encoding, and files the
manifest does not name. It exits non-zero on any discrepancy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			r, err := verify.Check(s.cfg.Output.Dir, s.manifest, s.format)
			if err != nil {
				return err
			}
			report.PrintCheck(cmd.OutOrStdout(), s.cfg.Output.Dir, r)
			return r.Err()
		},
	}
}
