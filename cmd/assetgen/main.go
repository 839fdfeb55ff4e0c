package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/bagtoad/assetgen/internal/config"
	"github.com/bagtoad/assetgen/internal/generator"
	"github.com/bagtoad/assetgen/internal/manifest"
	"github.com/bagtoad/assetgen/internal/output"
	"github.com/bagtoad/assetgen/internal/report"
	"github.com/bagtoad/assetgen/internal/typeface"
)

func main() {
	// Only fails on an invalid GOMAXPROCS env, in which case runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dryRun bool

	rootCmd := &cobra.Command{
		Use:   "assetgen",
		Short: "Generate placeholder images for the STICKLS storefront mockup",
		Long: `assetgen renders the fixed set of branded placeholder images the
STICKLS storefront mockup references: hero banners, product shots,
lifestyle photos, customer avatars and nail shape guides.

Images are drawn procedurally from the built-in manifest, a manifest file
given with --manifest, or the minimal fallback set (--fallback), and
written to the output directory with fixed filenames.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, dryRun)
		},
	}

	rootCmd.SilenceUsage = true

	pf := rootCmd.PersistentFlags()
	pf.String("config", config.DefaultPath, "Path to config file (YAML or TOML, optional)")
	pf.String("manifest", "", "Manifest file describing the assets (default: built-in set)")
	pf.Bool("fallback", false, "Use the minimal labeled-rectangle set, written as SVG")
	pf.StringP("out", "o", "assets", "Output directory")
	pf.String("format", output.JPEG.String(), "Output format: jpeg, png, bmp, tiff, webp or svg")

	rootCmd.Flags().Int("quality", output.DefaultQuality, "Encoder quality for jpeg and webp (1-100)")
	rootCmd.Flags().String("font", typeface.DefaultPath, "TrueType font used for labels")
	rootCmd.Flags().IntP("jobs", "j", 1, "Number of images rendered concurrently (0: one per available CPU)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without writing files")

	rootCmd.AddCommand(newListCmd(), newCheckCmd())
	return rootCmd
}

// settings is the resolved configuration for one command invocation.
type settings struct {
	cfg      *config.Config
	format   output.Format
	manifest manifest.Manifest
}

// loadSettings merges defaults, the config file and changed flags, then
// resolves the manifest.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	load := config.LoadOptional
	if flags.Changed("config") {
		load = config.Load
	}
	cfg, err := load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	overrides := make(map[string]any)
	for _, name := range []string{"out", "format", "font", "manifest"} {
		if flags.Changed(name) {
			overrides[name], _ = flags.GetString(name)
		}
	}
	for _, name := range []string{"quality", "jobs"} {
		if flags.Changed(name) {
			overrides[name], _ = flags.GetInt(name)
		}
	}
	fallback, _ := flags.GetBool("fallback")
	if fallback && !flags.Changed("format") {
		overrides["format"] = output.SVG.String()
	}
	if err := cfg.WithOverrides(overrides).Validate(); err != nil {
		return nil, err
	}

	m, err := manifest.Resolve(cfg.Manifest, fallback)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve manifest: %w", err)
	}

	return &settings{cfg: cfg, format: cfg.Format(), manifest: m}, nil
}

func run(cmd *cobra.Command, dryRun bool) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	var fonts *typeface.Resolver
	if !s.format.IsVector() {
		fonts = typeface.NewResolver(s.cfg.Font.Path)
		if err := fonts.Err(); err != nil {
			log.Printf("Warning: %v; using %s font", err, fonts.Source())
		}
	}

	if dryRun {
		fmt.Fprintln(out, "Dry run mode: no files will be written")
	}
	fmt.Fprintf(out, "Generating %d %s assets in %s...\n", s.manifest.Len(), s.format, s.cfg.Output.Dir)

	opts := generator.Options{
		Dir:     s.cfg.Output.Dir,
		Format:  s.format,
		Quality: s.cfg.Output.Quality,
		Jobs:    resolveJobs(s.cfg.Jobs),
		DryRun:  dryRun,
		Fonts:   fonts,
	}
	results, err := generator.Run(cmd.Context(), s.manifest, opts, report.NewProgress(out))
	if results != nil {
		report.Print(out, results, dryRun)
	}
	return err
}

// resolveJobs returns n, or GOMAXPROCS (container aware through maxprocs)
// when n is 0.
func resolveJobs(n int) int {
	if n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}
