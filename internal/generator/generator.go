// Package generator renders every manifest entry and writes it to the
// output directory.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/bagtoad/assetgen/internal/manifest"
	"github.com/bagtoad/assetgen/internal/markup"
	"github.com/bagtoad/assetgen/internal/output"
	"github.com/bagtoad/assetgen/internal/raster"
	"github.com/bagtoad/assetgen/internal/typeface"
)

// ErrGenerationFailed is returned when at least one asset could not be
// produced. The per-asset causes are in the results.
var ErrGenerationFailed = errors.New("asset generation failed")

// Options controls a generation run.
type Options struct {
	Dir     string
	Format  output.Format
	Quality int
	Jobs    int // concurrent renders; values below 1 mean 1
	DryRun  bool
	Fonts   *typeface.Resolver
}

// Result records what happened to a single descriptor.
type Result struct {
	Descriptor manifest.Descriptor
	Path       string
	DryRun     bool
	Err        error
}

// Run renders every descriptor in manifest order. A failing asset does not
// stop the run: its error is recorded in its Result, files already written
// stay in place, and Run returns ErrGenerationFailed once all descriptors
// have been attempted. progress, if not nil, is called once per descriptor
// in manifest order.
func Run(ctx context.Context, m manifest.Manifest, opts Options, progress func(Result)) ([]Result, error) {
	if err := m.CheckTargets(func(name string) string {
		return output.Filename(name, opts.Format)
	}); err != nil {
		return nil, err
	}
	if opts.Fonts == nil && !opts.Format.IsVector() {
		opts.Fonts = typeface.NewResolver(typeface.DefaultPath)
	}
	if !opts.DryRun {
		if err := output.EnsureDir(opts.Dir); err != nil {
			return nil, err
		}
	}

	ds := m.Descriptors()
	results := make([]Result, len(ds))
	done := make([]chan struct{}, len(ds))
	for i := range done {
		done[i] = make(chan struct{})
	}

	workers := opts.Jobs
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)

	go func() {
		for i, d := range ds {
			if ctx.Err() == nil {
				select {
				case sem <- struct{}{}: // acquire
					go func(i int, d manifest.Descriptor) {
						defer close(done[i])
						defer func() { <-sem }() // release
						results[i] = generate(d, opts)
					}(i, d)
					continue
				case <-ctx.Done():
				}
			}
			results[i] = Result{Descriptor: d, Path: targetPath(d, opts), DryRun: opts.DryRun, Err: ctx.Err()}
			close(done[i])
		}
	}()

	failed := 0
	for i := range ds {
		<-done[i]
		if progress != nil {
			progress(results[i])
		}
		if results[i].Err != nil {
			failed++
		}
	}

	if err := ctx.Err(); err != nil {
		return results, err
	}
	if failed > 0 {
		return results, fmt.Errorf("%w: %d of %d assets", ErrGenerationFailed, failed, len(ds))
	}
	return results, nil
}

func targetPath(d manifest.Descriptor, opts Options) string {
	return filepath.Join(opts.Dir, output.Filename(d.Filename, opts.Format))
}

// generate renders and writes one descriptor.
func generate(d manifest.Descriptor, opts Options) Result {
	res := Result{Descriptor: d, Path: targetPath(d, opts), DryRun: opts.DryRun}

	if opts.Format.IsVector() {
		if !opts.DryRun {
			res.Err = output.WriteFile(res.Path, func(w io.Writer) error {
				return markup.Render(w, d)
			})
		}
		return res
	}

	// Render even on a dry run so bad descriptors are still reported.
	img, err := raster.Render(d, opts.Fonts)
	if err != nil {
		res.Err = err
		return res
	}
	if opts.DryRun {
		return res
	}
	res.Err = output.WriteFile(res.Path, func(w io.Writer) error {
		return output.Encode(w, img, opts.Format, opts.Quality)
	})
	return res
}

// Written returns the paths of assets that were written successfully.
func Written(results []Result) []string {
	var paths []string
	for _, r := range results {
		if r.Err == nil && !r.DryRun {
			paths = append(paths, r.Path)
		}
	}
	return paths
}
