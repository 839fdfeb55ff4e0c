// Package report prints per-asset progress and the end-of-run summary.
package report

import (
	"fmt"
	"io"

	"github.com/bagtoad/assetgen/internal/generator"
	"github.com/bagtoad/assetgen/internal/manifest"
)

// NewProgress returns a progress callback that writes one status line per
// generated asset to w.
func NewProgress(w io.Writer) func(generator.Result) {
	s := newStyles(w)
	return func(r generator.Result) {
		progressLine(w, s, r)
	}
}

func progressLine(w io.Writer, s styles, r generator.Result) {
	switch {
	case r.Err != nil && r.DryRun:
		fmt.Fprintf(w, "%s %s: %v\n", s.failure.Render("Would fail:"), r.Path, r.Err)
	case r.Err != nil:
		fmt.Fprintf(w, "%s %s: %v\n", s.failure.Render("Failed:"), r.Path, r.Err)
	case r.DryRun:
		fmt.Fprintf(w, "%s %s\n", s.info.Render("Would create:"), r.Path)
	default:
		fmt.Fprintf(w, "%s %s\n", s.success.Render("Created:"), r.Path)
	}
}

// Print writes a summary report to the given writer.
func Print(w io.Writer, results []generator.Result, dryRun bool) {
	s := newStyles(w)

	failed := 0
	perStrategy := make(map[manifest.Strategy]int)
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		perStrategy[r.Descriptor.Strategy]++
	}
	succeeded := len(results) - failed

	fmt.Fprintln(w)
	if dryRun {
		fmt.Fprintln(w, s.header.Render("=== Dry Run Summary ==="))
	} else {
		fmt.Fprintln(w, s.header.Render("=== Summary ==="))
	}
	fmt.Fprintf(w, "Assets in manifest:  %d\n", len(results))
	if dryRun {
		fmt.Fprintf(w, "Assets to create:    %d\n", succeeded)
	} else {
		fmt.Fprintf(w, "Assets created:      %d\n", succeeded)
	}
	if failed > 0 {
		fmt.Fprintf(w, "Assets failed:       %s\n", s.failure.Render(fmt.Sprint(failed)))
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "\nNothing to generate.")
		return
	}

	if succeeded > 0 {
		fmt.Fprintln(w)
		// Strategies() is in declaration order, which keeps the listing stable.
		for _, st := range manifest.Strategies() {
			if n := perStrategy[st]; n > 0 {
				fmt.Fprintf(w, "  %-12s %s\n", st, s.muted.Render(fmt.Sprintf("(%d files)", n)))
			}
		}
	}

	if failed > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.failure.Render("Failures:"))
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(w, "    %s: %v\n", r.Descriptor.Filename, r.Err)
			}
		}
	}
	fmt.Fprintln(w)
}
