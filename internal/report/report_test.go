package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bagtoad/assetgen/internal/generator"
	"github.com/bagtoad/assetgen/internal/manifest"
	"github.com/bagtoad/assetgen/internal/verify"
)

func result(name string, s manifest.Strategy, dryRun bool, err error) generator.Result {
	return generator.Result{
		Descriptor: manifest.Descriptor{Filename: name, Strategy: s},
		Path:       "assets/" + name,
		DryRun:     dryRun,
		Err:        err,
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name string
		res  generator.Result
		want string
	}{
		{"created", result("x.jpg", manifest.Lifestyle, false, nil), "Created: assets/x.jpg"},
		{"dry run", result("x.jpg", manifest.Lifestyle, true, nil), "Would create: assets/x.jpg"},
		{"failed", result("x.jpg", manifest.ShapeGuide, false, manifest.ErrUnknownShape), "Failed: assets/x.jpg: " + manifest.ErrUnknownShape.Error()},
		{"dry run failed", result("x.jpg", manifest.Lifestyle, true, context.Canceled), "Would fail: assets/x.jpg: context canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewProgress(&buf)(tt.res)
			if got := strings.TrimSpace(buf.String()); got != tt.want {
				t.Errorf("Progress() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProgressSequence(t *testing.T) {
	var buf bytes.Buffer
	progress := NewProgress(&buf)
	progress(result("a.jpg", manifest.Minimal, false, nil))
	progress(result("b.jpg", manifest.Minimal, false, errors.New("disk full")))
	progress(result("c.jpg", manifest.Minimal, false, nil))

	want := "Created: assets/a.jpg\nFailed: assets/b.jpg: disk full\nCreated: assets/c.jpg\n"
	if got := buf.String(); got != want {
		t.Errorf("progress output = %q, want %q", got, want)
	}
}

func TestPrintReport(t *testing.T) {
	results := []generator.Result{
		result("hero-desktop.jpg", manifest.Gradient, false, nil),
		result("product-1.jpg", manifest.Product, false, nil),
		result("product-2.jpg", manifest.Product, false, nil),
		result("shape-bad.jpg", manifest.ShapeGuide, false, manifest.ErrUnknownShape),
	}

	var buf bytes.Buffer
	Print(&buf, results, false)

	output := buf.String()

	checks := []string{
		"=== Summary ===",
		"Assets in manifest:  4",
		"Assets created:      3",
		"Assets failed:       1",
		"gradient",
		"product      (2 files)",
		"Failures:",
		"shape-bad.jpg: " + manifest.ErrUnknownShape.Error(),
	}
	for _, check := range checks {
		if !strings.Contains(output, check) {
			t.Errorf("report missing %q\nFull output:\n%s", check, output)
		}
	}
	if strings.Contains(output, "shape-guide") {
		t.Errorf("failed assets should not count towards a strategy:\n%s", output)
	}
}

func TestPrintReportDryRun(t *testing.T) {
	results := []generator.Result{
		result("reviewer-1.jpg", manifest.Customer, true, nil),
	}

	var buf bytes.Buffer
	Print(&buf, results, true)

	output := buf.String()
	if !strings.Contains(output, "Dry Run Summary") {
		t.Errorf("expected dry run header in output:\n%s", output)
	}
	if !strings.Contains(output, "Assets to create:    1") {
		t.Errorf("expected dry run count in output:\n%s", output)
	}
	if strings.Contains(output, "Failures:") {
		t.Errorf("unexpected failure section:\n%s", output)
	}
}

func TestPrintReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, nil, false)

	if !strings.Contains(buf.String(), "Nothing to generate") {
		t.Errorf("expected empty message in output:\n%s", buf.String())
	}
}

func TestPrintReportAllFailed(t *testing.T) {
	err := errors.New("disk full")
	results := []generator.Result{
		result("a.jpg", manifest.Minimal, false, err),
		result("b.jpg", manifest.Minimal, false, err),
	}

	var buf bytes.Buffer
	Print(&buf, results, false)

	output := buf.String()
	if !strings.Contains(output, "Assets created:      0") || !strings.Contains(output, "Assets failed:       2") {
		t.Errorf("unexpected counts:\n%s", output)
	}
	if strings.Contains(output, "(") {
		t.Errorf("no strategy breakdown expected when nothing succeeded:\n%s", output)
	}
}

func TestPrintCheck(t *testing.T) {
	var buf bytes.Buffer
	PrintCheck(&buf, "assets", &verify.Report{Checked: 50})
	if !strings.Contains(buf.String(), "All assets match") {
		t.Errorf("expected clean message:\n%s", buf.String())
	}

	buf.Reset()
	PrintCheck(&buf, "assets", &verify.Report{
		Checked: 2,
		Missing: []string{"product-3.jpg"},
		Invalid: []verify.Problem{{Filename: "hero-desktop.jpg", Reason: "size 10x10, want 1200x600"}},
		Extra:   []string{"old.png"},
	})

	output := buf.String()
	checks := []string{
		"=== Check: assets ===",
		"Assets checked:      2",
		"Missing: (1)",
		"product-3.jpg",
		"hero-desktop.jpg: size 10x10, want 1200x600",
		"Unexpected: (1)",
		"old.png",
	}
	for _, check := range checks {
		if !strings.Contains(output, check) {
			t.Errorf("check report missing %q\nFull output:\n%s", check, output)
		}
	}
}
