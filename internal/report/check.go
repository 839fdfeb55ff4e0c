package report

import (
	"fmt"
	"io"

	"github.com/bagtoad/assetgen/internal/verify"
)

// PrintCheck writes the outcome of an output directory check.
func PrintCheck(w io.Writer, dir string, r *verify.Report) {
	s := newStyles(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.header.Render("=== Check: "+dir+" ==="))
	fmt.Fprintf(w, "Assets checked:      %d\n", r.Checked)

	if r.OK() {
		fmt.Fprintln(w, s.success.Render("All assets match the manifest."))
		return
	}

	if len(r.Missing) > 0 {
		fmt.Fprintf(w, "\n%s (%d)\n", s.failure.Render("Missing:"), len(r.Missing))
		for _, name := range r.Missing {
			fmt.Fprintf(w, "    %s\n", name)
		}
	}
	if len(r.Invalid) > 0 {
		fmt.Fprintf(w, "\n%s (%d)\n", s.failure.Render("Invalid:"), len(r.Invalid))
		for _, p := range r.Invalid {
			fmt.Fprintf(w, "    %s: %s\n", p.Filename, p.Reason)
		}
	}
	if len(r.Extra) > 0 {
		fmt.Fprintf(w, "\n%s (%d)\n", s.info.Render("Unexpected:"), len(r.Extra))
		for _, name := range r.Extra {
			fmt.Fprintf(w, "    %s\n", s.muted.Render(name))
		}
	}
	fmt.Fprintln(w)
}
