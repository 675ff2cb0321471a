// Package report renders the human-facing summary text the CLI prints
// for the loaded views and the reconstructed model (spec.md §6).
package report

import (
	"fmt"
	"strings"

	"carve/view"
	"carve/voxelmodel"
)

// ViewSummary renders a one-line summary of a loaded view: its name,
// direction and polygon bounds.
func ViewSummary(v *view.View) string {
	xmin, ymin, xmax, ymax := v.GetBounds()
	return fmt.Sprintf("[+] Loaded view %q: direction=%s bounds=(%v, %v, %v, %v)",
		v.Name, v.GetDirection(), xmin, ymin, xmax, ymax)
}

// SkippedView renders a warning line for a view subdirectory that failed
// to load and was skipped. The model loader does not call it; it logs
// skipped views through slog.
func SkippedView(dir string, err error) string {
	return fmt.Sprintf("[!] Skipping view %q: %v", dir, err)
}

// ModelInfoBlock renders the full additional-info block for a
// reconstructed model, as printed when the CLI's -i/--info flag is set.
func ModelInfoBlock(m *voxelmodel.Model) string {
	var b strings.Builder
	b.WriteString(m.InfoBlock())
	b.WriteString(fmt.Sprintf("[!] Cube dimensions: (%v, %v, %v)\n",
		m.CubeDimensions.X, m.CubeDimensions.Y, m.CubeDimensions.Z))
	for _, v := range m.Views {
		b.WriteString("    - " + ViewSummary(v) + "\n")
	}
	return b.String()
}
