package scaffold

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CheckReport summarizes a Check run.
type CheckReport struct {
	Missing  []string // directories or files not present
	Modified []string // files whose content differs from the embedded copy
	Invalid  []string // paths that exist with the wrong kind (file vs dir)
}

// Healthy reports whether the tree matches the skeleton exactly.
func (r *CheckReport) Healthy() bool {
	return len(r.Missing) == 0 && len(r.Modified) == 0 && len(r.Invalid) == 0
}

// Check compares the tree under root against the skeleton and prints one
// status line per directory and file. It never modifies the tree.
func Check(w io.Writer, root string) (*CheckReport, error) {
	report := &CheckReport{}

	fmt.Fprintln(w, "Scaffold check:")

	for _, dir := range layout {
		p := filepath.Join(root, filepath.FromSlash(dir))
		info, err := os.Stat(p)
		switch {
		case os.IsNotExist(err):
			fmt.Fprintf(w, "  [MISS] %s/ does not exist\n", dir)
			report.Missing = append(report.Missing, dir)
		case err != nil:
			fmt.Fprintf(w, "  [FAIL] %s/: %v\n", dir, err)
			report.Invalid = append(report.Invalid, dir)
		case !info.IsDir():
			fmt.Fprintf(w, "  [WARN] %s exists but is not a directory\n", dir)
			report.Invalid = append(report.Invalid, dir)
		default:
			fmt.Fprintf(w, "  [ OK ] %s/\n", dir)
		}
	}

	files, err := Files()
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		p := filepath.Join(root, f.Name)
		data, err := os.ReadFile(p)
		switch {
		case os.IsNotExist(err):
			fmt.Fprintf(w, "  [MISS] %s does not exist\n", f.Name)
			report.Missing = append(report.Missing, f.Name)
		case err != nil:
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", f.Name, err)
			report.Invalid = append(report.Invalid, f.Name)
		case !bytes.Equal(data, f.Content):
			fmt.Fprintf(w, "  [WARN] %s differs from the scaffold copy\n", f.Name)
			report.Modified = append(report.Modified, f.Name)
		default:
			fmt.Fprintf(w, "  [ OK ] %s\n", f.Name)
		}
	}

	return report, nil
}
