package scaffold

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// SuccessMessage is printed once every directory and file is in place.
const SuccessMessage = "Folder structure created successfully!"

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644

	templateSet = "site"
)

// layout is the ordered list of directories created relative to the root.
var layout = []string{
	"backend",
	"frontend",
	"database",
	"assets/css",
	"assets/js",
	"assets/images",
	"assets/fonts",
}

// fileNames is the write order of the embedded files.
var fileNames = []string{"README.md", "package.json"}

// File is a file written into the root with fixed content.
type File struct {
	Name    string
	Content []byte
}

// Result holds the outcome of a scaffold run.
type Result struct {
	Root  string
	Dirs  []string
	Files []string
}

// Layout returns the directories the scaffolder creates, in creation order.
// Paths use forward slashes.
func Layout() []string {
	out := make([]string, len(layout))
	copy(out, layout)
	return out
}

// Files returns the files the scaffolder writes, in write order.
func Files() ([]File, error) {
	files := make([]File, 0, len(fileNames))
	for _, name := range fileNames {
		data, err := fs.ReadFile(scaffoldFS, path.Join("scaffolds", templateSet, name))
		if err != nil {
			return nil, fmt.Errorf("reading embedded %s: %w", name, err)
		}
		files = append(files, File{Name: name, Content: data})
	}
	return files, nil
}

// Run creates the skeleton under root and prints the success message to w.
//
// Existing directories are left alone. Existing files are truncated and
// overwritten. The first failure is returned as is; anything created before
// it stays on disk.
func Run(w io.Writer, root string) (*Result, error) {
	result := &Result{Root: root}

	for _, dir := range layout {
		p := filepath.Join(root, filepath.FromSlash(dir))
		if err := os.MkdirAll(p, dirPerm); err != nil {
			return result, fmt.Errorf("creating directory %s: %w", dir, err)
		}
		result.Dirs = append(result.Dirs, dir)
	}

	files, err := Files()
	if err != nil {
		return result, err
	}
	for _, f := range files {
		p := filepath.Join(root, f.Name)
		// os.WriteFile opens with O_TRUNC, so old content never survives.
		if err := os.WriteFile(p, f.Content, filePerm); err != nil {
			return result, fmt.Errorf("writing %s: %w", f.Name, err)
		}
		result.Files = append(result.Files, f.Name)
	}

	fmt.Fprintln(w, SuccessMessage)
	return result, nil
}
