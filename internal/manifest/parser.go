package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Parse reads a package.json file into a Package.
func Parse(path string) (*Package, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &pkg, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return data, nil
}
