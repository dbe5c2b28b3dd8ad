package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fai-plates/platemeta/internal/cards"
)

// LoadHeaders reads raw scan headers from a YAML file mapping scan path to
// its header cards.
func LoadHeaders(path string) (map[string]*cards.Set, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided headers path is expected
	if err != nil {
		return nil, fmt.Errorf("failed to read headers file: %w", err)
	}

	headers := make(map[string]*cards.Set)
	if err := yaml.Unmarshal(data, &headers); err != nil {
		return nil, fmt.Errorf("failed to parse headers file: %w", err)
	}
	return headers, nil
}

// PlatesFromPaths pairs scan paths with their headers, if any.
func PlatesFromPaths(paths []string, headers map[string]*cards.Set) []Plate {
	plates := make([]Plate, 0, len(paths))
	for _, p := range paths {
		plates = append(plates, Plate{Path: p, Header: headers[p]})
	}
	return plates
}
