package taxonomy

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"hobbies-cli/internal/model"

	"gopkg.in/yaml.v3"
)

// MaxFileSize caps taxonomy files; the taxonomy is static UI data, not a dataset.
const MaxFileSize = 4 * 1024 * 1024

//go:embed hobbies.yaml
var defaultTaxonomyYAML []byte

// document is the on-disk shape: either a bare list of nodes or
// {version, hobbies: [...]}.
type document struct {
	Version int          `json:"version,omitempty" yaml:"version,omitempty"`
	Hobbies []model.Node `json:"hobbies" yaml:"hobbies"`
}

// Default returns the embedded hobby taxonomy.
func Default() ([]model.Node, error) {
	forest, err := Parse(defaultTaxonomyYAML, "yaml")
	if err != nil {
		return nil, fmt.Errorf("embedded taxonomy: %w", err)
	}
	return forest, nil
}

// LoadFile reads a taxonomy from path. The format follows the extension
// (.json, otherwise YAML).
func LoadFile(path string) ([]model.Node, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("taxonomy path is empty")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open taxonomy: %w", err)
	}
	defer f.Close()

	b, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}
	if len(b) > MaxFileSize {
		return nil, fmt.Errorf("taxonomy %s exceeds %d bytes", path, MaxFileSize)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	forest, err := Parse(b, format)
	if err != nil {
		return nil, fmt.Errorf("parse taxonomy %s: %w", path, err)
	}
	return forest, nil
}

// Load returns the taxonomy at path, or the embedded default when path is
// empty. Duplicate names are logged since they make selection and coloring
// name-scoped instead of node-scoped.
func Load(path string, logger *slog.Logger) ([]model.Node, error) {
	var (
		forest []model.Node
		err    error
	)
	if strings.TrimSpace(path) == "" {
		forest, err = Default()
	} else {
		forest, err = LoadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if logger != nil {
		for _, name := range DuplicateNames(forest) {
			logger.Warn("duplicate hobby name; selection and color are shared by every node with this name", "name", name)
		}
	}
	return forest, nil
}

// Parse decodes a taxonomy document in the given format ("yaml" or "json").
func Parse(b []byte, format string) ([]model.Node, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return []model.Node{}, nil
	}
	switch format {
	case "json":
		if b[0] == '[' {
			var forest []model.Node
			if err := json.Unmarshal(b, &forest); err != nil {
				return nil, err
			}
			return forest, nil
		}
		var doc document
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
		return nonNil(doc.Hobbies), nil
	case "", "yaml", "yml":
		var probe yaml.Node
		if err := yaml.Unmarshal(b, &probe); err != nil {
			return nil, err
		}
		if len(probe.Content) > 0 && probe.Content[0].Kind == yaml.SequenceNode {
			var forest []model.Node
			if err := probe.Decode(&forest); err != nil {
				return nil, err
			}
			return forest, nil
		}
		var doc document
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
		return nonNil(doc.Hobbies), nil
	default:
		return nil, fmt.Errorf("unknown taxonomy format: %s", format)
	}
}

func nonNil(forest []model.Node) []model.Node {
	if forest == nil {
		return []model.Node{}
	}
	return forest
}
