package scenefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for file extensions other than .yaml,
// .yml and .toml.
var ErrUnsupportedFormat = errors.New("scenefile: unsupported format")

// Format identifies a scene file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Unmarshal decodes a document in the given format.
func Unmarshal(data []byte, f Format) (*Document, error) {
	doc := &Document{}
	var err error
	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, doc)
	case FormatTOML:
		err = toml.Unmarshal(data, doc)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %v: %w", f, err)
	}
	return doc, nil
}

// Marshal encodes a document in the given format.
func Marshal(doc *Document, f Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatTOML:
		data, err = toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %v: %w", f, err)
	}
	return data, nil
}

// Load reads a scene file, choosing the decoder from its extension.
func Load(path string) (*Document, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Unmarshal(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Save writes doc to path, choosing the encoder from its extension.
func Save(path string, doc *Document) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Marshal(doc, f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
