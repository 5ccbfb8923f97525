package markup

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dimanech/aria-grid/internal/domain"
)

// LoadFunc loads a grid document from path.
type LoadFunc func(path string) (*Document, error)

// LoadYAML reads a YAML grid document.
func LoadYAML(path string) (*Document, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeYAML(path, b)
}

func DecodeYAML(path string, b []byte) (*Document, error) {
	var dto documentDTO
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil {
		return nil, &domain.OpError{
			Op:   "markup.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return mapDocument(path, dto)
}

// LoadTOML reads a TOML grid document.
func LoadTOML(path string) (*Document, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeTOML(path, b)
}

func DecodeTOML(path string, b []byte) (*Document, error) {
	var dto documentDTO
	md, err := toml.Decode(string(b), &dto)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "markup.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, &domain.OpError{
			Op:   "markup.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("unknown keys %v: %w", undecoded, domain.ErrInvalidConfig),
		}
	}
	return mapDocument(path, dto)
}

// LoaderFor picks the loader for format, or by the path's extension when
// format is empty. JSON documents are handled by the jsondoc package.
func LoaderFor(format, path string) (LoadFunc, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch f {
	case "yaml", "yml":
		return LoadYAML, nil
	case "toml":
		return LoadTOML, nil
	default:
		return nil, &domain.OpError{
			Op:   "markup.loader_for",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("unsupported grid format %q: %w", f, domain.ErrInvalidConfig),
		}
	}
}

func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "markup.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return b, nil
}
