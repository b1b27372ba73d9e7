package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// FileName is the name of the exported JSON document.
const FileName = "dactyl_keymap.json"

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat normalizes a format name; "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", s)
	}
}

// FileNameFor returns the export file name for f.
func FileNameFor(f Format) string {
	if f == FormatJSON || f == "" {
		return FileName
	}
	return strings.TrimSuffix(FileName, filepath.Ext(FileName)) + "." + string(f)
}

// Encode writes doc to w in format f.
func Encode(w io.Writer, doc Document, f Format) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON, "":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatTOML:
		data, err = toml.Marshal(doc)
	default:
		return fmt.Errorf("unsupported export format: %s", f)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	_, err = w.Write(data)
	return err
}

// WriteFile writes doc into dir under FileNameFor(f) and returns the path and
// the number of bytes written. The file is replaced atomically.
func WriteFile(dir string, doc Document, f Format) (string, int, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc, f); err != nil {
		return "", 0, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, err
	}
	path := filepath.Join(dir, FileNameFor(f))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return "", 0, err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", 0, err
	}
	return path, buf.Len(), nil
}
