package io

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	pkerrors "github.com/localgod/plantkit/pkg/errors"
)

// Format identifies a model file encoding.
type Format string

// Supported model formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

var formatsByExt = map[string]Format{
	".json": FormatJSON,
	".toml": FormatTOML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".csv":  FormatCSV,
}

// DetectFormat returns the format implied by the extension of path.
// It returns an UNSUPPORTED error for unknown extensions.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatsByExt[ext]; ok {
		return f, nil
	}
	return "", pkerrors.New(pkerrors.ErrCodeUnsupported, "unsupported model file extension %q", ext)
}

// Read decodes a model in format f from r and validates it.
// Read does not close r.
func Read(r io.Reader, f Format) (*Model, error) {
	switch f {
	case FormatJSON:
		return ReadJSON(r)
	case FormatTOML:
		return ReadTOML(r)
	case FormatYAML:
		return ReadYAML(r)
	case FormatCSV:
		return ReadCSV(r)
	default:
		return nil, pkerrors.New(pkerrors.ErrCodeUnsupported, "unsupported model format %q", f)
	}
}

// ReadJSON decodes a JSON model from r and validates it.
func ReadJSON(r io.Reader) (*Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, pkerrors.Wrap(pkerrors.ErrCodeInvalidFormat, err, "decode json")
	}
	return validated(&m)
}

// ReadTOML decodes a TOML model from r and validates it. Elements are
// written as arrays of tables:
//
//	name = "landscape"
//
//	[[elements]]
//	id = "crm"
//	type = "Application_Component"
//
//	[[relations]]
//	source = "crm"
//	target = "erp"
//	type = "Rel_Flow"
func ReadTOML(r io.Reader) (*Model, error) {
	var m Model
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, pkerrors.Wrap(pkerrors.ErrCodeInvalidFormat, err, "decode toml")
	}
	return validated(&m)
}

// ReadYAML decodes a YAML model from r and validates it.
func ReadYAML(r io.Reader) (*Model, error) {
	var m Model
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, pkerrors.New(pkerrors.ErrCodeInvalidFormat, "decode yaml: empty document")
		}
		return nil, pkerrors.Wrap(pkerrors.ErrCodeInvalidFormat, err, "decode yaml")
	}
	return validated(&m)
}

func validated(m *Model) (*Model, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Import reads the model file at path, choosing the decoder from the file
// extension. A missing file is reported as FILE_NOT_FOUND.
func Import(path string) (*Model, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	return Read(bytes.NewReader(data), f)
}

// ReadFile validates path and returns the file contents.
func ReadFile(path string) ([]byte, error) {
	if err := pkerrors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, pkerrors.Wrap(pkerrors.ErrCodeFileNotFound, err, "model file %s", path)
	}
	if err != nil {
		return nil, pkerrors.Wrap(pkerrors.ErrCodeInternal, err, "read %s", path)
	}
	return data, nil
}
