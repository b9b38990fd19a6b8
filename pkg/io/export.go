package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	pkerrors "github.com/localgod/plantkit/pkg/errors"
)

// WriteJSON encodes m as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(m *Model, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return pkerrors.Wrap(pkerrors.ErrCodeInternal, err, "encode json")
	}
	return nil
}

// WriteTOML encodes m as TOML and writes it to w.
func WriteTOML(m *Model, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(m); err != nil {
		return pkerrors.Wrap(pkerrors.ErrCodeInternal, err, "encode toml")
	}
	return nil
}

// WriteYAML encodes m as YAML and writes it to w.
func WriteYAML(m *Model, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return pkerrors.Wrap(pkerrors.ErrCodeInternal, err, "encode yaml")
	}
	if err := enc.Close(); err != nil {
		return pkerrors.Wrap(pkerrors.ErrCodeInternal, err, "encode yaml")
	}
	return nil
}

// Write encodes m in format f. CSV is read-only and returns UNSUPPORTED.
func Write(m *Model, w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		return WriteJSON(m, w)
	case FormatTOML:
		return WriteTOML(m, w)
	case FormatYAML:
		return WriteYAML(m, w)
	default:
		return pkerrors.New(pkerrors.ErrCodeUnsupported, "cannot write models as %s", f)
	}
}

// Export writes m to path in the format implied by its extension.
func Export(m *Model, path string) error {
	f, err := DetectFormat(path)
	if err != nil {
		return err
	}
	if f == FormatCSV {
		return pkerrors.New(pkerrors.ErrCodeUnsupported, "cannot write models as %s", f)
	}
	return writeFile(path, func(w io.Writer) error { return Write(m, w, f) })
}

// WriteDocument writes rendered markup to path.
func WriteDocument(path, text string) error {
	return writeFile(path, func(w io.Writer) error {
		if _, err := io.WriteString(w, text); err != nil {
			return pkerrors.Wrap(pkerrors.ErrCodeInternal, err, "write %s", path)
		}
		return nil
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := pkerrors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return pkerrors.Wrap(pkerrors.ErrCodeInternal, err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return pkerrors.Wrap(pkerrors.ErrCodeInternal, err, "close %s", path)
	}
	return nil
}
