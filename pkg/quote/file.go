package quote

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/quotefit/pkg/errors"
)

// Format identifies a quote file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath returns the quote format implied by a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidQuote, "unsupported quote file %q (must be .toml or .json)", filepath.Base(path))
}

// Load reads and decodes a quote file.
func Load(path string) (*Quote, error) {
	if err := errors.ValidateQuoteFilename(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "quote file %s", path)
		}
		return nil, fmt.Errorf("open quote: %w", err)
	}
	defer f.Close()

	q, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidQuote, err, "decode %s", filepath.Base(path))
	}
	return q, nil
}

// Decode reads a quote in the given format and validates its content.
func Decode(r io.Reader, format Format) (*Quote, error) {
	var q Quote
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&q); err != nil {
			return nil, fmt.Errorf("toml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&q); err != nil {
			return nil, fmt.Errorf("json: %w", err)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown quote format %q", format)
	}

	if err := q.Content().Validate(); err != nil {
		return nil, err
	}
	return &q, nil
}

// Encode writes a quote in the given format.
func Encode(w io.Writer, q Quote, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(q)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown quote format %q", format)
}
