package planfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/seedbed/pkg/errors"
)

// Format is a plan document encoding.
type Format string

// Supported plan formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor returns the format implied by the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported plan format %q", filepath.Ext(path))
}

// Plan is a decoded and validated plan document.
type Plan struct {
	Name string    `json:"name,omitempty"`
	Beds []BedSpec `json:"beds"`
}

// BedSpec is one bed as written in a plan.
type BedSpec struct {
	ID         string      `json:"id,omitempty"`
	Name       string      `json:"name,omitempty"`
	Shape      string      `json:"shape"`
	Width      float64     `json:"width,omitempty"`
	Height     float64     `json:"height,omitempty"`
	Radius     float64     `json:"radius,omitempty"`
	Rotation   float64     `json:"rotation,omitempty"`
	Mode       string      `json:"mode,omitempty"`
	Boundaries []float64   `json:"boundaries,omitempty"`
	Groups     []GroupSpec `json:"groups,omitempty"`
}

// GroupSpec is one plant group as written in a plan.
type GroupSpec struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name,omitempty"`
	Color     string  `json:"color,omitempty"`
	Spacing   float64 `json:"spacing"`
	Quantity  int     `json:"quantity,omitempty"`
	Pattern   string  `json:"pattern,omitempty"`
	Fill      string  `json:"fill,omitempty"`
	FillValue float64 `json:"fill_value,omitempty"`
}

// Read decodes and validates a plan in the given format from r.
func Read(r io.Reader, format Format) (*Plan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPlan, err, "read plan")
	}

	doc, err := decode(data, format)
	if err != nil {
		return nil, err
	}
	if err := Validate(doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPlan, err, "plan does not validate")
	}

	// The generic map is re-encoded so one set of struct tags serves every format.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "normalize plan")
	}
	var plan Plan
	if err := json.Unmarshal(normalized, &plan); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPlan, err, "decode plan")
	}
	return &plan, nil
}

// Import reads the plan file at path, choosing the format by extension.
func Import(path string) (*Plan, error) {
	if err := errors.ValidatePlanPath(path); err != nil {
		return nil, err
	}
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "plan %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	plan, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}

// decode parses data into a generic document map.
func decode(data []byte, format Format) (map[string]any, error) {
	doc := map[string]any{}
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&doc)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported plan format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPlan, err, "parse %s", format)
	}
	return doc, nil
}
