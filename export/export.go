// Package export serializes traces for consumers outside the process: the
// HTTP API, the export command and any external player.
//
// JSON field names are part of the contract: steps, status, log, edgeInfo,
// dsuSnapshot, primSnapshot, mstEdges, selectedNode, sortedEdges.
// Unreachable Prim distances are written as the string "unreachable".
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstviz/prim_kruskal"
)

// ErrUnknownFormat indicates a format name other than json or yaml.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format names an encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{JSON, YAML} }

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == YAML {
		return "application/yaml"
	}
	return "application/json"
}

// ParseFormat normalizes a format name; "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// Encode writes tr to w in format f. JSON output is indented with two spaces.
func Encode(w io.Writer, tr prim_kruskal.Trace, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tr); err != nil {
			return fmt.Errorf("Encode json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tr); err != nil {
			return fmt.Errorf("Encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("Encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("Encode %q: %w", f, ErrUnknownFormat)
	}
}

// Decode reads one trace in format f and checks it with Trace.Validate, so
// a decoded trace honours the same contract as a freshly built one.
func Decode(r io.Reader, f Format) (prim_kruskal.Trace, error) {
	var tr prim_kruskal.Trace
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&tr); err != nil {
			return prim_kruskal.Trace{}, fmt.Errorf("Decode json: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&tr); err != nil {
			return prim_kruskal.Trace{}, fmt.Errorf("Decode yaml: %w", err)
		}
	default:
		return prim_kruskal.Trace{}, fmt.Errorf("Decode %q: %w", f, ErrUnknownFormat)
	}

	if tr.Steps == nil {
		tr.Steps = []prim_kruskal.Step{}
	}
	if err := tr.Validate(); err != nil {
		return prim_kruskal.Trace{}, fmt.Errorf("Decode: %w", err)
	}

	return tr, nil
}
