// SPDX-License-Identifier: MIT

package graphio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for unsupported extensions or encodings.
var ErrUnknownFormat = errors.New("graphio: unknown format")

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

// FormatOf picks the format from path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// ParseFormat maps a format name ("yaml", "toml", "hcl") to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatYAML, FormatTOML, FormatHCL:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// DecodeFile reads the document at path, choosing the format by extension.
func DecodeFile(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: reading %s: %w", path, err)
	}
	doc, err := decode(src, format, path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %s: %w", path, err)
	}

	return doc, nil
}

// Decode reads one document from r. Unknown fields are rejected.
func Decode(r io.Reader, format Format) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphio: reading input: %w", err)
	}

	return decode(src, format, "graph."+string(format))
}

func decode(src []byte, format Format, name string) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(src))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(src))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
	case FormatHCL:
		return decodeHCL(src, name)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &doc, nil
}

// Encode writes doc to w. HCL output is not supported.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("graphio: encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("graphio: encoding toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: cannot encode %q", ErrUnknownFormat, format)
	}
}

type hclDocument struct {
	Directed   bool       `hcl:"directed,optional"`
	Weighted   bool       `hcl:"weighted,optional"`
	Multigraph bool       `hcl:"multigraph,optional"`
	Loops      bool       `hcl:"loops,optional"`
	Vertices   []string   `hcl:"vertices,optional"`
	Edges      []*hclEdge `hcl:"edge,block"`
}

type hclEdge struct {
	From     string             `hcl:"from"`
	To       string             `hcl:"to"`
	Weight   float64            `hcl:"weight,optional"`
	Directed *bool              `hcl:"directed,optional"`
	Attrs    map[string]float64 `hcl:"attrs,optional"`
}

func decodeHCL(src []byte, name string) (*Document, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing hcl: %w", diags)
	}
	var raw hclDocument
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding hcl: %w", diags)
	}

	doc := &Document{
		Directed:   raw.Directed,
		Weighted:   raw.Weighted,
		Multigraph: raw.Multigraph,
		Loops:      raw.Loops,
		Vertices:   raw.Vertices,
	}
	for _, e := range raw.Edges {
		doc.Edges = append(doc.Edges, EdgeDoc{
			From:     e.From,
			To:       e.To,
			Weight:   e.Weight,
			Directed: e.Directed,
			Attrs:    e.Attrs,
		})
	}

	return doc, nil
}
