// Package document reads and writes shape collections as JSON files.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/philipparndt/goshape/pkg/shape"
	"github.com/philipparndt/goshape/pkg/units"
)

// Document is a named shape collection with its display unit
type Document struct {
	Name   string     `json:"name,omitempty"`
	Unit   units.Unit `json:"unit,omitempty"`
	Shapes shape.List `json:"shapes"`
}

// New creates an empty document
func New(name string, unit units.Unit) *Document {
	return &Document{
		Name:   name,
		Unit:   unit,
		Shapes: shape.List{},
	}
}

// AddShape appends a shape on top of the others
func (d *Document) AddShape(s shape.Shape) {
	d.Shapes = append(d.Shapes, s)
}

// ShapeCount returns the number of shapes in the document
func (d *Document) ShapeCount() int {
	return len(d.Shapes)
}

// DisplayUnit returns the document unit, or fallback when none is set
func (d *Document) DisplayUnit(fallback units.Unit) units.Unit {
	if d.Unit == "" {
		return fallback
	}
	return d.Unit
}

// Load reads a document from a JSON file
func Load(filename string) (*Document, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	doc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return doc, nil
}

// LoadOrNew reads a document, or returns an empty one if the file does not exist
func LoadOrNew(filename string, unit units.Unit) (*Document, error) {
	doc, err := Load(filename)
	if err == nil {
		return doc, nil
	}
	if _, statErr := os.Stat(filename); os.IsNotExist(statErr) {
		return New(filepath.Base(filename), unit), nil
	}
	return nil, err
}

// Parse decodes a document from r
func Parse(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	if doc.Unit != "" {
		unit, err := units.ParseUnit(string(doc.Unit))
		if err != nil {
			return nil, err
		}
		doc.Unit = unit
	}
	if doc.Shapes == nil {
		doc.Shapes = shape.List{}
	}
	return &doc, nil
}

// Write encodes the document as indented JSON
func (d *Document) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return nil
}

// Save writes the document to filename, replacing it atomically
func (d *Document) Save(filename string) error {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".goshape-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	return nil
}
