package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goshape/internal/calibration"
	"github.com/philipparndt/goshape/pkg/document"
	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/philipparndt/goshape/pkg/measure"
	"github.com/philipparndt/goshape/pkg/shape"
	"github.com/philipparndt/goshape/pkg/units"
)

func exitOnError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", msg, err)
		os.Exit(1)
	}
}

// loadCalibration returns the stored calibration with the session overrides
// applied. Without a usable store the defaults are used.
func loadCalibration(ctx context.Context) units.Calibration {
	store, err := calibration.Open(ctx, cfg.DBPath, logger)
	if err != nil {
		logger.Warn("calibration store unavailable, using defaults", "error", err)
		return cfg.Overlay(units.DefaultCalibration())
	}
	defer store.Close()

	cal, err := store.Snapshot(ctx)
	if err != nil {
		logger.Warn("failed to read calibration, using defaults", "error", err)
		return cfg.Overlay(units.DefaultCalibration())
	}
	return cfg.Overlay(cal)
}

// displayUnit prefers an explicit --unit, then the document unit, then the configured default
func displayUnit(cmd *cobra.Command, doc *document.Document) units.Unit {
	if cmd.Flags().Changed("unit") || doc == nil {
		return cfg.DisplayUnit()
	}
	return doc.DisplayUnit(cfg.DisplayUnit())
}

// parsePoint parses "x,y"
func parsePoint(s string) (geometry.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geometry.Point{}, fmt.Errorf("invalid point %q, expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	p := geometry.Pt(x, y)
	if !p.IsFinite() {
		return geometry.Point{}, fmt.Errorf("point %q is not finite", s)
	}
	return p, nil
}

func loadDocument(filename string) *document.Document {
	doc, err := document.Load(filename)
	exitOnError("loading document", err)
	return doc
}

func saveDocument(doc *document.Document, filename string) {
	exitOnError("saving document", doc.Save(filename))
}

func label(key string) string {
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

func printShape(s shape.Shape, unit units.Unit, cal units.Calibration) {
	base := s.Base()
	selected := ""
	if base.Selected {
		selected = " (selected)"
	}
	fmt.Printf("%s %s%s\n", label(string(s.Kind())), base.ID, selected)
	fmt.Printf("  Position: (%.2f, %.2f)  Rotation: %.2f°\n", base.Position.X, base.Position.Y, base.Rotation)

	for _, e := range measure.Entries(s, unit, cal) {
		marker := " "
		if measure.Editable(s.Kind(), e.Key) {
			marker = "*"
		}
		fmt.Printf("  %s %-14s %s\n", marker, label(e.Key)+":", units.FormatMeasurement(e.Value, e.Suffix))
	}
}

// printBounds prints a bounding box converted to the display unit
func printBounds(title string, b geometry.BoundingBox, unit units.Unit, cal units.Calibration) {
	if b.IsEmpty() {
		return
	}
	conv := units.NewConverter(unit, cal)
	size := b.Size()
	fmt.Printf("%s:\n", title)
	fmt.Printf("  Min: %s  Max: %s\n", b.Min, b.Max)
	fmt.Printf("  Size: %s x %s\n",
		units.FormatMeasurement(conv.Length(size.X), unit.String()),
		units.FormatMeasurement(conv.Length(size.Y), unit.String()))
	fmt.Printf("  Diagonal: %s\n", units.FormatMeasurement(conv.Length(b.Diagonal()), unit.String()))
}

func printDocument(doc *document.Document, filename string, unit units.Unit, cal units.Calibration) {
	fmt.Println("Shape Measurements")
	fmt.Println("==================")
	if doc.Name != "" {
		fmt.Printf("Name: %s\n", doc.Name)
	}
	if filename != "" {
		fmt.Printf("File: %s\n", filename)
	}
	fmt.Printf("Unit: %s (%.2f px/%s)\n", unit, cal.PixelsPerUnit(unit), unit)
	fmt.Printf("Shapes: %d\n", doc.ShapeCount())
	if doc.ShapeCount() > 0 {
		fmt.Println()
		printBounds("Extent", shape.Extent(doc.Shapes), unit, cal)
	}

	for _, s := range doc.Shapes {
		fmt.Println()
		printShape(s, unit, cal)
	}
}

// applyToShape loads the document, applies fn to the shape with the given
// id and saves the result
func applyToShape(filename, id string, fn func(shapes []shape.Shape) []shape.Shape) *document.Document {
	doc := loadDocument(filename)
	if _, ok := shape.Find(doc.Shapes, id); !ok {
		exitOnError("finding shape", fmt.Errorf("no shape with id %q in %s", id, filename))
	}
	doc.Shapes = fn(doc.Shapes)
	saveDocument(doc, filename)
	logger.Debug("document updated", "file", filename, "id", id)
	return doc
}
