package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goshape/pkg/measure"
	"github.com/philipparndt/goshape/pkg/shape"
)

var (
	measureID   string
	measureJSON bool
)

var measureCmd = &cobra.Command{
	Use:   "measure <file>",
	Short: "Show the measurements of the shapes in a document",
	Long: `Print radius, sizes, areas, angles and the other measurements of every
shape in the document. Editable measurements are marked with *.`,
	Args: cobra.ExactArgs(1),
	Run:  runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().StringVar(&measureID, "id", "", "Only show the shape with this id")
	measureCmd.Flags().BoolVar(&measureJSON, "json", false, "Print measurements as JSON")
}

func runMeasure(cmd *cobra.Command, args []string) {
	filename := args[0]
	doc := loadDocument(filename)
	unit := displayUnit(cmd, doc)
	cal := loadCalibration(context.Background())

	if measureID != "" {
		s, ok := shape.Find(doc.Shapes, measureID)
		if !ok {
			exitOnError("finding shape", fmt.Errorf("no shape with id %q in %s", measureID, filename))
		}
		doc.Shapes = []shape.Shape{s}
	}

	if measureJSON {
		out := make(map[string][]measure.Entry, len(doc.Shapes))
		for _, s := range doc.Shapes {
			out[shape.ID(s)] = measure.Entries(s, unit, cal)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		exitOnError("encoding measurements", enc.Encode(out))
		return
	}

	printDocument(doc, filename, unit, cal)
}
