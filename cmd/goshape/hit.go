package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goshape/pkg/shape"
)

var (
	hitAt     string
	hitSelect bool
)

var hitCmd = &cobra.Command{
	Use:   "hit <file>",
	Short: "Find the topmost shape at a point",
	Args:  cobra.ExactArgs(1),
	Run:   runHit,
}

func init() {
	rootCmd.AddCommand(hitCmd)

	hitCmd.Flags().StringVar(&hitAt, "at", "", "Point to test (x,y in pixels)")
	hitCmd.Flags().BoolVar(&hitSelect, "select", false, "Select the hit shape (clears the selection on a miss)")

	hitCmd.MarkFlagRequired("at")
}

func runHit(cmd *cobra.Command, args []string) {
	filename := args[0]
	p, err := parsePoint(hitAt)
	exitOnError("parsing --at", err)

	doc := loadDocument(filename)
	hit, ok := shape.HitTest(doc.Shapes, p)

	if hitSelect {
		doc.Shapes = shape.Select(doc.Shapes, shape.ID(hit))
		saveDocument(doc, filename)
	}

	if !ok {
		fmt.Printf("No shape at %s\n", p)
		return
	}

	fmt.Printf("Hit at %s:\n", p)
	if hitSelect {
		hit, _ = shape.Find(doc.Shapes, shape.ID(hit))
	}
	unit := displayUnit(cmd, doc)
	cal := loadCalibration(context.Background())
	printShape(hit, unit, cal)
	printBounds("Bounds", shape.Bounds(hit), unit, cal)
}
