package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/philipparndt/goshape/pkg/shape"
)

var (
	resizeID     string
	resizeFactor float64
)

var resizeCmd = &cobra.Command{
	Use:   "resize <file>",
	Short: "Scale a shape by a factor",
	Args:  cobra.ExactArgs(1),
	Run:   runResize,
}

func init() {
	rootCmd.AddCommand(resizeCmd)

	resizeCmd.Flags().StringVar(&resizeID, "id", "", "Shape id")
	resizeCmd.Flags().Float64Var(&resizeFactor, "factor", 1, "Scale factor (> 0)")

	resizeCmd.MarkFlagRequired("id")
}

func runResize(cmd *cobra.Command, args []string) {
	if resizeFactor <= 0 || !geometry.IsFinite(resizeFactor) {
		exitOnError("resizing shape", fmt.Errorf("factor must be positive, got %v", resizeFactor))
	}

	doc := applyToShape(args[0], resizeID, func(shapes []shape.Shape) []shape.Shape {
		return shape.Resize(shapes, resizeID, resizeFactor)
	})
	s, _ := shape.Find(doc.Shapes, resizeID)
	printShape(s, displayUnit(cmd, doc), loadCalibration(context.Background()))
}
