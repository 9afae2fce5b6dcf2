package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goshape/pkg/shape"
)

var (
	rotateID    string
	rotateAngle float64
)

var rotateCmd = &cobra.Command{
	Use:   "rotate <file>",
	Short: "Set the rotation of a shape in degrees",
	Args:  cobra.ExactArgs(1),
	Run:   runRotate,
}

func init() {
	rootCmd.AddCommand(rotateCmd)

	rotateCmd.Flags().StringVar(&rotateID, "id", "", "Shape id")
	rotateCmd.Flags().Float64VarP(&rotateAngle, "angle", "a", 0, "Rotation in degrees")

	rotateCmd.MarkFlagRequired("id")
}

func runRotate(cmd *cobra.Command, args []string) {
	doc := applyToShape(args[0], rotateID, func(shapes []shape.Shape) []shape.Shape {
		return shape.Rotate(shapes, rotateID, rotateAngle)
	})
	s, _ := shape.Find(doc.Shapes, rotateID)
	printShape(s, displayUnit(cmd, doc), loadCalibration(context.Background()))
}
