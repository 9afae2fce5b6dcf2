package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goshape/pkg/shape"
)

var (
	moveID string
	moveDX float64
	moveDY float64
)

var moveCmd = &cobra.Command{
	Use:   "move <file>",
	Short: "Move a shape by an offset in pixels",
	Args:  cobra.ExactArgs(1),
	Run:   runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)

	moveCmd.Flags().StringVar(&moveID, "id", "", "Shape id")
	moveCmd.Flags().Float64Var(&moveDX, "dx", 0, "Horizontal offset")
	moveCmd.Flags().Float64Var(&moveDY, "dy", 0, "Vertical offset")

	moveCmd.MarkFlagRequired("id")
}

func runMove(cmd *cobra.Command, args []string) {
	doc := applyToShape(args[0], moveID, func(shapes []shape.Shape) []shape.Shape {
		return shape.Move(shapes, moveID, moveDX, moveDY)
	})
	s, _ := shape.Find(doc.Shapes, moveID)
	printShape(s, displayUnit(cmd, doc), loadCalibration(context.Background()))
}
