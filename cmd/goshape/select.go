package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goshape/pkg/shape"
)

var selectID string

var selectCmd = &cobra.Command{
	Use:   "select <file>",
	Short: "Select a shape, or clear the selection when no id is given",
	Args:  cobra.ExactArgs(1),
	Run:   runSelect,
}

func init() {
	rootCmd.AddCommand(selectCmd)

	selectCmd.Flags().StringVar(&selectID, "id", "", "Shape id (empty clears the selection)")
}

func runSelect(cmd *cobra.Command, args []string) {
	filename := args[0]

	if selectID == "" {
		doc := loadDocument(filename)
		doc.Shapes = shape.Select(doc.Shapes, "")
		saveDocument(doc, filename)
		fmt.Println("Selection cleared")
		return
	}

	applyToShape(filename, selectID, func(shapes []shape.Shape) []shape.Shape {
		return shape.Select(shapes, selectID)
	})
	fmt.Printf("Selected %s\n", selectID)
}
