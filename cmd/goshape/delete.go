package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goshape/pkg/shape"
)

var (
	deleteID  string
	deleteAll bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete <file>",
	Short: "Delete a shape, or all shapes with --all",
	Args:  cobra.ExactArgs(1),
	Run:   runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().StringVar(&deleteID, "id", "", "Shape id")
	deleteCmd.Flags().BoolVar(&deleteAll, "all", false, "Delete all shapes")

	deleteCmd.MarkFlagsMutuallyExclusive("id", "all")
	deleteCmd.MarkFlagsOneRequired("id", "all")
}

func runDelete(cmd *cobra.Command, args []string) {
	filename := args[0]

	if deleteAll {
		doc := loadDocument(filename)
		n := doc.ShapeCount()
		doc.Shapes = shape.Clear(doc.Shapes)
		saveDocument(doc, filename)
		fmt.Printf("Deleted %d shapes\n", n)
		return
	}

	doc := applyToShape(filename, deleteID, func(shapes []shape.Shape) []shape.Shape {
		return shape.Delete(shapes, deleteID)
	})
	fmt.Printf("Deleted %s, %d shapes left\n", deleteID, doc.ShapeCount())
}
