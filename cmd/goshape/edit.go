package main

import (
	"context"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goshape/pkg/measure"
	"github.com/philipparndt/goshape/pkg/shape"
	"github.com/philipparndt/goshape/pkg/units"
)

var (
	editID    string
	editKey   string
	editValue string
)

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Set a measurement and solve the shape geometry from it",
	Long: `Set one measurement of a shape, e.g. the area of a circle or an angle of a
triangle, and update the shape so it has that measurement. Values are read in
the display unit; angles are in degrees.`,
	Example: `  goshape edit drawing.json --id c1 --key diameter --value 4.5
  goshape edit drawing.json --id t1 --key angle1 --value 60 --unit in`,
	Args: cobra.ExactArgs(1),
	Run:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editID, "id", "", "Shape id")
	editCmd.Flags().StringVarP(&editKey, "key", "k", "", "Measurement key (radius, width, side1, angle2, ...)")
	editCmd.Flags().StringVarP(&editValue, "value", "v", "", "New value")

	editCmd.MarkFlagRequired("id")
	editCmd.MarkFlagRequired("key")
	editCmd.MarkFlagRequired("value")
}

func runEdit(cmd *cobra.Command, args []string) {
	filename := args[0]
	doc := loadDocument(filename)
	unit := displayUnit(cmd, doc)
	cal := loadCalibration(context.Background())

	target, ok := shape.Find(doc.Shapes, editID)
	if !ok {
		exitOnError("finding shape", fmt.Errorf("no shape with id %q in %s", editID, filename))
	}
	if !measure.Editable(target.Kind(), editKey) {
		exitOnError("editing shape", fmt.Errorf("%s has no editable measurement %q (editable: %v)",
			target.Kind(), editKey, editableKeys(target.Kind())))
	}

	value, err := measure.ParseValue(editValue)
	exitOnError("parsing value", err)

	current := measure.Values(target, unit, cal)[editKey]
	if math.Abs(current-value) <= 1e-9 {
		fmt.Printf("No change: %s is already %s\n", editKey, units.FormatMeasurement(value, measure.Suffix(editKey, unit)))
		return
	}

	updated := measure.Update(target, editKey, value, unit, cal)

	doc.Shapes = shape.Replace(doc.Shapes, updated)
	saveDocument(doc, filename)
	logger.Debug("measurement applied", "id", editID, "key", editKey, "value", editValue, "unit", unit)

	printShape(updated, unit, cal)
}

func editableKeys(kind shape.Kind) []string {
	var keys []string
	for _, k := range measure.Keys(kind) {
		if measure.Editable(kind, k) {
			keys = append(keys, k)
		}
	}
	return keys
}
