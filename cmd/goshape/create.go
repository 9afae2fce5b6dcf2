package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goshape/internal/palette"
	"github.com/philipparndt/goshape/pkg/document"
	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/philipparndt/goshape/pkg/shape"
)

var (
	createFrom string
	createTo   string
	createFile string
	createID   string
	createFit  []string
)

var createCmd = &cobra.Command{
	Use:   "create <circle|rectangle|triangle|line>",
	Short: "Create a shape from a drag gesture",
	Long: `Create a shape as if it was dragged from --from to --to.
A circle can also be fitted through points sampled along its outline by
repeating --through at least 3 times. With --file the shape is appended to the
document (created if missing), otherwise a new document with just this shape
is written to stdout.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: kindNames(),
	Run:       runCreate,
}

func kindNames() []string {
	var names []string
	for _, k := range shape.Kinds() {
		names = append(names, string(k))
	}
	return names
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createFrom, "from", "0,0", "Drag start point (x,y in pixels)")
	createCmd.Flags().StringVar(&createTo, "to", "", "Drag end point (x,y in pixels)")
	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "Document to append the shape to")
	createCmd.Flags().StringVar(&createID, "id", "", "Id for the new shape (default: random UUID)")
	createCmd.Flags().StringArrayVar(&createFit, "through", nil, "Point on a circle outline (x,y), repeat at least 3 times")

	createCmd.MarkFlagsOneRequired("to", "through")
	createCmd.MarkFlagsMutuallyExclusive("to", "through")
}

func runCreate(cmd *cobra.Command, args []string) {
	kind, err := shape.ParseKind(args[0])
	exitOnError("parsing kind", err)
	from, to, err := dragPoints(kind)
	exitOnError("parsing points", err)

	var doc *document.Document
	if createFile != "" {
		doc, err = document.LoadOrNew(createFile, cfg.DisplayUnit())
		exitOnError("loading document", err)
	} else {
		doc = document.New("", cfg.DisplayUnit())
	}

	created, err := shape.Create(kind, from, to,
		shape.WithID(createID),
		shape.WithCreateStyle(palette.Next(doc.ShapeCount())),
	)
	exitOnError("creating shape", err)
	doc.AddShape(created)

	if createFile == "" {
		exitOnError("writing document", doc.Write(os.Stdout))
		return
	}

	saveDocument(doc, createFile)
	fmt.Printf("Created %s %s in %s\n\n", kind, shape.ID(created), createFile)
	printShape(created, displayUnit(cmd, doc), loadCalibration(context.Background()))
}

// dragPoints returns the gesture for the new shape. A circle fitted with
// --through becomes a drag from its center to a point on its outline.
func dragPoints(kind shape.Kind) (geometry.Point, geometry.Point, error) {
	if len(createFit) == 0 {
		from, err := parsePoint(createFrom)
		if err != nil {
			return geometry.Point{}, geometry.Point{}, err
		}
		to, err := parsePoint(createTo)
		return from, to, err
	}

	if kind != shape.KindCircle {
		return geometry.Point{}, geometry.Point{}, fmt.Errorf("--through only works for circles")
	}
	points := make([]geometry.Point, 0, len(createFit))
	for _, s := range createFit {
		p, err := parsePoint(s)
		if err != nil {
			return geometry.Point{}, geometry.Point{}, err
		}
		points = append(points, p)
	}

	fit, err := geometry.FitCircle(points)
	if err != nil {
		return geometry.Point{}, geometry.Point{}, fmt.Errorf("failed to fit circle: %w", err)
	}
	logger.Debug("circle fitted", "center", fit.Center, "radius", fit.Radius, "stddev", fit.StdDev)
	return fit.Center, fit.Center.Add(geometry.Pt(fit.Radius, 0)), nil
}
