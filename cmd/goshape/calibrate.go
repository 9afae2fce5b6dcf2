package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goshape/internal/calibration"
	"github.com/philipparndt/goshape/pkg/units"
)

var (
	calibratePixels float64
	calibrateReset  bool
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Show or store the pixels per unit calibration",
	Long: `Without flags the current calibration is shown. With --px the value for
the unit selected by --unit is stored; --reset removes it again.`,
	Example: `  goshape calibrate
  goshape calibrate --unit in --px 96`,
	Args: cobra.NoArgs,
	Run:  runCalibrate,
}

func init() {
	rootCmd.AddCommand(calibrateCmd)

	calibrateCmd.Flags().Float64Var(&calibratePixels, "px", 0, "Pixels per unit to store")
	calibrateCmd.Flags().BoolVar(&calibrateReset, "reset", false, "Remove the stored value for the unit")

	calibrateCmd.MarkFlagsMutuallyExclusive("px", "reset")
}

func runCalibrate(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	store, err := calibration.Open(ctx, cfg.DBPath, logger)
	exitOnError("opening calibration store", err)
	defer store.Close()

	unit := cfg.DisplayUnit()
	switch {
	case cmd.Flags().Changed("px"):
		exitOnError("storing calibration", store.Set(ctx, unit, calibratePixels))
		fmt.Printf("Stored %.4f px/%s\n\n", calibratePixels, unit)
	case calibrateReset:
		exitOnError("resetting calibration", store.Reset(ctx, unit))
		fmt.Printf("Reset %s to the default\n\n", unit)
	}

	fmt.Println("Calibration")
	fmt.Println("===========")
	fmt.Printf("Database: %s\n\n", cfg.DBPath)

	stored, err := store.Snapshot(ctx)
	exitOnError("reading calibration", err)
	effective := cfg.Overlay(stored)

	for _, u := range units.All() {
		source := "stored"
		if _, err := store.Get(ctx, u); errors.Is(err, calibration.ErrNotCalibrated) {
			source = "default"
		}
		if effective.PixelsPerUnit(u) != stored.PixelsPerUnit(u) {
			source = "override"
		}
		fmt.Printf("  %-3s %10.4f px/%s  (%s)\n", u, effective.PixelsPerUnit(u), u, source)
	}
}
