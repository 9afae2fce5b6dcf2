package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goshape/internal/config"
	"github.com/philipparndt/goshape/internal/logging"
	"github.com/philipparndt/goshape/version"
)

var (
	cfg    = config.Load()
	logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "goshape",
	Short: "Create, transform and measure 2D shapes",
	Long: `goshape works on JSON documents of circles, rectangles, triangles and lines.
It reports measurements in centimeters or inches and can solve the geometry
back from an edited measurement, e.g. set a triangle angle or a circle area.`,
	Version:      version.GetFullVersion(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		l, err := logging.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfg.Unit, "unit", "u", cfg.Unit, "Display unit (cm, in)")
	flags.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Calibration database path")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
	flags.Float64Var(&cfg.PixelsPerCentimeter, "px-per-cm", cfg.PixelsPerCentimeter, "Override pixels per centimeter for this run")
	flags.Float64Var(&cfg.PixelsPerInch, "px-per-in", cfg.PixelsPerInch, "Override pixels per inch for this run")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
