package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goshape/internal/calibration"
	"github.com/philipparndt/goshape/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve measurements, measurement edits and shape transforms over HTTP.
Requests carry the document they work on; only the calibration is stored.`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := calibration.Open(ctx, cfg.DBPath, logger)
	exitOnError("opening calibration store", err)
	defer store.Close()

	srv := server.New(store,
		server.WithLogger(logger),
		server.WithDefaultUnit(cfg.DisplayUnit()),
		server.WithCalibrationOverlay(cfg.Overlay),
	)

	exitOnError("running server", srv.Run(ctx, cfg.Addr))
}
