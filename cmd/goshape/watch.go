package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goshape/pkg/document"
	"github.com/philipparndt/goshape/pkg/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Print measurements again whenever the document changes",
	Args:  cobra.ExactArgs(1),
	Run:   runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "Delay before reloading after a change")
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	show := func() {
		doc, err := document.Load(filename)
		if err != nil {
			logger.Warn("failed to reload document", "file", filename, "error", err)
			return
		}
		printDocument(doc, filename, displayUnit(cmd, doc), loadCalibration(ctx))
	}
	show()

	fw, err := watcher.NewFileWatcher(watchDebounce, logger)
	exitOnError("creating watcher", err)
	defer fw.Close()

	exitOnError("watching file", fw.Watch([]string{filename}, func(string) {
		fmt.Printf("\n--- %s changed at %s ---\n\n", filename, time.Now().Format("15:04:05"))
		show()
	}))
	fw.Start()

	logger.Info("watching for changes, press Ctrl+C to stop", "file", filename)
	<-ctx.Done()
}
