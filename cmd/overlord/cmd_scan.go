// Package main implements the overlord CLI commands.
// This file contains the listing scan and watch commands.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"overlord/internal/scanner"

	"github.com/spf13/cobra"
)

// scanCmd runs one vulnerability scan over the configured listing.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the location listing for weak spots",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := scanner.New(os.DirFS("."), cfg.Listing.Path, scanner.WithLogger(logger))
		printResult(s.Scan())
		return nil
	},
}

// watchCmd re-scans whenever the listing changes on disk.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the location listing and re-scan on change",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := scanner.NewWatcher(cfg.Listing.Path, logger)
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return nil
			case result, ok := <-w.Results():
				if !ok {
					return nil
				}
				printResult(result.Weak, result.Known)
			}
		}
	},
}

func printResult(weak, known bool) {
	switch {
	case !known:
		fmt.Println("listing unavailable: vulnerability unknown")
	case weak:
		fmt.Println("weak location found")
	default:
		fmt.Println("no weak locations")
	}
}
