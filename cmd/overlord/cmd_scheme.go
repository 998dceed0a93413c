// Package main implements the overlord CLI commands.
// This file contains the scheme runner and journal commands.
package main

import (
	"fmt"

	"overlord/internal/journal"
	"overlord/internal/villain"

	"github.com/spf13/cobra"
)

var (
	schemeSecret string
	journalLimit int
)

// schemeCmd runs the full staged domination protocol with the production
// collaborators, journaling every step.
var schemeCmd = &cobra.Command{
	Use:   "scheme [full name]",
	Short: "Run the full staged domination scheme",
	Long: `Runs the complete staged protocol: loyalty check, both domination
stages, and the ciphered relay, with plan synthesis in the background.
Every step is recorded in the mission journal.

Example:
  overlord scheme "Lex Luthor" --secret "kryptonite first"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()

		gadget := villain.NamedGadget("grappling hook")
		v, err := villain.Parse(args[0],
			villain.WithSharedKey(cfg.SharedKey),
			villain.WithSidekick(villain.NewLoyalSidekick(gadget, logger)),
		)
		if err != nil {
			return err
		}

		scheme, err := villain.NewScheme(villain.SchemeConfig{
			Villain:  v,
			Henchman: villain.NewFieldHenchman(logger),
			Gadget:   gadget,
			Cipher:   villain.MaskCipher{},
			Recorder: j,
			Logger:   logger,
		})
		if err != nil {
			return err
		}

		report, err := scheme.Run(cmd.Context(), schemeSecret)
		if err != nil {
			return fmt.Errorf("run scheme: %w", err)
		}

		fmt.Printf("mission: %s\nplan:    %s\nsidekick retained: %t\n",
			report.MissionID, report.Plan, report.SidekickRetained)
		return nil
	},
}

// journalCmd lists recent mission events.
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show recent mission journal events",
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()

		events, err := j.Recent(journalLimit)
		if err != nil {
			return fmt.Errorf("read journal: %w", err)
		}
		for _, e := range events {
			fmt.Printf("%s  %s  %-12s %s\n",
				e.At.Format("2006-01-02 15:04:05"), e.MissionID, e.Step, e.Detail)
		}
		return nil
	},
}

func init() {
	schemeCmd.Flags().StringVar(&schemeSecret, "secret", "take over the world", "Secret to relay to the sidekick")
	journalCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "Maximum events to show")
}
