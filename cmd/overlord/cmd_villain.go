// Package main implements the overlord CLI commands.
// This file contains the identity and single-operation commands.
package main

import (
	"context"
	"fmt"
	"time"

	"overlord/internal/villain"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var intense bool

// parseCmd builds a villain from an identity string.
var parseCmd = &cobra.Command{
	Use:   "parse [full name]",
	Short: "Parse a villain identity string",
	Long: `Parses a whitespace-separated identity string into a villain.
At least two tokens are required; extra tokens are ignored.

Example:
  overlord parse "Lex Luthor"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := villain.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("first name: %s\nlast name:  %s\nfull name:  %s\n",
			v.FirstName, v.LastName, v.FullName())
		return nil
	},
}

// attackCmd discharges the production weapon.
var attackCmd = &cobra.Command{
	Use:   "attack [full name]",
	Short: "Attack with the mega weapon",
	Long: `Discharges the weapon once, or two to three times with --intense.

Example:
  overlord attack "Lex Luthor" --intense`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := villain.Parse(args[0], villain.WithSharedKey(cfg.SharedKey))
		if err != nil {
			return err
		}
		logger.Info("attacking",
			zap.String("villain", v.FullName()),
			zap.Bool("intense", intense))
		v.Attack(villain.NewLoudWeapon(logger), intense)
		return nil
	},
}

// planCmd synthesizes the plan.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Come up with a plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		v := villain.New("Generic", "Overlord")
		plan, err := v.ComeUpWithPlan(ctx)
		if err != nil {
			return fmt.Errorf("come up with plan: %w", err)
		}
		fmt.Println(plan)
		return nil
	},
}

func init() {
	attackCmd.Flags().BoolVar(&intense, "intense", false, "Discharge the weapon two to three times")
}
