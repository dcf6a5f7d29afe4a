// Package cmd wires the canopy CLI: fixture generation and mutation storms
// for exercising a tree differ from the command line.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	size   int
	seed   int64
	spread int
)

func init() {
	rootCmd.PersistentFlags().IntVarP(&size, "size", "n", 64, "Target leaf count for generated trees")
	rootCmd.PersistentFlags().Int64VarP(&seed, "seed", "s", 0, "Random seed (0 = time-based)")
	rootCmd.PersistentFlags().IntVar(&spread, "spread", 3, "Fan-out variance knob for generation")
}

var rootCmd = &cobra.Command{
	Use:   "canopy",
	Short: "Canopy: randomized UI-tree fixture and mutation generator",
}

// resolveSeed substitutes a time-based seed when none was given, and prints
// it so a failing run can be reproduced.
func resolveSeed(out func(format string, a ...any)) int64 {
	if seed != 0 {
		return seed
	}
	s := time.Now().UnixNano()
	out("seed: %d\n", s)
	return s
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
