package cmd

import (
	"fmt"

	"github.com/agentic-research/canopy/api"
	"github.com/agentic-research/canopy/entropy"
	"github.com/agentic-research/canopy/gen"
	"github.com/agentic-research/canopy/tree"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one random tree and print it as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src := entropy.NewSource(resolveSeed(cmd.Printf))
		desc := api.NewDescriptor()

		root := gen.GenerateSpread(src, desc, size, spread)
		if err := tree.CheckIntegrity(root); err != nil {
			return fmt.Errorf("generated tree failed integrity check: %w", err)
		}

		cmd.Println(oj.JSON(exportNode(root), 2))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
