package cmd

import (
	"fmt"

	"github.com/agentic-research/canopy/api"
	"github.com/agentic-research/canopy/entropy"
	"github.com/agentic-research/canopy/gen"
	"github.com/agentic-research/canopy/mutate"
	"github.com/agentic-research/canopy/tree"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

var (
	steps int
	dump  bool
)

var stormCmd = &cobra.Command{
	Use:   "storm",
	Short: "Generate a tree, then apply a sequence of random mutations",
	Long: `Storm generates an initial tree and applies one random mutation per
step, printing node-count and structural-sharing stats for each new root.
The resulting sequence of roots is what a tree differ under test would
consume pair by pair.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src := entropy.NewSource(resolveSeed(cmd.Printf))
		desc := api.NewDescriptor()

		root := gen.GenerateSpread(src, desc, size, spread)
		cmd.Printf("generated tree: %d nodes below root\n", tree.Count(root))

		for i := 0; i < steps; i++ {
			next := mutate.AlterAny(src, root, mutate.Default)
			if err := tree.CheckIntegrity(next); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			cmd.Printf("step %d: %d nodes, %d shared with previous root\n",
				i+1, tree.Count(next), tree.SharedNodes(root, next))
			root = next
		}

		if dump {
			cmd.Println(oj.JSON(exportNode(root), 2))
		}
		return nil
	},
}

func init() {
	stormCmd.Flags().IntVarP(&steps, "steps", "m", 16, "Number of mutations to apply")
	stormCmd.Flags().BoolVar(&dump, "dump", false, "Print the final tree as JSON")
	rootCmd.AddCommand(stormCmd)
}
