package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(gardenCmd)
}

var gardenCmd = &cobra.Command{
	Use:   "garden",
	Short: "Show the current seed and fruit balances",
	RunE:  runGarden,
}

func runGarden(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	g, err := a.economy.Balance(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("Seeds:  %d\nFruits: %d\n", g.TotalSeeds, g.TotalFruits)
	return nil
}
