package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sprout-app/sprout/internal/domain"
)

func init() {
	rootCmd.AddCommand(txCmd)
	txCmd.AddCommand(txAddCmd)
	txCmd.AddCommand(txListCmd)

	txAddCmd.Flags().StringP("category", "c", "", "Category id")
	txAddCmd.Flags().StringP("kind", "k", "expense", "Transaction kind: expense or income")
	txAddCmd.Flags().Int64P("amount", "a", 0, "Amount in minor currency units")
	txAddCmd.Flags().StringP("date", "d", "", "Date (YYYY-MM-DD), defaults to today")
	txAddCmd.Flags().StringP("memo", "m", "", "Optional memo")
	_ = txAddCmd.MarkFlagRequired("category")
	_ = txAddCmd.MarkFlagRequired("amount")

	txListCmd.Flags().StringP("category", "c", "", "Filter by category id")
}

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Record and list transactions",
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction (expenses earn seeds)",
	RunE:  runTxAdd,
}

func runTxAdd(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	kind, _ := cmd.Flags().GetString("kind")
	amount, _ := cmd.Flags().GetInt64("amount")
	dateStr, _ := cmd.Flags().GetString("date")
	memo, _ := cmd.Flags().GetString("memo")

	tx := domain.Transaction{
		CategoryID: category,
		Kind:       domain.TransactionKind(kind),
		Amount:     amount,
		Memo:       memo,
	}
	if dateStr != "" {
		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
		tx.Date = date
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	recorded, err := a.ledger.Record(cmd.Context(), tx)
	if err != nil {
		return err
	}
	fmt.Printf("Recorded %s of %d in %s on %s\n",
		recorded.Kind, recorded.Amount, recorded.CategoryID, recorded.Date.Format(time.DateOnly))
	return nil
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded transactions",
	RunE:  runTxList,
}

func runTxList(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	txs, err := a.ledger.List(cmd.Context(), category)
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		fmt.Println("No transactions recorded.")
		return nil
	}
	for _, tx := range txs {
		fmt.Printf("%s  %-10s %-7s %10d  %s\n",
			tx.Date.Format(time.DateOnly), tx.CategoryID, tx.Kind, tx.Amount, tx.Memo)
	}
	return nil
}
