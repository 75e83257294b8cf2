package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sprout-app/sprout/internal/domain"
)

func init() {
	rootCmd.AddCommand(challengeCmd)
	challengeCmd.AddCommand(challengeListCmd)
	challengeCmd.AddCommand(challengeCreateCmd)
	challengeCmd.AddCommand(challengeConfirmCmd)
	challengeCmd.AddCommand(challengeDeleteCmd)

	challengeCreateCmd.Flags().StringP("category", "c", "", "Category id the challenge applies to")
	challengeCreateCmd.Flags().StringP("duration", "d", "WEEK", "Challenge duration: WEEK or MONTH")
	challengeCreateCmd.Flags().Int64P("limit", "l", 0, "Spending limit for the period")
	challengeCreateCmd.Flags().IntP("fruits", "f", 1, "Target fruit count")
	_ = challengeCreateCmd.MarkFlagRequired("category")
	_ = challengeCreateCmd.MarkFlagRequired("limit")
}

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Manage savings challenges",
}

// ─── challenge list ─────────────────────────────────────────────────────────

var challengeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List challenges with freshly computed statuses",
	RunE:  runChallengeList,
}

func runChallengeList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	challenges, err := a.engine.RefreshAll(cmd.Context())
	if err != nil {
		return err
	}
	if len(challenges) == 0 {
		fmt.Println("No challenges yet. Plant one with 'sprout challenge create'.")
		return nil
	}

	for _, c := range challenges {
		state := string(c.Status)
		if c.IsCompleted {
			state += " (confirmed)"
		}
		fmt.Printf("%s  %-10s %s..%s  spent %d / limit %d  %s\n",
			c.ID, c.CategoryID,
			c.StartDate.Format(time.DateOnly), c.EndDate.Format(time.DateOnly),
			c.CurrentSpending, c.SpendingLimit, state)
	}
	return nil
}

// ─── challenge create ───────────────────────────────────────────────────────

var challengeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Plant a new challenge (debits seeds)",
	RunE:  runChallengeCreate,
}

func runChallengeCreate(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	durationStr, _ := cmd.Flags().GetString("duration")
	limit, _ := cmd.Flags().GetInt64("limit")
	fruits, _ := cmd.Flags().GetInt("fruits")

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	c, err := a.factory.Create(cmd.Context(), category, domain.Duration(durationStr), limit, fruits)
	if err != nil {
		return err
	}

	fmt.Printf("Planted challenge %s: %s under %d until %s (%d seeds spent)\n",
		c.ID, c.CategoryID, c.SpendingLimit, c.EndDate.Format(time.DateOnly), c.RequiredSeeds)
	return nil
}

// ─── challenge confirm ──────────────────────────────────────────────────────

var challengeConfirmCmd = &cobra.Command{
	Use:   "confirm CHALLENGE_ID",
	Short: "Acknowledge a finished challenge (harvests fruits on success)",
	Args:  cobra.ExactArgs(1),
	RunE:  runChallengeConfirm,
}

func runChallengeConfirm(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	// Refresh first so the stored status reflects the live ledger.
	if _, err := a.engine.RefreshAll(cmd.Context()); err != nil {
		return err
	}

	c, err := a.confirmer.Confirm(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if c.Status == domain.StatusSuccess {
		fmt.Printf("Challenge succeeded — %d fruits harvested.\n", c.TargetFruits)
	} else {
		fmt.Println("Challenge failed — no fruits this time.")
	}
	return nil
}

// ─── challenge delete ───────────────────────────────────────────────────────

var challengeDeleteCmd = &cobra.Command{
	Use:   "delete CHALLENGE_ID",
	Short: "Delete a challenge (seeds are not refunded)",
	Args:  cobra.ExactArgs(1),
	RunE:  runChallengeDelete,
}

func runChallengeDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.db.Get(cmd.Context(), args[0]); err != nil {
		return err
	}
	if err := a.db.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Println("Challenge deleted.")
	return nil
}
