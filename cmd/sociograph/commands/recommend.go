package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/calebthorne/sociograph/cmd/sociograph/output"
	"github.com/calebthorne/sociograph/pkg/recommend"
)

var (
	// Recommend flags
	recommendLimit int
)

// recommendCmd computes friend-of-friend recommendations
var recommendCmd = &cobra.Command{
	Use:   "recommend <user-id>",
	Short: "Recommend friends-of-friends for a user",
	Long: `Compute second-degree contacts for a user, excluding the user and anyone
they already follow, scored by mutual connections plus capped activity and
popularity signals.

Examples:
  sociograph recommend 3 --db postgres://localhost/social
  sociograph recommend 3 --db ... --limit 5 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		return runRecommend(userID)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 10, "Maximum number of candidates to return")
}

func runRecommend(userID int64) error {
	ctx := context.Background()

	store, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	recommender := recommend.New(store, recommend.DefaultScoringConfig())
	candidates, err := recommender.Recommend(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to compute recommendations: %w", err)
	}

	if recommendLimit > 0 && len(candidates) > recommendLimit {
		candidates = candidates[:recommendLimit]
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(candidates)
	}

	if len(candidates) == 0 {
		output.Muted("No recommendations for user %d", userID)
		return nil
	}

	output.Header("Recommendations for user %d", userID)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "USER\tMUTUAL\tSCORE")
	_, _ = fmt.Fprintln(w, "----\t------\t-----")
	for _, c := range candidates {
		_, _ = fmt.Fprintf(w, "%d\t%d\t%d\n", c.UserID, c.MutualCount, c.Score)
	}
	return w.Flush()
}
