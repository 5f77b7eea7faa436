package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calebthorne/sociograph/cmd/sociograph/output"
	"github.com/calebthorne/sociograph/pkg/social"
	"github.com/calebthorne/sociograph/pkg/thread"
)

// ancestorsCmd walks a comment's parent chain
var ancestorsCmd = &cobra.Command{
	Use:   "ancestors <comment-id>",
	Short: "Walk a comment's ancestor chain up to its thread root",
	Long: `Walk strictly upward from a comment to the root of its thread and print
the chain, starting with the comment itself.

A cycle in the stored parent links is reported as an error rather than
followed; it means the data needs investigation.

Examples:
  sociograph ancestors 17 --db postgres://localhost/social`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		commentID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid comment id %q", args[0])
		}
		return runAncestors(commentID)
	},
}

func init() {
	rootCmd.AddCommand(ancestorsCmd)
}

func runAncestors(commentID int64) error {
	ctx := context.Background()

	store, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	walker := thread.NewWalker(store)
	chain, err := walker.Ancestors(ctx, commentID)
	switch {
	case errors.Is(err, social.ErrNotFound):
		return fmt.Errorf("comment %d does not exist", commentID)
	case errors.Is(err, social.ErrCycleDetected):
		output.Error("Comment %d sits on a cyclic parent chain; stored data is corrupt", commentID)
		return err
	case err != nil:
		return fmt.Errorf("failed to walk ancestors: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(chain)
	}

	output.Header("Ancestor chain for comment %d (depth %d)", commentID, len(chain)-1)
	for i, c := range chain {
		marker := "↑"
		if i == 0 {
			marker = "●"
		}
		fmt.Printf("  %s #%d by user %d: %s\n", marker, c.ID, c.AuthorID, snippet(c.Content, 60))
	}
	return nil
}
