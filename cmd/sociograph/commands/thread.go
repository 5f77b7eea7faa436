package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calebthorne/sociograph/cmd/sociograph/output"
	"github.com/calebthorne/sociograph/cmd/sociograph/tui"
	"github.com/calebthorne/sociograph/pkg/thread"
)

var (
	// Thread flags
	threadMaxDepth int
	pushdown       bool
	interactive    bool
)

// threadCmd builds the comment thread of a post
var threadCmd = &cobra.Command{
	Use:   "thread <post-id>",
	Short: "Build the comment thread of a post",
	Long: `Build the full comment tree of a post in depth-first order, each node
carrying its depth and root-to-node path.

By default the traversal runs in-process against indexed adjacency reads.
With --pushdown the whole walk is evaluated inside PostgreSQL as a
WITH RECURSIVE query instead, which matches the in-process result but cannot
report depth truncation.

Examples:
  sociograph thread 42 --db postgres://localhost/social
  sociograph thread 42 --db ... --max-depth 4
  sociograph thread 42 --db ... --interactive`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id %q", args[0])
		}
		return runThread(postID)
	},
}

func init() {
	rootCmd.AddCommand(threadCmd)

	threadCmd.Flags().IntVar(&threadMaxDepth, "max-depth", thread.DefaultMaxDepth, "Maximum reply depth to expand")
	threadCmd.Flags().BoolVar(&pushdown, "pushdown", false, "Evaluate the walk inside PostgreSQL (WITH RECURSIVE)")
	threadCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the thread in an interactive UI")
}

func runThread(postID int64) error {
	ctx := context.Background()

	store, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if interactive {
		return tui.RunThreadBrowser(store, postID, threadMaxDepth)
	}

	var result *thread.Thread
	if pushdown {
		nodes, err := store.ThreadViaCTE(ctx, postID, threadMaxDepth)
		if err != nil {
			return fmt.Errorf("failed to build thread: %w", err)
		}
		result = &thread.Thread{Nodes: nodes}
	} else {
		builder := thread.NewBuilder(store, thread.Config{MaxDepth: threadMaxDepth})
		result, err = builder.Build(ctx, postID)
		if err != nil {
			return fmt.Errorf("failed to build thread: %w", err)
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if len(result.Nodes) == 0 {
		output.Warning("No comments found for post %d", postID)
		return nil
	}

	output.Header("Thread for post %d (%d comments)", postID, len(result.Nodes))
	for _, node := range result.Nodes {
		label := fmt.Sprintf("#%d %s", node.Comment.ID, snippet(node.Comment.Content, 60))
		meta := fmt.Sprintf("by user %d · %s",
			node.Comment.AuthorID,
			node.Comment.CreatedAt.Format("2006-01-02 15:04"),
		)
		fmt.Println(output.TreeLine(node.Depth, label, meta))
	}

	if result.Truncated {
		output.Warning("Thread truncated at depth %d; deeper replies were not expanded", threadMaxDepth)
	}
	return nil
}

// snippet shortens content to a single display line.
func snippet(content string, max int) string {
	runes := []rune(content)
	for i, r := range runes {
		if r == '\n' {
			runes = runes[:i]
			break
		}
	}
	if len(runes) > max {
		return string(runes[:max-1]) + "…"
	}
	return string(runes)
}
