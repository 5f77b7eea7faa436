package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebthorne/sociograph/cmd/sociograph/output"
	"github.com/calebthorne/sociograph/pkg/pgstore"
	"github.com/calebthorne/sociograph/pkg/social"
)

var (
	// Seed flags
	withDemo bool
)

// seedCmd creates the schema and optional demo data
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema and optional demo data",
	Long: `Create the users, posts, comments and follows tables if they do not
exist. With --demo, also insert a small sample graph to explore the other
commands against.

Examples:
  sociograph seed --db postgres://localhost/social
  sociograph seed --db ... --demo`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed()
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().BoolVar(&withDemo, "demo", false, "Insert a sample social graph")
}

func runSeed() error {
	ctx := context.Background()

	store, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}
	output.Success("Schema is in place")

	if !withDemo {
		return nil
	}

	if err := seedDemo(ctx, store); err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}
	output.Success("Demo graph created")
	return nil
}

// seedDemo inserts a small graph: five users, one thread, and enough follow
// edges to make recommend and distance produce interesting answers.
func seedDemo(ctx context.Context, store *pgstore.Store) error {
	names := []string{"ada", "brendan", "carol", "dmitri", "elena"}
	users := make([]int64, 0, len(names))
	for _, name := range names {
		id, err := store.InsertUser(ctx, name)
		if err != nil {
			return err
		}
		users = append(users, id)
	}

	postID, err := store.InsertPost(ctx, users[0], "Where does everyone host their side projects?")
	if err != nil {
		return err
	}

	rootID, err := store.InsertComment(ctx, postID, users[1], nil, "A tiny VPS has never let me down.")
	if err != nil {
		return err
	}
	replyID, err := store.InsertComment(ctx, postID, users[2], &rootID, "Same, until the kernel upgrade bites.")
	if err != nil {
		return err
	}
	if _, err := store.InsertComment(ctx, postID, users[0], &replyID, "That is what snapshots are for."); err != nil {
		return err
	}

	// ada -> brendan, carol; both reach dmitri; carol also reaches elena.
	follows := []struct {
		from, to int
		status   social.FollowStatus
	}{
		{0, 1, social.StatusAccepted},
		{0, 2, social.StatusAccepted},
		{1, 3, social.StatusAccepted},
		{2, 3, social.StatusAccepted},
		{2, 4, social.StatusAccepted},
		{3, 4, social.StatusAccepted},
		{4, 0, social.StatusPending},
	}
	for _, f := range follows {
		if err := store.InsertFollow(ctx, users[f.from], users[f.to], f.status); err != nil {
			return err
		}
	}

	if verbose {
		for i, name := range names {
			output.Muted("user %-8s id=%d", name, users[i])
		}
		output.Muted("post id=%d", postID)
	}
	return nil
}
