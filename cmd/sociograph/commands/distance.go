package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebthorne/sociograph/cmd/sociograph/output"
	"github.com/calebthorne/sociograph/pkg/pathfind"
)

var (
	// Distance flags
	maxHops int
)

// distanceCmd measures degrees of separation between two users
var distanceCmd = &cobra.Command{
	Use:   "distance <from-user-id> <to-user-id>",
	Short: "Measure degrees of separation between two users",
	Long: `Run a breadth-first search over accepted follow edges from one user to
another, bounded by --max-hops. Edges are directed, so the distance from A
to B can differ from the distance from B to A.

Examples:
  sociograph distance 1 9 --db postgres://localhost/social
  sociograph distance 1 9 --db ... --max-hops 4`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fromID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		toID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[1])
		}
		return runDistance(fromID, toID)
	},
}

func init() {
	rootCmd.AddCommand(distanceCmd)

	distanceCmd.Flags().IntVar(&maxHops, "max-hops", pathfind.DefaultMaxHops, "Maximum search depth")
}

func runDistance(fromID, toID int64) error {
	ctx := context.Background()

	store, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	finder := pathfind.New(store, pathfind.Config{MaxHops: maxHops})
	route, err := finder.Distance(ctx, fromID, toID)
	if err != nil {
		return fmt.Errorf("failed to search: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(route)
	}

	if route == nil {
		output.Muted("No connection from user %d to user %d within %d hops", fromID, toID, maxHops)
		return nil
	}

	output.Success("User %d reaches user %d in %d hop(s)", fromID, toID, route.Distance)
	if verbose {
		steps := make([]string, len(route.Path))
		for i, id := range route.Path {
			steps[i] = strconv.FormatInt(id, 10)
		}
		output.Muted("Path: %s", strings.Join(steps, " → "))
	}
	return nil
}
