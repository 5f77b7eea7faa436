package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calebthorne/sociograph/pkg/pgstore"
)

var (
	// Global flags
	dbURL      string
	verbose    bool
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sociograph",
	Short: "Sociograph - social graph traversal over PostgreSQL",
	Long: `Sociograph runs comment-thread and follow-graph traversals against a
PostgreSQL social schema, in-process instead of inside recursive SQL.

Operations:
  - Build the full comment thread of a post, depth-ordered
  - Walk a comment's ancestor chain up to its thread root
  - Recommend friends-of-friends scored by mutual connections
  - Measure degrees of separation between two users`,
	Version: "1.2.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database connection URL (required)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// connectStore opens the Postgres-backed adjacency store from the --db flag.
func connectStore(ctx context.Context) (*pgstore.Store, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("--db flag is required")
	}

	store, err := pgstore.ConnectURL(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return store, nil
}
