// Package pathfind computes degrees of separation between users over
// accepted follow edges. The search is level-synchronized BFS, so the first
// route found is a shortest one.
package pathfind

import (
	"context"

	"github.com/calebthorne/sociograph/pkg/social"
)

// DefaultMaxHops bounds the separation search.
const DefaultMaxHops = 6

// Config controls the path search.
type Config struct {
	// MaxHops bounds the search depth. A target further away than MaxHops
	// is reported as unreachable.
	MaxHops int
}

// DefaultConfig returns the default search configuration.
func DefaultConfig() Config {
	return Config{MaxHops: DefaultMaxHops}
}

// Route is a discovered connection between two users.
type Route struct {
	// Distance is the hop count along accepted follow edges.
	Distance int `json:"distance"`
	// Path lists the user ids from source to target inclusive.
	Path []int64 `json:"path"`
}

// Finder runs bounded breadth-first searches over the follow graph.
type Finder struct {
	store social.Store
	cfg   Config
}

// New creates a Finder. A non-positive MaxHops falls back to the default.
func New(store social.Store, cfg Config) *Finder {
	if cfg.MaxHops <= 0 {
		cfg.MaxHops = DefaultMaxHops
	}
	return &Finder{store: store, cfg: cfg}
}

// Distance returns a shortest route from one user to another, or (nil, nil)
// when the target is unreachable within MaxHops; unreachable is a normal
// outcome, not an error. Edges are directed, so Distance(a, b) and
// Distance(b, a) may disagree. The context is checked between frontier
// levels so long searches cancel cleanly.
func (f *Finder) Distance(ctx context.Context, fromID, toID int64) (*Route, error) {
	if fromID == toID {
		return &Route{Distance: 0, Path: []int64{fromID}}, nil
	}

	type state struct {
		id   int64
		path []int64
	}

	visited := map[int64]bool{fromID: true}
	frontier := []state{{id: fromID, path: []int64{fromID}}}

	for hop := 1; hop <= f.cfg.MaxHops && len(frontier) > 0; hop++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var next []state
		for _, cur := range frontier {
			followees, err := f.store.AcceptedFollowees(ctx, cur.id)
			if err != nil {
				return nil, err
			}

			for _, neighborID := range followees {
				if visited[neighborID] {
					continue
				}

				path := make([]int64, len(cur.path)+1)
				copy(path, cur.path)
				path[len(cur.path)] = neighborID

				if neighborID == toID {
					return &Route{Distance: hop, Path: path}, nil
				}

				visited[neighborID] = true
				next = append(next, state{id: neighborID, path: path})
			}
		}
		frontier = next
	}

	return nil, nil
}
