// Package thread builds depth-ordered comment trees and ancestor chains.
//
// Threads are assembled in-process as an explicit worklist walk over the
// adjacency store. The result matches what a WITH RECURSIVE query over the
// comments table produces, but the depth bound is reported instead of
// applied silently.
package thread

import (
	"context"

	"github.com/calebthorne/sociograph/pkg/social"
)

// DefaultMaxDepth bounds thread expansion. Roots sit at depth 0.
const DefaultMaxDepth = 10

// Config controls thread construction.
type Config struct {
	// MaxDepth is the deepest node depth included in a thread (roots are at
	// depth 0). Nodes at MaxDepth are kept but not expanded; anything below
	// them is dropped and reported via Thread.Truncated.
	MaxDepth int
}

// DefaultConfig returns the default builder configuration.
func DefaultConfig() Config {
	return Config{MaxDepth: DefaultMaxDepth}
}

// Node is one comment inside a built thread.
type Node struct {
	Comment social.Comment `json:"comment"`
	// Depth is 0 for root comments and parent depth + 1 otherwise.
	Depth int `json:"depth"`
	// Path lists the ancestor comment ids from the root down to the node
	// itself. A parent's path is a strict prefix of every descendant's path.
	Path []int64 `json:"path"`
}

// Thread is the full comment tree of a single post in depth-first preorder:
// every node is immediately followed by its entire subtree, siblings in
// creation order.
type Thread struct {
	Nodes []Node `json:"nodes"`
	// Truncated reports whether any comment was cut by the depth bound.
	Truncated bool `json:"truncated"`
}

// Builder builds threads from an adjacency store.
type Builder struct {
	store social.Store
	cfg   Config
}

// NewBuilder creates a Builder. A non-positive MaxDepth falls back to the
// default.
func NewBuilder(store social.Store, cfg Config) *Builder {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return &Builder{store: store, cfg: cfg}
}

// Build assembles the comment thread of a post. An unknown post yields an
// empty thread, not an error.
func (b *Builder) Build(ctx context.Context, postID int64) (*Thread, error) {
	roots, err := b.store.RootComments(ctx, postID)
	if err != nil {
		return nil, err
	}

	thread := &Thread{Nodes: make([]Node, 0, len(roots))}
	visited := make(map[int64]bool, len(roots))

	// Explicit stack, children pushed in reverse so that popping yields
	// preorder with siblings in creation order.
	stack := make([]Node, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		c := roots[i]
		stack = append(stack, Node{Comment: c, Depth: 0, Path: []int64{c.ID}})
	}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// The parent chain cannot legitimately cycle, but the store's
		// integrity is not ours to assume. A revisited id is skipped.
		if visited[node.Comment.ID] {
			continue
		}
		visited[node.Comment.ID] = true
		thread.Nodes = append(thread.Nodes, node)

		children, err := b.store.Children(ctx, node.Comment.ID)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			continue
		}

		if node.Depth >= b.cfg.MaxDepth {
			// Deeper replies exist but fall outside the bound.
			thread.Truncated = true
			continue
		}

		for i := len(children) - 1; i >= 0; i-- {
			c := children[i]
			path := make([]int64, len(node.Path)+1)
			copy(path, node.Path)
			path[len(node.Path)] = c.ID
			stack = append(stack, Node{Comment: c, Depth: node.Depth + 1, Path: path})
		}
	}

	return thread, nil
}
