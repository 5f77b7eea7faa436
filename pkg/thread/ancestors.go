package thread

import (
	"context"

	"github.com/calebthorne/sociograph/pkg/social"
)

// DefaultMaxSteps bounds the ancestor walk. No legitimate thread comes close;
// the cap exists so corrupted parent links cannot loop forever.
const DefaultMaxSteps = 1000

// Walker walks comment parent chains upward to the root.
type Walker struct {
	store    social.Store
	maxSteps int
}

// NewWalker creates a Walker with the default step cap.
func NewWalker(store social.Store) *Walker {
	return &Walker{store: store, maxSteps: DefaultMaxSteps}
}

// Ancestors returns the chain from the comment itself up to its thread root.
// A root comment yields a single-element chain. An unknown id returns
// social.ErrNotFound; a parent cycle returns social.ErrCycleDetected rather
// than looping.
func (w *Walker) Ancestors(ctx context.Context, commentID int64) ([]social.Comment, error) {
	current, err := w.store.Comment(ctx, commentID)
	if err != nil {
		return nil, err
	}

	chain := []social.Comment{*current}
	seen := map[int64]bool{current.ID: true}

	for steps := 0; current.ParentID != nil; steps++ {
		if steps >= w.maxSteps {
			return nil, social.ErrCycleDetected
		}

		parentID := *current.ParentID
		if seen[parentID] {
			return nil, social.ErrCycleDetected
		}

		parent, err := w.store.Comment(ctx, parentID)
		if err != nil {
			// A dangling parent id is corrupt data too, but it terminates
			// the walk; surface the lookup failure as-is.
			return nil, err
		}

		chain = append(chain, *parent)
		seen[parent.ID] = true
		current = parent
	}

	return chain, nil
}
