package thread

import (
	"context"
	"errors"
	"testing"

	"github.com/calebthorne/sociograph/pkg/memstore"
	"github.com/calebthorne/sociograph/pkg/social"
)

func TestWalker_Ancestors(t *testing.T) {
	store := memstore.New()
	seedComment(t, store, 1, 7, nil)
	seedComment(t, store, 2, 7, ptr(1))
	seedComment(t, store, 3, 7, ptr(2))

	walker := NewWalker(store)

	tests := []struct {
		name      string
		commentID int64
		wantIDs   []int64
		wantErr   error
	}{
		{
			name:      "root comment yields only itself",
			commentID: 1,
			wantIDs:   []int64{1},
		},
		{
			name:      "chain walks from comment to root",
			commentID: 3,
			wantIDs:   []int64{3, 2, 1},
		},
		{
			name:      "mid-chain comment",
			commentID: 2,
			wantIDs:   []int64{2, 1},
		},
		{
			name:      "unknown comment",
			commentID: 99,
			wantErr:   social.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain, err := walker.Ancestors(context.Background(), tt.commentID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Ancestors() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Ancestors() error = %v", err)
			}

			if len(chain) != len(tt.wantIDs) {
				t.Fatalf("Ancestors() returned %d comments, want %d", len(chain), len(tt.wantIDs))
			}
			for i, c := range chain {
				if c.ID != tt.wantIDs[i] {
					t.Errorf("chain[%d].ID = %d, want %d", i, c.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestWalker_CycleDetected(t *testing.T) {
	store := memstore.New()
	// Mutually-parented comments: impossible through AddComment, planted
	// directly to simulate corrupted storage.
	store.PutComment(social.Comment{ID: 1, PostID: 7, ParentID: ptr(2), CreatedAt: testBase})
	store.PutComment(social.Comment{ID: 2, PostID: 7, ParentID: ptr(1), CreatedAt: testBase})

	walker := NewWalker(store)
	_, err := walker.Ancestors(context.Background(), 1)
	if !errors.Is(err, social.ErrCycleDetected) {
		t.Fatalf("Ancestors() error = %v, want ErrCycleDetected", err)
	}
}

func TestWalker_DanglingParent(t *testing.T) {
	store := memstore.New()
	store.PutComment(social.Comment{ID: 1, PostID: 7, ParentID: ptr(42), CreatedAt: testBase})

	walker := NewWalker(store)
	_, err := walker.Ancestors(context.Background(), 1)
	if !errors.Is(err, social.ErrNotFound) {
		t.Fatalf("Ancestors() error = %v, want ErrNotFound", err)
	}
}

// Chain length reported by Ancestors matches the depth assigned by Build for
// the same comment.
func TestWalker_DepthAgreesWithBuilder(t *testing.T) {
	store := memstore.New()
	seedComment(t, store, 1, 7, nil)
	seedComment(t, store, 2, 7, ptr(1))
	seedComment(t, store, 3, 7, ptr(2))
	seedComment(t, store, 4, 7, ptr(1))

	builder := NewBuilder(store, DefaultConfig())
	walker := NewWalker(store)

	thread, err := builder.Build(context.Background(), 7)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for _, node := range thread.Nodes {
		chain, err := walker.Ancestors(context.Background(), node.Comment.ID)
		if err != nil {
			t.Fatalf("Ancestors(%d) error = %v", node.Comment.ID, err)
		}
		if len(chain) != node.Depth+1 {
			t.Errorf("Ancestors(%d) length = %d, want depth+1 = %d",
				node.Comment.ID, len(chain), node.Depth+1)
		}
	}
}
