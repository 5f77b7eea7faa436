package thread

import (
	"context"
	"testing"
	"time"

	"github.com/calebthorne/sociograph/pkg/memstore"
	"github.com/calebthorne/sociograph/pkg/social"
)

var testBase = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// seedComment adds a comment with a creation time derived from its id so the
// default fixtures have ids increasing with time.
func seedComment(t *testing.T, store *memstore.Store, id, postID int64, parentID *int64) {
	t.Helper()
	err := store.AddComment(social.Comment{
		ID:        id,
		PostID:    postID,
		AuthorID:  id,
		ParentID:  parentID,
		Content:   "comment",
		CreatedAt: testBase.Add(time.Duration(id) * time.Minute),
	})
	if err != nil {
		t.Fatalf("AddComment(%d) error = %v", id, err)
	}
}

func ptr(id int64) *int64 { return &id }

func TestBuilder_Build(t *testing.T) {
	tests := []struct {
		name          string
		maxDepth      int
		seed          func(t *testing.T, s *memstore.Store)
		postID        int64
		wantIDs       []int64
		wantDepths    []int
		wantTruncated bool
	}{
		{
			name:     "unknown post yields empty thread",
			maxDepth: 10,
			seed:     func(t *testing.T, s *memstore.Store) {},
			postID:   99,
			wantIDs:  []int64{},
		},
		{
			name:     "linear chain",
			maxDepth: 10,
			seed: func(t *testing.T, s *memstore.Store) {
				seedComment(t, s, 1, 7, nil)
				seedComment(t, s, 2, 7, ptr(1))
				seedComment(t, s, 3, 7, ptr(2))
			},
			postID:     7,
			wantIDs:    []int64{1, 2, 3},
			wantDepths: []int{0, 1, 2},
		},
		{
			name:     "siblings ordered by creation time",
			maxDepth: 10,
			seed: func(t *testing.T, s *memstore.Store) {
				seedComment(t, s, 1, 7, nil)
				// Replies created out of id order.
				for _, c := range []social.Comment{
					{ID: 5, PostID: 7, AuthorID: 5, ParentID: ptr(1), CreatedAt: testBase.Add(time.Minute)},
					{ID: 3, PostID: 7, AuthorID: 3, ParentID: ptr(1), CreatedAt: testBase.Add(2 * time.Minute)},
				} {
					if err := s.AddComment(c); err != nil {
						t.Fatalf("AddComment(%d) error = %v", c.ID, err)
					}
				}
			},
			postID:     7,
			wantIDs:    []int64{1, 5, 3},
			wantDepths: []int{0, 1, 1},
		},
		{
			name:     "subtree contiguity with branching",
			maxDepth: 10,
			seed: func(t *testing.T, s *memstore.Store) {
				// 1            2
				// ├── 3        └── 6
				// │   └── 5
				// └── 4
				seedComment(t, s, 1, 7, nil)
				seedComment(t, s, 2, 7, nil)
				seedComment(t, s, 3, 7, ptr(1))
				seedComment(t, s, 4, 7, ptr(1))
				seedComment(t, s, 5, 7, ptr(3))
				seedComment(t, s, 6, 7, ptr(2))
			},
			postID:     7,
			wantIDs:    []int64{1, 3, 5, 4, 2, 6},
			wantDepths: []int{0, 1, 2, 1, 0, 1},
		},
		{
			name:     "deep chain truncated at max depth",
			maxDepth: 2,
			seed: func(t *testing.T, s *memstore.Store) {
				seedComment(t, s, 1, 7, nil)
				seedComment(t, s, 2, 7, ptr(1))
				seedComment(t, s, 3, 7, ptr(2))
				seedComment(t, s, 4, 7, ptr(3))
			},
			postID:        7,
			wantIDs:       []int64{1, 2, 3},
			wantDepths:    []int{0, 1, 2},
			wantTruncated: true,
		},
		{
			name:     "chain exactly at max depth is not truncated",
			maxDepth: 2,
			seed: func(t *testing.T, s *memstore.Store) {
				seedComment(t, s, 1, 7, nil)
				seedComment(t, s, 2, 7, ptr(1))
				seedComment(t, s, 3, 7, ptr(2))
			},
			postID:     7,
			wantIDs:    []int64{1, 2, 3},
			wantDepths: []int{0, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()
			tt.seed(t, store)

			builder := NewBuilder(store, Config{MaxDepth: tt.maxDepth})
			thread, err := builder.Build(context.Background(), tt.postID)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}

			if len(thread.Nodes) != len(tt.wantIDs) {
				t.Fatalf("Build() returned %d nodes, want %d", len(thread.Nodes), len(tt.wantIDs))
			}
			for i, node := range thread.Nodes {
				if node.Comment.ID != tt.wantIDs[i] {
					t.Errorf("node[%d].ID = %d, want %d", i, node.Comment.ID, tt.wantIDs[i])
				}
				if node.Depth != tt.wantDepths[i] {
					t.Errorf("node[%d].Depth = %d, want %d", i, node.Depth, tt.wantDepths[i])
				}
			}
			if thread.Truncated != tt.wantTruncated {
				t.Errorf("Build() truncated = %v, want %v", thread.Truncated, tt.wantTruncated)
			}
		})
	}
}

func TestBuilder_PathPrefixProperty(t *testing.T) {
	store := memstore.New()
	seedComment(t, store, 1, 7, nil)
	seedComment(t, store, 2, 7, ptr(1))
	seedComment(t, store, 3, 7, ptr(2))
	seedComment(t, store, 4, 7, ptr(1))

	builder := NewBuilder(store, DefaultConfig())
	thread, err := builder.Build(context.Background(), 7)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	byID := make(map[int64]Node, len(thread.Nodes))
	for _, node := range thread.Nodes {
		byID[node.Comment.ID] = node
	}

	for _, node := range thread.Nodes {
		if len(node.Path) != node.Depth+1 {
			t.Errorf("node %d path length = %d, want depth+1 = %d",
				node.Comment.ID, len(node.Path), node.Depth+1)
		}
		if node.Path[len(node.Path)-1] != node.Comment.ID {
			t.Errorf("node %d path does not end in its own id: %v", node.Comment.ID, node.Path)
		}
		if node.Comment.ParentID == nil {
			continue
		}

		parent := byID[*node.Comment.ParentID]
		for i, id := range parent.Path {
			if node.Path[i] != id {
				t.Errorf("parent path %v is not a prefix of child path %v", parent.Path, node.Path)
				break
			}
		}
	}
}

// loopStore returns a comment as its own child, something no well-formed
// parent chain can produce.
type loopStore struct {
	social.Store
	root social.Comment
}

func (s *loopStore) RootComments(ctx context.Context, postID int64) ([]social.Comment, error) {
	return []social.Comment{s.root}, nil
}

func (s *loopStore) Children(ctx context.Context, parentID int64) ([]social.Comment, error) {
	return []social.Comment{s.root}, nil
}

func TestBuilder_VisitedGuardStopsCorruptData(t *testing.T) {
	store := &loopStore{root: social.Comment{ID: 1, PostID: 7, CreatedAt: testBase}}

	builder := NewBuilder(store, DefaultConfig())
	thread, err := builder.Build(context.Background(), 7)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(thread.Nodes) != 1 {
		t.Fatalf("Build() returned %d nodes, want 1 (revisits skipped)", len(thread.Nodes))
	}
}
