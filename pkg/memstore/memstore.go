// Package memstore provides an in-memory social.Store backed by maps.
//
// It serves the unit tests and any caller that already holds the graph in
// memory. Reads are safe to run concurrently.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/calebthorne/sociograph/pkg/social"
)

// Store is a map-backed social.Store with mutation helpers for seeding.
type Store struct {
	mu       sync.RWMutex
	comments map[int64]social.Comment
	posts    map[int64]int64 // post id -> author id
	follows  map[int64]map[int64]social.FollowStatus
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		comments: make(map[int64]social.Comment),
		posts:    make(map[int64]int64),
		follows:  make(map[int64]map[int64]social.FollowStatus),
	}
}

// AddPost records a post and its author.
func (s *Store) AddPost(postID, authorID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[postID] = authorID
}

// AddComment adds a comment. The parent, if set, must already exist and
// belong to the same post.
func (s *Store) AddComment(c social.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[c.ID]; ok {
		return fmt.Errorf("comment %d already exists", c.ID)
	}
	if c.ParentID != nil {
		parent, ok := s.comments[*c.ParentID]
		if !ok {
			return fmt.Errorf("parent comment %d does not exist", *c.ParentID)
		}
		if parent.PostID != c.PostID {
			return fmt.Errorf("parent comment %d belongs to post %d, not %d",
				parent.ID, parent.PostID, c.PostID)
		}
	}

	s.comments[c.ID] = c
	return nil
}

// PutComment stores a comment without validating its parent link. Tests use
// it to construct deliberately corrupted parent chains.
func (s *Store) PutComment(c social.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[c.ID] = c
}

// AddFollow records a follow edge. Self-follows and duplicate ordered pairs
// are rejected.
func (s *Store) AddFollow(followerID, followingID int64, status social.FollowStatus) error {
	if followerID == followingID {
		return fmt.Errorf("user %d cannot follow themselves", followerID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.follows[followerID][followingID]; ok {
		return fmt.Errorf("follow edge %d -> %d already exists", followerID, followingID)
	}
	if s.follows[followerID] == nil {
		s.follows[followerID] = make(map[int64]social.FollowStatus)
	}
	s.follows[followerID][followingID] = status
	return nil
}

// AcceptFollow transitions a pending edge to accepted.
func (s *Store) AcceptFollow(followerID, followingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.follows[followerID][followingID]; !ok {
		return fmt.Errorf("follow edge %d -> %d does not exist", followerID, followingID)
	}
	s.follows[followerID][followingID] = social.StatusAccepted
	return nil
}

// Comment implements social.Store.
func (s *Store) Comment(ctx context.Context, id int64) (*social.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[id]
	if !ok {
		return nil, social.ErrNotFound
	}
	return &c, nil
}

// RootComments implements social.Store.
func (s *Store) RootComments(ctx context.Context, postID int64) ([]social.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var roots []social.Comment
	for _, c := range s.comments {
		if c.PostID == postID && c.ParentID == nil {
			roots = append(roots, c)
		}
	}
	sortComments(roots)
	return roots, nil
}

// Children implements social.Store.
func (s *Store) Children(ctx context.Context, parentID int64) ([]social.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var children []social.Comment
	for _, c := range s.comments {
		if c.ParentID != nil && *c.ParentID == parentID {
			children = append(children, c)
		}
	}
	sortComments(children)
	return children, nil
}

// AcceptedFollowees implements social.Store.
func (s *Store) AcceptedFollowees(ctx context.Context, userID int64) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var followees []int64
	for followingID, status := range s.follows[userID] {
		if status == social.StatusAccepted {
			followees = append(followees, followingID)
		}
	}
	sort.Slice(followees, func(i, j int) bool { return followees[i] < followees[j] })
	return followees, nil
}

// FollowerCount implements social.Store.
func (s *Store) FollowerCount(ctx context.Context, userID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, followees := range s.follows {
		if followees[userID] == social.StatusAccepted {
			count++
		}
	}
	return count, nil
}

// ContentCount implements social.Store.
func (s *Store) ContentCount(ctx context.Context, userID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, author := range s.posts {
		if author == userID {
			count++
		}
	}
	for _, c := range s.comments {
		if c.AuthorID == userID {
			count++
		}
	}
	return count, nil
}

// sortComments orders comments by creation time ascending, ties by id.
func sortComments(comments []social.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
}
