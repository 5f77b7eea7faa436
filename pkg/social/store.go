package social

import "context"

// Store is the read-only adjacency surface the traversal packages run
// against. Implementations must support concurrent reads; they own their
// internal locking.
//
// Lookups for unknown ids return empty slices rather than errors. Only
// Comment, which fetches a single entity, reports ErrNotFound.
type Store interface {
	// Comment returns a single comment by id, or ErrNotFound.
	Comment(ctx context.Context, id int64) (*Comment, error)

	// RootComments returns the parentless comments of a post, ordered by
	// creation time ascending (ties broken by id).
	RootComments(ctx context.Context, postID int64) ([]Comment, error)

	// Children returns the direct replies to a comment, ordered by creation
	// time ascending (ties broken by id).
	Children(ctx context.Context, parentID int64) ([]Comment, error)

	// AcceptedFollowees returns the ids of users the given user follows with
	// accepted status.
	AcceptedFollowees(ctx context.Context, userID int64) ([]int64, error)

	// FollowerCount returns the number of accepted incoming follow edges.
	FollowerCount(ctx context.Context, userID int64) (int, error)

	// ContentCount returns how many posts and comments the user has authored.
	ContentCount(ctx context.Context, userID int64) (int, error)
}
