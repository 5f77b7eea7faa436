// Package social defines the domain types and the adjacency store contract
// shared by the traversal packages.
package social

import "time"

// FollowStatus is the lifecycle state of a follow edge.
type FollowStatus string

const (
	// StatusPending is a follow request that has not been accepted yet.
	// Pending edges are invisible to every traversal.
	StatusPending FollowStatus = "pending"

	// StatusAccepted is an established follower -> following edge.
	StatusAccepted FollowStatus = "accepted"
)

// Comment is a single comment on a post. A nil ParentID marks a thread root.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	AuthorID  int64     `json:"author_id"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// IsRoot reports whether the comment is a top-level comment.
func (c Comment) IsRoot() bool {
	return c.ParentID == nil
}

// FollowEdge is a directed follower -> following relationship.
// At most one edge exists per ordered pair, and a user never follows
// themselves.
type FollowEdge struct {
	FollowerID  int64        `json:"follower_id"`
	FollowingID int64        `json:"following_id"`
	Status      FollowStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}
