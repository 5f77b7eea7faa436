package pgstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/calebthorne/sociograph/pkg/social"
)

const commentColumns = `comment_id, post_id, user_id, parent_comment_id, content, created_at`

// Comment implements social.Store.
func (s *Store) Comment(ctx context.Context, id int64) (*social.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE comment_id = $1
	`

	var c social.Comment
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.PostID, &c.AuthorID, &c.ParentID, &c.Content, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, social.ErrNotFound
	}
	if err != nil {
		return nil, &social.StorageError{Op: "pgstore.Comment", Err: err}
	}
	return &c, nil
}

// RootComments implements social.Store.
func (s *Store) RootComments(ctx context.Context, postID int64) ([]social.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE post_id = $1 AND parent_comment_id IS NULL
		ORDER BY created_at ASC, comment_id ASC
	`
	return s.queryComments(ctx, "pgstore.RootComments", query, postID)
}

// Children implements social.Store.
func (s *Store) Children(ctx context.Context, parentID int64) ([]social.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE parent_comment_id = $1
		ORDER BY created_at ASC, comment_id ASC
	`
	return s.queryComments(ctx, "pgstore.Children", query, parentID)
}

// AcceptedFollowees implements social.Store.
func (s *Store) AcceptedFollowees(ctx context.Context, userID int64) ([]int64, error) {
	query := `
		SELECT following_id
		FROM follows
		WHERE follower_id = $1 AND status = 'accepted'
		ORDER BY following_id ASC
	`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, &social.StorageError{Op: "pgstore.AcceptedFollowees", Err: err}
	}
	defer rows.Close()

	var followees []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, &social.StorageError{Op: "pgstore.AcceptedFollowees", Err: err}
		}
		followees = append(followees, id)
	}
	if err := rows.Err(); err != nil {
		return nil, &social.StorageError{Op: "pgstore.AcceptedFollowees", Err: err}
	}
	return followees, nil
}

// FollowerCount implements social.Store.
func (s *Store) FollowerCount(ctx context.Context, userID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM follows
		WHERE following_id = $1 AND status = 'accepted'
	`

	var count int
	if err := s.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, &social.StorageError{Op: "pgstore.FollowerCount", Err: err}
	}
	return count, nil
}

// ContentCount implements social.Store.
func (s *Store) ContentCount(ctx context.Context, userID int64) (int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM posts WHERE user_id = $1) +
			(SELECT COUNT(*) FROM comments WHERE user_id = $1)
	`

	var count int
	if err := s.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, &social.StorageError{Op: "pgstore.ContentCount", Err: err}
	}
	return count, nil
}

// queryComments runs a comment query and scans the rows.
func (s *Store) queryComments(ctx context.Context, op, query string, args ...any) ([]social.Comment, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, &social.StorageError{Op: op, Err: err}
	}
	defer rows.Close()

	var comments []social.Comment
	for rows.Next() {
		var c social.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.ParentID, &c.Content, &c.CreatedAt); err != nil {
			return nil, &social.StorageError{Op: op, Err: err}
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &social.StorageError{Op: op, Err: err}
	}
	return comments, nil
}

// InsertUser creates a user and returns its id.
func (s *Store) InsertUser(ctx context.Context, username string) (int64, error) {
	query := `INSERT INTO users (username) VALUES ($1) RETURNING user_id`

	var id int64
	if err := s.pool.QueryRow(ctx, query, username).Scan(&id); err != nil {
		return 0, &social.StorageError{Op: "pgstore.InsertUser", Err: err}
	}
	return id, nil
}

// InsertPost creates a post and returns its id.
func (s *Store) InsertPost(ctx context.Context, userID int64, content string) (int64, error) {
	query := `INSERT INTO posts (user_id, content) VALUES ($1, $2) RETURNING post_id`

	var id int64
	if err := s.pool.QueryRow(ctx, query, userID, content).Scan(&id); err != nil {
		return 0, &social.StorageError{Op: "pgstore.InsertPost", Err: err}
	}
	return id, nil
}

// InsertComment creates a comment and returns its id. ParentID may be nil for
// a root comment.
func (s *Store) InsertComment(ctx context.Context, postID, userID int64, parentID *int64, content string) (int64, error) {
	query := `
		INSERT INTO comments (post_id, user_id, parent_comment_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING comment_id
	`

	var id int64
	if err := s.pool.QueryRow(ctx, query, postID, userID, parentID, content).Scan(&id); err != nil {
		return 0, &social.StorageError{Op: "pgstore.InsertComment", Err: err}
	}
	return id, nil
}

// InsertFollow creates a follow edge with the given status.
func (s *Store) InsertFollow(ctx context.Context, followerID, followingID int64, status social.FollowStatus) error {
	query := `
		INSERT INTO follows (follower_id, following_id, status)
		VALUES ($1, $2, $3)
	`

	if _, err := s.pool.Exec(ctx, query, followerID, followingID, string(status)); err != nil {
		return &social.StorageError{Op: "pgstore.InsertFollow", Err: err}
	}
	return nil
}
