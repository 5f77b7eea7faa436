package pgstore

import (
	"context"

	"github.com/calebthorne/sociograph/pkg/social"
	"github.com/calebthorne/sociograph/pkg/thread"
)

// threadCTE builds the recursive thread query for a post. Depth starts at 0
// for root comments and the recursive term stops expanding at maxDepth, the
// same guard the in-process builder applies.
func threadCTE(postID int64, maxDepth int) (string, []any) {
	cte := NewRecursiveCTE("thread_tree", []string{
		"comment_id", "post_id", "user_id", "parent_comment_id",
		"content", "created_at", "depth", "path",
	}).
		Base(`
			SELECT c.comment_id, c.post_id, c.user_id, c.parent_comment_id,
			       c.content, c.created_at, 0, ARRAY[c.comment_id]
			FROM comments c
			WHERE c.post_id = $1 AND c.parent_comment_id IS NULL`, postID).
		Recurse(`
			SELECT c.comment_id, c.post_id, c.user_id, c.parent_comment_id,
			       c.content, c.created_at, t.depth + 1, t.path || c.comment_id
			FROM comments c
			JOIN thread_tree t ON c.parent_comment_id = t.comment_id
			WHERE t.depth < $2`, maxDepth)

	clause, args := cte.SQL()
	query := clause + `
		SELECT comment_id, post_id, user_id, parent_comment_id,
		       content, created_at, depth, path
		FROM thread_tree
		ORDER BY path`
	return query, args
}

// ThreadViaCTE pushes the whole thread walk down to PostgreSQL as a
// WITH RECURSIVE query. The integration tests use it as an oracle for the
// in-process builder; the CLI exposes it behind --pushdown.
//
// Truncation is not observable from the pushed-down form: the recursion guard
// drops deeper rows without reporting them. The in-process builder's
// Truncated flag exists to close that gap.
func (s *Store) ThreadViaCTE(ctx context.Context, postID int64, maxDepth int) ([]thread.Node, error) {
	if maxDepth <= 0 {
		maxDepth = thread.DefaultMaxDepth
	}

	query, args := threadCTE(postID, maxDepth)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, &social.StorageError{Op: "pgstore.ThreadViaCTE", Err: err}
	}
	defer rows.Close()

	var nodes []thread.Node
	for rows.Next() {
		var n thread.Node
		if err := rows.Scan(
			&n.Comment.ID, &n.Comment.PostID, &n.Comment.AuthorID,
			&n.Comment.ParentID, &n.Comment.Content, &n.Comment.CreatedAt,
			&n.Depth, &n.Path,
		); err != nil {
			return nil, &social.StorageError{Op: "pgstore.ThreadViaCTE", Err: err}
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, &social.StorageError{Op: "pgstore.ThreadViaCTE", Err: err}
	}
	return nodes, nil
}
