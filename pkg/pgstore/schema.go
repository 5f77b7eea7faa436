package pgstore

import (
	"context"
	"fmt"
)

// Schema is the DDL for the tables the store reads. The seed command and the
// integration tests apply it; production deployments own their migrations.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id    BIGSERIAL PRIMARY KEY,
	username   VARCHAR(50) NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS posts (
	post_id    BIGSERIAL PRIMARY KEY,
	user_id    BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	content    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS comments (
	comment_id        BIGSERIAL PRIMARY KEY,
	post_id           BIGINT NOT NULL REFERENCES posts(post_id) ON DELETE CASCADE,
	user_id           BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	parent_comment_id BIGINT REFERENCES comments(comment_id) ON DELETE CASCADE,
	content           TEXT NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_comments_post ON comments(post_id);
CREATE INDEX IF NOT EXISTS idx_comments_parent ON comments(parent_comment_id);

CREATE TABLE IF NOT EXISTS follows (
	follower_id  BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	following_id BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	status       VARCHAR(10) NOT NULL DEFAULT 'pending'
	             CHECK (status IN ('pending', 'accepted')),
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (follower_id, following_id),
	CHECK (follower_id <> following_id)
);

CREATE INDEX IF NOT EXISTS idx_follows_following ON follows(following_id);
`

// EnsureSchema creates the tables and indexes if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
