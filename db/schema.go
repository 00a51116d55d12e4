package db

import (
	"database/sql"
	"fmt"
)

const Schema = `
-- Create users table
CREATE TABLE IF NOT EXISTS users (
    id VARCHAR(36) PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    role VARCHAR(20) NOT NULL DEFAULT 'student',
    avatar_url VARCHAR(500),
    is_admin BOOLEAN NOT NULL DEFAULT FALSE,
    is_paid_user BOOLEAN NOT NULL DEFAULT FALSE,
    current_level INTEGER NOT NULL DEFAULT 1,
    total_points INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Create refresh_tokens table
CREATE TABLE IF NOT EXISTS refresh_tokens (
    id SERIAL PRIMARY KEY,
    user_id VARCHAR(36) NOT NULL,
    token VARCHAR(255) UNIQUE NOT NULL,
    expires_at TIMESTAMPTZ NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

-- Create chapters table
CREATE TABLE IF NOT EXISTS chapters (
    id SERIAL PRIMARY KEY,
    chapter_number INTEGER NOT NULL,
    chapter_title VARCHAR(200) NOT NULL,
    subject VARCHAR(50) NOT NULL,
    class_level VARCHAR(20) NOT NULL
);

-- Create topics table
CREATE TABLE IF NOT EXISTS topics (
    id SERIAL PRIMARY KEY,
    topic_name VARCHAR(200) NOT NULL,
    subject VARCHAR(50) NOT NULL
);

-- Create questions table
CREATE TABLE IF NOT EXISTS questions (
    id SERIAL PRIMARY KEY,
    chapter_id INTEGER REFERENCES chapters(id),
    question TEXT NOT NULL,
    options JSONB NOT NULL,
    correct_answer VARCHAR(10) NOT NULL,
    explanation TEXT,
    subject VARCHAR(50)
);

-- Create mock_tests table
CREATE TABLE IF NOT EXISTS mock_tests (
    id SERIAL PRIMARY KEY,
    test_type VARCHAR(50) NOT NULL,
    title VARCHAR(200) NOT NULL,
    questions_list JSONB NOT NULL,
    duration_minutes INTEGER NOT NULL,
    subject VARCHAR(50),
    passing_percentage INTEGER DEFAULT 40,
    is_published BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Create test_sessions table
CREATE TABLE IF NOT EXISTS test_sessions (
    id VARCHAR(36) PRIMARY KEY,
    user_id VARCHAR(36) NOT NULL,
    test_type VARCHAR(50) NOT NULL,
    questions_list JSONB NOT NULL,
    started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    ends_at TIMESTAMPTZ NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'in_progress',
    score INTEGER,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

-- Create xp_transactions table (append-only ledger)
CREATE TABLE IF NOT EXISTS xp_transactions (
    id SERIAL PRIMARY KEY,
    user_id VARCHAR(36) NOT NULL,
    amount INTEGER NOT NULL,
    source VARCHAR(100) NOT NULL,
    source_id VARCHAR(100),
    description TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
    UNIQUE(user_id, source, source_id)
);

-- Create discussions table
CREATE TABLE IF NOT EXISTS discussions (
    id SERIAL PRIMARY KEY,
    chapter_id INTEGER REFERENCES chapters(id),
    topic_id INTEGER REFERENCES topics(id),
    user_id VARCHAR(36) NOT NULL,
    title VARCHAR(300) NOT NULL,
    content TEXT NOT NULL,
    is_pinned BOOLEAN NOT NULL DEFAULT FALSE,
    is_resolved BOOLEAN NOT NULL DEFAULT FALSE,
    view_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

-- Create discussion_replies table
CREATE TABLE IF NOT EXISTS discussion_replies (
    id SERIAL PRIMARY KEY,
    discussion_id INTEGER NOT NULL,
    user_id VARCHAR(36) NOT NULL,
    content TEXT NOT NULL,
    is_accepted_answer BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    FOREIGN KEY (discussion_id) REFERENCES discussions(id) ON DELETE CASCADE,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

-- Create discussion_votes table
-- One row per (voter, target). The partial unique indexes below back the
-- ON CONFLICT upserts in the vote handlers.
CREATE TABLE IF NOT EXISTS discussion_votes (
    id SERIAL PRIMARY KEY,
    user_id VARCHAR(36) NOT NULL,
    discussion_id INTEGER REFERENCES discussions(id) ON DELETE CASCADE,
    reply_id INTEGER REFERENCES discussion_replies(id) ON DELETE CASCADE,
    vote_type VARCHAR(10) NOT NULL CHECK (vote_type IN ('up', 'down')),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
    CHECK (discussion_id IS NOT NULL OR reply_id IS NOT NULL)
);

CREATE UNIQUE INDEX IF NOT EXISTS discussion_votes_user_discussion_idx
    ON discussion_votes(user_id, discussion_id) WHERE discussion_id IS NOT NULL;
CREATE UNIQUE INDEX IF NOT EXISTS discussion_votes_user_reply_idx
    ON discussion_votes(user_id, reply_id) WHERE reply_id IS NOT NULL;

CREATE INDEX IF NOT EXISTS discussions_chapter_idx ON discussions(chapter_id);
CREATE INDEX IF NOT EXISTS discussion_replies_discussion_idx ON discussion_replies(discussion_id);
CREATE INDEX IF NOT EXISTS test_sessions_user_idx ON test_sessions(user_id);
CREATE INDEX IF NOT EXISTS xp_transactions_user_idx ON xp_transactions(user_id);
`

// InitSchema initializes the database schema
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	if err != nil {
		return fmt.Errorf("error initializing database schema: %w", err)
	}
	return nil
}
