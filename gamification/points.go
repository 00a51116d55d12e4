package gamification

import (
	"database/sql"
	"fmt"
)

const (
	// PointsPerLevel is how many total points each level spans.
	PointsPerLevel = 1000

	// ScorePerXP is how many score points convert into one XP.
	ScorePerXP = 10

	SourceMockTest = "mock_test"
)

// RewardForScore converts a raw test score into XP: floor(score / 10).
func RewardForScore(score int) int {
	if score <= 0 {
		return 0
	}
	return score / ScorePerXP
}

// LevelForPoints derives a user's level from their total points.
// 0-999 points is level 1, 1000-1999 is level 2, and so on.
func LevelForPoints(totalPoints int) int {
	if totalPoints < 0 {
		return 1
	}
	return totalPoints/PointsPerLevel + 1
}

// Award appends an XP ledger entry and bumps the user's denormalized
// total_points and current_level inside the caller's transaction. The
// user update is a single conditional statement so concurrent awards
// never lose an increment.
func Award(tx *sql.Tx, userID string, amount int, source, sourceID, description string) error {
	if amount <= 0 {
		return nil
	}

	_, err := tx.Exec(`
		INSERT INTO xp_transactions (user_id, amount, source, source_id, description)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, amount, source, sourceID, description)
	if err != nil {
		return fmt.Errorf("error recording xp transaction: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE users
		SET total_points = total_points + $1,
		    current_level = FLOOR((total_points + $1) / $2) + 1
		WHERE id = $3
	`, amount, PointsPerLevel, userID)
	if err != nil {
		return fmt.Errorf("error updating user points: %w", err)
	}

	return nil
}
