package gamification

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewardForScore(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{0, 0},
		{9, 0},
		{10, 1},
		{87, 8},
		{99, 9},
		{100, 10},
		{-5, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RewardForScore(tt.score), "score %d", tt.score)
	}
}

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		totalPoints int
		expected    int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1999, 2},
		{2000, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LevelForPoints(tt.totalPoints), "points %d", tt.totalPoints)
	}
}

func TestAwardAppendsLedgerAndBumpsUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO xp_transactions").
		WithArgs("user-1", 8, SourceMockTest, "session-1", "Completed mock test with score 87").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE users").
		WithArgs(8, PointsPerLevel, "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	err = Award(tx, "user-1", 8, SourceMockTest, "session-1", "Completed mock test with score 87")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAwardZeroAmountIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	require.NoError(t, Award(tx, "user-1", 0, SourceMockTest, "session-1", ""))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}
