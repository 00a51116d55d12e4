package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"examprep_backend/gamification"
	"examprep_backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// FreeMonthlyTestLimit is how many mock tests a free-tier user may start
// per calendar month.
const FreeMonthlyTestLimit = 1

type MockTestHandler struct {
	db *sql.DB
}

func NewMockTestHandler(db *sql.DB) *MockTestHandler {
	return &MockTestHandler{db: db}
}

func (h *MockTestHandler) GetMockTests(c *gin.Context) {
	rows, err := h.db.Query(`
		SELECT id, test_type, title, questions_list, duration_minutes,
		       subject, passing_percentage, is_published, created_at
		FROM mock_tests
		WHERE is_published = TRUE
		ORDER BY created_at DESC
	`)
	if err != nil {
		log.Printf("Error fetching mock tests: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch mock tests"})
		return
	}
	defer rows.Close()

	var tests []models.MockTest
	for rows.Next() {
		var t models.MockTest
		if err := rows.Scan(
			&t.ID, &t.TestType, &t.Title, &t.QuestionsList, &t.DurationMinutes,
			&t.Subject, &t.PassingPercentage, &t.IsPublished, &t.CreatedAt,
		); err != nil {
			log.Printf("Error scanning mock test: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan mock test"})
			return
		}
		tests = append(tests, t)
	}

	c.JSON(http.StatusOK, tests)
}

func (h *MockTestHandler) GetAttemptsThisMonth(c *gin.Context) {
	userID := c.GetString("userID")

	var count int
	err := h.db.QueryRow(`
		SELECT COUNT(*) FROM test_sessions
		WHERE user_id = $1 AND started_at >= DATE_TRUNC('month', NOW())
	`, userID).Scan(&count)
	if err != nil {
		log.Printf("Error fetching test attempts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch test attempts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *MockTestHandler) GetMockTest(c *gin.Context) {
	testID, err := strconv.Atoi(c.Param("id"))
	if err != nil || testID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid test ID"})
		return
	}

	var test models.MockTest
	err = h.db.QueryRow(`
		SELECT id, test_type, title, questions_list, duration_minutes,
		       subject, passing_percentage, is_published, created_at
		FROM mock_tests
		WHERE id = $1
	`, testID).Scan(
		&test.ID, &test.TestType, &test.Title, &test.QuestionsList, &test.DurationMinutes,
		&test.Subject, &test.PassingPercentage, &test.IsPublished, &test.CreatedAt,
	)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Test not found"})
		return
	} else if err != nil {
		log.Printf("Error fetching mock test: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch mock test"})
		return
	}

	if len(test.QuestionsList) == 0 {
		log.Printf("Test %d has an empty question list", testID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Test has no questions"})
		return
	}

	rows, err := h.db.Query(`
		SELECT id, chapter_id, question, options, correct_answer, explanation, subject
		FROM questions
		WHERE id = ANY($1)
	`, pq.Array([]int(test.QuestionsList)))
	if err != nil {
		log.Printf("Error fetching questions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		var optionsRaw []byte
		if err := rows.Scan(&q.ID, &q.ChapterID, &q.Question, &optionsRaw, &q.CorrectAnswer, &q.Explanation, &q.Subject); err != nil {
			log.Printf("Error scanning question: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan question"})
			return
		}
		if err := json.Unmarshal(optionsRaw, &q.Options); err != nil {
			log.Printf("Error parsing options for question %d: %v", q.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse question options"})
			return
		}
		questions = append(questions, q)
	}

	// Orphaned ids in the stored list are tolerated: respond with what
	// resolved and log the mismatch instead of failing the request.
	if len(questions) != len(test.QuestionsList) {
		log.Printf("Test %d: expected %d questions, found %d", testID, len(test.QuestionsList), len(questions))
	}

	c.JSON(http.StatusOK, models.MockTestDetailResponse{
		Test:      test,
		Questions: orderQuestions(test.QuestionsList, questions),
	})
}

// orderQuestions re-sequences fetched rows to match the stored id list.
// Question order is pedagogically meaningful, so the list is the contract,
// not whatever order the store returned. Ids that resolved to nothing are
// skipped.
func orderQuestions(ids []int, questions []models.Question) []models.Question {
	byID := make(map[int]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	ordered := make([]models.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered
}

func (h *MockTestHandler) StartTest(c *gin.Context) {
	userID := c.GetString("userID")
	isPaidUser := c.GetBool("isPaidUser")
	isAdmin := c.GetBool("isAdmin")

	testID, err := strconv.Atoi(c.Param("id"))
	if err != nil || testID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid test ID"})
		return
	}

	if !isPaidUser && !isAdmin {
		var attemptsThisMonth int
		err := h.db.QueryRow(`
			SELECT COUNT(*) FROM test_sessions
			WHERE user_id = $1 AND started_at >= DATE_TRUNC('month', NOW())
		`, userID).Scan(&attemptsThisMonth)
		if err != nil {
			log.Printf("Error counting attempts: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start test"})
			return
		}

		if attemptsThisMonth >= FreeMonthlyTestLimit {
			c.JSON(http.StatusForbidden, gin.H{
				"error":        "PREMIUM_REQUIRED",
				"message":      "You have used your free mock test for this month. Upgrade to Premium for unlimited access.",
				"freeLimit":    FreeMonthlyTestLimit,
				"attemptsUsed": attemptsThisMonth,
			})
			return
		}
	}

	var testType string
	var questionsList models.IntList
	var durationMinutes int
	err = h.db.QueryRow(`
		SELECT test_type, questions_list, duration_minutes FROM mock_tests WHERE id = $1
	`, testID).Scan(&testType, &questionsList, &durationMinutes)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Test not found"})
		return
	} else if err != nil {
		log.Printf("Error fetching mock test: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start test"})
		return
	}

	// The question list is copied into the session so edits to the mock
	// test never affect sessions already underway.
	session := models.TestSession{
		ID:            uuid.NewString(),
		UserID:        userID,
		TestType:      testType,
		QuestionsList: questionsList,
		Status:        "in_progress",
	}

	err = h.db.QueryRow(`
		INSERT INTO test_sessions (id, user_id, test_type, questions_list, started_at, ends_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW() + $5 * INTERVAL '1 minute')
		RETURNING started_at, ends_at
	`, session.ID, session.UserID, session.TestType, session.QuestionsList, durationMinutes).Scan(
		&session.StartedAt, &session.EndsAt,
	)
	if err != nil {
		log.Printf("Error creating test session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start test"})
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *MockTestHandler) SubmitTest(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("id")

	var req models.SubmitSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM test_sessions WHERE id = $1)`, sessionID).Scan(&exists); err != nil {
		log.Printf("Error checking session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit test"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	// The status guard makes a session submittable exactly once: a second
	// submit matches zero rows and is rejected.
	result, err := tx.Exec(`
		UPDATE test_sessions SET status = 'completed', score = $1
		WHERE id = $2 AND status = 'in_progress'
	`, req.Score, sessionID)
	if err != nil {
		log.Printf("Error completing session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit test"})
		return
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error verifying session update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit test"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Session already submitted"})
		return
	}

	xpReward := gamification.RewardForScore(req.Score)
	if xpReward > 0 {
		description := fmt.Sprintf("Completed mock test with score %d", req.Score)
		if err := gamification.Award(tx, userID, xpReward, gamification.SourceMockTest, sessionID, description); err != nil {
			log.Printf("Error awarding xp: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit test"})
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("Error committing transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit test"})
		return
	}

	c.JSON(http.StatusOK, models.SubmitSessionResponse{
		Success:  true,
		Score:    req.Score,
		XPReward: xpReward,
	})
}
