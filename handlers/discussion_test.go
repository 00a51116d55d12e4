package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"examprep_backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscussionRouter(db *sql.DB, userID string, isPaidUser bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("isPaidUser", isPaidUser)
		c.Next()
	})
	h := NewDiscussionHandler(db)
	r.GET("/api/discussions", h.ListDiscussions)
	r.GET("/api/discussions/:id", h.GetDiscussion)
	r.POST("/api/discussions", h.CreateDiscussion)
	r.POST("/api/discussions/:id/replies", h.CreateReply)
	r.POST("/api/discussions/:id/vote", h.VoteDiscussion)
	r.POST("/api/discussions/:id/resolve", h.ResolveDiscussion)
	r.POST("/api/replies/:id/vote", h.VoteReply)
	r.PUT("/api/replies/:id/accept", h.AcceptReply)
	return r
}

func TestVoteDiscussionUpsertsAndReturnsTally(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	// The upsert keyed on (user_id, discussion_id) is what keeps the vote
	// table at one row per voter per target.
	mock.ExpectExec(`ON CONFLICT \(user_id, discussion_id\)`).
		WithArgs("user-1", 7, "up").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT COALESCE\(SUM`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(3))

	body := []byte(`{"voteType": "up"}`)
	rec := performRequest(newDiscussionRouter(db, "user-1", true), http.MethodPost, "/api/discussions/7/vote", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.VoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "up", resp.VoteType)
	assert.Equal(t, 3, resp.VoteCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoteDiscussionRejectsUnknownDirection(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	body := []byte(`{"voteType": "sideways"}`)
	rec := performRequest(newDiscussionRouter(db, "user-1", true), http.MethodPost, "/api/discussions/7/vote", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVoteDiscussionNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	body := []byte(`{"voteType": "down"}`)
	rec := performRequest(newDiscussionRouter(db, "user-1", true), http.MethodPost, "/api/discussions/99/vote", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVoteReplyUpsertsOnReplyTarget(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(`ON CONFLICT \(user_id, reply_id\)`).
		WithArgs("user-1", 12, "down").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT COALESCE\(SUM`).
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(-1))

	body := []byte(`{"voteType": "down"}`)
	rec := performRequest(newDiscussionRouter(db, "user-1", true), http.MethodPost, "/api/replies/12/vote", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.VoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, -1, resp.VoteCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptReplyClearsPreviousAcceptedAnswer(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT discussion_id, is_accepted_answer FROM discussion_replies").
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows([]string{"discussion_id", "is_accepted_answer"}).AddRow(7, false))
	mock.ExpectQuery("SELECT user_id FROM discussions").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-1"))
	// Any previously accepted reply is cleared before the new one is set
	mock.ExpectExec("UPDATE discussion_replies SET is_accepted_answer = FALSE").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE discussion_replies SET is_accepted_answer = \$1`).
		WithArgs(true, 12).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE discussions SET is_resolved").
		WithArgs(true, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rec := performRequest(newDiscussionRouter(db, "user-1", true), http.MethodPut, "/api/replies/12/accept", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["is_accepted_answer"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptReplyTogglesOffWhenAlreadyAccepted(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT discussion_id, is_accepted_answer FROM discussion_replies").
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows([]string{"discussion_id", "is_accepted_answer"}).AddRow(7, true))
	mock.ExpectQuery("SELECT user_id FROM discussions").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-1"))
	mock.ExpectExec(`UPDATE discussion_replies SET is_accepted_answer = \$1`).
		WithArgs(false, 12).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE discussions SET is_resolved").
		WithArgs(false, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rec := performRequest(newDiscussionRouter(db, "user-1", true), http.MethodPut, "/api/replies/12/accept", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["is_accepted_answer"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptReplyOnlyDiscussionAuthor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT discussion_id, is_accepted_answer FROM discussion_replies").
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows([]string{"discussion_id", "is_accepted_answer"}).AddRow(7, false))
	mock.ExpectQuery("SELECT user_id FROM discussions").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("someone-else"))
	mock.ExpectRollback()

	rec := performRequest(newDiscussionRouter(db, "user-1", true), http.MethodPut, "/api/replies/12/accept", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestResolveDiscussionOnlyAuthor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id FROM discussions").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("someone-else"))

	body := []byte(`{"isResolved": true}`)
	rec := performRequest(newDiscussionRouter(db, "user-1", true), http.MethodPost, "/api/discussions/7/resolve", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestResolveDiscussionByAuthor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id FROM discussions").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-1"))
	mock.ExpectExec("UPDATE discussions SET is_resolved").
		WithArgs(false, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := []byte(`{"isResolved": false}`)
	rec := performRequest(newDiscussionRouter(db, "user-1", true), http.MethodPost, "/api/discussions/7/resolve", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["is_resolved"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDiscussionsTruncatesForFreeViewers(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM discussions`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery("FROM discussions d").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "content", "is_pinned", "is_resolved", "view_count",
			"created_at", "updated_at", "chapter_id", "topic_id", "user_id",
			"author_id", "author_name", "author_avatar_url",
			"vote_count", "reply_count", "has_accepted_answer",
		}))

	rec := performRequest(newDiscussionRouter(db, "user-1", false), http.MethodGet, "/api/discussions?limit=20", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DiscussionListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.RequiresPremium)
	assert.Equal(t, FreePreviewLimit, resp.Limit)
	assert.Equal(t, 12, resp.Total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDiscussionsPremiumViewerKeepsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM discussions`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery("FROM discussions d").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "content", "is_pinned", "is_resolved", "view_count",
			"created_at", "updated_at", "chapter_id", "topic_id", "user_id",
			"author_id", "author_name", "author_avatar_url",
			"vote_count", "reply_count", "has_accepted_answer",
		}))

	rec := performRequest(newDiscussionRouter(db, "user-1", true), http.MethodGet, "/api/discussions?limit=20", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DiscussionListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.RequiresPremium)
	assert.Equal(t, 20, resp.Limit)
}

func TestGetDiscussionNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE discussions SET view_count").
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM discussions d").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	rec := performRequest(newDiscussionRouter(db, "user-1", true), http.MethodGet, "/api/discussions/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateDiscussionRequiresTitleAndContent(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	body := []byte(`{"title": "", "content": ""}`)
	rec := performRequest(newDiscussionRouter(db, "user-1", true), http.MethodPost, "/api/discussions", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReplyDiscussionNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	body := []byte(`{"content": "an answer"}`)
	rec := performRequest(newDiscussionRouter(db, "user-1", true), http.MethodPost, "/api/discussions/99/replies", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
