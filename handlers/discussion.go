package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"examprep_backend/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// FreePreviewLimit caps how many discussions a non-premium viewer gets
// per page. The list is truncated, never rejected.
const FreePreviewLimit = 5

const voteTallySQL = `COALESCE((
	SELECT SUM(CASE WHEN vote_type = 'up' THEN 1 ELSE -1 END)
	FROM discussion_votes
	WHERE discussion_id = d.id
), 0)`

const replyVoteTallySQL = `COALESCE((
	SELECT SUM(CASE WHEN vote_type = 'up' THEN 1 ELSE -1 END)
	FROM discussion_votes
	WHERE reply_id = r.id
), 0)`

type DiscussionHandler struct {
	db *sql.DB
}

func NewDiscussionHandler(db *sql.DB) *DiscussionHandler {
	return &DiscussionHandler{db: db}
}

func (h *DiscussionHandler) ListDiscussions(c *gin.Context) {
	isPaidUser := c.GetBool("isPaidUser")

	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	offset := 0
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	// Free viewers get a truncated preview of the community feed
	requiresPremium := !isPaidUser
	if requiresPremium && limit > FreePreviewLimit {
		limit = FreePreviewLimit
	}

	conditions := " WHERE 1=1"
	args := []interface{}{}

	if chapterID := c.Query("chapterId"); chapterID != "" {
		id, err := strconv.Atoi(chapterID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chapter ID"})
			return
		}
		args = append(args, id)
		conditions += " AND d.chapter_id = $" + strconv.Itoa(len(args))
	}
	if topicID := c.Query("topicId"); topicID != "" {
		id, err := strconv.Atoi(topicID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic ID"})
			return
		}
		args = append(args, id)
		conditions += " AND d.topic_id = $" + strconv.Itoa(len(args))
	}
	switch c.Query("resolved") {
	case "true":
		conditions += " AND d.is_resolved = TRUE"
	case "false":
		conditions += " AND d.is_resolved = FALSE"
	}
	if search := c.Query("search"); search != "" {
		args = append(args, "%"+search+"%")
		n := strconv.Itoa(len(args))
		conditions += " AND (d.title ILIKE $" + n + " OR d.content ILIKE $" + n + ")"
	}

	// Pinned discussions always sort first. "votes" orders by tally with
	// recency as tie-breaker; "unanswered" floats reply-less discussions
	// to the top but does not filter the rest out.
	orderBy := " ORDER BY d.is_pinned DESC, d.created_at DESC"
	switch c.Query("sortBy") {
	case "votes":
		orderBy = " ORDER BY d.is_pinned DESC, " + voteTallySQL + " DESC, d.created_at DESC"
	case "unanswered":
		orderBy = ` ORDER BY d.is_pinned DESC, (
			SELECT COUNT(*) FROM discussion_replies WHERE discussion_id = d.id
		) ASC, d.created_at DESC`
	}

	var total int
	if err := h.db.QueryRow(`SELECT COUNT(*) FROM discussions d`+conditions, args...).Scan(&total); err != nil {
		log.Printf("Error counting discussions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discussions"})
		return
	}

	args = append(args, limit)
	limitPlaceholder := strconv.Itoa(len(args))
	args = append(args, offset)
	offsetPlaceholder := strconv.Itoa(len(args))

	rows, err := h.db.Query(`
		SELECT
			d.id, d.title, d.content, d.is_pinned, d.is_resolved, d.view_count,
			d.created_at, d.updated_at, d.chapter_id, d.topic_id, d.user_id,
			u.id, u.name, u.avatar_url,
			`+voteTallySQL+` AS vote_count,
			(SELECT COUNT(*) FROM discussion_replies WHERE discussion_id = d.id) AS reply_count,
			EXISTS(
				SELECT 1 FROM discussion_replies
				WHERE discussion_id = d.id AND is_accepted_answer = TRUE
			) AS has_accepted_answer
		FROM discussions d
		JOIN users u ON u.id = d.user_id
	`+conditions+orderBy+" LIMIT $"+limitPlaceholder+" OFFSET $"+offsetPlaceholder, args...)
	if err != nil {
		log.Printf("Error fetching discussions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discussions"})
		return
	}
	defer rows.Close()

	discussions := []models.DiscussionResponse{}
	for rows.Next() {
		var d models.DiscussionResponse
		if err := rows.Scan(
			&d.ID, &d.Title, &d.Content, &d.IsPinned, &d.IsResolved, &d.ViewCount,
			&d.CreatedAt, &d.UpdatedAt, &d.ChapterID, &d.TopicID, &d.UserID,
			&d.Author.ID, &d.Author.Name, &d.Author.AvatarURL,
			&d.VoteCount, &d.ReplyCount, &d.HasAcceptedAnswer,
		); err != nil {
			log.Printf("Error scanning discussion: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan discussion"})
			return
		}
		discussions = append(discussions, d)
	}

	c.JSON(http.StatusOK, models.DiscussionListResponse{
		Discussions:     discussions,
		Total:           total,
		Limit:           limit,
		Offset:          offset,
		RequiresPremium: requiresPremium,
	})
}

func (h *DiscussionHandler) GetDiscussion(c *gin.Context) {
	userID := c.GetString("userID")

	discussionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discussion ID"})
		return
	}

	// Every detail fetch counts as a view, repeat viewers included
	if _, err := h.db.Exec(`UPDATE discussions SET view_count = view_count + 1 WHERE id = $1`, discussionID); err != nil {
		log.Printf("Error incrementing view count: %v", err)
	}

	var detail models.DiscussionDetailResponse
	err = h.db.QueryRow(`
		SELECT
			d.id, d.title, d.content, d.is_pinned, d.is_resolved, d.view_count,
			d.created_at, d.updated_at, d.chapter_id, d.topic_id, d.user_id,
			u.id, u.name, u.avatar_url,
			`+voteTallySQL+` AS vote_count,
			(SELECT COUNT(*) FROM discussion_replies WHERE discussion_id = d.id) AS reply_count,
			EXISTS(
				SELECT 1 FROM discussion_replies
				WHERE discussion_id = d.id AND is_accepted_answer = TRUE
			) AS has_accepted_answer
		FROM discussions d
		JOIN users u ON u.id = d.user_id
		WHERE d.id = $1
	`, discussionID).Scan(
		&detail.ID, &detail.Title, &detail.Content, &detail.IsPinned, &detail.IsResolved, &detail.ViewCount,
		&detail.CreatedAt, &detail.UpdatedAt, &detail.ChapterID, &detail.TopicID, &detail.UserID,
		&detail.Author.ID, &detail.Author.Name, &detail.Author.AvatarURL,
		&detail.VoteCount, &detail.ReplyCount, &detail.HasAcceptedAnswer,
	)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Discussion not found"})
		return
	} else if err != nil {
		log.Printf("Error fetching discussion: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discussion"})
		return
	}

	var userVote sql.NullString
	err = h.db.QueryRow(`
		SELECT vote_type FROM discussion_votes
		WHERE user_id = $1 AND discussion_id = $2
	`, userID, discussionID).Scan(&userVote)
	if err != nil && err != sql.ErrNoRows {
		log.Printf("Error fetching user vote: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discussion"})
		return
	}
	if userVote.Valid {
		detail.UserVote = &userVote.String
	}

	// Accepted answer first, then community vote tally, then age
	rows, err := h.db.Query(`
		SELECT
			r.id, r.discussion_id, r.content, r.is_accepted_answer,
			r.created_at, r.updated_at, r.user_id,
			u.id, u.name, u.avatar_url,
			`+replyVoteTallySQL+` AS vote_count
		FROM discussion_replies r
		JOIN users u ON u.id = r.user_id
		WHERE r.discussion_id = $1
		ORDER BY r.is_accepted_answer DESC, `+replyVoteTallySQL+` DESC, r.created_at ASC
	`, discussionID)
	if err != nil {
		log.Printf("Error fetching replies: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch replies"})
		return
	}
	defer rows.Close()

	replies := []models.ReplyResponse{}
	replyIDs := []int{}
	for rows.Next() {
		var r models.ReplyResponse
		if err := rows.Scan(
			&r.ID, &r.DiscussionID, &r.Content, &r.IsAcceptedAnswer,
			&r.CreatedAt, &r.UpdatedAt, &r.UserID,
			&r.Author.ID, &r.Author.Name, &r.Author.AvatarURL,
			&r.VoteCount,
		); err != nil {
			log.Printf("Error scanning reply: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan reply"})
			return
		}
		replies = append(replies, r)
		replyIDs = append(replyIDs, r.ID)
	}

	if len(replyIDs) > 0 {
		voteRows, err := h.db.Query(`
			SELECT reply_id, vote_type FROM discussion_votes
			WHERE user_id = $1 AND reply_id = ANY($2)
		`, userID, pq.Array(replyIDs))
		if err != nil {
			log.Printf("Error fetching reply votes: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch replies"})
			return
		}
		defer voteRows.Close()

		voteMap := make(map[int]string)
		for voteRows.Next() {
			var replyID int
			var voteType string
			if err := voteRows.Scan(&replyID, &voteType); err != nil {
				log.Printf("Error scanning reply vote: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch replies"})
				return
			}
			voteMap[replyID] = voteType
		}
		for i := range replies {
			if vt, ok := voteMap[replies[i].ID]; ok {
				v := vt
				replies[i].UserVote = &v
			}
		}
	}
	detail.Replies = replies

	if detail.ChapterID != nil {
		var ch models.ChapterRef
		err = h.db.QueryRow(`
			SELECT id, chapter_title, subject, class_level, chapter_number
			FROM chapters WHERE id = $1
		`, *detail.ChapterID).Scan(&ch.ID, &ch.ChapterTitle, &ch.Subject, &ch.ClassLevel, &ch.ChapterNumber)
		if err == nil {
			detail.Chapter = &ch
		} else if err != sql.ErrNoRows {
			log.Printf("Error fetching chapter info: %v", err)
		}
	}
	if detail.TopicID != nil {
		var tp models.TopicRef
		err = h.db.QueryRow(`
			SELECT id, topic_name, subject FROM topics WHERE id = $1
		`, *detail.TopicID).Scan(&tp.ID, &tp.TopicName, &tp.Subject)
		if err == nil {
			detail.Topic = &tp
		} else if err != sql.ErrNoRows {
			log.Printf("Error fetching topic info: %v", err)
		}
	}

	c.JSON(http.StatusOK, detail)
}

func (h *DiscussionHandler) CreateDiscussion(c *gin.Context) {
	userID := c.GetString("userID")

	var req models.CreateDiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var d models.DiscussionResponse
	err := h.db.QueryRow(`
		INSERT INTO discussions (user_id, title, content, chapter_id, topic_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, content, is_pinned, is_resolved, view_count,
		          created_at, updated_at, chapter_id, topic_id, user_id
	`, userID, req.Title, req.Content, req.ChapterID, req.TopicID).Scan(
		&d.ID, &d.Title, &d.Content, &d.IsPinned, &d.IsResolved, &d.ViewCount,
		&d.CreatedAt, &d.UpdatedAt, &d.ChapterID, &d.TopicID, &d.UserID,
	)
	if err != nil {
		log.Printf("Error creating discussion: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create discussion"})
		return
	}

	err = h.db.QueryRow(`SELECT id, name, avatar_url FROM users WHERE id = $1`, userID).Scan(
		&d.Author.ID, &d.Author.Name, &d.Author.AvatarURL,
	)
	if err != nil {
		log.Printf("Error fetching author: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discussion details"})
		return
	}

	c.JSON(http.StatusCreated, d)
}

func (h *DiscussionHandler) CreateReply(c *gin.Context) {
	userID := c.GetString("userID")

	discussionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discussion ID"})
		return
	}

	var req models.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var exists bool
	if err := h.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM discussions WHERE id = $1)`, discussionID).Scan(&exists); err != nil {
		log.Printf("Error checking discussion: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify discussion"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Discussion not found"})
		return
	}

	var r models.ReplyResponse
	err = h.db.QueryRow(`
		INSERT INTO discussion_replies (discussion_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, discussion_id, content, is_accepted_answer, created_at, updated_at, user_id
	`, discussionID, userID, req.Content).Scan(
		&r.ID, &r.DiscussionID, &r.Content, &r.IsAcceptedAnswer, &r.CreatedAt, &r.UpdatedAt, &r.UserID,
	)
	if err != nil {
		log.Printf("Error creating reply: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reply"})
		return
	}

	if _, err := h.db.Exec(`UPDATE discussions SET updated_at = NOW() WHERE id = $1`, discussionID); err != nil {
		log.Printf("Error bumping discussion timestamp: %v", err)
	}

	err = h.db.QueryRow(`SELECT id, name, avatar_url FROM users WHERE id = $1`, userID).Scan(
		&r.Author.ID, &r.Author.Name, &r.Author.AvatarURL,
	)
	if err != nil {
		log.Printf("Error fetching author: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reply details"})
		return
	}

	c.JSON(http.StatusCreated, r)
}

func (h *DiscussionHandler) VoteDiscussion(c *gin.Context) {
	userID := c.GetString("userID")

	discussionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discussion ID"})
		return
	}

	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var exists bool
	if err := h.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM discussions WHERE id = $1)`, discussionID).Scan(&exists); err != nil {
		log.Printf("Error checking discussion: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify discussion"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Discussion not found"})
		return
	}

	// Upsert keyed on the partial unique index: repeat votes overwrite the
	// direction instead of adding rows, so a same-direction vote is a no-op.
	_, err = h.db.Exec(`
		INSERT INTO discussion_votes (user_id, discussion_id, vote_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, discussion_id) WHERE discussion_id IS NOT NULL
		DO UPDATE SET vote_type = EXCLUDED.vote_type
	`, userID, discussionID, req.VoteType)
	if err != nil {
		log.Printf("Error voting on discussion: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
		return
	}

	var voteCount int
	err = h.db.QueryRow(`
		SELECT COALESCE(SUM(CASE WHEN vote_type = 'up' THEN 1 ELSE -1 END), 0)
		FROM discussion_votes WHERE discussion_id = $1
	`, discussionID).Scan(&voteCount)
	if err != nil {
		log.Printf("Error counting votes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count votes"})
		return
	}

	c.JSON(http.StatusOK, models.VoteResponse{
		VoteType:  req.VoteType,
		VoteCount: voteCount,
		Message:   "Vote recorded",
	})
}

func (h *DiscussionHandler) VoteReply(c *gin.Context) {
	userID := c.GetString("userID")

	replyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reply ID"})
		return
	}

	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var exists bool
	if err := h.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM discussion_replies WHERE id = $1)`, replyID).Scan(&exists); err != nil {
		log.Printf("Error checking reply: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify reply"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reply not found"})
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO discussion_votes (user_id, reply_id, vote_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, reply_id) WHERE reply_id IS NOT NULL
		DO UPDATE SET vote_type = EXCLUDED.vote_type
	`, userID, replyID, req.VoteType)
	if err != nil {
		log.Printf("Error voting on reply: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
		return
	}

	var voteCount int
	err = h.db.QueryRow(`
		SELECT COALESCE(SUM(CASE WHEN vote_type = 'up' THEN 1 ELSE -1 END), 0)
		FROM discussion_votes WHERE reply_id = $1
	`, replyID).Scan(&voteCount)
	if err != nil {
		log.Printf("Error counting votes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count votes"})
		return
	}

	c.JSON(http.StatusOK, models.VoteResponse{
		VoteType:  req.VoteType,
		VoteCount: voteCount,
		Message:   "Vote recorded",
	})
}

func (h *DiscussionHandler) AcceptReply(c *gin.Context) {
	userID := c.GetString("userID")

	replyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reply ID"})
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback()

	var discussionID int
	var isAccepted bool
	err = tx.QueryRow(`
		SELECT discussion_id, is_accepted_answer FROM discussion_replies WHERE id = $1
	`, replyID).Scan(&discussionID, &isAccepted)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reply not found"})
		return
	} else if err != nil {
		log.Printf("Error fetching reply: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reply"})
		return
	}

	// Row lock on the discussion serializes concurrent accepts so at most
	// one reply ends up accepted.
	var authorID string
	err = tx.QueryRow(`
		SELECT user_id FROM discussions WHERE id = $1 FOR UPDATE
	`, discussionID).Scan(&authorID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Discussion not found"})
		return
	} else if err != nil {
		log.Printf("Error fetching discussion: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discussion"})
		return
	}

	if authorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the discussion author can accept answers"})
		return
	}

	newStatus := !isAccepted
	if newStatus {
		if _, err := tx.Exec(`
			UPDATE discussion_replies SET is_accepted_answer = FALSE
			WHERE discussion_id = $1 AND is_accepted_answer = TRUE
		`, discussionID); err != nil {
			log.Printf("Error clearing accepted answers: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update accepted answer"})
			return
		}
	}

	if _, err := tx.Exec(`
		UPDATE discussion_replies SET is_accepted_answer = $1, updated_at = NOW()
		WHERE id = $2
	`, newStatus, replyID); err != nil {
		log.Printf("Error updating reply: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update accepted answer"})
		return
	}

	if _, err := tx.Exec(`
		UPDATE discussions SET is_resolved = $1, updated_at = NOW()
		WHERE id = $2
	`, newStatus, discussionID); err != nil {
		log.Printf("Error updating discussion: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update discussion"})
		return
	}

	if err := tx.Commit(); err != nil {
		log.Printf("Error committing transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update accepted answer"})
		return
	}

	message := "Answer accepted"
	if !newStatus {
		message = "Answer unaccepted"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":            message,
		"is_accepted_answer": newStatus,
	})
}

func (h *DiscussionHandler) ResolveDiscussion(c *gin.Context) {
	userID := c.GetString("userID")

	discussionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discussion ID"})
		return
	}

	var req models.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var authorID string
	err = h.db.QueryRow(`SELECT user_id FROM discussions WHERE id = $1`, discussionID).Scan(&authorID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Discussion not found"})
		return
	} else if err != nil {
		log.Printf("Error fetching discussion: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discussion"})
		return
	}

	if authorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the author can resolve this discussion"})
		return
	}

	if _, err := h.db.Exec(`
		UPDATE discussions SET is_resolved = $1, updated_at = NOW() WHERE id = $2
	`, *req.IsResolved, discussionID); err != nil {
		log.Printf("Error resolving discussion: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update discussion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Discussion updated",
		"is_resolved": *req.IsResolved,
	})
}
