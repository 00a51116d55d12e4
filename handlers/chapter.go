package handlers

import (
	"database/sql"
	"net/http"

	"examprep_backend/models"

	"github.com/gin-gonic/gin"
)

type ChapterHandler struct {
	db *sql.DB
}

func NewChapterHandler(db *sql.DB) *ChapterHandler {
	return &ChapterHandler{db: db}
}

func (h *ChapterHandler) GetChapters(c *gin.Context) {
	subject := c.Query("subject")

	query := `
		SELECT id, chapter_number, chapter_title, subject, class_level
		FROM chapters
		WHERE 1=1
	`
	args := []interface{}{}

	if subject != "" {
		query += " AND subject = $1"
		args = append(args, subject)
	}

	query += " ORDER BY subject, class_level, chapter_number"

	rows, err := h.db.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chapters"})
		return
	}
	defer rows.Close()

	var chapters []models.Chapter
	for rows.Next() {
		var ch models.Chapter
		if err := rows.Scan(&ch.ID, &ch.ChapterNumber, &ch.ChapterTitle, &ch.Subject, &ch.ClassLevel); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan chapter"})
			return
		}
		chapters = append(chapters, ch)
	}

	c.JSON(http.StatusOK, chapters)
}

func (h *ChapterHandler) GetTopics(c *gin.Context) {
	subject := c.Query("subject")

	query := `
		SELECT id, topic_name, subject
		FROM topics
		WHERE 1=1
	`
	args := []interface{}{}

	if subject != "" {
		query += " AND subject = $1"
		args = append(args, subject)
	}

	query += " ORDER BY topic_name"

	rows, err := h.db.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch topics"})
		return
	}
	defer rows.Close()

	var topics []models.Topic
	for rows.Next() {
		var tp models.Topic
		if err := rows.Scan(&tp.ID, &tp.TopicName, &tp.Subject); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan topic"})
			return
		}
		topics = append(topics, tp)
	}

	c.JSON(http.StatusOK, topics)
}
