package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"examprep_backend/models"

	"github.com/gin-gonic/gin"
)

type GamificationHandler struct {
	db *sql.DB
}

func NewGamificationHandler(db *sql.DB) *GamificationHandler {
	return &GamificationHandler{db: db}
}

// GetXPHistory returns the viewer's XP ledger, newest first.
func (h *GamificationHandler) GetXPHistory(c *gin.Context) {
	userID := c.GetString("userID")

	rows, err := h.db.Query(`
		SELECT id, user_id, amount, source, source_id, description, created_at
		FROM xp_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		log.Printf("Error fetching xp history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch XP history"})
		return
	}
	defer rows.Close()

	transactions := []models.XPTransaction{}
	for rows.Next() {
		var t models.XPTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Source, &t.SourceID, &t.Description, &t.CreatedAt); err != nil {
			log.Printf("Error scanning xp transaction: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan XP transaction"})
			return
		}
		transactions = append(transactions, t)
	}

	c.JSON(http.StatusOK, transactions)
}
