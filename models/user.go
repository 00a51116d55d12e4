package models

import "time"

// ProfileResponse is the viewer's own gamification summary.
type ProfileResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	IsPaidUser   bool      `json:"is_paid_user"`
	CurrentLevel int       `json:"current_level"`
	TotalPoints  int       `json:"total_points"`
	CreatedAt    time.Time `json:"created_at"`
}
