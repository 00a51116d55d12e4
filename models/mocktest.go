package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// IntList maps a jsonb integer array column. Question order inside the
// array is meaningful and must survive the round trip.
type IntList []int

func (l *IntList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into IntList", src)
	}
}

func (l IntList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

type MockTest struct {
	ID                int       `json:"id"`
	TestType          string    `json:"test_type"`
	Title             string    `json:"title"`
	QuestionsList     IntList   `json:"questions_list"`
	DurationMinutes   int       `json:"duration_minutes"`
	Subject           *string   `json:"subject,omitempty"`
	PassingPercentage *int      `json:"passing_percentage,omitempty"`
	IsPublished       bool      `json:"is_published"`
	CreatedAt         time.Time `json:"created_at"`
}

type TestSession struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	TestType      string    `json:"test_type"`
	QuestionsList IntList   `json:"questions_list"`
	StartedAt     time.Time `json:"started_at"`
	EndsAt        time.Time `json:"ends_at"`
	Status        string    `json:"status"`
	Score         *int      `json:"score"`
}

type MockTestDetailResponse struct {
	Test      MockTest   `json:"test"`
	Questions []Question `json:"questions"`
}

type SubmitSessionRequest struct {
	Score int `json:"score" binding:"min=0"`
}

type SubmitSessionResponse struct {
	Success  bool `json:"success"`
	Score    int  `json:"score"`
	XPReward int  `json:"xpReward"`
}
