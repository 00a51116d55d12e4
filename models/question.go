package models

import (
	"encoding/json"
	"fmt"
)

// QuestionOption is one answer choice. Content authored over time stored
// options in two shapes: plain strings ("22.4 L") and labeled objects
// ({"id": "b", "text": "22.4 L"}). Both unmarshal into this one struct so
// handlers never deal with the union.
type QuestionOption struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
}

func (o *QuestionOption) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		o.ID = ""
		o.Text = plain
		return nil
	}

	var labeled struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &labeled); err != nil {
		return fmt.Errorf("invalid question option: %w", err)
	}
	o.ID = labeled.ID
	o.Text = labeled.Text
	return nil
}

type Question struct {
	ID            int              `json:"id"`
	ChapterID     *int             `json:"chapter_id,omitempty"`
	Question      string           `json:"question"`
	Options       []QuestionOption `json:"options"`
	CorrectAnswer string           `json:"correct_answer"`
	Explanation   *string          `json:"explanation,omitempty"`
	Subject       *string          `json:"subject,omitempty"`
}
