package models

type Chapter struct {
	ID            int    `json:"id"`
	ChapterNumber int    `json:"chapter_number"`
	ChapterTitle  string `json:"chapter_title"`
	Subject       string `json:"subject"`
	ClassLevel    string `json:"class_level"`
}

type Topic struct {
	ID        int    `json:"id"`
	TopicName string `json:"topic_name"`
	Subject   string `json:"subject"`
}
