package models

import "time"

type CreateDiscussionRequest struct {
	Title     string `json:"title" binding:"required,max=300"`
	Content   string `json:"content" binding:"required"`
	ChapterID *int   `json:"chapterId"`
	TopicID   *int   `json:"topicId"`
}

type CreateReplyRequest struct {
	Content string `json:"content" binding:"required"`
}

type VoteRequest struct {
	VoteType string `json:"voteType" binding:"required,oneof=up down"`
}

type ResolveRequest struct {
	IsResolved *bool `json:"isResolved" binding:"required"`
}

type Author struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

type ChapterRef struct {
	ID            int    `json:"id"`
	ChapterTitle  string `json:"chapter_title"`
	Subject       string `json:"subject"`
	ClassLevel    string `json:"class_level"`
	ChapterNumber int    `json:"chapter_number"`
}

type TopicRef struct {
	ID        int    `json:"id"`
	TopicName string `json:"topic_name"`
	Subject   string `json:"subject"`
}

type DiscussionResponse struct {
	ID                int       `json:"id"`
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	IsPinned          bool      `json:"is_pinned"`
	IsResolved        bool      `json:"is_resolved"`
	ViewCount         int       `json:"view_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	ChapterID         *int      `json:"chapter_id"`
	TopicID           *int      `json:"topic_id"`
	UserID            string    `json:"user_id"`
	Author            Author    `json:"author"`
	VoteCount         int       `json:"vote_count"`
	ReplyCount        int       `json:"reply_count"`
	HasAcceptedAnswer bool      `json:"has_accepted_answer"`
}

type ReplyResponse struct {
	ID               int       `json:"id"`
	DiscussionID     int       `json:"discussion_id"`
	Content          string    `json:"content"`
	IsAcceptedAnswer bool      `json:"is_accepted_answer"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	UserID           string    `json:"user_id"`
	Author           Author    `json:"author"`
	VoteCount        int       `json:"vote_count"`
	UserVote         *string   `json:"user_vote"`
}

type DiscussionDetailResponse struct {
	DiscussionResponse
	UserVote *string         `json:"user_vote"`
	Replies  []ReplyResponse `json:"replies"`
	Chapter  *ChapterRef     `json:"chapter"`
	Topic    *TopicRef       `json:"topic"`
}

type DiscussionListResponse struct {
	Discussions     []DiscussionResponse `json:"discussions"`
	Total           int                  `json:"total"`
	Limit           int                  `json:"limit"`
	Offset          int                  `json:"offset"`
	RequiresPremium bool                 `json:"requiresPremium"`
}

type VoteResponse struct {
	VoteType  string `json:"voteType"`
	VoteCount int    `json:"voteCount"`
	Message   string `json:"message"`
}
