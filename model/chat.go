package model

import "time"

// Chat message senders.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// ChatMessage lives only for the duration of a consultation session. The full
// list is handed to the summary endpoint when the session ends; individual
// messages are never persisted.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender" example:"assistant"`
	Timestamp time.Time `json:"timestamp"`
	ImageData string    `json:"image_data,omitempty"`
}

// ChatSummary is the consultation outcome shown after a session ends. All
// three sections empty means the consultation had no real content.
type ChatSummary struct {
	Symptoms        []string `json:"symptoms"`
	Recommendations []string `json:"recommendations"`
	RecentHistory   []string `json:"recent_history"`
}
