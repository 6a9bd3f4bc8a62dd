package model

import "time"

// ChatMessage is a single message in the shared portal chat.
// Sender identity is stamped at send time; later profile edits do not
// rewrite history.
type ChatMessage struct {
	ID         string
	SenderID   ProfileID
	SenderName string
	SenderRole Role
	Text       string
	SentAt     time.Time
}
