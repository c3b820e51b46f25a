package models

import "time"

// Message is one record of the "messages" collection. Moderation state is a
// pair of flags plus an optional reason: clean -> blocked|reported (set by
// the policy filter or a user report) -> clean again when a moderator
// dismisses the flags. Messages are never deleted in the normal flow.
type Message struct {
	ID           string    `json:"id"`
	SenderID     string    `json:"sender_id"`
	ReceiverID   string    `json:"receiver_id"`
	IdeaID       string    `json:"idea_id"`
	MessageText  string    `json:"message_text"`
	Timestamp    time.Time `json:"timestamp"`
	IsBlocked    bool      `json:"is_blocked,omitempty"`
	IsReported   bool      `json:"is_reported,omitempty"`
	ReportReason string    `json:"report_reason,omitempty"`
}

// Flagged reports whether the message sits in the moderation queue.
func (m Message) Flagged() bool {
	return m.IsBlocked || m.IsReported
}
