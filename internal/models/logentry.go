package models

import "time"

// LogLevel is the severity of an audit log entry.
type LogLevel string

const (
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

// LogEntry is one record of the append-only "logs" collection. The
// collection is kept newest-first and capped at a fixed retention count;
// the oldest entries are evicted on append.
type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     LogLevel  `json:"level"`
	Event     string    `json:"event"`
	UserID    string    `json:"userId,omitempty"`
	Details   string    `json:"details,omitempty"`
}
