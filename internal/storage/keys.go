package storage

// Logical keys of the persisted collections. Each one maps to a single JSON
// array (or, for the session, a bare identifier string) under the active
// namespace prefix.
const (
	KeySession    = "session"
	KeyUsers      = "users"
	KeyIdeas      = "ideas"
	KeyMessages   = "messages"
	KeyAgreements = "agreements"
	KeyLogs       = "logs"
)
