package models

import "time"

// IdeaVisibility controls marketplace exposure of a business idea.
type IdeaVisibility string

const (
	VisibilityPublic  IdeaVisibility = "public"
	VisibilityPrivate IdeaVisibility = "private"
)

// IdeaStatus is the idea lifecycle state. The storage layer enforces no
// transition rules; callers set statuses directly.
type IdeaStatus string

const (
	StatusDraft     IdeaStatus = "draft"
	StatusPublished IdeaStatus = "published"
	StatusArchived  IdeaStatus = "archived"
	StatusSold      IdeaStatus = "sold"
)

// BusinessIdea is one record of the "ideas" collection. The ownership
// relation (UserID) is not enforced referentially. ImageData, when present,
// is a base64 payload embedded in the record.
type BusinessIdea struct {
	ID                  string         `json:"id"`
	UserID              string         `json:"user_id"`
	Title               string         `json:"title"`
	Category            string         `json:"category"`
	ShortSummary        string         `json:"short_summary"`
	FullDescription     string         `json:"full_description"`
	RequiredBudget      float64        `json:"required_budget"`
	ExpectedProfitShare float64        `json:"expected_profit_share"`
	MonetizationModel   string         `json:"monetization_model,omitempty"`
	DealType            string         `json:"deal_type,omitempty"`
	Visibility          IdeaVisibility `json:"visibility"`
	Status              IdeaStatus     `json:"status"`
	CreatedAt           time.Time      `json:"created_at"`
	Tags                []string       `json:"tags"`
	ImageData           string         `json:"image_data,omitempty"`
}
