package models

import "time"

// AgreementStatus is the signing state machine:
// DRAFT -> PENDING_OWNER | PENDING_INVESTOR -> SIGNED.
type AgreementStatus string

const (
	AgreementDraft           AgreementStatus = "DRAFT"
	AgreementPendingOwner    AgreementStatus = "PENDING_OWNER"
	AgreementPendingInvestor AgreementStatus = "PENDING_INVESTOR"
	AgreementSigned          AgreementStatus = "SIGNED"
)

// Agreement is one record of the "agreements" collection. Unlike the other
// entities it uses camelCase JSON keys; the persisted layout is kept as-is.
type Agreement struct {
	ID         string          `json:"id"`
	IdeaID     string          `json:"ideaId"`
	OwnerID    string          `json:"ownerId"`
	InvestorID string          `json:"investorId"`
	Terms      string          `json:"terms"`
	Status     AgreementStatus `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}
