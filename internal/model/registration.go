package model

import (
	"time"

	"fest-proposal-service/internal/schema"

	"github.com/google/uuid"
)

// Registration is one submitted form capture for an internal-method event.
// Immutable once created. ClubID is denormalized from the event at
// submission time so coordinator dashboards can fetch by club alone.
type Registration struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	EventID   uuid.UUID     `json:"eventId" db:"event_id"`
	ClubID    uuid.UUID     `json:"clubId" db:"club_id"`
	UserID    string        `json:"userId" db:"user_id"`
	UserEmail string        `json:"userEmail" db:"user_email"`
	FormData  schema.Values `json:"formData" db:"form_data"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}

// DecisionRecord is the audit trail row written for every proposal decision,
// drained from the decision queue by the audit worker.
type DecisionRecord struct {
	ID         uuid.UUID      `json:"id" db:"id"`
	ProposalID uuid.UUID      `json:"proposalId" db:"proposal_id"`
	EventName  string         `json:"eventName" db:"event_name"`
	AdminID    string         `json:"adminId" db:"admin_id"`
	Decision   ProposalStatus `json:"decision" db:"decision"`
	DecidedAt  time.Time      `json:"decidedAt" db:"decided_at"`
}
