package model

import (
	"time"

	"fest-proposal-service/internal/schema"

	"github.com/google/uuid"
)

// RegistrationMethod selects how an event captures registrations.
type RegistrationMethod string

const (
	// RegistrationInternal captures registrations through the in-app form
	// described by the event's form fields.
	RegistrationInternal RegistrationMethod = "internal"
	// RegistrationExternal redirects to a third-party link; no form capture.
	RegistrationExternal RegistrationMethod = "external"
)

func (m RegistrationMethod) IsValid() bool {
	switch m {
	case RegistrationInternal, RegistrationExternal:
		return true
	}
	return false
}

// Event is a live fest event. Coordinators never mutate it directly; every
// change goes through an approved ChangeProposal.
type Event struct {
	ID                 uuid.UUID          `json:"id" db:"id"`
	ClubID             uuid.UUID          `json:"clubId" db:"club_id"`
	Name               string             `json:"name" db:"name"`
	PosterURL          *string            `json:"posterUrl,omitempty" db:"poster_url"`
	RegistrationFee    float64            `json:"registrationFee" db:"registration_fee"`
	RegistrationMethod RegistrationMethod `json:"registrationMethod" db:"registration_method"`
	RegistrationLink   string             `json:"registrationLink,omitempty" db:"registration_link"`
	FormFields         schema.Schema      `json:"formFields,omitempty" db:"form_fields"`
	CreatedAt          time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time          `json:"updatedAt" db:"updated_at"`
}

// Club is a read-mostly reference entity owning events.
type Club struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Category string    `json:"category" db:"category"`
}
