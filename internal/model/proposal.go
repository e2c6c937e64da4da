package model

import (
	"encoding/json"
	"fmt"
	"time"

	"fest-proposal-service/internal/schema"
	apperrors "fest-proposal-service/pkg/app_errors"

	"github.com/google/uuid"
)

// ProposalStatus is the review state of a change proposal.
type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusApproved ProposalStatus = "approved"
	ProposalStatusRejected ProposalStatus = "rejected"
)

func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusPending, ProposalStatusApproved, ProposalStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may move to target. Both
// approved and rejected are terminal.
func (s ProposalStatus) CanTransitionTo(target ProposalStatus) bool {
	transitions := map[ProposalStatus][]ProposalStatus{
		ProposalStatusPending:  {ProposalStatusApproved, ProposalStatusRejected},
		ProposalStatusApproved: {},
		ProposalStatusRejected: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// ChangeProposal is a coordinator's proposed patch to an event, held for
// admin review. Immutable once created except for the status field.
// OriginalEventID is a weak reference: the event may have been modified or
// deleted since, which is why the event name is snapshotted for display.
type ChangeProposal struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	OriginalEventID uuid.UUID      `json:"originalEventId" db:"original_event_id"`
	ClubID          uuid.UUID      `json:"clubId" db:"club_id"`
	ProposedChanges string         `json:"proposedChanges" db:"proposed_changes"`
	CoordinatorID   string         `json:"coordinatorId" db:"coordinator_id"`
	CoordinatorName string         `json:"coordinatorName" db:"coordinator_name"`
	EventName       string         `json:"eventName" db:"event_name"`
	Status          ProposalStatus `json:"status" db:"status"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time      `json:"updatedAt" db:"updated_at"`
}

// EventEdits is the coordinator's edited view of an event, the input to
// proposal creation. The poster URL is already resolved: uploading a new
// poster happens before the proposal is built.
type EventEdits struct {
	Name               string             `json:"name"`
	PosterURL          string             `json:"posterUrl"`
	RegistrationFee    float64            `json:"registrationFee"`
	RegistrationMethod RegistrationMethod `json:"registrationMethod"`
	RegistrationLink   string             `json:"registrationLink"`
	FormFields         schema.Schema      `json:"formFields"`
}

// EventPatch is the decoded form of ChangeProposal.ProposedChanges: a
// named-field patch over a fixed set of event attributes. A present key
// overwrites the attribute wholesale, an explicit null clears it, an absent
// key leaves it untouched. Keeping raw messages per key preserves the
// null/absent distinction that a struct decode would lose.
type EventPatch struct {
	fields map[string]json.RawMessage
}

// Patch attribute keys, mirroring the persisted encoding.
const (
	PatchName               = "name"
	PatchPosterURL          = "posterUrl"
	PatchRegistrationFee    = "registrationFee"
	PatchRegistrationMethod = "registrationMethod"
	PatchRegistrationLink   = "registrationLink"
	PatchFormFields         = "formFields"
)

// EncodeEventPatch serializes edits into the opaque proposedChanges blob.
// Exactly one of link/formFields is carried, selected by the method; the
// other is written as an explicit null so approval clears the stale branch.
func EncodeEventPatch(edits EventEdits) (string, error) {
	fields := map[string]any{
		PatchName:               edits.Name,
		PatchRegistrationFee:    edits.RegistrationFee,
		PatchRegistrationMethod: edits.RegistrationMethod,
		PatchRegistrationLink:   nil,
		PatchFormFields:         nil,
	}
	if edits.PosterURL != "" {
		fields[PatchPosterURL] = edits.PosterURL
	} else {
		fields[PatchPosterURL] = nil
	}

	switch edits.RegistrationMethod {
	case RegistrationExternal:
		fields[PatchRegistrationLink] = edits.RegistrationLink
	case RegistrationInternal:
		encoded, err := schema.EncodeFields(edits.FormFields)
		if err != nil {
			return "", err
		}
		fields[PatchFormFields] = encoded
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func DecodeEventPatch(raw string) (EventPatch, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return EventPatch{}, fmt.Errorf("decode proposed changes: %w", err)
	}
	return EventPatch{fields: fields}, nil
}

func (p EventPatch) Has(key string) bool {
	_, ok := p.fields[key]
	return ok
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

// ApplyTo merges the patch onto a copy of the event. Every present key is a
// full overwrite, never an increment, so re-applying the same patch is safe.
func (p EventPatch) ApplyTo(event Event) (Event, error) {
	merged := event

	if raw, ok := p.fields[PatchName]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &merged.Name); err != nil {
			return Event{}, fmt.Errorf("%w: name", apperrors.ErrInvalidInput)
		}
	}

	if raw, ok := p.fields[PatchPosterURL]; ok {
		if isNull(raw) {
			merged.PosterURL = nil
		} else {
			var url string
			if err := json.Unmarshal(raw, &url); err != nil {
				return Event{}, fmt.Errorf("%w: posterUrl", apperrors.ErrInvalidInput)
			}
			merged.PosterURL = &url
		}
	}

	if raw, ok := p.fields[PatchRegistrationFee]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &merged.RegistrationFee); err != nil {
			return Event{}, fmt.Errorf("%w: registrationFee", apperrors.ErrInvalidInput)
		}
	}

	if raw, ok := p.fields[PatchRegistrationMethod]; ok && !isNull(raw) {
		var method RegistrationMethod
		if err := json.Unmarshal(raw, &method); err != nil || !method.IsValid() {
			return Event{}, fmt.Errorf("%w: registrationMethod", apperrors.ErrInvalidInput)
		}
		merged.RegistrationMethod = method
	}

	if raw, ok := p.fields[PatchRegistrationLink]; ok {
		if isNull(raw) {
			merged.RegistrationLink = ""
		} else if err := json.Unmarshal(raw, &merged.RegistrationLink); err != nil {
			return Event{}, fmt.Errorf("%w: registrationLink", apperrors.ErrInvalidInput)
		}
	}

	if raw, ok := p.fields[PatchFormFields]; ok {
		if isNull(raw) {
			merged.FormFields = nil
		} else {
			// formFields rides inside the patch the way it is persisted on
			// the event: a JSON string holding the encoded field list.
			var encoded string
			if err := json.Unmarshal(raw, &encoded); err != nil {
				return Event{}, fmt.Errorf("%w: formFields", apperrors.ErrInvalidInput)
			}
			fields, err := schema.DecodeFields(encoded)
			if err != nil {
				return Event{}, fmt.Errorf("%w: formFields", apperrors.ErrInvalidInput)
			}
			merged.FormFields = fields
		}
	}

	return merged, nil
}
