package model_test

import (
	"testing"

	"fest-proposal-service/internal/model"
	"fest-proposal-service/internal/schema"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalStatusTransitions(t *testing.T) {
	assert.True(t, model.ProposalStatusPending.CanTransitionTo(model.ProposalStatusApproved))
	assert.True(t, model.ProposalStatusPending.CanTransitionTo(model.ProposalStatusRejected))

	// both branches are terminal
	assert.False(t, model.ProposalStatusApproved.CanTransitionTo(model.ProposalStatusPending))
	assert.False(t, model.ProposalStatusApproved.CanTransitionTo(model.ProposalStatusRejected))
	assert.False(t, model.ProposalStatusRejected.CanTransitionTo(model.ProposalStatusApproved))
	assert.False(t, model.ProposalStatusRejected.CanTransitionTo(model.ProposalStatusPending))

	assert.True(t, model.ProposalStatusPending.IsValid())
	assert.False(t, model.ProposalStatus("archived").IsValid())
}

func internalEvent() model.Event {
	poster := "https://cdn.example.com/old.png"
	return model.Event{
		ID:                 uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"),
		ClubID:             uuid.MustParse("b1ffcd88-8d1c-4ef8-bb6d-6bb9bd380a22"),
		Name:               "Hackathon",
		PosterURL:          &poster,
		RegistrationFee:    100,
		RegistrationMethod: model.RegistrationInternal,
		FormFields: schema.Schema{
			{Name: "name", Label: "Name", Type: schema.FieldTypeText, Required: true},
		},
	}
}

func TestEventPatchRoundTrip(t *testing.T) {
	t.Run("internal edits carry fields, null out the link", func(t *testing.T) {
		edits := model.EventEdits{
			Name:               "Hackathon 2026",
			PosterURL:          "https://cdn.example.com/new.png",
			RegistrationFee:    150,
			RegistrationMethod: model.RegistrationInternal,
			FormFields: schema.Schema{
				{Name: "team_name", Label: "Team Name", Type: schema.FieldTypeText, Required: true},
			},
		}

		raw, err := model.EncodeEventPatch(edits)
		require.NoError(t, err)

		patch, err := model.DecodeEventPatch(raw)
		require.NoError(t, err)

		event := internalEvent()
		event.RegistrationLink = "https://forms.example.com/stale"

		merged, err := patch.ApplyTo(event)
		require.NoError(t, err)
		assert.Equal(t, "Hackathon 2026", merged.Name)
		require.NotNil(t, merged.PosterURL)
		assert.Equal(t, "https://cdn.example.com/new.png", *merged.PosterURL)
		assert.Equal(t, 150.0, merged.RegistrationFee)
		assert.Equal(t, model.RegistrationInternal, merged.RegistrationMethod)
		// the stale link from the other branch is cleared
		assert.Equal(t, "", merged.RegistrationLink)
		require.Len(t, merged.FormFields, 1)
		assert.Equal(t, "team_name", merged.FormFields[0].Name)

		// untouched attributes survive
		assert.Equal(t, event.ID, merged.ID)
		assert.Equal(t, event.ClubID, merged.ClubID)
	})

	t.Run("switch to external clears form fields", func(t *testing.T) {
		edits := model.EventEdits{
			Name:               "Hackathon",
			RegistrationFee:    0,
			RegistrationMethod: model.RegistrationExternal,
			RegistrationLink:   "https://forms.example.com/hackathon",
		}

		raw, err := model.EncodeEventPatch(edits)
		require.NoError(t, err)
		patch, err := model.DecodeEventPatch(raw)
		require.NoError(t, err)

		merged, err := patch.ApplyTo(internalEvent())
		require.NoError(t, err)
		assert.Equal(t, model.RegistrationExternal, merged.RegistrationMethod)
		assert.Equal(t, "https://forms.example.com/hackathon", merged.RegistrationLink)
		assert.Nil(t, merged.FormFields)
		// no poster in the edits clears the old one
		assert.Nil(t, merged.PosterURL)
	})

	t.Run("absent key leaves the attribute untouched", func(t *testing.T) {
		patch, err := model.DecodeEventPatch(`{"name":"Renamed"}`)
		require.NoError(t, err)

		event := internalEvent()
		merged, err := patch.ApplyTo(event)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", merged.Name)
		assert.Equal(t, event.PosterURL, merged.PosterURL)
		assert.Equal(t, event.RegistrationFee, merged.RegistrationFee)
		assert.Equal(t, event.FormFields, merged.FormFields)
	})

	t.Run("re-applying the same patch is a no-op", func(t *testing.T) {
		patch, err := model.DecodeEventPatch(`{"name":"Renamed","registrationFee":50}`)
		require.NoError(t, err)

		once, err := patch.ApplyTo(internalEvent())
		require.NoError(t, err)
		twice, err := patch.ApplyTo(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("Failed - malformed blob", func(t *testing.T) {
		_, err := model.DecodeEventPatch("{broken")
		assert.Error(t, err)
	})

	t.Run("Failed - wrongly typed attribute", func(t *testing.T) {
		patch, err := model.DecodeEventPatch(`{"registrationFee":"free"}`)
		require.NoError(t, err)
		_, err = patch.ApplyTo(internalEvent())
		assert.Error(t, err)
	})
}
