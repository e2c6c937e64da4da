package repository_test

import (
	"context"
	"testing"

	"fest-proposal-service/internal/model"
	"fest-proposal-service/internal/repository"
	"fest-proposal-service/internal/schema"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// insertRawRegistration writes a row straight past the repository so the test
// controls the persisted form_data text.
func insertRawRegistration(t *testing.T, clubID uuid.UUID, formData string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := testDB.Exec(context.Background(), `
		INSERT INTO registrations (id, event_id, club_id, user_id, user_email, form_data)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, uuid.New(), clubID, "user-raw", "raw@example.com", formData)
	require.NoError(t, err)
	return id
}

func TestRegistrationRepository_Create(t *testing.T) {
	truncateTables(t)
	ctx := context.Background()
	repo := repository.NewRegistrationRepository(testDB)

	reg := &model.Registration{
		ID:        uuid.New(),
		EventID:   uuid.New(),
		ClubID:    uuid.New(),
		UserID:    "student-1",
		UserEmail: "alice@example.com",
		FormData:  schema.Values{"name": schema.StringValue("Alice")},
	}

	created, err := repo.Create(ctx, reg)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	listed, err := repo.ListByClub(ctx, reg.ClubID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, schema.Values{"name": schema.StringValue("Alice")}, listed[0].FormData)
	assert.Equal(t, "alice@example.com", listed[0].UserEmail)
}

func TestRegistrationRepository_ListByClub_malformedFormData(t *testing.T) {
	truncateTables(t)
	ctx := context.Background()
	repo := repository.NewRegistrationRepository(testDB)
	clubID := uuid.New()

	good := &model.Registration{
		ID:        uuid.New(),
		EventID:   uuid.New(),
		ClubID:    clubID,
		UserID:    "student-1",
		UserEmail: "alice@example.com",
		FormData:  schema.Values{"name": schema.StringValue("Alice")},
	}
	_, err := repo.Create(ctx, good)
	require.NoError(t, err)

	brokenID := insertRawRegistration(t, clubID, "{not json")

	// one corrupt record never aborts the listing
	listed, err := repo.ListByClub(ctx, clubID)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	byID := make(map[uuid.UUID]*model.Registration, len(listed))
	for _, reg := range listed {
		byID[reg.ID] = reg
	}
	require.Contains(t, byID, brokenID)
	// the broken record stays visible with an empty form
	assert.Equal(t, schema.Values{}, byID[brokenID].FormData)
	assert.Equal(t, schema.Values{"name": schema.StringValue("Alice")}, byID[good.ID].FormData)
}
