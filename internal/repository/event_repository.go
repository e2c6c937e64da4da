package repository

import (
	"context"
	"time"

	"fest-proposal-service/internal/model"
	"fest-proposal-service/internal/schema"
	apperrors "fest-proposal-service/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Event, error)
	// Update overwrites every mutable attribute of the event row. The merge
	// itself happens in the service; by the time it gets here the event is
	// the final state to persist.
	Update(ctx context.Context, event *model.Event) (*model.Event, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	var formFields string
	err := row.Scan(
		&event.ID,
		&event.ClubID,
		&event.Name,
		&event.PosterURL,
		&event.RegistrationFee,
		&event.RegistrationMethod,
		&event.RegistrationLink,
		&formFields,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	event.FormFields, err = schema.DecodeFields(formFields)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	query := `
		SELECT id, club_id, name, poster_url, registration_fee, registration_method, registration_link, form_fields, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) ListByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Event, error) {
	query := `
		SELECT id, club_id, name, poster_url, registration_fee, registration_method, registration_link, form_fields, created_at, updated_at
		FROM events
		WHERE club_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepositoryImpl) Update(ctx context.Context, event *model.Event) (*model.Event, error) {
	formFields, err := schema.EncodeFields(event.FormFields)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE events
		SET name = $2, poster_url = $3, registration_fee = $4, registration_method = $5, registration_link = $6, form_fields = $7, updated_at = $8
		WHERE id = $1
		RETURNING id, club_id, name, poster_url, registration_fee, registration_method, registration_link, form_fields, created_at, updated_at
	`
	updated, err := scanEvent(r.pool.QueryRow(ctx, query,
		event.ID,
		event.Name,
		event.PosterURL,
		event.RegistrationFee,
		event.RegistrationMethod,
		event.RegistrationLink,
		formFields,
		time.Now().UTC(),
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return updated, nil
}
