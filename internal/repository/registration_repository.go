package repository

import (
	"context"

	"fest-proposal-service/internal/model"
	"fest-proposal-service/internal/schema"
	"fest-proposal-service/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration *model.Registration) (*model.Registration, error)
	// ListByClub returns every registration for the club with form data
	// decoded. A malformed record never aborts the fetch: its form data is
	// replaced with an empty mapping and the record is kept.
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Registration, error)
}

type RegistrationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRegistrationRepository(pool *pgxpool.Pool) RegistrationRepository {
	return &RegistrationRepositoryImpl{
		pool: pool,
	}
}

func (r *RegistrationRepositoryImpl) Create(ctx context.Context, registration *model.Registration) (*model.Registration, error) {
	formData, err := schema.EncodeValues(registration.FormData)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO registrations (id, event_id, club_id, user_id, user_email, form_data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, event_id, club_id, user_id, user_email, created_at
	`
	err = r.pool.QueryRow(ctx, query,
		registration.ID,
		registration.EventID,
		registration.ClubID,
		registration.UserID,
		registration.UserEmail,
		formData,
	).Scan(
		&registration.ID,
		&registration.EventID,
		&registration.ClubID,
		&registration.UserID,
		&registration.UserEmail,
		&registration.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return registration, nil
}

func (r *RegistrationRepositoryImpl) ListByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Registration, error) {
	query := `
		SELECT id, event_id, club_id, user_id, user_email, form_data, created_at
		FROM registrations
		WHERE club_id = $1
		ORDER BY created_at DESC
		LIMIT 1000
	`
	rows, err := r.pool.Query(ctx, query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	log := logger.WithComponent("repository")

	registrations := make([]*model.Registration, 0)
	for rows.Next() {
		var registration model.Registration
		var formData string
		err := rows.Scan(
			&registration.ID,
			&registration.EventID,
			&registration.ClubID,
			&registration.UserID,
			&registration.UserEmail,
			&formData,
			&registration.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		registration.FormData, err = schema.DecodeValues(formData)
		if err != nil {
			// Fail-soft per record: keep the registration visible with an
			// empty form rather than losing the whole listing.
			log.Warn("malformed form data",
				zap.String("registration_id", registration.ID.String()),
				zap.Error(err),
			)
			registration.FormData = schema.Values{}
		}

		registrations = append(registrations, &registration)
	}
	return registrations, rows.Err()
}
