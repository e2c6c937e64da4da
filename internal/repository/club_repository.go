package repository

import (
	"context"

	"fest-proposal-service/internal/model"
	apperrors "fest-proposal-service/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClubRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Club, error)
	FindByName(ctx context.Context, name string) (*model.Club, error)
}

type ClubRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewClubRepository(pool *pgxpool.Pool) ClubRepository {
	return &ClubRepositoryImpl{
		pool: pool,
	}
}

func (r *ClubRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Club, error) {
	query := `
		SELECT id, name, category
		FROM clubs
		WHERE id = $1
	`
	var club model.Club
	err := r.pool.QueryRow(ctx, query, id).Scan(&club.ID, &club.Name, &club.Category)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, err
	}
	return &club, nil
}

func (r *ClubRepositoryImpl) FindByName(ctx context.Context, name string) (*model.Club, error) {
	query := `
		SELECT id, name, category
		FROM clubs
		WHERE name = $1
	`
	var club model.Club
	err := r.pool.QueryRow(ctx, query, name).Scan(&club.ID, &club.Name, &club.Category)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, err
	}
	return &club, nil
}
