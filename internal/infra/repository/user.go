package repository

import (
	"context"

	"artshop/internal/domain/user"
	"artshop/internal/infra"
	"artshop/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (id, username, email, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		u.ID(), u.Username().Value(), u.Email().Value(), u.PasswordHash(), u.Role().String()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx,
		`UPDATE users SET last_login_at = now() WHERE id = $1`, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
