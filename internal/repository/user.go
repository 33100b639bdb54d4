package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/labchat/chat-server-go/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, params model.CreateUserParams) error
}

type userRepo struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepo{db: db}
}

// Create inserts unconditionally. The table carries no uniqueness
// constraint and the application enforces none: registering twice with the
// same fields produces two rows.
func (r *userRepo) Create(ctx context.Context, params model.CreateUserParams) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
	`, params.Username, params.Password)
	return err
}
