package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/labchat/chat-server-go/internal/model"
)

type InteractionRepository interface {
	Create(ctx context.Context, params model.CreateInteractionParams) error
	FindBySessionPrefix(ctx context.Context, prefix string) ([]model.Interaction, error)
}

type interactionRepo struct {
	db *sqlx.DB
}

func NewInteractionRepository(db *sqlx.DB) InteractionRepository {
	return &interactionRepo{db: db}
}

func (r *interactionRepo) Create(ctx context.Context, params model.CreateInteractionParams) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO interactions
			(id_serial, session_id, question, answer, q_timestamp, a_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, params.ID, params.SessionID, params.Question, params.Answer,
		params.QTimestamp, params.ATimestamp)
	return err
}

// FindBySessionPrefix matches every session id starting with the given
// prefix, so a bare username picks up all of that user's day-scoped
// sessions. Ordered by question timestamp ascending.
func (r *interactionRepo) FindBySessionPrefix(ctx context.Context, prefix string) ([]model.Interaction, error) {
	var interactions []model.Interaction
	err := r.db.SelectContext(ctx, &interactions, `
		SELECT * FROM interactions
		WHERE session_id LIKE $1
		ORDER BY q_timestamp ASC
	`, prefix+"%")
	return interactions, err
}
