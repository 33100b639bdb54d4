package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	apperrors "github.com/labchat/chat-server-go/internal/errors"
	"github.com/labchat/chat-server-go/internal/gateway"
	"github.com/labchat/chat-server-go/internal/model"
	"github.com/labchat/chat-server-go/internal/repository"
)

type ChatService struct {
	interactionRepo repository.InteractionRepository
	completer       gateway.Completer
	settleDelay     time.Duration
}

func NewChatService(
	interactionRepo repository.InteractionRepository,
	completer gateway.Completer,
	settleDelay time.Duration,
) *ChatService {
	return &ChatService{
		interactionRepo: interactionRepo,
		completer:       completer,
		settleDelay:     settleDelay,
	}
}

// Ask forwards the question to the gateway, persists the turn and returns
// the answer. The question timestamp is taken before the gateway call, the
// answer timestamp at persist time. A gateway failure aborts before any
// row is written.
func (s *ChatService) Ask(ctx context.Context, sessionID, question string) (json.RawMessage, error) {
	qTimestamp := time.Now()

	answer, err := s.completer.Complete(ctx, question)
	if err != nil {
		return nil, apperrors.External("language model gateway", err)
	}

	if s.settleDelay > 0 {
		select {
		case <-time.After(s.settleDelay):
		case <-ctx.Done():
			return nil, apperrors.Internal(ctx.Err().Error())
		}
	}

	err = s.interactionRepo.Create(ctx, model.CreateInteractionParams{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		Question:   question,
		Answer:     answer,
		QTimestamp: qTimestamp,
		ATimestamp: time.Now(),
	})
	if err != nil {
		return nil, apperrors.Database(err)
	}

	log.Info().
		Str("sessionId", sessionID).
		Int("questionLen", len(question)).
		Msg("interaction persisted")

	return answer, nil
}

// History returns the flattened conversation for every session id starting
// with the given prefix, two entries per stored turn. The bot entry comes
// first within each pair; rows are ordered by ascending question timestamp.
func (s *ChatService) History(ctx context.Context, sessionPrefix string) ([]model.ChatMessage, error) {
	interactions, err := s.interactionRepo.FindBySessionPrefix(ctx, sessionPrefix)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	messages := make([]model.ChatMessage, 0, 2*len(interactions))
	for i := range interactions {
		it := &interactions[i]
		messages = append(messages,
			model.ChatMessage{
				Role:      model.RoleBot,
				Content:   it.AnswerContent(),
				Timestamp: it.ATimestamp,
			},
			model.ChatMessage{
				Role:      model.RoleUser,
				Content:   it.Question,
				Timestamp: it.QTimestamp,
			},
		)
	}

	return messages, nil
}
