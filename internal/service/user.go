package service

import (
	"context"

	"github.com/rs/zerolog/log"

	apperrors "github.com/labchat/chat-server-go/internal/errors"
	"github.com/labchat/chat-server-go/internal/model"
	"github.com/labchat/chat-server-go/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register stores the credentials exactly as received. The password is
// already a client-side digest and is not re-hashed; nothing is checked
// against earlier registrations.
func (s *UserService) Register(ctx context.Context, username, password string) error {
	err := s.userRepo.Create(ctx, model.CreateUserParams{
		Username: username,
		Password: password,
	})
	if err != nil {
		return apperrors.Database(err)
	}

	log.Info().Str("username", username).Msg("user registered")
	return nil
}
