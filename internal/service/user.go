package service

import (
	"context"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

type UserService struct {
	repository UserRepository
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository}
}

func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) error {
	user := entities.NewUser(userID, chatID)

	exists, err := s.repository.Exists(ctx, user.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = s.repository.Save(ctx, user)
	return err
}
