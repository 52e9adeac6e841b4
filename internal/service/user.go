package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nestegghq/nestegg/internal/model"
	"github.com/nestegghq/nestegg/internal/repository"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) ByID(userID string) (*model.User, error) {
	return s.repo.ByID(userID)
}

func (s *UserService) ByEmail(email string) (*model.User, error) {
	return s.repo.ByEmail(email)
}

func (s *UserService) Create(email, name string) (*model.User, error) {
	now := time.Now()
	user := &model.User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Create(user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
