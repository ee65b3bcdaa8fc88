package service

import (
	"context"

	"heladosupply/internal/dto"
	"heladosupply/internal/model"
	"heladosupply/internal/notify"
	"heladosupply/internal/repository"

	"github.com/google/uuid"
)

type UserService interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	Upsert(ctx context.Context, req dto.UpsertUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	users     repository.UserRepository
	publisher *notify.Publisher
}

func NewUserService(users repository.UserRepository, publisher *notify.Publisher) UserService {
	return &userService{users: users, publisher: publisher}
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToResponse(u))
	}
	return out, nil
}

func (s *userService) Upsert(ctx context.Context, req dto.UpsertUserRequest) (*dto.UserResponse, error) {
	u := model.AppUser{
		Username: req.Username,
		Role:     req.Role,
		Color:    req.Color,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, err
		}
		u.ID = id
	}
	if err := s.users.Upsert(ctx, &u); err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, notify.CollectionUsers)
	resp := userToResponse(u)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, notify.CollectionUsers)
	return nil
}

func userToResponse(u model.AppUser) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Role:     u.Role,
		Color:    u.Color,
	}
}
