package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"usermgmt-api/internal/model"
	"usermgmt-api/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
	ErrUserConflict = repository.ErrUserConflict
)

// EventPublisher receives user lifecycle events after a successful write.
type EventPublisher interface {
	Publish(ctx context.Context, event model.UserEvent) error
}

type UserService struct {
	userRepo  *repository.UserRepository
	publisher EventPublisher
}

// UserInput carries both fields; empty strings are stored as given.
type UserInput struct {
	Username string
	Email    string
}

// NewUserService builds the service; publisher may be nil.
func NewUserService(userRepo *repository.UserRepository, publisher EventPublisher) *UserService {
	return &UserService{
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (s *UserService) CreateUser(ctx context.Context, input UserInput) (*model.User, error) {
	user := &model.User{
		Username: input.Username,
		Email:    input.Email,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, model.UserCreated, *user)
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if id == 0 {
		return nil, ErrUserNotFound
	}
	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser replaces both fields; partial updates are not supported.
func (s *UserService) UpdateUser(ctx context.Context, id uint, input UserInput) (*model.User, error) {
	if id == 0 {
		return nil, ErrUserNotFound
	}
	user, err := s.userRepo.Update(ctx, id, input.Username, input.Email)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, model.UserUpdated, *user)
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrUserNotFound
	}
	user, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.publish(ctx, model.UserDeleted, *user)
	return nil
}

func (s *UserService) publish(ctx context.Context, eventType string, user model.User) {
	if s.publisher == nil {
		return
	}
	event := model.UserEvent{
		Type:       eventType,
		User:       user,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("event", eventType).Uint("user_id", user.ID).Msg("publish user event failed")
	}
}
