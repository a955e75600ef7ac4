package user

import (
	"context"

	"github.com/eventra/eventra/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Login(ctx context.Context, login, password string) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	ListManagers(ctx context.Context) ([]User, error)
}

type ServiceImpl struct {
	repo UserRepo
	bus  *event_bus.EventBus
}

func NewService(repo UserRepo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

// Login checks credentials by lookup-and-compare. Administrator and Organizer
// accounts are rejected: this surface is for the planning client only.
func (s *ServiceImpl) Login(ctx context.Context, login, password string) (User, error) {
	u, err := s.repo.FindByCredentials(ctx, login, password)
	if err != nil {
		return User{}, err
	}

	if u.Role == RoleAdministrator || u.Role == RoleOrganizer {
		return User{}, ErrAccessRestricted
	}

	err = s.bus.Publish(event_bus.NewEvent(ctx, event_bus.UserLoggedInType, event_bus.UserLoggedIn{
		UserID:      u.ID,
		DisplayName: u.DisplayName(),
	}))
	if err != nil {
		log.Errorf("failed to publish login notification: %v", err)
	}

	return u, nil
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]User, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) ListManagers(ctx context.Context) ([]User, error) {
	return s.repo.ListManagers(ctx)
}
