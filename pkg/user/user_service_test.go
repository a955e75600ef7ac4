package user

import (
	"context"
	"testing"

	"github.com/eventra/eventra/internal/event_bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordLogins(bus *event_bus.EventBus) *[]event_bus.UserLoggedIn {
	var logins []event_bus.UserLoggedIn
	event_bus.SubscribeTyped[event_bus.UserLoggedIn](bus, event_bus.UserLoggedInType,
		func(e event_bus.EventT[event_bus.UserLoggedIn]) error {
			logins = append(logins, e.Data)
			return nil
		})
	return &logins
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the user and publish a login notification", func(t *testing.T) {
		// given
		bus := event_bus.NewEventBus()
		logins := recordLogins(bus)
		service := NewService(NewMemoryUserRepo(), bus)

		// when
		u, err := service.Login(ctx, "demo", "demo")

		// then
		require.NoError(t, err)
		assert.Equal(t, "demo", u.Login)
		assert.Equal(t, RoleClient, u.Role)
		require.Len(t, *logins, 1)
		assert.Equal(t, u.ID, (*logins)[0].UserID)
		assert.Equal(t, u.DisplayName(), (*logins)[0].DisplayName)
	})

	t.Run("should reject unknown credentials", func(t *testing.T) {
		// given
		bus := event_bus.NewEventBus()
		logins := recordLogins(bus)
		service := NewService(NewMemoryUserRepo(), bus)

		// when
		_, err := service.Login(ctx, "demo", "wrong-password")

		// then
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, *logins)
	})

	t.Run("should reject administrator accounts", func(t *testing.T) {
		// given
		bus := event_bus.NewEventBus()
		logins := recordLogins(bus)
		service := NewService(NewMemoryUserRepo(), bus)

		// when
		_, err := service.Login(ctx, "admin", "admin")

		// then
		assert.ErrorIs(t, err, ErrAccessRestricted)
		assert.Empty(t, *logins)
	})

	t.Run("should allow manager accounts", func(t *testing.T) {
		// given
		bus := event_bus.NewEventBus()
		service := NewService(NewMemoryUserRepo(), bus)

		// when
		u, err := service.Login(ctx, "ivanov", "manager1")

		// then
		require.NoError(t, err)
		assert.Equal(t, RoleManager, u.Role)
	})
}

func TestListManagers(t *testing.T) {
	// given
	service := NewService(NewMemoryUserRepo(), event_bus.NewEventBus())

	// when
	managers, err := service.ListManagers(context.Background())

	// then
	require.NoError(t, err)
	require.Len(t, managers, 2)
	for _, m := range managers {
		assert.Equal(t, RoleManager, m.Role)
	}
}
