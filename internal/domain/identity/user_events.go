package identity

import (
	"github.com/google/uuid"

	"github.com/marketplace/backend/internal/domain/shared"
)

const (
	AggregateTypeUser = "User"

	EventTypeUserRegistered = "UserRegistered"
	EventTypeUserSuspended  = "UserSuspended"
)

// UserRegisteredEvent is raised when a new account is created
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   Role      `json:"role"`
}

// NewUserRegisteredEvent creates a user registered event
func NewUserRegisteredEvent(u *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRegistered, AggregateTypeUser, u.ID),
		UserID:          u.ID,
		Email:           u.Email,
		Role:            u.Role,
	}
}

// EventType returns the event type
func (e *UserRegisteredEvent) EventType() string {
	return EventTypeUserRegistered
}

// UserSuspendedEvent is raised when an admin suspends an account
type UserSuspendedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// NewUserSuspendedEvent creates a user suspended event
func NewUserSuspendedEvent(u *User) *UserSuspendedEvent {
	return &UserSuspendedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserSuspended, AggregateTypeUser, u.ID),
		UserID:          u.ID,
		Email:           u.Email,
	}
}

// EventType returns the event type
func (e *UserSuspendedEvent) EventType() string {
	return EventTypeUserSuspended
}
