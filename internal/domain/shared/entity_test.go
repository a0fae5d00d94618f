package shared

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewBaseEntity(t *testing.T) {
	e := NewBaseEntity()

	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.False(t, e.CreatedAt.IsZero())
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)
}

func TestBaseEntity_Touch(t *testing.T) {
	e := NewBaseEntity()
	e.UpdatedAt = e.UpdatedAt.Add(-time.Minute)
	before := e.UpdatedAt
	created := e.CreatedAt

	e.Touch()

	assert.True(t, e.UpdatedAt.After(before))
	assert.Equal(t, created, e.CreatedAt, "CreatedAt is never touched")
}

func TestNewBaseAggregateRoot(t *testing.T) {
	a := NewBaseAggregateRoot()

	assert.Equal(t, 1, a.Version)
	assert.Empty(t, a.GetDomainEvents())

	a.IncrementVersion()
	assert.Equal(t, 2, a.Version)
}
