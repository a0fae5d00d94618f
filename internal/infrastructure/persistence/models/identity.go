package models

import (
	"time"

	"github.com/marketplace/backend/internal/domain/identity"
	"github.com/marketplace/backend/internal/domain/shared/valueobject"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	FullName        string                      `gorm:"type:varchar(100);not null"`
	Email           string                      `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash    string                      `gorm:"type:varchar(255);not null"`
	Role            identity.Role               `gorm:"type:varchar(20);not null;default:'user'"`
	Status          identity.UserStatus         `gorm:"type:varchar(20);not null;default:'active';index"`
	AvatarURL       string                      `gorm:"type:varchar(500)"`
	Bio             string                      `gorm:"type:text"`
	ShippingAddress valueobject.ShippingAddress `gorm:"type:jsonb"`
	TotalSales      int64                       `gorm:"not null;default:0"`
	LastLoginAt     *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		FullName:          m.FullName,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Role:              m.Role,
		Status:            m.Status,
		AvatarURL:         m.AvatarURL,
		Bio:               m.Bio,
		ShippingAddress:   m.ShippingAddress,
		TotalSales:        m.TotalSales,
		LastLoginAt:       m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.FullName = u.FullName
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.Status = u.Status
	m.AvatarURL = u.AvatarURL
	m.Bio = u.Bio
	m.ShippingAddress = u.ShippingAddress
	m.TotalSales = u.TotalSales
	m.LastLoginAt = u.LastLoginAt
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
