package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketplace/backend/internal/domain/catalog"
)

// ListingModel is the persistence model for the Listing domain entity.
type ListingModel struct {
	AggregateModel
	Title       string                `gorm:"type:varchar(200);not null"`
	Author      string                `gorm:"type:varchar(200);not null"`
	Category    string                `gorm:"type:varchar(100);not null;index"`
	Condition   catalog.Condition     `gorm:"type:varchar(20);not null"`
	Price       decimal.Decimal       `gorm:"type:decimal(12,2);not null;default:0"`
	Description string                `gorm:"type:text"`
	ImageURLs   string                `gorm:"type:jsonb;default:'[]'"`
	SellerID    uuid.UUID             `gorm:"type:uuid;not null;index"`
	Status      catalog.ListingStatus `gorm:"type:varchar(20);not null;default:'Available';index"`
}

// TableName returns the table name for GORM
func (ListingModel) TableName() string {
	return "listings"
}

// ToDomain converts the persistence model to a domain Listing entity.
func (m *ListingModel) ToDomain() *catalog.Listing {
	var imageURLs []string
	if m.ImageURLs != "" {
		// A corrupt value degrades to no images rather than failing the read
		_ = json.Unmarshal([]byte(m.ImageURLs), &imageURLs)
	}
	if imageURLs == nil {
		imageURLs = make([]string, 0)
	}

	return &catalog.Listing{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Title:             m.Title,
		Author:            m.Author,
		Category:          m.Category,
		Condition:         m.Condition,
		Price:             m.Price,
		Description:       m.Description,
		ImageURLs:         imageURLs,
		SellerID:          m.SellerID,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Listing entity.
func (m *ListingModel) FromDomain(l *catalog.Listing) {
	m.FromDomainAggregateRoot(l.BaseAggregateRoot)
	m.Title = l.Title
	m.Author = l.Author
	m.Category = l.Category
	m.Condition = l.Condition
	m.Price = l.Price
	m.Description = l.Description
	m.SellerID = l.SellerID
	m.Status = l.Status

	urls := l.ImageURLs
	if urls == nil {
		urls = make([]string, 0)
	}
	data, err := json.Marshal(urls)
	if err != nil {
		data = []byte("[]")
	}
	m.ImageURLs = string(data)
}

// ListingModelFromDomain creates a new persistence model from a domain Listing entity.
func ListingModelFromDomain(l *catalog.Listing) *ListingModel {
	m := &ListingModel{}
	m.FromDomain(l)
	return m
}
