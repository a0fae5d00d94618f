package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketplace/backend/internal/domain/order"
	"github.com/marketplace/backend/internal/domain/shared/valueobject"
)

// OrderModel is the persistence model for the Order aggregate.
// The listing snapshot columns are denormalized from the listing at
// purchase time and never updated afterwards.
type OrderModel struct {
	AggregateModel
	BuyerID         uuid.UUID                   `gorm:"type:uuid;not null;index"`
	SellerID        uuid.UUID                   `gorm:"type:uuid;not null;index"`
	ListingID       uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Title           string                      `gorm:"type:varchar(200);not null"`
	Author          string                      `gorm:"type:varchar(200)"`
	Category        string                      `gorm:"type:varchar(100)"`
	Price           decimal.Decimal             `gorm:"type:decimal(12,2);not null;default:0"`
	Quantity        int                         `gorm:"not null;default:1"`
	ShippingAddress valueobject.ShippingAddress `gorm:"type:jsonb"`
	TotalPrice      decimal.Decimal             `gorm:"type:decimal(12,2);not null;default:0"`
	Status          order.OrderStatus           `gorm:"type:varchar(20);not null;default:'Pending';index"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order aggregate.
func (m *OrderModel) ToDomain() *order.Order {
	return &order.Order{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		BuyerID:           m.BuyerID,
		SellerID:          m.SellerID,
		Snapshot: order.ListingSnapshot{
			ListingID: m.ListingID,
			Title:     m.Title,
			Author:    m.Author,
			Category:  m.Category,
			Price:     m.Price,
			Quantity:  m.Quantity,
		},
		ShippingAddress: m.ShippingAddress,
		TotalPrice:      m.TotalPrice,
		Status:          m.Status,
	}
}

// FromDomain populates the persistence model from a domain Order aggregate.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.BuyerID = o.BuyerID
	m.SellerID = o.SellerID
	m.ListingID = o.Snapshot.ListingID
	m.Title = o.Snapshot.Title
	m.Author = o.Snapshot.Author
	m.Category = o.Snapshot.Category
	m.Price = o.Snapshot.Price
	m.Quantity = o.Snapshot.Quantity
	m.ShippingAddress = o.ShippingAddress
	m.TotalPrice = o.TotalPrice
	m.Status = o.Status
}

// OrderModelFromDomain creates a new persistence model from a domain Order aggregate.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
