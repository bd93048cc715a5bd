package model

import (
	"time"

	"perfumeria/internal/domain/entity"

	"github.com/google/uuid"
)

// CartModel is the GORM-specific struct for the 'carts' table. The item list
// is stored as a JSONB document because lines are always read and written as
// one snapshot.
type CartModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key"`
	Items     []entity.CartItem `gorm:"type:jsonb;serializer:json"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// ToEntity converts the storage model to a domain cart.
func (m *CartModel) ToEntity() *entity.Cart {
	return &entity.Cart{
		ID:        m.ID,
		Items:     m.Items,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromEntity converts a domain cart to its storage model.
func FromEntity(cart *entity.Cart) *CartModel {
	return &CartModel{
		ID:        cart.ID,
		Items:     cart.Items,
		UpdatedAt: cart.UpdatedAt,
	}
}
