package models

import (
	"time"

	"gorm.io/datatypes"
)

// Cart holds one jsonb item array per user. Guest carts never reach the
// server, they live in browser storage until login.
type Cart struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Items     datatypes.JSON `gorm:"type:jsonb" json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CartItem is one entry of the items array.
type CartItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
