package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by seller
	OrderStatusPaid      OrderStatus = "paid"      // Payment received
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled
)

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     *uint       `gorm:"index" json:"user_id,omitempty"`
	Name       string      `gorm:"type:varchar(100)" json:"name,omitempty"`
	Email      string      `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone      string      `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Address    string      `gorm:"type:varchar(255)" json:"address,omitempty"`
	TotalPrice float64     `gorm:"not null" json:"total_price"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	// Free-text payment type: "cod", "bank" or "liqpay".
	PaymentType string      `gorm:"type:varchar(20)" json:"payment_type,omitempty"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem copies the price at order time, so historical orders stay
// immutable to later price changes. ProductID carries no FK constraint:
// deleting a product must not touch order history.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

// LiqpayOrder maps an internal order to the external gateway reference used
// to correlate callbacks.
type LiqpayOrder struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       uint      `gorm:"uniqueIndex;not null" json:"order_id"`
	LiqpayOrderID string    `gorm:"uniqueIndex;not null" json:"liqpay_order_id"`
	CreatedAt     time.Time `json:"created_at"`
}
