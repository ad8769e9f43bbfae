package models

import "time"

// Review is unique per (product_id, user_id); a second submission from the
// same user overwrites rating and comment.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"uniqueIndex:idx_reviews_product_user;not null" json:"product_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_reviews_product_user;not null" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_favorites_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_favorites_user_product;not null" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}
