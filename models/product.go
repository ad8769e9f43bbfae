package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	CategoryID  uint      `gorm:"index;not null" json:"category_id"`
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`
	Rating      float64   `gorm:"type:numeric(3,2);default:0" json:"rating"`
	RatingCount int       `gorm:"default:0" json:"rating_count"`
	Popularity  int       `gorm:"default:0" json:"popularity"`
	ScreenSize  *float64  `json:"screen_size,omitempty"`
	Resolution  *string   `gorm:"type:varchar(32)" json:"resolution,omitempty"`
	RAM         *int      `gorm:"column:ram" json:"ram,omitempty"`
	Storage     *int      `json:"storage,omitempty"`
	Processor   *string   `gorm:"type:varchar(64)" json:"processor,omitempty"`
	Battery     *int      `json:"battery,omitempty"`
	RefreshRate *int      `json:"refresh_rate,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ArchivedProduct is a point-in-time copy of a Product retained after the
// live row is deleted, so historical order items keep resolving.
type ArchivedProduct struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	CategoryID  uint      `gorm:"not null" json:"category_id"`
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`
	Rating      float64   `gorm:"type:numeric(3,2)" json:"rating"`
	RatingCount int       `json:"rating_count"`
	Popularity  int       `json:"popularity"`
	ScreenSize  *float64  `json:"screen_size,omitempty"`
	Resolution  *string   `gorm:"type:varchar(32)" json:"resolution,omitempty"`
	RAM         *int      `gorm:"column:ram" json:"ram,omitempty"`
	Storage     *int      `json:"storage,omitempty"`
	Processor   *string   `gorm:"type:varchar(64)" json:"processor,omitempty"`
	Battery     *int      `json:"battery,omitempty"`
	RefreshRate *int      `json:"refresh_rate,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ArchivedAt  time.Time `gorm:"not null;autoCreateTime" json:"archived_at"`
}

// Archive builds the snapshot row for a product being deleted.
func (p Product) Archive() ArchivedProduct {
	return ArchivedProduct{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		Rating:      p.Rating,
		RatingCount: p.RatingCount,
		Popularity:  p.Popularity,
		ScreenSize:  p.ScreenSize,
		Resolution:  p.Resolution,
		RAM:         p.RAM,
		Storage:     p.Storage,
		Processor:   p.Processor,
		Battery:     p.Battery,
		RefreshRate: p.RefreshRate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
