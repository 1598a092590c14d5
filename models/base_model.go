package models

import "time"

// BaseModel tüm ana tabloların ortak alanlarını içerir.
// UpdatedAt yalnızca başarılı mutasyonlarda GORM tarafından tazelenir.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
