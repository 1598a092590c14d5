package models

import "time"

// Quote bir kartın public sayfasından gönderilen teklif talebidir.
// Feedback gibi append-only tutulur; ziyaretçi geçmişi kaybolmaz.
type Quote struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CardID    uint      `gorm:"index;not null" json:"-"` // cards.id FK
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	Email     string    `gorm:"type:varchar(150)" json:"email"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
