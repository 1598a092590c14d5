package models

import "time"

// Feedback bir kartın public sayfasından gönderilen anonim memnuniyet
// kaydıdır. Oluşturulduktan sonra değiştirilmez; yalnızca kartla birlikte
// cascade ile silinir.
type Feedback struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CardID       uint      `gorm:"index;not null" json:"-"` // cards.id FK
	Satisfaction bool      `gorm:"not null" json:"satisfaction"`
	Comment      string    `gorm:"type:text" json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName orijinal şemadaki tekil tablo adını korur.
func (Feedback) TableName() string {
	return "feedback"
}
