package models

import "gorm.io/gorm"

// DefaultThemeColor kartın varsayılan marka rengi.
const DefaultThemeColor = "#2563EB"

// Card bir firmanın public profil kaydıdır. Dışarıya slug ile adreslenir;
// slug tüm kartlar arasında benzersizdir ve benzersizlik veritabanı
// indeksiyle garanti edilir (uygulama ön kontrolü tek başına yeterli değil).
type Card struct {
	BaseModel
	UserID uint `gorm:"index;not null" json:"-"` // users.id FK (varsayılan sahip)

	CompanyName string `gorm:"type:varchar(150);not null" json:"company_name"`
	Slug        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"slug"`

	// İletişim / sosyal alanlar (hepsi opsiyonel)
	GoogleReviewLink string `gorm:"type:varchar(500)" json:"google_review_link"`
	Phone            string `gorm:"type:varchar(30)" json:"phone"`
	Whatsapp         string `gorm:"type:varchar(30)" json:"whatsapp"`
	PaymentLink      string `gorm:"type:varchar(500)" json:"payment_link"`
	Instagram        string `gorm:"type:varchar(255)" json:"instagram"`
	Facebook         string `gorm:"type:varchar(255)" json:"facebook"`
	Tiktok           string `gorm:"type:varchar(255)" json:"tiktok"`

	ThemeColor string `gorm:"type:varchar(7);default:'#2563EB'" json:"theme_color"`

	// GORM İlişkileri: kart silinirse çocuk kayıtlar da silinir.
	User      User       `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Feedbacks []Feedback `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Quotes    []Quote    `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// BeforeCreate tema rengi boş bırakıldıysa varsayılanı uygular.
func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ThemeColor == "" {
		c.ThemeColor = DefaultThemeColor
	}
	return nil
}
