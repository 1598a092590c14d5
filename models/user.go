package models

// User kart sahibini temsil eder. Şu an tek kiracılı çalışıyoruz: tüm
// kartlar seeder'ın oluşturduğu varsayılan sahibe bağlanır. Tablo, ileride
// çok kullanıcılı yapıya geçiş için şimdiden bu şekilde modellendi.
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	Cards []Card `gorm:"foreignKey:UserID" json:"-"`
}
