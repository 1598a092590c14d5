// repositories/errors.go
package repositories

import "errors"

// Repository katmanının ortak sentinel hataları. Servisler gorm
// detaylarını değil bu hataları eşler.
var (
	ErrNotFound  = errors.New("kayıt bulunamadı")
	ErrDuplicate = errors.New("kayıt zaten mevcut")
)
