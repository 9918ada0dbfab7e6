package models

import "time"

// Usuario is a marketplace account. Password holds the bcrypt hash; the
// usuarios handler rewrites the plaintext before it reaches the store.
type Usuario struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Nombre     string    `json:"nombre" gorm:"size:255;not null"`
	Apellido   string    `json:"apellido" gorm:"size:255"`
	Email      string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Password   string    `json:"password" gorm:"size:255;not null"`
	Telefono   string    `json:"telefono" gorm:"size:64"`
	FechaYHora time.Time `json:"fecha_y_hora" gorm:"autoCreateTime"`
}
