package models

import "time"

// Carrito is one product line in a user's cart.
type Carrito struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UsuarioID  uint      `json:"usuario_id" gorm:"index;not null"`
	ProductoID uint      `json:"producto_id" gorm:"index;not null"`
	Cantidad   int       `json:"cantidad" gorm:"not null"`
	FechaYHora time.Time `json:"fecha_y_hora" gorm:"autoCreateTime"`
}
