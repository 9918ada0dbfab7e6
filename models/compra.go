package models

import "time"

// Compra records a completed purchase of a product.
type Compra struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UsuarioID  uint      `json:"usuario_id" gorm:"index;not null"`
	ProductoID uint      `json:"producto_id" gorm:"index;not null"`
	Cantidad   int       `json:"cantidad" gorm:"not null"`
	Total      float64   `json:"total" gorm:"not null"`
	FechaYHora time.Time `json:"fecha_y_hora" gorm:"autoCreateTime"`
}
