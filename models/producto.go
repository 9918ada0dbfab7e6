package models

import "time"

// Producto is a physical item offered for sale.
type Producto struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Nombre      string    `json:"nombre" gorm:"size:255;not null"`
	Descripcion string    `json:"descripcion" gorm:"size:1024"`
	Precio      float64   `json:"precio" gorm:"not null"`
	Stock       int       `json:"stock" gorm:"default:0"`
	Imagen      string    `json:"imagen" gorm:"size:512"`
	CategoriaID uint      `json:"categoria_id" gorm:"index;not null"`
	VendedorID  uint      `json:"vendedor_id" gorm:"index"`
	FechaYHora  time.Time `json:"fecha_y_hora" gorm:"autoCreateTime"`
}
