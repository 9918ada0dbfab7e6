package models

import "time"

// Servicio is a service offering published by a user.
type Servicio struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Nombre      string    `json:"nombre" gorm:"size:255;not null"`
	Descripcion string    `json:"descripcion" gorm:"size:1024"`
	Precio      float64   `json:"precio" gorm:"not null"`
	Imagen      string    `json:"imagen" gorm:"size:512"`
	UsuarioID   uint      `json:"usuario_id" gorm:"index;not null"`
	FechaYHora  time.Time `json:"fecha_y_hora" gorm:"autoCreateTime"`
}
