package models

import "time"

// Reporte is a user-filed report against a listing or another user.
type Reporte struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UsuarioID   uint      `json:"usuario_id" gorm:"index;not null"`
	Motivo      string    `json:"motivo" gorm:"size:255;not null"`
	Descripcion string    `json:"descripcion" gorm:"size:1024"`
	FechaYHora  time.Time `json:"fecha_y_hora" gorm:"autoCreateTime"`
}
