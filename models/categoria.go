package models

// Categoria groups productos; names are unique.
type Categoria struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Nombre      string `json:"nombre" gorm:"size:255;not null;uniqueIndex"`
	Descripcion string `json:"descripcion" gorm:"size:512"`
}
