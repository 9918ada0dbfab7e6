package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tienda/models"
)

var db *gorm.DB

func initDB() {
	var err error
	db, err = gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect postgres database")
	}
	// Migrate models individually so a failure on one doesn't block others.
	for _, m := range []any{
		&models.Usuario{},
		&models.Categoria{},
		&models.Producto{},
		&models.Servicio{},
		&models.Carrito{},
		&models.Compra{},
		&models.Reporte{},
	} {
		if err := db.AutoMigrate(m); err != nil {
			log.Warn().Err(err).Msgf("migration warning (%T)", m)
		}
	}
	seedDB()
}

// seedDB inserts the base categories when they are missing. Idempotent.
func seedDB() {
	categorias := []models.Categoria{
		{Nombre: "productos", Descripcion: "artículos físicos"},
		{Nombre: "servicios", Descripcion: "servicios ofrecidos"},
	}
	for _, cat := range categorias {
		var cnt int64
		db.Model(&models.Categoria{}).Where("nombre = ?", cat.Nombre).Count(&cnt)
		if cnt == 0 {
			if err := db.Create(&cat).Error; err != nil {
				log.Warn().Err(err).Str("categoria", cat.Nombre).Msg("seed failed")
			}
		}
	}
}

// ensureUploadBase creates the upload folders the API writes into.
func ensureUploadBase() {
	for carpeta := range allowedCarpetas {
		dir := filepath.Join(cfg.UploadBase, carpeta)
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("failed to create upload dir")
		}
	}
}
