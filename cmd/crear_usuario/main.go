package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tienda/models"
)

// Creates a user directly in the database, bypassing the API. Useful for
// bootstrapping an account on a fresh install.
func main() {
	if len(os.Args) < 4 {
		fmt.Println("usage: go run ./cmd/crear_usuario <nombre> <email> <password>")
		os.Exit(2)
	}
	nombre := os.Args[1]
	email := os.Args[2]
	password := os.Args[3]

	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	var existing models.Usuario
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("usuario %s already exists (id=%d)\n", email, existing.ID)
		os.Exit(0)
	}

	hpw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}
	u := models.Usuario{Nombre: nombre, Email: email, Password: string(hpw)}
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("failed to create usuario: %v", err)
	}
	fmt.Printf("created usuario %s id=%d\n", email, u.ID)
}
