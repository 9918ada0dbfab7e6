package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tienda/pkg/token"
)

var (
	cfg    *Config
	tokens *token.Manager
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var err error
	cfg, err = loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	tokens = token.NewManager(cfg.AccessSecret, cfg.RefreshSecret)

	initDB()
	initMongo()
	ensureUploadBase()
	go watchUploads(cfg.UploadBase)

	r := gin.Default()
	setupRoutes(r)

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
