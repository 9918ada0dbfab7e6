package main

import (
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const maxUploadBytes = 5 * 1024 * 1024

var allowedCarpetas = map[string]bool{
	"usuarios":      true,
	"publicaciones": true,
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// uploadImgHandler stores a listing or profile image. Only JPEG/PNG up to
// 5MB, into one of the two allowed folders. The response carries the public
// URL; no database record is written.
func uploadImgHandler(c *gin.Context) {
	file, err := c.FormFile("imagen")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imagen file is required"})
		return
	}
	carpeta := c.PostForm("carpeta")
	if carpeta == "" {
		carpeta = "publicaciones"
	}
	if !allowedCarpetas[carpeta] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid carpeta"})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 5MB)"})
		return
	}
	if !allowedImageTypes[file.Header.Get("Content-Type")] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only JPEG and PNG images are accepted"})
		return
	}

	nombre := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	fullPath := filepath.Join(cfg.UploadBase, carpeta, nombre)
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	// decode to make sure the payload really is an image, then thumbnail it
	img, err := imaging.Open(fullPath)
	if err != nil {
		_ = os.Remove(fullPath)
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is not a valid image"})
		return
	}
	if err := saveThumbnail(img, fullPath); err != nil {
		log.Warn().Err(err).Str("file", nombre).Msg("thumbnail generation failed")
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"nombreArchivo": nombre,
		"url":           "/uploads/" + carpeta + "/" + nombre,
	})
}

func saveThumbnail(img image.Image, fullPath string) error {
	thumb := imaging.Thumbnail(img, 200, 200, imaging.Lanczos)
	return imaging.Save(thumb, thumbPath(fullPath))
}

func thumbPath(fullPath string) string {
	return filepath.Join(filepath.Dir(fullPath), "thumb_"+filepath.Base(fullPath))
}
