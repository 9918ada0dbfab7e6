package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// watchUploads backfills thumbnails for images that land in the upload
// folders outside the API (bulk copies, manual fixes). Events are debounced
// so half-written files are not picked up.
func watchUploads(base string) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn().Err(err).Msg("upload watcher disabled")
		return
	}
	defer w.Close()
	for carpeta := range allowedCarpetas {
		if err := w.Add(filepath.Join(base, carpeta)); err != nil {
			log.Warn().Err(err).Str("carpeta", carpeta).Msg("cannot watch upload dir")
		}
	}

	pending := map[string]time.Time{}
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Create == fsnotify.Create && isThumbnailable(ev.Name) {
				pending[ev.Name] = time.Now()
			}
		case <-ticker.C:
			now := time.Now()
			for path, t := range pending {
				if now.Sub(t) > 300*time.Millisecond { // stable
					delete(pending, path)
					ensureThumbnail(path)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("upload watcher error")
		}
	}
}

func isThumbnailable(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, "thumb_") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

func ensureThumbnail(path string) {
	if _, err := os.Stat(thumbPath(path)); err == nil {
		return
	}
	img, err := imaging.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("skipping non-image upload")
		return
	}
	if err := saveThumbnail(img, path); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("thumbnail generation failed")
		return
	}
	log.Info().Str("file", path).Msg("thumbnail generated")
}
