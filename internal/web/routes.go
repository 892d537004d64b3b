package web

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// CollageInfo describes one rendered page.
type CollageInfo struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
	URL      string    `json:"url"`
}

func (s *Server) setupRoutes() {
	s.router.Get("/api/v1/health", s.handleHealth)
	s.router.Get("/api/v1/collages", s.handleList)
	s.router.Get("/collages/{name}", s.handleCollage)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleList returns the rendered pages in name order, which is also the
// run's sequence order.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.collagesDir)
	if err != nil {
		http.Error(w, "failed to read collages directory", http.StatusInternalServerError)
		return
	}

	collages := []CollageInfo{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		collages = append(collages, CollageInfo{
			Name:     entry.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
			URL:      "/collages/" + entry.Name(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(collages)
}

func (s *Server) handleCollage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	// Only flat PNG names; anything resembling a path traversal is rejected.
	if name != filepath.Base(name) || !strings.HasSuffix(name, ".png") {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	path := filepath.Join(s.collagesDir, name)
	if _, err := os.Stat(path); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, path)
}
