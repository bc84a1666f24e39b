package site

import (
	"encoding/json"
	"net/http"
)

// Manifest is the web app manifest that makes the application installable.
type Manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Icons           []ManifestIcon `json:"icons"`
}

// ManifestIcon is a single icon entry of the manifest.
type ManifestIcon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose"`
}

// DefaultManifest returns the manifest served at /manifest.webmanifest.
func DefaultManifest() Manifest {
	return Manifest{
		Name:            "Cadastro de Produtores Rurais",
		ShortName:       "Cadastro Rural",
		StartURL:        "/",
		Display:         "standalone",
		BackgroundColor: "#ffffff",
		ThemeColor:      "#1976d2",
		Icons: []ManifestIcon{
			{Src: "/static/icon.png", Sizes: "192x192", Type: "image/png", Purpose: "any maskable"},
			{Src: "/static/icon.png", Sizes: "512x512", Type: "image/png", Purpose: "any maskable"},
		},
	}
}

func (h *Handler) handleManifest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(DefaultManifest())
}
