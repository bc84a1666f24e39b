// Package site serves the registration application shared by both listeners.
package site

import (
	"net/http"
	"path/filepath"

	"cadastro-rural/internal/pkg/logging"
	"cadastro-rural/internal/port"
)

// ArchiveName is the download name of the offline package.
const ArchiveName = "cadastro_rural_offline.zip"

// OfflineFiles are packed into the offline archive when present.
var OfflineFiles = []string{
	"index.html",
	"manifest.webmanifest",
	"sw.js",
	"static/css/bootstrap.min.css",
	"static/css/bootstrap-icons.css",
	"static/js/bootstrap.bundle.min.js",
	"static/js/alpine.min.js",
	"static/js/jszip.min.js",
	"static/icon.png",
	"static/fonts/bootstrap-icons.woff",
	"static/fonts/bootstrap-icons.woff2",
}

// indexCandidates are tried in order for GET /.
var indexCandidates = []string{"index.html", "templates/index.html"}

// Handler serves the application files below a site root. It holds no
// per-request state and is safe for concurrent use by several listeners.
type Handler struct {
	root    string
	fileMgr port.FileManager
	next    http.Handler
}

// Ensure Handler is an http.Handler
var _ http.Handler = (*Handler)(nil)

// NewHandler creates the application handler for root.
func NewHandler(root string, fileMgr port.FileManager) *Handler {
	h := &Handler{root: root, fileMgr: fileMgr}
	h.next = accessLog(h.routes())
	return h
}

func (h *Handler) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET /manifest.webmanifest", h.handleManifest)
	mux.HandleFunc("GET /sw.js", h.handleServiceWorker)
	mux.HandleFunc("GET /download", h.handleDownload)
	mux.HandleFunc("GET /instalar", h.handleInstall)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(h.path("static")))))
	return mux
}

// ServeHTTP dispatches the request and records it in the access log.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.next.ServeHTTP(w, r)
}

func (h *Handler) path(rel string) string {
	return filepath.Join(h.root, filepath.FromSlash(rel))
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	for _, rel := range indexCandidates {
		if p := h.path(rel); h.fileMgr.FileExists(p) {
			http.ServeFile(w, r, p)
			return
		}
	}
	http.NotFound(w, r)
}

func (h *Handler) handleServiceWorker(w http.ResponseWriter, r *http.Request) {
	p := h.path("sw.js")
	if !h.fileMgr.FileExists(p) {
		http.NotFound(w, r)
		return
	}
	// Must be served from the root with a script type to control the whole scope
	w.Header().Set("Content-Type", "application/javascript")
	http.ServeFile(w, r, p)
}

func (h *Handler) handleInstall(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(installPage))
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	data, err := h.Archive()
	if err != nil {
		logging.WithComponent("site").WithError(err).Error("Failed to build offline archive")
		http.Error(w, "failed to build offline archive", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ArchiveName+`"`)
	_, _ = w.Write(data)
}

// statusRecorder captures the HTTP status code written to the response.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// accessLog logs every request at debug level with the serving protocol.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		logging.WithComponentAndListener("site", scheme).WithFields(map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": rw.status,
			"remote": r.RemoteAddr,
		}).Debug("Request served")
	})
}
