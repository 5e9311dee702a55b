package server

import (
	"context"
	"encoding/json"
	"net/http"

	"Jukebox/chat"
	"Jukebox/state"
	"Jukebox/yt"

	"github.com/Strum355/log"
	"github.com/go-chi/chi/v5"
)

// Searcher is the slice of the YouTube manager the router needs
type Searcher interface {
	Search(ctx context.Context, query string) []yt.Track
	TrackTitle(ctx context.Context, id string) (string, bool)
}

type Server struct {
	store   *state.Store
	chatLog *chat.Log
	search  Searcher
	port    int
}

// NewHandler builds the HTTP router. API routes dispatch to the shared
// stores and the search adapter; every other GET falls through to the
// static client UI, every other POST is a 404.
func NewHandler(store *state.Store, chatLog *chat.Log, search Searcher, port int, staticDir string) http.Handler {
	s := &Server{
		store:   store,
		chatLog: chatLog,
		search:  search,
		port:    port,
	}

	r := chi.NewRouter()
	r.Use(crossOrigin)
	r.Use(recoverPanic)

	r.Get("/api/server-ip", s.handleServerIP)
	r.Get("/api/state", s.handleGetState)
	r.Post("/api/state", s.handleReplaceState)
	r.Get("/api/video-info", s.handleVideoInfo)
	r.Get("/api/chat", s.handleGetChat)
	r.Post("/api/chat", s.handlePostChat)
	r.Get("/api/search", s.handleSearch)

	// Anything else is the client UI
	r.Get("/*", http.FileServer(http.Dir(staticDir)).ServeHTTP)
	r.NotFound(handleNotFound)
	r.MethodNotAllowed(handleNotFound)

	return r
}

// crossOrigin applies the permissive CORS policy every response carries and
// answers pre-flight requests on any path
func crossOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// recoverPanic keeps one misbehaving request from taking the server down
func recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.WithFields(log.Fields{
					"path":  r.URL.Path,
					"panic": rec,
				}).Error("Request handler panicked")
				writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
}
