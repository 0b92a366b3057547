// Package server exposes the library engine as a REST API. Handlers are thin
// translations: engine reads in, JSON out, absence mapped to 404 and empty
// buckets to 200 with an empty list.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/KidCrippler/music-library-mcp/internal/library"
)

// Server routes HTTP requests to the current library snapshot.
type Server struct {
	store  *library.Store
	lyrics *http.Client
	router chi.Router
}

// New wires the routes over store. The embedded HTTP client fetches lyric
// markup on demand.
func New(store *library.Store) *Server {
	s := &Server{
		store:  store,
		lyrics: &http.Client{Timeout: 30 * time.Second},
	}
	s.router = s.routes()
	return s
}

// Handler returns the root handler for http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/schema", s.handleSchema)
		r.Get("/stats", s.handleStats)
		r.Post("/reload", s.handleReload)

		r.Get("/songs", s.handleSongs)
		r.Get("/songs/{id}", s.handleSong)
		r.Get("/songs/{id}/lyrics", s.handleLyrics)
		r.Get("/songs/{id}/playback", s.handlePlayback)

		r.Get("/categories", s.handleCategories)
		r.Get("/categories/{id}", s.handleCategory)

		r.Get("/artists", s.handleArtists)
		r.Get("/artists/{name}/songs", s.handleArtistSongs)
		r.Get("/composers", s.handleComposers)
		r.Get("/composers/{name}/songs", s.handleComposerSongs)
		r.Get("/lyricists", s.handleLyricists)
		r.Get("/lyricists/{name}/songs", s.handleLyricistSongs)
		r.Get("/translators", s.handleTranslators)
		r.Get("/translators/{name}/songs", s.handleTranslatorSongs)

		r.Get("/collaborations", s.handleCollaborations)
		r.Get("/collaborations/{lyricist}/{composer}", s.handleCollaborationSongs)

		r.Get("/search", s.handleSearch)
		r.Get("/discovery", s.handleDiscovery)
	})

	return r
}
