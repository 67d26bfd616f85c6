package api

import (
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"github.com/tragkas/portfolio/internal/config"
	"github.com/tragkas/portfolio/internal/store"
)

// Server handles HTTP requests for the portfolio API
type Server struct {
	store      *store.Store
	log        *slog.Logger
	secret     []byte
	bcryptCost int
	addr       string
}

// New creates a new API server
func New(cfg config.Config, s *store.Store, log *slog.Logger) *Server {
	return &Server{
		store:      s,
		log:        log,
		secret:     []byte(cfg.JWTSecret),
		bcryptCost: cfg.BcryptCost,
		addr:       cfg.Addr,
	}
}

// Handler builds the full route table, wrapped in CORS
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/login", s.login)
	mux.HandleFunc("PUT /api/credentials", s.requireAuth(s.updateCredentials))

	// Categories
	mux.HandleFunc("GET /api/categories", s.listCategories)
	mux.HandleFunc("POST /api/categories", s.requireAuth(s.createCategory))
	mux.HandleFunc("PUT /api/categories/{id}", s.requireAuth(s.updateCategory))
	mux.HandleFunc("DELETE /api/categories/{id}", s.requireAuth(s.deleteCategory))

	// Items
	mux.HandleFunc("POST /api/items", s.requireAuth(s.createItem))
	mux.HandleFunc("PUT /api/items/reorder", s.requireAuth(s.reorderItems))
	mux.HandleFunc("PUT /api/items/{id}", s.requireAuth(s.updateItem))
	mux.HandleFunc("DELETE /api/items/{id}", s.requireAuth(s.deleteItem))

	// Health check
	mux.HandleFunc("GET /api/health", s.health)

	// The dashboard frontend runs on a different origin in development
	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	return c.Handler(mux)
}

// Run starts the HTTP server
func (s *Server) Run() error {
	s.log.Info("starting server", "addr", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
