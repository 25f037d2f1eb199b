package web

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"kicker/internal/back"
	"kicker/internal/config"
	"kicker/internal/util"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

type Server struct {
	http   *http.Server
	back   *back.Back
	config *config.Config
}

func NewServer(back *back.Back, conf *config.Config) *Server {
	s := &Server{
		back:   back,
		config: conf,
	}

	s.http = &http.Server{
		Addr:         conf.ListenAddr,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  10 * time.Second,
		Handler:      s.setupRouter(),
	}

	return s
}

func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Use(cors.New(cors.Options{
		AllowedOrigins: s.config.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}).Handler)

	if s.config.RateLimit > 0 {
		r.Use(rateLimiter(rate.NewLimiter(
			rate.Limit(s.config.RateLimit),
			s.config.RateBurst,
		)))
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/players", s.postPlayer)
		r.Get("/players", s.getPlayers)
		r.Get("/players/{id}", s.getPlayerStats)
		r.Post("/games", s.postGame)
		r.Get("/games", s.getGames)
		r.Get("/leaderboard", s.getLeaderboard)
	})

	r.Get("/rules", s.getRules)
	r.Handle("/*", http.FileServer(http.Dir(s.config.WebDir)))

	return r
}

// rateLimiter shares one token bucket across all clients, which is enough
// to keep a misbehaving script from hammering the single SQLite writer.
func rateLimiter(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) Serve(wg *sync.WaitGroup, done <-chan struct{}) {
	log.Printf("info: starting HTTP server on %s", s.http.Addr)
	wg.Add(1)
	defer wg.Done()

	go func() {
		err := s.http.ListenAndServe()
		if err == http.ErrServerClosed {
			log.Println("info: HTTP server closed")
			return
		}

		log.Fatalf("webserver crashed: %s", err)
	}()

	<-done
	if err := s.http.Close(); err != nil {
		log.Printf("warning: unable to close webserver: %s", err)
	}
}

func (s *Server) response(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	response, err := json.Marshal(data)
	if err != nil {
		log.Printf("error: unable to marshal response: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(code)

	if _, err := w.Write(response); err != nil {
		log.Printf("error: unable to send response: %s", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// error maps a domain error to its HTTP shape. Validation errors carry
// their message to the client, unknown player ids read as not found,
// anything else is logged and hidden behind a generic message.
func (s *Server) error(w http.ResponseWriter, err error) {
	var public util.ErrPublic
	switch {
	case errors.As(err, &public):
		s.response(w, http.StatusBadRequest, errorResponse{Error: public.Error()})
	case errors.Is(err, sql.ErrNoRows):
		s.response(w, http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		log.Printf("error: %s", err)
		s.response(w, http.StatusInternalServerError, errorResponse{Error: "database error"})
	}
}
