package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	readTimeout     = 5 * time.Second
	writeTimeout    = 5 * time.Second
	shutdownTimeout = 2 * time.Second
)

// Health is the body of GET /v1/health
type Health struct {
	Status  string `json:"status"`
	Metrics int    `json:"metrics"`
}

// Report is the body of GET /v1/status
type Report struct {
	Game    any      `json:"game,omitempty"`
	Metrics Snapshot `json:"metrics"`
}

// NewRouter builds the read-only status API; game may be nil
func NewRouter(reg *Registry, game func() any) chi.Router {
	r := chi.NewRouter()

	// Middlewares; request logs go to the standard logger, never the terminal
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log.Default(), NoColor: true}))
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(sub chi.Router) {
		sub.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, Health{Status: "ok", Metrics: reg.TotalCount()})
		})

		sub.Get("/status", func(w http.ResponseWriter, r *http.Request) {
			rep := Report{Metrics: reg.Snapshot()}
			if game != nil {
				rep.Game = game()
			}
			writeJSON(w, http.StatusOK, rep)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("status: encode response: %v", err)
	}
}

// Serve runs the status server until ctx is done
// Returns nil after a clean shutdown, the listen error otherwise
func Serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Printf("status: listening on %s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("status server shutdown: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("status server: %w", err)
	}
}
