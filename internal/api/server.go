package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"weightlog/internal/domain"
	"weightlog/internal/services/charts"
)

const (
	// maxBodyBytes caps request bodies, imports included.
	maxBodyBytes = 8 << 20
	// shutdownGrace is how long in-flight requests get once the server stops.
	shutdownGrace = 5 * time.Second
	// passphraseHeader carries the export passphrase.
	passphraseHeader = "X-Passphrase"
)

// Server exposes the tracker, prefs and chart services over HTTP.
type Server struct {
	tracker domain.TrackerService
	prefs   domain.PrefsService
	charts  *charts.Service
	log     zerolog.Logger
}

// New returns a Server backed by the given services.
func New(t domain.TrackerService, p domain.PrefsService, c *charts.Service, log zerolog.Logger) *Server {
	return &Server{tracker: t, prefs: p, charts: c, log: log}
}

// Handler returns the routed, access-logged handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/dataset", s.handleDataset)
	mux.HandleFunc("PUT /api/settings", s.handleSettings)

	mux.HandleFunc("POST /api/entries", s.handleAddDay)
	mux.HandleFunc("PATCH /api/entries/{index}", s.handleUpdateEntry)
	mux.HandleFunc("DELETE /api/entries/{index}", s.handleRemoveEntry)

	mux.HandleFunc("GET /api/range", s.handleRange)
	mux.HandleFunc("GET /api/view", s.handleView)
	mux.HandleFunc("GET /api/charts/{file}", s.handleChart)

	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("POST /api/import", s.handleImport)

	mux.HandleFunc("GET /api/prefs", s.handleGetPrefs)
	mux.HandleFunc("PUT /api/prefs", s.handleSetPrefs)

	return s.accessLog(mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.log.Info().Str("addr", ln.Addr().String()).Msg("api listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info().Msg("api stopped")
	return nil
}
