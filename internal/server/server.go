package server

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"github.com/san-kum/sortscope/internal/algorithms"
	"github.com/san-kum/sortscope/internal/config"
)

const (
	serverReadTimeout     = 30 * time.Second
	serverWriteTimeout    = 60 * time.Second
	serverIdleTimeout     = 120 * time.Second
	serverShutdownTimeout = 10 * time.Second

	defaultRandomSize = 10
	minGenerateSize   = 5
	maxGenerateSize   = 50
	randomMin         = 1
	randomMax         = 99
)

//go:embed static
var staticFiles embed.FS

type Options struct {
	// RunCache bounds how many executed runs stay addressable by id.
	RunCache int
	// Seed makes generated arrays reproducible; zero seeds from the clock.
	Seed     int64
	Logger   *slog.Logger
}

// Server exposes recorded runs over HTTP. Runs live only in memory.
type Server struct {
	registry  *algorithms.Registry
	explainer *algorithms.Explainer
	runs      *runCache
	metrics   *metrics
	logger    *slog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

func New(registry *algorithms.Registry, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Server{
		registry:  registry,
		explainer: algorithms.NewExplainer(),
		runs:      newRunCache(opts.RunCache),
		metrics:   newMetrics(),
		logger:    logger,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/algorithms", s.handleAlgorithms)
	mux.HandleFunc("GET /api/presets", s.handlePresets)
	mux.HandleFunc("POST /api/execute", s.handleExecute)
	mux.HandleFunc("POST /api/generate_array", s.handleGenerateArray)
	mux.HandleFunc("GET /api/runs/{id}", s.handleRun)
	mux.HandleFunc("GET /api/runs/{id}/states/{pos}", s.handleRunState)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.handler())

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /", http.FileServerFS(static))

	return gzhttp.GzipHandler(instrument(s.logger, s.metrics, mux))
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

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("sortscope server starting", "addr", "http://"+ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	s.logger.Info("sortscope server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) randomArray(size int) []int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return config.RandomArray(size, randomMin, randomMax, s.rng)
}

func (s *Server) presetArray(name string, size int) ([]int, error) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return config.GeneratePreset(name, size, s.rng)
}
