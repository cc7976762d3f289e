package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	mmerror "github.com/mathemascii/mathemascii/foundation/core/error"
	"github.com/mathemascii/mathemascii/internal/render/grpcapi"
	"github.com/mathemascii/mathemascii/internal/render/handler"
	"github.com/mathemascii/mathemascii/internal/render/service"
	"github.com/mathemascii/mathemascii/pkg/core/config"
	coregrpc "github.com/mathemascii/mathemascii/pkg/core/grpc"
	"github.com/mathemascii/mathemascii/pkg/core/health"
	"github.com/mathemascii/mathemascii/pkg/core/logging"
	"github.com/mathemascii/mathemascii/pkg/core/version"
)

// Config holds server configuration
type Config struct {
	Host            string
	HTTPPort        int
	GRPCPort        int // 0 disables the gRPC server
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Host:            "127.0.0.1",
		HTTPPort:        8420,
		GRPCPort:        9420,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// FromConfig derives the server configuration from the application config
func FromConfig(cfg *config.Config) Config {
	return Config{
		Host:            cfg.Server.Host,
		HTTPPort:        cfg.Server.HTTPPort,
		GRPCPort:        cfg.Server.GRPCPort,
		ReadTimeout:     cfg.Server.ReadTimeout.Duration,
		WriteTimeout:    cfg.Server.WriteTimeout.Duration,
		ShutdownTimeout: cfg.Server.ShutdownTimeout.Duration,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
	}
}

// Server runs the HTTP API, the preview WebSocket and the gRPC renderer
type Server struct {
	httpServer *http.Server
	grpc       *coregrpc.Server
	service    *service.Service
	health     *health.Registry
	logger     *logging.Logger
	config     Config
}

// New creates a new server around svc
func New(cfg Config, svc *service.Service, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.New("server")
	}

	healthRegistry := health.NewRegistry("mathemascii", version.Release)
	svc.RegisterHealth(healthRegistry)

	h := handler.NewHandler(svc, healthRegistry, cfg.AllowedOrigins, logger)
	wsHandler := handler.NewWebSocketHandler(svc, h.AllowOrigin, logger)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/preview/ws", wsHandler)
	mux.Handle("/api/v1", h)
	mux.Handle("/api/v1/", h)

	s := &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.HTTPPort),
			Handler:      requestMiddleware(logger, mux),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		service: svc,
		health:  healthRegistry,
		logger:  logger,
		config:  cfg,
	}

	if cfg.GRPCPort > 0 {
		grpcCfg := coregrpc.DefaultServerConfig()
		grpcCfg.Host = cfg.Host
		grpcCfg.Port = cfg.GRPCPort
		s.grpc = coregrpc.NewServer(grpcCfg, logger)
		grpcapi.RegisterRendererServer(s.grpc.GRPCServer(), grpcapi.NewServer(svc))
		s.grpc.SetServing(grpcapi.ServiceName, true)
	}
	return s
}

// Handler returns the HTTP handler including middleware
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}

// Run serves until ctx is canceled or a listener fails, then shuts down
func (s *Server) Run(ctx context.Context) error {
	httpLis, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return mmerror.Wrapf(err, "failed to listen on %s", s.httpServer.Addr).
			WithCode(mmerror.CodeServiceUnavailable).
			WithOperation("server.Run")
	}

	var grpcLis net.Listener
	if s.grpc != nil {
		if grpcLis, err = s.grpc.Listen(); err != nil {
			httpLis.Close()
			return err
		}
	}
	return s.Serve(ctx, httpLis, grpcLis)
}

// Serve serves on the given listeners; grpcLis may be nil
func (s *Server) Serve(ctx context.Context, httpLis, grpcLis net.Listener) error {
	errCh := make(chan error, 2)

	s.logger.Info("Starting HTTP server", "address", httpLis.Addr().String())
	go func() {
		if err := s.httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if s.grpc != nil && grpcLis != nil {
		s.logger.Info("Starting gRPC server", "address", grpcLis.Addr().String())
		go func() {
			if err := s.grpc.Serve(grpcLis); err != nil {
				errCh <- err
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		s.logger.Error("Server failed", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// Shutdown stops both servers gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Stopping servers")
	if s.grpc != nil {
		s.grpc.StopWithTimeout(ctx)
	}
	return s.httpServer.Shutdown(ctx)
}

// requestMiddleware assigns request IDs and logs requests
func requestMiddleware(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r.WithContext(coregrpc.WithRequestID(r.Context(), requestID)))

		logger.Info("HTTP request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapper.statusCode,
			"duration", time.Since(start),
		)
	})
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Hijack lets the WebSocket upgrader take over the connection
func (w *responseWrapper) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	w.statusCode = http.StatusSwitchingProtocols
	return hj.Hijack()
}
