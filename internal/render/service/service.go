package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mathemascii/mathemascii/foundation/asciimath"
	"github.com/mathemascii/mathemascii/foundation/asciimath/ast"
	"github.com/mathemascii/mathemascii/foundation/asciimath/diag"
	"github.com/mathemascii/mathemascii/foundation/asciimath/mathml"
	"github.com/mathemascii/mathemascii/foundation/asciimath/scanner"
	mmerror "github.com/mathemascii/mathemascii/foundation/core/error"
	"github.com/mathemascii/mathemascii/internal/render/store"
	"github.com/mathemascii/mathemascii/pkg/core/cache"
	"github.com/mathemascii/mathemascii/pkg/core/config"
	"github.com/mathemascii/mathemascii/pkg/core/health"
	"github.com/mathemascii/mathemascii/pkg/core/logging"
)

// RenderRequest represents a conversion request
type RenderRequest struct {
	Input   string `json:"input" yaml:"input"`
	Display string `json:"display,omitempty" yaml:"display,omitempty"` // inline or block
	Indent  string `json:"indent,omitempty" yaml:"indent,omitempty"`
	Source  string `json:"-" yaml:"-"` // cli, http, ws, grpc
}

// RenderResponse represents a conversion result
type RenderResponse struct {
	ID       string         `json:"id" yaml:"id"`
	Input    string         `json:"input" yaml:"input"`
	MathML   string         `json:"mathml" yaml:"mathml"`
	Display  string         `json:"display" yaml:"display"`
	Warnings []diag.Warning `json:"warnings" yaml:"warnings"`
	Cached   bool           `json:"cached" yaml:"cached"`
	Duration time.Duration  `json:"duration_ns" yaml:"duration"`
}

// TokenInfo is the serializable view of a token
type TokenInfo struct {
	Kind string       `json:"kind" yaml:"kind"`
	Name string       `json:"name,omitempty" yaml:"name,omitempty"`
	Text string       `json:"text" yaml:"text"`
	Span scanner.Span `json:"span" yaml:"span"`
}

// TokensResponse lists the tokens of an input
type TokensResponse struct {
	Input    string         `json:"input" yaml:"input"`
	Tokens   []TokenInfo    `json:"tokens" yaml:"tokens"`
	Warnings []diag.Warning `json:"warnings" yaml:"warnings"`
}

// TreeResponse holds the expression trees of an input
type TreeResponse struct {
	Input       string             `json:"input" yaml:"input"`
	Expressions []*ast.Description `json:"expressions" yaml:"expressions"`
	Warnings    []diag.Warning     `json:"warnings" yaml:"warnings"`

	exprs []*ast.Expression
}

// Dump returns the indented text form of every expression
func (t *TreeResponse) Dump() string {
	var b strings.Builder
	for _, e := range t.exprs {
		b.WriteString(ast.Dump(e))
	}
	return b.String()
}

// Config holds service configuration
type Config struct {
	Display        string
	Indent         string
	MaxInputLength int

	EnableCache bool
	CacheSize   int
	CacheTTL    time.Duration

	EnableHistory bool
	HistoryPath   string
	RetentionDays int
	MaxRecords    int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Display:        "inline",
		MaxInputLength: asciimath.DefaultMaxInputLength,
		EnableCache:    true,
		CacheSize:      1024,
		CacheTTL:       10 * time.Minute,
		EnableHistory:  false,
		HistoryPath:    "./data/history.db",
		RetentionDays:  30,
		MaxRecords:     10000,
	}
}

// FromConfig derives the service configuration from the application config
func FromConfig(cfg *config.Config) Config {
	return Config{
		Display:        cfg.Render.Display,
		Indent:         cfg.Render.Indent,
		MaxInputLength: cfg.Render.MaxInputLength,
		EnableCache:    cfg.Render.CacheSize > 0,
		CacheSize:      cfg.Render.CacheSize,
		CacheTTL:       cfg.Render.CacheTTL.Duration,
		EnableHistory:  cfg.History.Enabled,
		HistoryPath:    cfg.History.Path,
		RetentionDays:  cfg.History.RetentionDays,
		MaxRecords:     cfg.History.MaxRecords,
	}
}

type cachedRender struct {
	mathml   string
	warnings []diag.Warning
}

// Service converts AsciiMath for every outer surface and keeps the render
// history
type Service struct {
	engine  *asciimath.Engine
	display mathml.Display
	config  Config
	cache   *cache.Cache[cachedRender]
	history store.HistoryStore
	logger  *logging.Logger
	now     func() time.Time
}

// NewService creates a service, opening the history database when enabled
func NewService(cfg Config, logger *logging.Logger) (*Service, error) {
	var history store.HistoryStore
	if cfg.EnableHistory {
		st, err := store.NewSQLiteHistoryStore(store.Config{Path: cfg.HistoryPath})
		if err != nil {
			return nil, mmerror.Wrap(err, "failed to open render history").
				WithOperation("service.NewService")
		}
		history = st
	}
	return NewWithStore(cfg, history, logger)
}

// NewWithStore creates a service around an existing history store, which
// may be nil
func NewWithStore(cfg Config, history store.HistoryStore, logger *logging.Logger) (*Service, error) {
	if logger == nil {
		logger = logging.New("render")
	}

	display, ok := mathml.ParseDisplay(cfg.Display)
	if !ok {
		return nil, mmerror.Newf("unknown display mode %q", cfg.Display).
			WithCode(mmerror.CodeInvalidConfig).
			WithOperation("service.NewService")
	}

	engine := asciimath.NewEngine(asciimath.Options{
		Logger:         logger.Logger,
		MaxInputLength: cfg.MaxInputLength,
		Display:        display,
		Indent:         cfg.Indent,
	})

	svc := &Service{
		engine:  engine,
		display: display,
		config:  cfg,
		history: history,
		logger:  logger,
		now:     time.Now,
	}

	if cfg.EnableCache {
		svc.cache = cache.New[cachedRender](cache.Config{MaxItems: cfg.CacheSize, TTL: cfg.CacheTTL})
		logger.Debug("Render cache enabled", "size", cfg.CacheSize, "ttl", cfg.CacheTTL)
	}
	if history != nil {
		logger.Debug("Render history enabled", "path", cfg.HistoryPath)
	}
	return svc, nil
}

// Engine returns the underlying conversion engine
func (s *Service) Engine() *asciimath.Engine {
	return s.engine
}

// HistoryEnabled reports whether renders are recorded
func (s *Service) HistoryEnabled() bool {
	return s.history != nil
}

// Render converts the request input to MathML
func (s *Service) Render(ctx context.Context, req *RenderRequest) (*RenderResponse, error) {
	start := s.now()

	display := s.display
	if req.Display != "" {
		d, ok := mathml.ParseDisplay(req.Display)
		if !ok {
			return nil, mmerror.Newf("unknown display mode %q", req.Display).
				WithCode(mmerror.CodeInvalidInput).
				WithOperation("service.Render").
				WithDetail("display", req.Display)
		}
		display = d
	}
	indent := req.Indent
	if indent == "" {
		indent = s.config.Indent
	}

	resp := &RenderResponse{
		ID:      uuid.New().String(),
		Input:   req.Input,
		Display: display.String(),
	}

	key := display.String() + "|" + indent + "|" + req.Input
	if cached, ok := s.lookup(key); ok {
		resp.MathML = cached.mathml
		resp.Warnings = cached.warnings
		resp.Cached = true
	} else {
		result, err := s.engine.WithDisplay(display).WithIndent(indent).Render(ctx, req.Input)
		if err != nil {
			return nil, err
		}
		resp.MathML = result.MathML
		resp.Warnings = result.Warnings
		s.remember(key, cachedRender{mathml: result.MathML, warnings: result.Warnings})
	}
	if resp.Warnings == nil {
		resp.Warnings = []diag.Warning{}
	}
	resp.Duration = s.now().Sub(start)

	s.record(ctx, req, resp)
	return resp, nil
}

func (s *Service) lookup(key string) (cachedRender, bool) {
	if s.cache == nil {
		return cachedRender{}, false
	}
	return s.cache.Get(key)
}

func (s *Service) remember(key string, value cachedRender) {
	if s.cache != nil {
		s.cache.Set(key, value)
	}
}

// record stores the render in the history; failures are logged, not
// returned
func (s *Service) record(ctx context.Context, req *RenderRequest, resp *RenderResponse) {
	if s.history == nil {
		return
	}
	rec := &store.Record{
		ID:       resp.ID,
		Input:    resp.Input,
		MathML:   resp.MathML,
		Display:  resp.Display,
		Warnings: len(resp.Warnings),
		Duration: resp.Duration,
		Source:   req.Source,
	}
	if err := s.history.Record(ctx, rec); err != nil {
		s.logger.Warn("Failed to record render", "id", resp.ID, "error", err)
	}
}

// Tokens lexes input
func (s *Service) Tokens(ctx context.Context, input string) (*TokensResponse, error) {
	tokens, warnings, err := s.engine.Tokenize(ctx, input)
	if err != nil {
		return nil, err
	}

	resp := &TokensResponse{
		Input:    input,
		Tokens:   make([]TokenInfo, 0, len(tokens)),
		Warnings: warnings,
	}
	for _, t := range tokens {
		resp.Tokens = append(resp.Tokens, TokenInfo{Kind: t.Kind.String(), Name: t.Name(), Text: t.Text, Span: t.Span})
	}
	if resp.Warnings == nil {
		resp.Warnings = []diag.Warning{}
	}
	return resp, nil
}

// Tree parses input into expression trees
func (s *Service) Tree(ctx context.Context, input string) (*TreeResponse, error) {
	result, err := s.engine.Parse(ctx, input)
	if err != nil {
		return nil, err
	}

	resp := &TreeResponse{
		Input:       input,
		Expressions: make([]*ast.Description, 0, len(result.Expressions)),
		Warnings:    result.Warnings,
		exprs:       result.Expressions,
	}
	for _, e := range result.Expressions {
		resp.Expressions = append(resp.Expressions, ast.Describe(e))
	}
	if resp.Warnings == nil {
		resp.Warnings = []diag.Warning{}
	}
	return resp, nil
}

func (s *Service) requireHistory(op string) error {
	if s.history == nil {
		return mmerror.New("render history is disabled").
			WithCode(mmerror.CodeServiceUnavailable).
			WithOperation("service." + op)
	}
	return nil
}

// History lists recorded renders
func (s *Service) History(ctx context.Context, q store.Query) ([]*store.Record, error) {
	if err := s.requireHistory("History"); err != nil {
		return nil, err
	}
	return s.history.Query(ctx, q)
}

// HistoryRecord returns one recorded render
func (s *Service) HistoryRecord(ctx context.Context, id string) (*store.Record, error) {
	if err := s.requireHistory("HistoryRecord"); err != nil {
		return nil, err
	}
	return s.history.Get(ctx, id)
}

// HistoryStats summarizes the history
func (s *Service) HistoryStats(ctx context.Context) (store.Stats, error) {
	if err := s.requireHistory("HistoryStats"); err != nil {
		return store.Stats{}, err
	}
	return s.history.Stats(ctx)
}

// PruneHistory applies the configured retention
func (s *Service) PruneHistory(ctx context.Context) (int64, error) {
	if err := s.requireHistory("PruneHistory"); err != nil {
		return 0, err
	}

	var cutoff time.Time
	if s.config.RetentionDays > 0 {
		cutoff = s.now().AddDate(0, 0, -s.config.RetentionDays)
	}
	n, err := s.history.Prune(ctx, cutoff, s.config.MaxRecords)
	if err != nil {
		return n, err
	}
	s.logger.Info("History pruned", "removed", n)
	return n, nil
}

// CacheStats returns render cache statistics
func (s *Service) CacheStats() cache.Stats {
	if s.cache == nil {
		return cache.Stats{}
	}
	return s.cache.Stats()
}

// RegisterHealth adds the service checks to reg
func (s *Service) RegisterHealth(reg *health.Registry) {
	reg.RegisterFunc("engine", func(ctx context.Context) health.CheckResult {
		if _, err := s.engine.Render(ctx, "x^2"); err != nil {
			return health.CheckResult{Status: health.StatusUnhealthy, Message: err.Error()}
		}
		return health.CheckResult{Status: health.StatusHealthy}
	})
	if s.history != nil {
		reg.Register(health.PingCheck("history", s.history, true))
	}
}

// Close releases the history store
func (s *Service) Close() error {
	if s.history == nil {
		return nil
	}
	return s.history.Close()
}
