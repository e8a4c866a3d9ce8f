// CLAUDE:SUMMARY Main builder orchestrator — wires store, layout engine, sanitizer and audit; exposes CRUD + import/export.
// Package builder is the backend service of the visual website builder.
//
// It owns project/page/element CRUD over the SQLite store and orchestrates the
// layout interchange engine for YOOtheme Pro import and export:
//
//	raw JSON → layout.Parse → layout.ImportFlat → sanitize → store
//	store → layout.Nest → layout.Export → document + filename
//
// Usage:
//
//	svc, err := builder.New(cfg, logger)
//	defer svc.Close()
//	r.Mount("/api", svc.Routes())
//	svc.RegisterMCP(mcpServer)
package builder

import (
	"log/slog"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/microcosm-cc/bluemonday"

	"github.com/pagewright/atelier/builder/internal/store"
	"github.com/pagewright/atelier/idgen"
)

// Service is the builder orchestrator.
type Service struct {
	store     *store.Store
	logger    *slog.Logger
	cfg       *Config
	newID     idgen.Generator
	sanitizer *bluemonday.Policy
	md        *converter.Converter
}

// Option customises a Service.
type Option func(*Service)

// WithIDGenerator overrides the id strategy (tests use a deterministic one).
func WithIDGenerator(gen idgen.Generator) Option {
	return func(s *Service) { s.newID = gen }
}

// New creates a Service. Opens the SQLite database at cfg.DBPath and wires
// the sanitizer and the Markdown converter.
func New(cfg *Config, logger *slog.Logger, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.defaults()
	if logger == nil {
		logger = slog.Default()
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	svc := newService(st, cfg, logger)
	for _, o := range opts {
		o(svc)
	}
	return svc, nil
}

func newService(st *store.Store, cfg *Config, logger *slog.Logger) *Service {
	return &Service{
		store:     st,
		logger:    logger,
		cfg:       cfg,
		newID:     idgen.Default,
		sanitizer: bluemonday.UGCPolicy(),
		md: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
}

// Close shuts down the service and closes the database.
func (s *Service) Close() error {
	return s.store.Close()
}

// slugify reduces a name to a URL-safe page slug.
func slugify(name string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, name)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "page"
	}
	return slug
}
