// Package cli wires configuration into an engine and its collaborators for
// the command line and the MCP server.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/logframe"
	"github.com/aretw0/logframe/internal/config"
	"github.com/aretw0/logframe/pkg/adapters/file"
	logframeloam "github.com/aretw0/logframe/pkg/adapters/loam"
	"github.com/aretw0/logframe/pkg/adapters/memory"
	"github.com/aretw0/logframe/pkg/adapters/redis"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/aretw0/logframe/pkg/observability"
	"github.com/aretw0/logframe/pkg/persistence/middleware"
	"github.com/aretw0/logframe/pkg/ports"
	"github.com/aretw0/logframe/pkg/rubric"
	"github.com/aretw0/logframe/pkg/translate"
	"github.com/prometheus/client_golang/prometheus"
)

// Runtime is an engine with the collaborators it was built from.
type Runtime struct {
	Engine   *logframe.Engine
	Metrics  *observability.Metrics
	Registry *prometheus.Registry
	Redis    *redis.Store // nil unless configured

	cfg    config.Config
	logger *slog.Logger
}

// NewRuntime builds the engine described by cfg.
// Catalog precedence: redis, then a pattern library dir, then a data file.
func NewRuntime(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Runtime, error) {
	rt := &Runtime{cfg: cfg, logger: logger, Registry: prometheus.NewRegistry()}

	metrics, err := observability.NewMetrics(rt.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	rt.Metrics = metrics

	opts := []logframe.Option{
		logframe.WithLogger(logger),
		logframe.WithLifecycleHooks(metrics.Hooks()),
	}

	if cfg.RubricPath != "" {
		r, err := rubric.Load(cfg.RubricPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logframe.WithRubric(r))
	}

	if cfg.Catalog.Redis.Addr != "" {
		store, err := newRedisStore(cfg.Catalog.Redis)
		if err != nil {
			return nil, err
		}
		rt.Redis = store
	}

	catalog, err := rt.catalog(ctx)
	if err != nil {
		return nil, err
	}
	opts = append(opts, logframe.WithCatalog(catalog))

	if rec := rt.recordStore(); rec != nil {
		redact, err := middleware.NewRedactMiddleware(cfg.Records.Redact)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logframe.WithRecorder(middleware.Chain(rec, redact)))
	}

	if cfg.TranslationsPath != "" {
		dict, err := translate.LoadDictionary(cfg.TranslationsPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logframe.WithTranslator(dict))
	}

	eng, err := logframe.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	rt.Engine = eng
	return rt, nil
}

func newRedisStore(cfg config.Redis) (*redis.Store, error) {
	var opts []redis.Option
	if cfg.Prefix != "" {
		opts = append(opts, redis.WithPrefix(cfg.Prefix))
	}
	if cfg.TTL != "" {
		ttl, err := time.ParseDuration(cfg.TTL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis ttl %q: %w", cfg.TTL, err)
		}
		opts = append(opts, redis.WithTTL(ttl))
	}
	return redis.New(cfg.Addr, cfg.Password, cfg.DB, opts...), nil
}

func (rt *Runtime) catalog(ctx context.Context) (ports.ReferenceCatalog, error) {
	switch {
	case rt.Redis != nil:
		return rt.Redis, nil
	case rt.cfg.Catalog.Dir != "":
		return logframeloam.NewCatalog(ctx, rt.cfg.Catalog.Dir)
	case rt.cfg.Catalog.File != "":
		return file.NewCatalog(rt.cfg.Catalog.File)
	default:
		return memory.NewCatalog(domain.ReferenceData{}), nil
	}
}

func (rt *Runtime) recordStore() ports.RecordStore {
	switch {
	case rt.Redis != nil:
		return rt.Redis
	case rt.cfg.Records.Dir != "":
		return file.NewRecorder(rt.cfg.Records.Dir)
	default:
		return nil
	}
}

// Records returns the configured record store for reading, or nil when
// evaluations are not recorded.
func (rt *Runtime) Records() ports.RecordReader {
	if store := rt.recordStore(); store != nil {
		return store
	}
	return nil
}

// LoadReferenceData reads the file or pattern library configured in cfg,
// ignoring redis. It is the source of the seed command.
func LoadReferenceData(ctx context.Context, cfg config.Catalog) (domain.ReferenceData, error) {
	switch {
	case cfg.Dir != "":
		lib, err := logframeloam.Open(cfg.Dir)
		if err != nil {
			return domain.ReferenceData{}, err
		}
		return lib.Load(ctx)
	case cfg.File != "":
		return file.LoadReferenceData(cfg.File)
	default:
		return domain.ReferenceData{}, errors.New("no catalog file or dir configured")
	}
}

// Close writes the metrics textfile when configured and releases redis.
func (rt *Runtime) Close() error {
	var errs []error
	if rt.cfg.MetricsFile != "" {
		if err := observability.WriteTextfile(rt.cfg.MetricsFile, rt.Registry); err != nil {
			errs = append(errs, fmt.Errorf("failed to write metrics: %w", err))
		}
	}
	if rt.Redis != nil {
		if err := rt.Redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
