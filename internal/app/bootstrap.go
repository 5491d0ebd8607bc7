package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myburmese-backend/internal/adapter/filestore"
	"github.com/heartmarshall/myburmese-backend/internal/adapter/memstore"
	"github.com/heartmarshall/myburmese-backend/internal/adapter/postgres"
	pgprogress "github.com/heartmarshall/myburmese-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/myburmese-backend/internal/adapter/redisstore"
	"github.com/heartmarshall/myburmese-backend/internal/catalog"
	"github.com/heartmarshall/myburmese-backend/internal/config"
	"github.com/heartmarshall/myburmese-backend/internal/dataset"
	"github.com/heartmarshall/myburmese-backend/internal/domain"
	"github.com/heartmarshall/myburmese-backend/internal/service/progress"
	"github.com/heartmarshall/myburmese-backend/internal/shuffle"
)

// LoadCatalog reads the configured sheets and builds the catalog.
func LoadCatalog(ctx context.Context, log *slog.Logger, cfg *config.Config) (*catalog.Catalog, error) {
	ds, err := dataset.Load(ctx, log, dataset.Sources{
		Consonants:    cfg.Data.ConsonantsPath,
		Vowels:        cfg.Data.VowelsPath,
		Medials:       cfg.Data.MedialsPath,
		SpecialCases:  cfg.Data.SpecialCasesPath,
		Conversations: cfg.Data.ConversationsPath,
		Strict:        cfg.Data.Strict,
	})
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	cat := catalog.New(log, ds, catalog.Options{
		EmptyTopics: domain.EmptyTopicPolicy(cfg.Parser.EmptyTopics),
		Normalize:   cfg.Parser.Normalize,
	})

	st := cat.Stats()
	log.DebugContext(ctx, "catalog loaded",
		slog.Int("topics", st.Topics),
		slog.Int("messages", st.Messages),
	)
	return cat, nil
}

// OpenStore connects the configured progress backend. The returned closer
// releases its connections and is never nil.
func OpenStore(ctx context.Context, log *slog.Logger, cfg *config.Config) (progress.Store, func(), error) {
	noop := func() {}

	switch cfg.Progress.Backend {
	case config.BackendMemory:
		return memstore.New(), noop, nil

	case config.BackendFile:
		st, err := filestore.New(log, cfg.Progress.FilePath, cfg.Progress.Learner)
		if err != nil {
			return nil, noop, fmt.Errorf("open file store: %w", err)
		}
		return st, noop, nil

	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, noop, fmt.Errorf("open postgres store: %w", err)
		}
		return pgprogress.New(pool, cfg.Progress.Learner), pool.Close, nil

	case config.BackendRedis:
		client, err := redisstore.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, noop, fmt.Errorf("open redis store: %w", err)
		}
		closer := func() {
			if err := client.Close(); err != nil {
				log.Warn("close redis client", slog.String("error", err.Error()))
			}
		}
		return redisstore.New(log, client, cfg.Redis.KeyPrefix, cfg.Progress.Learner), closer, nil

	default:
		return nil, noop, fmt.Errorf("unknown progress backend %q", cfg.Progress.Backend)
	}
}

// NewTracker wraps store with the configured background writer.
func NewTracker(log *slog.Logger, store progress.Store, cfg *config.Config) *progress.Tracker {
	return progress.NewTracker(log, store, progress.Config{
		QueueSize:    cfg.Progress.QueueSize,
		WriteTimeout: cfg.Progress.WriteTimeout,
	})
}

// NewShuffleSource seeds from the config; seed 0 means unseeded.
func NewShuffleSource(cfg *config.Config) *shuffle.Source {
	return shuffle.NewSource(cfg.Quiz.Seed)
}
