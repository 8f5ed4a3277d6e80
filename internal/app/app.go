package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/peladahub/pelada/internal/config"
	"github.com/peladahub/pelada/internal/domain/achievement"
	"github.com/peladahub/pelada/internal/domain/halloffame"
	"github.com/peladahub/pelada/internal/domain/match"
	"github.com/peladahub/pelada/internal/domain/player"
	"github.com/peladahub/pelada/internal/domain/preset"
	"github.com/peladahub/pelada/internal/infrastructure/repository/memory"
	"github.com/peladahub/pelada/internal/infrastructure/repository/postgres"
	"github.com/peladahub/pelada/internal/interfaces/httpapi"
	"github.com/peladahub/pelada/internal/platform/cache"
	idgen "github.com/peladahub/pelada/internal/platform/id"
	"github.com/peladahub/pelada/internal/platform/logging"
	"github.com/peladahub/pelada/internal/usecase"
)

type repositories struct {
	players player.Repository
	matches match.Repository
	hof     halloffame.Repository
	presets preset.Repository
	grants  achievement.GrantRepository
}

// App owns the HTTP server and the resources it was wired with.
type App struct {
	Server *http.Server

	db     *sqlx.DB
	logger *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		repos repositories
		db    *sqlx.DB
	)
	switch cfg.Storage {
	case config.StoragePostgres:
		conn, err := connectDB(ctx, cfg.DBURL, cfg.DBDisablePreparedBinary)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		db = conn
		repos = repositories{
			players: postgres.NewPlayerRepository(db),
			matches: postgres.NewMatchRepository(db),
			hof:     postgres.NewHallOfFameRepository(db),
			presets: postgres.NewPresetRepository(db),
			grants:  postgres.NewAchievementGrantRepository(db),
		}
		logger.Info("storage configured", "mode", cfg.Storage)
	case config.StorageMemory:
		repos = repositories{
			players: memory.NewPlayerRepository(memory.SeedPlayers()),
			matches: memory.NewMatchRepository(nil),
			hof:     memory.NewHallOfFameRepository(nil),
			presets: memory.NewPresetRepository(memory.SeedPresets()),
			grants:  memory.NewAchievementGrantRepository(),
		}
		logger.Info("storage configured", "mode", cfg.Storage, "seeded", true)
	default:
		return nil, fmt.Errorf("unsupported storage %q", cfg.Storage)
	}

	statsCache := cache.NewDisabled()
	if cfg.CacheEnabled {
		statsCache = cache.NewStore(cfg.CacheTTL)
	}

	gen := idgen.NewRandomGenerator()

	handler := httpapi.NewHandler(
		usecase.NewPlayerService(repos.players, gen),
		usecase.NewDraftService(repos.players, repos.matches, gen),
		usecase.NewMatchService(repos.matches, repos.players, gen),
		usecase.NewSettlementService(repos.players, repos.matches, repos.hof, gen, cfg.SettlementWorkers),
		usecase.NewStatsService(repos.players, repos.matches, repos.hof, repos.grants, statsCache),
		usecase.NewPresetService(repos.presets, repos.players, gen),
		logger,
	)

	router := httpapi.NewRouter(handler, cfg.AdminToken, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server: server,
		db:     db,
		logger: logger,
	}, nil
}

// Close releases resources held by the app. The HTTP server is shut down by
// the caller before Close.
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}
