package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cbodonnell/asteroids/pkg/api"
	"github.com/cbodonnell/asteroids/pkg/config"
	"github.com/cbodonnell/asteroids/pkg/game"
	"github.com/cbodonnell/asteroids/pkg/game/constants"
	"github.com/cbodonnell/asteroids/pkg/log"
	"github.com/cbodonnell/asteroids/pkg/messages"
	"github.com/cbodonnell/asteroids/pkg/network"
	"github.com/cbodonnell/asteroids/pkg/physics"
	"github.com/cbodonnell/asteroids/pkg/queue"
	"github.com/cbodonnell/asteroids/pkg/repositories"
	"github.com/cbodonnell/asteroids/pkg/state"
	"github.com/cbodonnell/asteroids/pkg/workers"
	"github.com/redis/go-redis/v9"
)

func main() {
	configPath := flag.String("config", "", "Path to a KEY=VALUE config file")
	logLevel := flag.String("log-level", "", "Log level, overrides the config")
	god := flag.Bool("god", false, "Start with an immortal ship")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *god {
		cfg.Immortal = true
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repository, err := newRepository(ctx, cfg.DatabaseURL, cfg.MigrationsDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(context.Background())

	clientManager := network.NewClientManager()
	clientMessageQueue := queue.NewInMemoryQueue(messages.MessageBufferSize)
	stateManager, err := newStateManager(cfg.RedisURL, cfg.GameLoopInterval())
	if err != nil {
		panic(fmt.Sprintf("Failed to create state manager: %v", err))
	}

	var wsTLS *network.TLSConfig
	var apiTLS *api.TLSConfig
	if cfg.TLSEnabled() {
		wsTLS = &network.TLSConfig{CertFile: cfg.TLSCertFile, KeyFile: cfg.TLSKeyFile}
		apiTLS = &api.TLSConfig{CertFile: cfg.TLSCertFile, KeyFile: cfg.TLSKeyFile}
	}

	wsServer := network.NewWSServer(network.NewWSServerOptions{
		Port:          cfg.WSPort,
		TLS:           wsTLS,
		ClientManager: clientManager,
		MessageQueue:  clientMessageQueue,
	})
	go wsServer.Start(ctx)

	apiServer := api.NewAPIServer(api.NewAPIServerOptions{
		Port:         cfg.APIPort,
		TLS:          apiTLS,
		Repository:   repository,
		StateManager: stateManager,
	})
	go apiServer.Start()

	saveRunChannelSize := 100
	saveRunChan := make(chan workers.SaveRunRequest, saveRunChannelSize)
	saveRunWorker := workers.NewSaveRunWorker(workers.NewSaveRunWorkerOptions{
		Repository:   repository,
		SaveRunChan:  saveRunChan,
		StateManager: stateManager,
		Interval:     cfg.SaveInterval(),
	})
	saveRunDone := make(chan struct{})
	go func() {
		saveRunWorker.Start(ctx)
		close(saveRunDone)
	}()

	gameUpdateChannelSize := 2
	gameUpdateChan := make(chan *messages.ServerGameUpdate, gameUpdateChannelSize)
	broadcastWorker := workers.NewBroadcastWorker(workers.NewBroadcastWorkerOptions{
		Broadcaster: clientManager,
		UpdateChan:  gameUpdateChan,
	})
	go broadcastWorker.Start(ctx)

	resolver, err := physics.NewResolver(physics.ResolverOptions{
		Restitution:        cfg.Restitution,
		BroadPhase:         physics.NewGridBroadPhase(constants.ArenaWidth, constants.ArenaHeight, constants.CollisionCellSize),
		Workers:            cfg.ResolverWorkers,
		PositionCorrection: cfg.PositionCorrection,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create resolver: %v", err))
	}

	gameManager, err := game.NewGameManager(game.NewGameManagerOptions{
		ClientMessageQueue: clientMessageQueue,
		StateManager:       stateManager,
		SaveRunChan:        saveRunChan,
		GameUpdateChan:     gameUpdateChan,
		Resolver:           resolver,
		Seed:               cfg.Seed,
		Immortal:           cfg.Immortal,
		GameLoopInterval:   cfg.GameLoopInterval(),
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game manager: %v", err))
	}

	log.Info("Starting game manager at %d ticks per second", cfg.TickRate)
	if err := gameManager.Start(ctx); err != nil {
		log.Error("Game manager stopped: %v", err)
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop API server: %v", err)
	}
	select {
	case <-saveRunDone:
	case <-shutdownCtx.Done():
		log.Warn("Timed out waiting for pending runs to be saved")
	}
}

// newStateManager keeps snapshots in memory unless a redis url is configured.
func newStateManager(redisURL string, tick time.Duration) (state.StateManager, error) {
	if redisURL == "" {
		return state.NewInMemoryStateManager(), nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	log.Info("Publishing snapshots to redis at %s", opts.Addr)
	return state.NewRedisStateManager(state.NewRedisStateManagerOptions{
		Client: redis.NewClient(opts),
		TTL:    100 * tick,
	}), nil
}

// newRepository picks the repository from the scheme of the database url.
func newRepository(ctx context.Context, connStr string, migrationsDir string) (repositories.Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	switch u.Scheme {
	case "sqlite":
		return repositories.NewSQLiteRepository(ctx, u.Host+u.Path, filepath.Join(migrationsDir, "sqlite"))
	case "postgres", "postgresql":
		return repositories.NewPostgresRepository(ctx, u.String(), filepath.Join(migrationsDir, "postgres"))
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}
