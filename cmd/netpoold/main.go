package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/l1jgo/netpool/internal/config"
	"github.com/l1jgo/netpool/internal/core/ecs"
	"github.com/l1jgo/netpool/internal/core/event"
	coresys "github.com/l1jgo/netpool/internal/core/system"
	"github.com/l1jgo/netpool/internal/data"
	"github.com/l1jgo/netpool/internal/dispatch"
	"github.com/l1jgo/netpool/internal/persist"
	"github.com/l1jgo/netpool/internal/pool"
	"github.com/l1jgo/netpool/internal/scripting"
	"github.com/l1jgo/netpool/internal/system"
	"github.com/l1jgo/netpool/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/netpool.toml"
	if p := os.Getenv("NETPOOL_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	log.Info("starting",
		zap.String("server", cfg.Server.Name),
		zap.Int("id", cfg.Server.ID),
		zap.String("role", cfg.Server.Role),
	)

	// 3. Connect to PostgreSQL and run migrations (journal is optional)
	var journalRepo *persist.JournalRepo
	if cfg.Database.DSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := persist.NewDB(ctx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()

		if err := persist.RunMigrations(ctx, db.Pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		journalRepo = persist.NewJournalRepo(db)
		log.Info("spawn journal enabled")
	}

	// 4. Load authored catalogs
	templates, err := data.LoadTemplateTable(cfg.Data.TemplateList)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	log.Info("templates loaded", zap.Int("count", templates.Count()))

	entries, err := data.LoadPoolList(cfg.Data.PoolList)
	if err != nil {
		return fmt.Errorf("load pool list: %w", err)
	}

	// 5. Validate pool entries (id dedup, prewarm correction)
	configs, err := pool.ValidateEntries(entries, templates, log)
	if err != nil {
		return fmt.Errorf("validate pool list: %w", err)
	}
	log.Info("pool entries validated", zap.Int("count", len(configs)))

	// 6. Build the host runtime and the spawn plumbing
	ecsWorld := ecs.NewWorld()
	state := world.NewState(ecsWorld)
	bus := event.NewBus()
	dispatchReg := dispatch.NewRegistry(bus, log)

	var engine *scripting.Engine
	if cfg.Data.ScriptsDir != "" {
		engine, err = scripting.NewEngine(cfg.Data.ScriptsDir, log)
		if err != nil {
			return fmt.Errorf("scripting: %w", err)
		}
		defer engine.Close()
	}

	lp := pool.NewLifecyclePool(state, dispatchReg, cfg.Server, configs, log)
	if engine != nil {
		lp.SetHooks(engine)
	}
	pool.Install(lp)

	// Queued before initialization; fires once the pool reports ready.
	lp.Run(func() {
		log.Info("spawn pool online",
			zap.Strings("pools", lp.Registry().PoolIDs()),
			zap.Int("handlers", dispatchReg.HandlerCount()),
			zap.Int("instances", state.Count()),
		)
	})

	// 7. Bring the pool up when network presence is established
	event.Subscribe(bus, func(ev event.NetworkReady) {
		if !lp.Initialize() {
			log.Warn("initialize rejected: process is not network-authoritative")
		}
	})

	// 8. Register tick systems
	runner := coresys.NewRunner()
	runner.Register(system.NewEventDispatchSystem(bus))
	runner.Register(system.NewRespawnSystem(bus, dispatchReg, templates, log))
	var journalSys *system.JournalSystem
	if journalRepo != nil {
		journalSys = system.NewJournalSystem(bus, journalRepo, cfg.Journal.FlushInterval, log)
		runner.Register(journalSys)
	}
	runner.Register(system.NewCleanupSystem(ecsWorld))

	event.Emit(bus, event.NetworkReady{ServerID: cfg.Server.ID})

	// 9. Run the game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Server.TickRate)
	defer ticker.Stop()
	log.Info("game loop started", zap.Duration("tick", cfg.Server.TickRate))

	for {
		select {
		case <-ticker.C:
			runner.Tick(cfg.Server.TickRate)
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			lp.Teardown()
			if journalSys != nil {
				journalSys.Flush()
			}
			destroyed := state.DestroyAll()
			ecsWorld.FlushDestroyQueue()
			log.Info("stopped", zap.Int("instances_destroyed", destroyed))
			return nil
		}
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
