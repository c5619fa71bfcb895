package root

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/LuizDelio/Projeto-Disciplina/internal/config"
	"github.com/LuizDelio/Projeto-Disciplina/internal/ledger"
	"github.com/LuizDelio/Projeto-Disciplina/internal/storage"
	"github.com/LuizDelio/Projeto-Disciplina/internal/ui"
)

// app bundles the wired-up dependencies every command needs.
type app struct {
	cfg *config.Config
	svc *ledger.Service
	log *zap.Logger
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// openApp wires config, logger, storage and the ledger service, then runs
// the startup sweeps (seed merge + inactivity check). The punishment notice
// goes to stderr so it shows up regardless of which command triggered it.
func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = log.Sync()
		_ = db.Close()
	}

	svc, err := ledger.NewService(ctx, storage.NewSnapshotStore(db), log)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	if seeds := seedMissions(cfg); len(seeds) > 0 {
		if err := svc.EnsureMissions(ctx, seeds); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	punished, err := svc.RunInactivityCheck(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if punished {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconWarn+" "+ledger.PunishmentMessage))
	}

	return &app{cfg: cfg, svc: svc, log: log}, cleanup, nil
}

func seedMissions(cfg *config.Config) []ledger.Mission {
	out := make([]ledger.Mission, 0, len(cfg.File.Missions))
	for _, m := range cfg.File.Missions {
		out = append(out, ledger.Mission{Label: m.Label, Points: m.Points})
	}
	return out
}
