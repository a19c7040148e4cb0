package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/tutorly/internal/config"
	"github.com/abhisek/tutorly/internal/knowledge"
	"github.com/abhisek/tutorly/internal/llm"
	"github.com/abhisek/tutorly/internal/session"
	"github.com/abhisek/tutorly/internal/store"
	"github.com/abhisek/tutorly/internal/tutor"
)

// deps holds everything a command needs to talk to the tutor.
type deps struct {
	cfg      *config.Config
	store    *store.Store
	kb       *knowledge.Store
	sessions session.Store
	agent    *tutor.Agent
}

func (d *deps) Close() error {
	return d.store.Close()
}

// openStore opens the SQLite database used for completion events and,
// with the sqlite backend, learner records.
func openStore(cfg *config.Config) (*store.Store, error) {
	path := cfg.DBPath
	var err error
	if path == "" {
		path, err = store.DefaultDBPath()
	} else {
		err = store.EnsureDir(path)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func openSessions(cfg *config.Config, st *store.Store) (session.Store, error) {
	if cfg.SessionBackend == config.BackendSQLite {
		return st.SessionRepo(), nil
	}

	dir := cfg.SessionsDir
	if dir == "" {
		var err error
		if dir, err = store.DefaultSessionsDir(); err != nil {
			return nil, err
		}
	}
	return session.NewFileStore(dir)
}

// buildDeps wires the knowledge store, sessions, completion provider and
// agent from the loaded configuration. Callers must Close the result.
func buildDeps(ctx context.Context) (*deps, error) {
	cfg := appCfg

	st, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	sessions, err := openSessions(cfg, st)
	if err != nil {
		st.Close()
		return nil, err
	}

	provider, err := llm.NewProvider(ctx, cfg.LLMProviderConfig(), logger, st.EventRepo())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("completion provider: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	kb := knowledge.New(cfg.DataDir, logger.Named("knowledge"))
	agent, err := tutor.New(tutor.Options{
		Knowledge: kb,
		Provider:  provider,
		Sessions:  sessions,
		Config:    cfg.TutorConfig(),
		Rand:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Logger:    logger.Named("tutor"),
	})
	if err != nil {
		st.Close()
		return nil, err
	}

	logger.Debug("dependencies ready",
		zap.String("data", cfg.DataDir),
		zap.String("backend", cfg.SessionBackend),
		zap.String("model", provider.ModelID()))

	return &deps{cfg: cfg, store: st, kb: kb, sessions: sessions, agent: agent}, nil
}
