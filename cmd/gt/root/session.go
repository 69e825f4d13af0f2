package root

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"goaltrack/internal/engine"
	"goaltrack/internal/storage"
)

// session is everything one command needs: the loaded document, the service
// over it and, when enabled and reachable, the journal.
type session struct {
	store   *storage.FileStore
	svc     *engine.Service
	db      *sql.DB
	journal *storage.EventRepo
}

func openSession(ctx context.Context) (*session, func(), error) {
	store := storage.NewFileStore(cfg.Store.Path, logger)
	svc := engine.NewService(store.Load(now), now)
	s := &session{store: store, svc: svc}

	if cfg.Journal.Enabled {
		db, err := storage.Open(ctx, cfg.Journal.Path)
		if err != nil {
			logger.Warn("journal unavailable", zap.String("path", cfg.Journal.Path), zap.Error(err))
		} else {
			s.db = db
			s.journal = storage.NewEventRepo(db)
		}
	}

	cleanup := func() {
		if s.db != nil {
			_ = s.db.Close()
		}
	}
	return s, cleanup, nil
}

func (s *session) save() error {
	if err := s.store.Save(s.svc.Document()); err != nil {
		return fmt.Errorf("save goals: %w", err)
	}
	logger.Debug("document saved", zap.String("path", s.store.Path()))
	return nil
}

// record appends journal rows. Failures are logged only.
func (s *session) record(ctx context.Context, entries []storage.JournalEntry) {
	if s.journal == nil || len(entries) == 0 {
		return
	}
	if err := s.journal.InsertBatch(ctx, entries); err != nil {
		logger.Warn("journal write failed", zap.Int("entries", len(entries)), zap.Error(err))
	}
}

// requireJournal is for commands that only read the journal.
func (s *session) requireJournal() (*storage.EventRepo, error) {
	if s.journal == nil {
		if !cfg.Journal.Enabled {
			return nil, fmt.Errorf("journal is disabled (set journal.enabled in %s)", configPathForDisplay())
		}
		return nil, fmt.Errorf("journal %s could not be opened (run with --verbose for details)", cfg.Journal.Path)
	}
	return s.journal, nil
}
