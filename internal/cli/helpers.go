package cli

import (
	"fmt"

	"github.com/Rashmi-kavindya/RubiksCube"
	"github.com/Rashmi-kavindya/RubiksCube/internal/recorder"
	"github.com/Rashmi-kavindya/RubiksCube/internal/storage"
)

// newEngine builds an engine from the loaded config. When the journal is
// enabled every engine event is recorded under a new session tagged with
// frontend. The returned func closes the journal.
func newEngine(frontend string) (*rubikscube.Engine, func(), error) {
	opts := append(cfg.EngineOptions(), rubikscube.WithLogger(logger))
	engine := rubikscube.NewEngine(opts...)

	if !cfg.Journal.Enabled {
		return engine, func() {}, nil
	}

	db, err := storage.Open(cfg.Journal.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open journal: %w", err)
	}

	session := recorder.NewSession(db, logger)
	if err := session.Start(frontend, version); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to start journal session: %w", err)
	}
	engine.OnEvent(session.Observe)

	closeFn := func() {
		if err := session.End(); err != nil {
			logger.Error("failed to end journal session", "error", err)
		}
		db.Close()
	}
	return engine, closeFn, nil
}
