package snapshot

import (
	"os"
	"path/filepath"

	"github.com/aleister1102/gamewatch/internal/errorwrapper"
	"github.com/rs/zerolog"
)

// Store reads and writes snapshot files. The snapshot file is the sole durable
// state of a monitor instance between runs.
type Store struct {
	logger zerolog.Logger
}

// NewStore creates a new snapshot store
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		logger: logger.With().Str("component", "SnapshotStore").Logger(),
	}
}

// Load reads the snapshot file at path. A missing file is not an error: it is
// the first-run case and returns found=false with no data.
func (s *Store) Load(path string) (data []byte, found bool, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info().Str("path", path).Msg("No previous snapshot found, starting from empty baseline")
			return nil, false, nil
		}
		return nil, false, errorwrapper.WrapError(err, "failed to read snapshot file "+path)
	}
	return data, true, nil
}

// Persist overwrites the snapshot file with the given content. The write goes
// through a temp file and rename so a crash cannot leave a truncated snapshot.
func (s *Store) Persist(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errorwrapper.WrapError(err, "failed to create snapshot directory "+dir)
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errorwrapper.WrapError(err, "failed to create temp snapshot file")
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return errorwrapper.WrapError(err, "failed to write temp snapshot file")
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return errorwrapper.WrapError(err, "failed to close temp snapshot file")
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errorwrapper.WrapError(err, "failed to replace snapshot file "+path)
	}

	s.logger.Debug().Str("path", path).Int("size", len(data)).Msg("Snapshot persisted")
	return nil
}
