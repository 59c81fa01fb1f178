package marketstats

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

// HistoryStore persists marketplace statistics in a single Parquet file.
// Updates rewrite the whole file: the dataset is bounded by the history limit
// so a full rewrite stays cheap and keeps the file readable by any Parquet
// tooling without a footer merge.
type HistoryStore struct {
	filePath string
	logger   zerolog.Logger
}

// NewHistoryStore creates a HistoryStore backed by the given Parquet file.
func NewHistoryStore(filePath string, logger zerolog.Logger) *HistoryStore {
	return &HistoryStore{
		filePath: filePath,
		logger:   logger.With().Str("component", "MarketStatsHistoryStore").Logger(),
	}
}

// Load reads all records from the history file. A missing or empty file yields
// an empty slice so the first collection run starts from a clean state.
func (hs *HistoryStore) Load() ([]StatsRecord, error) {
	osFile, err := os.Open(hs.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			hs.logger.Info().Str("file", hs.filePath).Msg("History file does not exist, starting empty")
			return []StatsRecord{}, nil
		}
		return nil, fmt.Errorf("failed to open history file '%s': %w", hs.filePath, err)
	}
	defer osFile.Close()

	stat, err := osFile.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat history file '%s': %w", hs.filePath, err)
	}
	if stat.Size() == 0 {
		return []StatsRecord{}, nil
	}

	pqFile, err := parquet.OpenFile(osFile, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file '%s': %w", hs.filePath, err)
	}

	reader := parquet.NewReader(pqFile)
	var records []StatsRecord
	for {
		var record StatsRecord
		if err := reader.Read(&record); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error reading record from parquet file '%s': %w", hs.filePath, err)
		}
		records = append(records, record)
	}

	hs.logger.Debug().Int("count", len(records)).Str("file", hs.filePath).Msg("Loaded history records")
	return records, nil
}

// Save rewrites the history file with the given records.
func (hs *HistoryStore) Save(records []StatsRecord) error {
	if err := os.MkdirAll(filepath.Dir(hs.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create history directory for '%s': %w", hs.filePath, err)
	}

	file, err := os.OpenFile(hs.filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("opening history file '%s' for writing: %w", hs.filePath, err)
	}
	defer file.Close()

	writer := parquet.NewWriter(file, parquet.SchemaOf(StatsRecord{}), parquet.Compression(&parquet.Zstd))
	for _, rec := range records {
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("writing record to parquet file '%s': %w", hs.filePath, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing parquet writer for '%s': %w", hs.filePath, err)
	}

	hs.logger.Info().Int("count", len(records)).Str("file", hs.filePath).Msg("Saved history records")
	return nil
}
