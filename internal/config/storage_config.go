package config

// StorageConfig defines durable storage locations beyond the snapshot files
type StorageConfig struct {
	// HistoryDBPath enables the SQLite run-history store when non-empty.
	HistoryDBPath string `json:"history_db_path,omitempty" yaml:"history_db_path,omitempty"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		HistoryDBPath: "",
	}
}
