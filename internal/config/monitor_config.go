package config

// MonitorConfig defines settings shared by all monitor instances
type MonitorConfig struct {
	// SnapshotDir is the directory the compiled-in snapshot file paths are
	// resolved against. Defaults to the working directory so workflow runs
	// operate directly on the checked-out repository.
	SnapshotDir string `json:"snapshot_dir,omitempty" yaml:"snapshot_dir,omitempty"`
}

// NewDefaultMonitorConfig creates default monitor configuration
func NewDefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		SnapshotDir: ".",
	}
}
