package monitor

import (
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ResourceUsage represents resource usage at the end of a run
type ResourceUsage struct {
	AllocMB              int64   // Currently allocated memory by application
	SysMB                int64   // System memory used by Go runtime
	GCCount              int64   // Number of GC cycles
	SystemMemUsedPercent float64 // System memory used percentage
	CPUUsagePercent      float64 // CPU usage percentage
}

// GetResourceUsage returns current resource usage statistics
func GetResourceUsage() ResourceUsage {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	usage := ResourceUsage{
		AllocMB: int64(m.Alloc / 1024 / 1024),
		SysMB:   int64(m.Sys / 1024 / 1024),
		GCCount: int64(m.NumGC),
	}

	if vmStat, err := mem.VirtualMemory(); err == nil {
		usage.SystemMemUsedPercent = vmStat.UsedPercent
	}

	if cpuPercents, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(cpuPercents) > 0 {
		usage.CPUUsagePercent = cpuPercents[0]
	}

	return usage
}

// logResourceUsage emits one telemetry line per run so scheduled invocations
// can be tracked from the workflow logs alone.
func logResourceUsage(logger zerolog.Logger, duration time.Duration) {
	usage := GetResourceUsage()
	logger.Info().
		Dur("duration", duration).
		Int64("alloc_mb", usage.AllocMB).
		Int64("sys_mb", usage.SysMB).
		Int64("gc_count", usage.GCCount).
		Float64("system_mem_used_percent", usage.SystemMemUsedPercent).
		Float64("cpu_usage_percent", usage.CPUUsagePercent).
		Msg("Run resource usage")
}
