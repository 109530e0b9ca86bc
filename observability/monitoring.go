package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// MonitoringStats aggregates pipeline and system metrics for the stats
// tooling.
type MonitoringStats struct {
	MessagesProcessed uint64  `json:"messages_processed"`
	MessagesFlagged   uint64  `json:"messages_flagged"`
	Escalations       uint64  `json:"escalations"`
	Retrains          uint64  `json:"retrains"`
	EngineRecoveries  uint64  `json:"engine_recoveries"`
	Throughput        float64 `json:"throughput"` // messages/s over the last tick

	AllocMemMb   uint64  `json:"alloc_mem_mb"`
	NumGC        uint32  `json:"num_gc"`
	ProcessRssMb uint64  `json:"process_rss_mb"`
	CpuPercent   float64 `json:"cpu_percent"`
}

// MonitoringManager collects real-time telemetry from the moderation
// pipeline. Counters are atomic so workers never block on metrics.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats MonitoringStats

	MessagesProcessed uint64
	MessagesFlagged   uint64
	Escalations       uint64
	Retrains          uint64
	EngineRecoveries  uint64

	tickBytes uint64 // messages seen since the last throughput tick
	LastCheck time.Time
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{
		log:       log,
		LastCheck: time.Now(),
	}
}

func (mm *MonitoringManager) IncrProcessed() {
	atomic.AddUint64(&mm.MessagesProcessed, 1)
	atomic.AddUint64(&mm.tickBytes, 1)
}

func (mm *MonitoringManager) IncrFlagged() {
	atomic.AddUint64(&mm.MessagesFlagged, 1)
}

func (mm *MonitoringManager) IncrEscalations() {
	atomic.AddUint64(&mm.Escalations, 1)
}

func (mm *MonitoringManager) IncrRetrains() {
	atomic.AddUint64(&mm.Retrains, 1)
}

func (mm *MonitoringManager) IncrEngineRecoveries() {
	atomic.AddUint64(&mm.EngineRecoveries, 1)
}

// Listen refreshes the aggregated stats every second until the context
// is canceled.
func (mm *MonitoringManager) Listen(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		mm.log.Warn("Process stats unavailable", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			mm.log.Info("Monitoring manager stopped")
			return

		case <-ticker.C:
			mm.updateStats(p)
		}
	}
}

func (mm *MonitoringManager) updateStats(p *process.Process) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	now := time.Now()
	duration := now.Sub(mm.LastCheck).Seconds()

	if duration > 0 {
		seen := atomic.SwapUint64(&mm.tickBytes, 0)
		mm.latestStats.Throughput = float64(seen) / duration
	}
	mm.LastCheck = now

	mm.latestStats.MessagesProcessed = atomic.LoadUint64(&mm.MessagesProcessed)
	mm.latestStats.MessagesFlagged = atomic.LoadUint64(&mm.MessagesFlagged)
	mm.latestStats.Escalations = atomic.LoadUint64(&mm.Escalations)
	mm.latestStats.Retrains = atomic.LoadUint64(&mm.Retrains)
	mm.latestStats.EngineRecoveries = atomic.LoadUint64(&mm.EngineRecoveries)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC

	if p != nil {
		if memInfo, err := p.MemoryInfo(); err == nil {
			mm.latestStats.ProcessRssMb = memInfo.RSS / 1024 / 1024
		}
		if cpuPercent, err := p.CPUPercent(); err == nil {
			mm.latestStats.CpuPercent = cpuPercent
		}
	}

	mm.log.Debug("Stats updated",
		"processed", mm.latestStats.MessagesProcessed,
		"flagged", mm.latestStats.MessagesFlagged,
		"throughput", mm.latestStats.Throughput,
		"mem_mb", mm.latestStats.AllocMemMb,
	)
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.latestStats
}
