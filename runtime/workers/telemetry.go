package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"mafia-lab/contract"
)

var _ contract.Worker = (*TelemetryWorker)(nil)

// TelemetryWorker logs process health (RSS, CPU) and the number of chats
// holding a session, on a fixed interval.
type TelemetryWorker struct {
	log      *slog.Logger
	registry contract.IRegistry
	interval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, registry contract.IRegistry, interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, registry: registry, interval: interval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu := selfStats(p)
			w.log.Info("Telemetry",
				"sessions", w.registry.Len(),
				"rss_mb", rss/1024/1024,
				"cpu_percent", cpu)
		}
	}
}

func selfStats(p *process.Process) (uint64, float64) {
	var rss uint64
	if mem, err := p.MemoryInfo(); err == nil {
		rss = mem.RSS
	}
	cpu, _ := p.CPUPercent()
	return rss, cpu
}
