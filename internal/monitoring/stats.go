package monitoring

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats is a point-in-time snapshot of the host, taken on demand for the
// health endpoint. There is no background sampling loop.
type Stats struct {
	Status        string  `json:"status"`
	UptimeSeconds int64   `json:"uptimeSeconds"`
	CPUPercent    float64 `json:"cpuPercent"`
	MemoryPercent float64 `json:"memoryPercent"`
}

var started = time.Now()

// Snapshot collects current host stats. Collection failures degrade the
// individual reading to zero rather than failing the health check.
func Snapshot() Stats {
	s := Stats{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(started).Seconds()),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		s.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemoryPercent = vm.UsedPercent
	}
	return s
}
