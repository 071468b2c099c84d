package bench

import (
	"encoding/json"
	"runtime"
	"sort"
	"sync"
	"time"
)

// Operation names the primitive call being measured.
type Operation string

const (
	OpAuth       Operation = "auth"
	OpAuthVerify Operation = "auth_verify"
	OpSignKeygen Operation = "sign_publickey"
	OpSign       Operation = "sign"
	OpSignOpen   Operation = "sign_open"
	OpStream     Operation = "stream"
	OpStreamXOR  Operation = "stream_xor"
)

// OperationMetrics tracks one operation's performance
type OperationMetrics struct {
	Operation             Operation `json:"operation"`
	Calls                 uint64    `json:"calls"`
	Errors                uint64    `json:"errors"`
	BytesProcessed        uint64    `json:"bytes_processed"`
	TotalLatency          float64   `json:"total_latency_us"`
	AverageLatency        float64   `json:"average_latency_us"`
	MinLatency            float64   `json:"min_latency_us"`
	MaxLatency            float64   `json:"max_latency_us"`
	ThroughputBytesPerSec float64   `json:"throughput_bytes_per_sec"`
	LastOperation         time.Time `json:"last_operation"`
}

// SystemMetrics tracks process resource usage at report time
type SystemMetrics struct {
	MemoryUsage    uint64 `json:"memory_usage_bytes"`
	HeapSize       uint64 `json:"heap_size_bytes"`
	TotalAlloc     uint64 `json:"total_alloc_bytes"`
	GoroutineCount int    `json:"goroutine_count"`
	NumGC          uint32 `json:"num_gc"`
}

// Monitor accumulates metrics for every Operation it has seen.
type Monitor struct {
	mu         sync.RWMutex
	operations map[Operation]*OperationMetrics
	clock      TimeProvider
	startTime  time.Time
}

// NewMonitor creates a monitor using the wall clock.
func NewMonitor() *Monitor {
	return NewMonitorWithTimeProvider(DefaultTimeProvider{})
}

// NewMonitorWithTimeProvider creates a monitor reading time from clock.
// A nil clock uses DefaultTimeProvider.
func NewMonitorWithTimeProvider(clock TimeProvider) *Monitor {
	if clock == nil {
		clock = DefaultTimeProvider{}
	}
	return &Monitor{
		operations: make(map[Operation]*OperationMetrics),
		clock:      clock,
		startTime:  clock.Now(),
	}
}

// Record adds one call of op that took duration and processed bytes.
func (m *Monitor) Record(op Operation, duration time.Duration, bytes int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	metrics, ok := m.operations[op]
	if !ok {
		metrics = &OperationMetrics{Operation: op}
		m.operations[op] = metrics
	}

	latencyUs := float64(duration.Nanoseconds()) / 1e3

	metrics.Calls++
	if err != nil {
		metrics.Errors++
	}
	if bytes > 0 {
		metrics.BytesProcessed += uint64(bytes)
	}

	if metrics.Calls == 1 || latencyUs < metrics.MinLatency {
		metrics.MinLatency = latencyUs
	}
	if latencyUs > metrics.MaxLatency {
		metrics.MaxLatency = latencyUs
	}
	metrics.TotalLatency += latencyUs
	metrics.AverageLatency = metrics.TotalLatency / float64(metrics.Calls)

	if metrics.TotalLatency > 0 {
		metrics.ThroughputBytesPerSec = float64(metrics.BytesProcessed) / (metrics.TotalLatency / 1e6)
	}
	metrics.LastOperation = m.clock.Now()
}

// Time runs fn, records its duration under op and returns fn's error.
func (m *Monitor) Time(op Operation, bytes int, fn func() error) error {
	start := m.clock.Now()
	err := fn()
	m.Record(op, m.clock.Since(start), bytes, err)
	return err
}

// Snapshot returns copies of the metrics, sorted by operation name.
func (m *Monitor) Snapshot() []OperationMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]OperationMetrics, 0, len(m.operations))
	for _, metrics := range m.operations {
		out = append(out, *metrics)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Operation < out[j].Operation })
	return out
}

// Report captures a snapshot together with process metrics.
func (m *Monitor) Report() *Report {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return &Report{
		GeneratedAt: m.clock.Now(),
		Uptime:      m.clock.Since(m.startTime),
		Operations:  m.Snapshot(),
		System: SystemMetrics{
			MemoryUsage:    ms.Alloc,
			HeapSize:       ms.HeapAlloc,
			TotalAlloc:     ms.TotalAlloc,
			GoroutineCount: runtime.NumGoroutine(),
			NumGC:          ms.NumGC,
		},
	}
}

// Report is a point-in-time performance overview
type Report struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Uptime      time.Duration      `json:"uptime"`
	Operations  []OperationMetrics `json:"operations"`
	System      SystemMetrics      `json:"system"`
}

// ExportJSON exports the report as indented JSON
func (r *Report) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
