package bench

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock advances by step on every Since call.
type stepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Since(t time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now.Sub(t)
}

func TestMonitorRecord(t *testing.T) {
	m := NewMonitor()

	m.Record(OpAuth, 10*time.Microsecond, 100, nil)
	m.Record(OpAuth, 30*time.Microsecond, 100, nil)
	m.Record(OpAuth, 20*time.Microsecond, 100, errors.New("boom"))

	snap := m.Snapshot()
	require.Len(t, snap, 1)

	got := snap[0]
	assert.Equal(t, OpAuth, got.Operation)
	assert.Equal(t, uint64(3), got.Calls)
	assert.Equal(t, uint64(1), got.Errors)
	assert.Equal(t, uint64(300), got.BytesProcessed)
	assert.InDelta(t, 10.0, got.MinLatency, 1e-9)
	assert.InDelta(t, 30.0, got.MaxLatency, 1e-9)
	assert.InDelta(t, 20.0, got.AverageLatency, 1e-9)
	// 300 bytes in 60us
	assert.InDelta(t, 5e6, got.ThroughputBytesPerSec, 1e-3)
}

func TestMonitorSnapshotIsCopy(t *testing.T) {
	m := NewMonitor()
	m.Record(OpSign, time.Millisecond, 1, nil)

	snap := m.Snapshot()
	snap[0].Calls = 99

	assert.Equal(t, uint64(1), m.Snapshot()[0].Calls)
}

func TestMonitorSnapshotSorted(t *testing.T) {
	m := NewMonitor()
	for _, op := range []Operation{OpStreamXOR, OpAuth, OpSignOpen} {
		m.Record(op, time.Microsecond, 0, nil)
	}

	snap := m.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, OpAuth, snap[0].Operation)
	assert.Equal(t, OpSignOpen, snap[1].Operation)
	assert.Equal(t, OpStreamXOR, snap[2].Operation)
}

func TestMonitorTimeUsesClock(t *testing.T) {
	clock := &stepClock{now: time.Unix(1700000000, 0), step: 5 * time.Microsecond}
	m := NewMonitorWithTimeProvider(clock)

	sentinel := errors.New("fail")
	err := m.Time(OpStream, 64, func() error { return sentinel })
	assert.ErrorIs(t, err, sentinel)

	snap := m.Snapshot()
	require.Len(t, snap, 1)
	assert.InDelta(t, 5.0, snap[0].AverageLatency, 1e-9)
	assert.Equal(t, uint64(1), snap[0].Errors)
	assert.Equal(t, clock.Now(), snap[0].LastOperation)
}

func TestMonitorNilTimeProvider(t *testing.T) {
	m := NewMonitorWithTimeProvider(nil)
	assert.NotNil(t, m.clock)
}

func TestMonitorConcurrentRecord(t *testing.T) {
	m := NewMonitor()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Record(OpAuthVerify, time.Microsecond, 1, nil)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(800), m.Snapshot()[0].Calls)
}

func TestReportExportJSON(t *testing.T) {
	m := NewMonitor()
	m.Record(OpSign, time.Microsecond, 32, nil)

	data, err := m.Report().ExportJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "operations")
	assert.Contains(t, decoded, "system")

	ops, ok := decoded["operations"].([]interface{})
	require.True(t, ok)
	require.Len(t, ops, 1)
	assert.Equal(t, "sign", ops[0].(map[string]interface{})["operation"])
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"empty message", Config{MessageSize: 0, Iterations: 1}, false},
		{"negative size", Config{MessageSize: -1, Iterations: 1}, true},
		{"zero iterations", Config{MessageSize: 1, Iterations: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunRecordsEveryOperation(t *testing.T) {
	m := NewMonitor()
	require.NoError(t, Run(context.Background(), Config{MessageSize: 100, Iterations: 3}, m))

	snap := m.Snapshot()
	require.Len(t, snap, 7)
	for _, metrics := range snap {
		assert.Equal(t, uint64(3), metrics.Calls, metrics.Operation)
		assert.Zero(t, metrics.Errors, metrics.Operation)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, Config{MessageSize: 1, Iterations: 1}, NewMonitor())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunInvalidConfig(t *testing.T) {
	err := Run(context.Background(), Config{Iterations: -1}, NewMonitor())
	assert.Error(t, err)
}
