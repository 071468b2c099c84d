// Package bench measures the latency and throughput of the nacl primitives.
//
// A [Monitor] accumulates per-operation metrics and is safe for concurrent
// use. [Run] drives each primitive for a configured number of iterations and
// records the results:
//
//	m := bench.NewMonitor()
//	if err := bench.Run(ctx, bench.DefaultConfig(), m); err != nil {
//	    log.Fatal(err)
//	}
//	report := m.Report()
//	data, _ := report.ExportJSON()
//
// Time is read through a [TimeProvider] so tests can substitute a fixed clock.
package bench
