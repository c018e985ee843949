package game

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/benjialonso/snake/pkg/config"
)

// TestConcurrentSessionsLoad simulates many independent sessions ticking at
// once, the way the web server runs one engine per connection. Engines are
// not shared between goroutines, so this is a throughput check, not a race
// hunt.
func TestConcurrentSessionsLoad(t *testing.T) {
	const (
		numSessions     = 32
		ticksPerSession = 500
	)

	var wg sync.WaitGroup
	wg.Add(numSessions)

	fmt.Printf("🔥 Starting load test with %d concurrent sessions...\n", numSessions)
	start := time.Now()

	for i := 0; i < numSessions; i++ {
		go func(id int) {
			defer wg.Done()

			cfg := config.Default()
			cfg.Seed = int64(id) + 1
			e := New(config.DefaultWidth, config.DefaultHeight, cfg)
			pilot := NewAutopilot(int64(id) + 1)

			for j := 0; j < ticksPerSession; j++ {
				if d, ok := pilot.Step(e.Snapshot()); ok {
					e.SubmitDirection(d)
				}
				s := e.Tick()
				if s.GameOver {
					e.Reset()
				}
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)
	totalTicks := numSessions * ticksPerSession
	avgPerTick := elapsed / time.Duration(totalTicks)

	fmt.Printf("\n--- Concurrent Sessions Result ---\n")
	fmt.Printf("Total Concurrent Sessions: %d\n", numSessions)
	fmt.Printf("Total Ticks: %d\n", totalTicks)
	fmt.Printf("Total Time Elapsed: %v\n", elapsed)
	fmt.Printf("System Throughput: %.2f ticks/sec\n", float64(totalTicks)/elapsed.Seconds())
	fmt.Printf("Average Latency (End-to-end): %v\n", avgPerTick)
	fmt.Printf("----------------------------------\n")
}

// BenchmarkEngineTick measures a single engine advancing with a mid-length
// entity.
func BenchmarkEngineTick(b *testing.B) {
	cfg := config.Default()
	cfg.Seed = 1
	e := New(config.DefaultWidth, config.DefaultHeight, cfg)
	pilot := NewAutopilot(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if d, ok := pilot.Step(e.Snapshot()); ok {
			e.SubmitDirection(d)
		}
		if s := e.Tick(); s.GameOver {
			e.Reset()
		}
	}
}
