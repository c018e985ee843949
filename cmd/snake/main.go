package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/benjialonso/snake/pkg/config"
	"github.com/benjialonso/snake/pkg/game"
	"github.com/benjialonso/snake/pkg/input"
	"github.com/benjialonso/snake/pkg/record"
	"github.com/benjialonso/snake/pkg/renderer"
)

func main() {
	width := flag.Int("width", config.DefaultWidth, "playfield width in cells")
	height := flag.Int("height", config.DefaultHeight, "playfield height in cells")
	seed := flag.Int64("seed", 0, "food placement seed (0 = seed from the clock)")
	autopilot := flag.Bool("autopilot", false, "start with the autopilot driving")
	recordDir := flag.String("record", "", "record the session as JSONL into this directory")
	catalogPath := flag.String("catalog", "data/catalog.db", "session catalog database, used with -record")
	flag.Parse()

	cfg := config.Default()
	cfg.Seed = *seed

	// Initialize input handler
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer inputHandler.Stop()

	// Create new game; the engine clamps degenerate dimensions, so size the
	// renderer from what it actually runs.
	eng := game.New(*width, *height, cfg)
	engCfg := eng.Config()
	render := renderer.NewTerminalRenderer(engCfg.Width, engCfg.Height)
	render.HideCursor()
	defer render.ShowCursor()

	pilot := game.NewAutopilot(*seed)

	var (
		rec       *record.Recorder
		sessionID string
		started   = time.Now()
	)
	if *recordDir != "" {
		sessionID = uuid.NewString()
		var err error
		rec, err = record.NewRecorder(*recordDir, sessionID)
		if err != nil {
			fmt.Println("Error starting recorder:", err)
			return
		}
	}
	defer func() {
		if rec == nil {
			return
		}
		rec.Close()
		cat, err := record.OpenCatalog(*catalogPath)
		if err != nil {
			log.Println("Failed to open catalog:", err)
			return
		}
		defer cat.Close()
		session := record.Session{
			ID:        sessionID,
			File:      rec.Path(),
			Width:     engCfg.Width,
			Height:    engCfg.Height,
			StartedAt: started,
			EndedAt:   time.Now(),
			Ticks:     eng.Snapshot().Tick,
		}
		if err := cat.Add(session); err != nil {
			log.Println("Failed to catalog session:", err)
		}
	}()

	inputChan := inputHandler.GetInputChan()

	snap := eng.Snapshot()
	ticker := time.NewTicker(snap.TickInterval())
	defer ticker.Stop()

	paused := false
	auto := *autopilot

	// Initial render
	render.Render(snap, paused, auto)

	// Main game loop
	for {
		select {
		case inputEvent := <-inputChan:
			switch {
			case input.IsQuit(inputEvent):
				fmt.Println("\n  Thanks for playing! 👋")
				return

			case input.IsRestart(inputEvent):
				if snap.GameOver {
					snap = eng.Reset()
					ticker.Reset(snap.TickInterval())
					render.Render(snap, paused, auto)
				}

			case input.IsPause(inputEvent):
				if !snap.GameOver {
					paused = !paused
					render.Render(snap, paused, auto)
				}

			case input.IsAutopilot(inputEvent):
				auto = !auto
				render.Render(snap, paused, auto)

			default:
				if dir, ok := input.ParseDirection(inputEvent); ok && !auto {
					eng.SubmitDirection(dir)
				}
			}

		case <-ticker.C:
			// The host stops driving ticks while paused or after game over;
			// the engine never sees paused time.
			if paused || snap.GameOver {
				continue
			}
			if auto {
				if dir, ok := pilot.Step(snap); ok {
					eng.SubmitDirection(dir)
				}
			}

			prevIntervalMs := snap.TickIntervalMs
			snap = eng.Tick()
			if rec != nil {
				rec.Record(record.StepRecord{Seq: snap.Tick, At: time.Now(), State: snap})
			}
			// Level-ups shorten the period; retune the ticker only when it
			// actually changed.
			if snap.TickIntervalMs != prevIntervalMs {
				ticker.Reset(snap.TickInterval())
			}
			render.Render(snap, paused, auto)
		}
	}
}
