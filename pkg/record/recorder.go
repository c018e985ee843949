// Package record persists game sessions: a Recorder streams per-tick
// snapshots to a JSONL file without blocking the game loop, a Reader plays
// them back, and a Catalog keeps session metadata in sqlite for the replay
// server.
package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/benjialonso/snake/pkg/game"
)

// StepRecord is one recorded tick: a sequence number, the wall-clock time
// the frame was produced, and the snapshot itself.
type StepRecord struct {
	Seq   uint64        `json:"seq"`
	At    time.Time     `json:"at"`
	State game.Snapshot `json:"state"`
}

// Recorder handles asynchronous logging of game steps
type Recorder struct {
	path       string
	file       *os.File
	writer     *bufio.Writer
	recordChan chan StepRecord
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
}

// NewRecorder creates a recorder writing to dir.
// Filename format: game_{sessionID}_{timestamp}.jsonl
func NewRecorder(dir, sessionID string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create records dir: %w", err)
	}

	filename := fmt.Sprintf("game_%s_%d.jsonl", sessionID, time.Now().Unix())
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}

	r := &Recorder{
		path:       path,
		file:       f,
		writer:     bufio.NewWriter(f),
		recordChan: make(chan StepRecord, 1000), // Buffer up to 1000 frames
	}

	r.wg.Add(1)
	go r.writeLoop()

	return r, nil
}

// Path returns the file the recorder writes to.
func (r *Recorder) Path() string {
	return r.path
}

// Record queues a step to be written. Non-blocking (drops if full).
func (r *Recorder) Record(rec StepRecord) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	select {
	case r.recordChan <- rec:
		// Queued successfully
	default:
		// Channel full, drop frame to protect game loop performance
	}
}

// Close flushes the buffer and closes the file.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	close(r.recordChan)
	r.wg.Wait() // Wait for writeLoop to finish
	r.file.Close()
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for rec := range r.recordChan {
		if err := encoder.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording frame: %v\n", err)
			continue
		}
	}
	r.writer.Flush()
}
