package record

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/benjialonso/snake/pkg/config"
	"github.com/benjialonso/snake/pkg/game"
)

func sampleSnapshot(tick uint64) game.Snapshot {
	e := game.New(10, 10, config.Game{Seed: int64(tick) + 1})
	s := e.Snapshot()
	s.Tick = tick
	return s
}

// TestRecorderRoundTrip writes a short session and reads it back in order.
func TestRecorderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRecorder(dir, "roundtrip")
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}
	if !strings.Contains(r.Path(), "game_roundtrip_") {
		t.Errorf("Unexpected record path %q", r.Path())
	}

	const steps = 25
	for i := 0; i < steps; i++ {
		r.Record(StepRecord{
			Seq:   uint64(i),
			At:    time.Now(),
			State: sampleSnapshot(uint64(i)),
		})
	}
	r.Close()

	reader, err := Open(r.Path())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer reader.Close()

	recs, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(recs) != steps {
		t.Fatalf("Expected %d records, got %d", steps, len(recs))
	}
	for i, rec := range recs {
		if rec.Seq != uint64(i) {
			t.Errorf("Record %d has seq %d", i, rec.Seq)
		}
		if rec.State.Tick != uint64(i) {
			t.Errorf("Record %d has tick %d", i, rec.State.Tick)
		}
		if len(rec.State.Entity) == 0 {
			t.Errorf("Record %d lost its entity", i)
		}
	}

	// The reader reports a clean end of stream afterwards.
	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("Expected io.EOF after the last record, got %v", err)
	}
}

// TestRecorderCloseIsIdempotent closes twice and records after close.
func TestRecorderCloseIsIdempotent(t *testing.T) {
	r, err := NewRecorder(t.TempDir(), "close")
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}
	r.Record(StepRecord{Seq: 1, At: time.Now(), State: sampleSnapshot(1)})
	r.Close()
	r.Close()
	r.Record(StepRecord{Seq: 2, At: time.Now(), State: sampleSnapshot(2)}) // must not panic

	reader, err := Open(r.Path())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer reader.Close()
	recs, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("Expected the single pre-close record, got %d", len(recs))
	}
}

// TestOpenMissingFile surfaces a useful error.
func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(t.TempDir() + "/nope.jsonl"); err == nil {
		t.Error("Expected an error opening a missing file")
	}
}
