package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Reader iterates the step records of a session file in write order.
type Reader struct {
	file    *os.File
	scanner *bufio.Scanner
}

// Open opens a JSONL session file for playback.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open record file: %w", err)
	}
	sc := bufio.NewScanner(f)
	// Long entities produce long lines; give the scanner headroom.
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{file: f, scanner: sc}, nil
}

// Next returns the following step record, or io.EOF after the last one.
func (r *Reader) Next() (StepRecord, error) {
	for r.scanner.Scan() {
		line := r.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec StepRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return StepRecord{}, fmt.Errorf("malformed record line: %w", err)
		}
		return rec, nil
	}
	if err := r.scanner.Err(); err != nil {
		return StepRecord{}, err
	}
	return StepRecord{}, io.EOF
}

// ReadAll drains the remaining records. Convenient for short sessions.
func (r *Reader) ReadAll() ([]StepRecord, error) {
	var recs []StepRecord
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
