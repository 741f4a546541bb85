package util

import (
	"fmt"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats provides a snapshot of wall time and memory allocation at a
// given point in time.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of gc events
	startGc uint32
}

// NewPerfStats creates a new snapshot of the current amount of memory allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats

	startTime := time.Now()

	runtime.ReadMemStats(&m)

	return &PerfStats{startTime, m.TotalAlloc, m.NumGC}
}

// Elapsed returns the wall time since this snapshot was taken.
func (p *PerfStats) Elapsed() time.Duration {
	return time.Since(p.startTime)
}

// Log logs the difference between the state now and as it was when the PerfStats object was created.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats

	runtime.ReadMemStats(&m)
	alloc := (m.TotalAlloc - p.startMem) / 1024 / 1024
	gcs := m.NumGC - p.startGc
	exectime := p.Elapsed().Seconds()

	log.Debugf("%s took %0.2fs using %v Mb (%v GC events)", prefix, exectime, alloc, gcs)
}

// Transcript accumulates named timings for an end-of-run summary.  It is
// passed around explicitly rather than kept as process-wide state, so
// callers decide when (and whether) timing happens.
type Transcript struct {
	entries []transcriptEntry
}

type transcriptEntry struct {
	name    string
	elapsed time.Duration
}

// NewTranscript constructs an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Record appends a named timing taken from the given snapshot, and also logs
// the snapshot at debug level.
func (t *Transcript) Record(name string, stats *PerfStats) {
	stats.Log(name)

	t.entries = append(t.entries, transcriptEntry{name, stats.Elapsed()})
}

// Summary returns one line per recorded entry, in recording order.
func (t *Transcript) Summary() []string {
	lines := make([]string, len(t.entries))

	for i, entry := range t.entries {
		lines[i] = fmt.Sprintf("%s executed in %d ms", entry.name, entry.elapsed.Milliseconds())
	}

	return lines
}
