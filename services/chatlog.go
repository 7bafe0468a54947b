package services

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogSink receives one record per chat turn or handoff request. Appends are
// best-effort: callers go through LogBestEffort and never see a failure, so
// logging can never fail or delay a response.
type LogSink interface {
	Append(prefix string, record any) error
}

// DailyFileSink writes JSON lines to {dir}/{prefix}-{UTC date}.jsonl,
// creating the directory on first use. A mutex serializes appends so
// concurrent requests interleave whole lines, never partial ones.
type DailyFileSink struct {
	mu  sync.Mutex
	dir string
	now func() time.Time
}

func NewDailyFileSink(dir string) *DailyFileSink {
	return &DailyFileSink{dir: dir, now: time.Now}
}

func (s *DailyFileSink) Append(prefix string, record any) error {
	line, err := json.Marshal(record)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	name := prefix + "-" + s.now().UTC().Format("2006-01-02") + ".jsonl"
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return err
	}
	return nil
}

// LogBestEffort appends a record and swallows any failure. Data logs are
// diagnostic; a full disk must not turn into a 500.
func LogBestEffort(sink LogSink, prefix string, record any) {
	if err := sink.Append(prefix, record); err != nil {
		LogWritesDropped.WithLabelValues(prefix).Inc()
		slog.Warn("Dropped log record", "prefix", prefix, "error", err)
	}
}
