package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bnema/docklayout/internal/logging"
)

const (
	DefaultSlowWarnThreshold  = 100 * time.Millisecond
	DefaultSlowDebugThreshold = 50 * time.Millisecond
)

// OperationStat aggregates the timings of one named operation.
type OperationStat struct {
	Name  string        `json:"name"`
	Count int           `json:"count"`
	Total time.Duration `json:"total"`
	Min   time.Duration `json:"min"`
	Max   time.Duration `json:"max"`
}

// Average returns Total/Count, zero when nothing was recorded.
func (s OperationStat) Average() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// OperationStats records how long layout operations take and logs slow ones.
// It is safe for concurrent use.
type OperationStats struct {
	mu         sync.Mutex
	ops        map[string]*OperationStat
	warnAfter  time.Duration
	debugAfter time.Duration
	now        func() time.Time
}

// NewOperationStats creates a recorder. Non-positive thresholds fall back to
// the defaults.
func NewOperationStats(warnAfter, debugAfter time.Duration) *OperationStats {
	if warnAfter <= 0 {
		warnAfter = DefaultSlowWarnThreshold
	}
	if debugAfter <= 0 {
		debugAfter = DefaultSlowDebugThreshold
	}
	return &OperationStats{
		ops:        make(map[string]*OperationStat),
		warnAfter:  warnAfter,
		debugAfter: debugAfter,
		now:        time.Now,
	}
}

// Track starts timing name and returns the function that stops it:
//
//	defer stats.Track(ctx, "removePanel")()
func (s *OperationStats) Track(ctx context.Context, name string) func() {
	if s == nil {
		return func() {}
	}
	start := s.now()
	return func() {
		s.Record(ctx, name, s.now().Sub(start))
	}
}

// Record adds one measurement for name.
func (s *OperationStats) Record(ctx context.Context, name string, d time.Duration) {
	if s == nil {
		return
	}

	s.mu.Lock()
	op, ok := s.ops[name]
	if !ok {
		op = &OperationStat{Name: name, Min: d, Max: d}
		s.ops[name] = op
	}
	op.Count++
	op.Total += d
	op.Min = min(op.Min, d)
	op.Max = max(op.Max, d)
	s.mu.Unlock()

	log := logging.FromContext(ctx)
	switch {
	case d > s.warnAfter:
		log.Warn().Str("operation", name).Dur("elapsed", d).Msg("slow layout operation")
	case d > s.debugAfter:
		log.Debug().Str("operation", name).Dur("elapsed", d).Msg("layout operation took a while")
	}
}

// Snapshot returns a copy of every aggregate, sorted by name.
func (s *OperationStats) Snapshot() []OperationStat {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]OperationStat, 0, len(s.ops))
	for _, op := range s.ops {
		out = append(out, *op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Reset discards every aggregate.
func (s *OperationStats) Reset() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.ops = make(map[string]*OperationStat)
	s.mu.Unlock()
}
