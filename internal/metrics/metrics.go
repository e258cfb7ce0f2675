package metrics

import (
	"sync"
	"time"
)

type resolverStats struct {
	calls           int
	misses          int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about resolver calls
// and mirrors them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu        sync.Mutex
	stats     map[string]*resolverStats
	mutations map[string]int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:     make(map[string]*resolverStats),
		mutations: make(map[string]int),
		otel:      otel,
	}
}

// Outcome classifies a resolver call.
type Outcome int

const (
	OutcomeHit Outcome = iota
	OutcomeMiss
	OutcomeError
)

// RecordResolver counts a resolver call for field (e.g. "Query.game") and stores its latency.
// A miss is a lookup that found nothing, which is not an error.
func (r *Recorder) RecordResolver(field string, duration time.Duration, outcome Outcome) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats, ok := r.stats[field]
	if !ok {
		stats = &resolverStats{}
		r.stats[field] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	switch outcome {
	case OutcomeMiss:
		stats.misses++
	case OutcomeError:
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordResolver(field, duration, outcome)
	}
}

// RecordGameMutation counts a completed game mutation (add, update, delete).
func (r *Recorder) RecordGameMutation(op string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.mutations[op]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordMutation(op)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot returns a copy of the current stats for a resolver field.
type Snapshot struct {
	Calls           int
	Misses          int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(field string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[field]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Misses:          stats.misses,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ResolverCalls returns the total calls recorded for a field.
func (r *Recorder) ResolverCalls(field string) int {
	return r.Snapshot(field).Calls
}

// ResolverMisses returns how many calls for a field found nothing.
func (r *Recorder) ResolverMisses(field string) int {
	return r.Snapshot(field).Misses
}

// GameMutations returns how many mutations of the given kind were recorded.
func (r *Recorder) GameMutations(op string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mutations[op]
}
