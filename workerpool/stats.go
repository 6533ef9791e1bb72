package workerpool

import (
	"fmt"
	"sort"
)

// bucket accumulates attempt count and accuracy sum for one breakdown key
// (a base scheduler kind or a PeriodicRand layer count).
type bucket struct {
	attempts    int
	accuracySum float64
}

func (b *bucket) add(accuracy float64) {
	b.attempts++
	b.accuracySum += accuracy
}

func (b *bucket) mean() float64 {
	if b.attempts == 0 {
		return 0
	}
	return b.accuracySum / float64(b.attempts)
}

// Stats accumulates the worker pool's aggregate, per-base-scheduler, and
// per-PeriodicRand-layer-count results, printed by the collector on
// cancellation or completion.
type Stats struct {
	overall    bucket
	byBaseKind map[string]*bucket
	byLayers   map[int]*bucket
}

// NewStats returns an empty Stats accumulator.
func NewStats() *Stats {
	return &Stats{
		byBaseKind: make(map[string]*bucket),
		byLayers:   make(map[int]*bucket),
	}
}

// Add records one completed attempt.
func (s *Stats) Add(r Result) {
	s.overall.add(r.Accuracy)

	kind := r.Descriptor.Base.Kind
	if s.byBaseKind[kind] == nil {
		s.byBaseKind[kind] = &bucket{}
	}
	s.byBaseKind[kind].add(r.Accuracy)

	layers := r.Descriptor.LayerCount()
	if s.byLayers[layers] == nil {
		s.byLayers[layers] = &bucket{}
	}
	s.byLayers[layers].add(r.Accuracy)
}

// Attempts returns the total number of attempts recorded.
func (s *Stats) Attempts() int {
	return s.overall.attempts
}

// MeanAccuracy returns the overall mean accuracy across every attempt, or 0
// if none were recorded.
func (s *Stats) MeanAccuracy() float64 {
	return s.overall.mean()
}

// String renders the aggregate/per-scheduler/per-layer-count breakdown the
// collector prints on shutdown.
func (s *Stats) String() string {
	out := fmt.Sprintf("attempts: %d, mean accuracy: %.4f\n", s.Attempts(), s.MeanAccuracy())

	out += "by base scheduler:\n"
	kinds := make([]string, 0, len(s.byBaseKind))
	for kind := range s.byBaseKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		b := s.byBaseKind[kind]
		out += fmt.Sprintf("  %-14s attempts=%-6d mean accuracy=%.4f\n", kind, b.attempts, b.mean())
	}

	out += "by PeriodicRand layer count:\n"
	layerCounts := make([]int, 0, len(s.byLayers))
	for layers := range s.byLayers {
		layerCounts = append(layerCounts, layers)
	}
	sort.Ints(layerCounts)
	for _, layers := range layerCounts {
		b := s.byLayers[layers]
		out += fmt.Sprintf("  %-14d attempts=%-6d mean accuracy=%.4f\n", layers, b.attempts, b.mean())
	}

	return out
}
