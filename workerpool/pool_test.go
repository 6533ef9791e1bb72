package workerpool

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/larkspur-labs/polycrack/dict"
	"github.com/larkspur-labs/polycrack/driver"
	"github.com/larkspur-labs/polycrack/freq"
	"github.com/larkspur-labs/polycrack/prng"
)

func sampleWordlist() string {
	return "the quick brown fox jumps over lazy dog cat lion seal fish canary carp " +
		"shark words wishes pig pie sandle counter keyboard airplane fresh zebra " +
		"apple mango carrot forest river mountain cloud storm ocean desert island " +
		"valley meadow garden castle knight dragon wizard potion sword shield armor"
}

func newTestPool(attempts int) *Pool {
	d := dict.New(sampleWordlist())
	bd := dict.FromDictionary(d)
	baseline := freq.FromDictionary(d.Words)

	return &Pool{
		Dict:     d,
		ByteDict: bd,
		Baseline: baseline,
		Attempts: attempts,
		Workers:  2,
		Seed:     prng.New(42, 43),
	}
}

func TestRunProducesExactlyAttemptsResults(t *testing.T) {
	pool := newTestPool(5)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats := pool.Run(ctx)
	assert.Equal(t, 5, stats.Attempts())
}

func TestRunCancelledBeforeCompletionStopsCleanly(t *testing.T) {
	pool := newTestPool(0) // unbounded

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	stats := pool.Run(ctx)
	assert.GreaterOrEqual(t, stats.Attempts(), 0)
}

func TestRunWithKnownCandidatesExercisesScenarioA(t *testing.T) {
	pool := newTestPool(6)
	pool.Candidates = []driver.Candidate{
		driver.NewCandidate("the quick brown fox"),
		driver.NewCandidate("a wizard casts a potion"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats := pool.Run(ctx)
	assert.Equal(t, 6, stats.Attempts())
}

func TestDescriptorEncodeDecodeRoundtrip(t *testing.T) {
	rng := prng.New(1, 2)
	descriptor, _ := generateDescriptor(rng, "B", 123)

	encoded, err := descriptor.Encode()
	assert.NoError(t, err)

	decoded, err := DecodeDescriptor(encoded)
	assert.NoError(t, err)
	assert.Equal(t, descriptor, decoded)
}

func TestStatsBreakdownsTrackAttempts(t *testing.T) {
	stats := NewStats()
	stats.Add(Result{Descriptor: Descriptor{Base: BaseDescriptor{Kind: "repeatingkey"}}, Accuracy: 1.0})
	stats.Add(Result{Descriptor: Descriptor{Base: BaseDescriptor{Kind: "aab"}, RandLayers: []RandLayerDescriptor{{Period: 40}}}, Accuracy: 0.5})

	assert.Equal(t, 2, stats.Attempts())
	assert.InDelta(t, 0.75, stats.MeanAccuracy(), 1e-9)
	assert.NotEmpty(t, stats.String())
}
