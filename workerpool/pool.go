// Package workerpool drives parallel evaluation of randomly-generated cipher
// configurations against the cracker driver, to measure recovery accuracy
// across scheduler classes and PeriodicRand layer counts.
//
// Topology: a single producer goroutine generates cipher-configuration
// descriptors into a bounded work queue (capacity workQueueCapacity); N-2
// worker goroutines (available hardware parallelism, minus one each for the
// producer and the collector) consume the queue, run a full attempt, and emit
// results to an unbuffered result channel drained by the collector loop in Run.
package workerpool

import (
	"context"
	"runtime"

	"github.com/agnivade/levenshtein"
	"golang.org/x/sync/errgroup"

	"github.com/larkspur-labs/polycrack/ciphers"
	"github.com/larkspur-labs/polycrack/dict"
	"github.com/larkspur-labs/polycrack/driver"
	"github.com/larkspur-labs/polycrack/freq"
	"github.com/larkspur-labs/polycrack/gen"
	"github.com/larkspur-labs/polycrack/prng"
)

// workQueueCapacity is the bounded work queue's capacity; it supplies
// backpressure to the producer.
const workQueueCapacity = 128

// scenarioBWords is the number of words generated for a Scenario B attempt's
// plaintext.
const scenarioBWords = 200

// keylenAttemptLimit bounds how many ranked keylength candidates each attempt
// tries during its Scenario B pass, keeping per-attempt cost bounded when
// thousands of configurations are evaluated.
const keylenAttemptLimit = 30

// Result is one completed attempt: the descriptor that was evaluated, the
// keylength of its underlying key, and the recovery accuracy achieved.
type Result struct {
	Descriptor Descriptor
	KeyLength  int
	Accuracy   float64
}

// Pool evaluates randomly-generated cipher configurations against the
// cracker driver. The dictionary, byte dictionary, baseline distribution, and
// known-candidate list are constructed once by the caller and shared
// read-only across every worker.
type Pool struct {
	Dict       *dict.Dictionary
	ByteDict   *dict.ByteDictionary
	Baseline   freq.Distribution
	Candidates []driver.Candidate

	// Attempts bounds how many descriptors the producer generates; 0 means
	// run until ctx is cancelled.
	Attempts int

	// Workers overrides the worker goroutine count; 0 derives it from
	// runtime.GOMAXPROCS(0)-2, floored at 1.
	Workers int

	// Seed seeds the producer's RNG and, transitively (via Rng.Spawn), every
	// worker's private RNG. A nil Seed uses prng.Default().
	Seed *prng.Rng
}

func (p *Pool) workerCount() int {
	if p.Workers > 0 {
		return p.Workers
	}
	n := runtime.GOMAXPROCS(0) - 2
	if n < 1 {
		n = 1
	}
	return n
}

// Run drives the pool to completion: it starts the producer and worker
// goroutines, then collects results until the work is exhausted or ctx is
// cancelled. On cancellation the collector stops consuming and returns
// immediately with whatever Stats have accumulated so far; workers
// already mid-attempt finish in the background rather than being interrupted,
// since attempts are short.
func (p *Pool) Run(ctx context.Context) *Stats {
	seed := p.Seed
	if seed == nil {
		seed = prng.Default()
	}

	work := make(chan Descriptor, workQueueCapacity)
	results := make(chan Result)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(work)
		producerRng := seed.Spawn()
		attempted := 0
		for p.Attempts <= 0 || attempted < p.Attempts {
			scenario := "B"
			if len(p.Candidates) > 0 && producerRng.Next()%2 == 0 {
				scenario = "A"
			}
			descriptor, _ := generateDescriptor(producerRng, scenario, 0)

			select {
			case work <- descriptor:
				attempted++
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})

	for i := 0; i < p.workerCount(); i++ {
		workerRng := seed.Spawn()
		g.Go(func() error {
			p.runWorker(gctx, workerRng, work, results)
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(results)
	}()

	stats := NewStats()
	for {
		select {
		case <-ctx.Done():
			return stats
		case r, ok := <-results:
			if !ok {
				return stats
			}
			stats.Add(r)
		}
	}
}

// runWorker implements one worker's attempt loop: for every descriptor it
// receives, build the encryptor, pick a plaintext (known candidate for
// Scenario A, freshly generated words for Scenario B), encrypt, run the
// driver, and report the recovery accuracy.
func (p *Pool) runWorker(ctx context.Context, rng *prng.Rng, work <-chan Descriptor, results chan<- Result) {
	generator := gen.New(p.Dict, rng)

	for {
		var descriptor Descriptor
		var ok bool
		select {
		case <-ctx.Done():
			return
		case descriptor, ok = <-work:
			if !ok {
				return
			}
		}

		schedule := descriptor.Build()
		encryptor := ciphers.NewEncryptor(descriptor.Key, schedule, rng.Spawn())

		var plaintext string
		if descriptor.Scenario == "A" && len(p.Candidates) > 0 {
			plaintext = p.Candidates[rng.Choose(len(p.Candidates))].Plaintext
		} else {
			plaintext = generator.GenerateWords(scenarioBWords)
		}
		descriptor.PlaintextLen = len(plaintext)

		ciphertext := encryptor.Encrypt(plaintext)
		recovered := driver.CrackWithKeylenLimit(ciphertext, p.ByteDict, p.Baseline, p.Candidates, keylenAttemptLimit)

		accuracy := 1.0
		if len(plaintext) > 0 {
			distance := levenshtein.ComputeDistance(recovered, plaintext)
			ratio := float64(distance) / float64(len(plaintext))
			if ratio > 1 {
				ratio = 1
			}
			accuracy = 1 - ratio
		}

		select {
		case results <- Result{Descriptor: descriptor, KeyLength: encryptor.KeyLength(), Accuracy: accuracy}:
		case <-ctx.Done():
			return
		}
	}
}
