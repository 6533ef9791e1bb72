package workerpool

import (
	"encoding/json"
	"fmt"

	"github.com/larkspur-labs/polycrack/ciphers/schedulers"
	"github.com/larkspur-labs/polycrack/prng"
	"github.com/larkspur-labs/polycrack/varmor"
)

// BaseDescriptor records the base key schedule chosen for one attempt, along
// with whichever of its parameters that kind of schedule needs to be rebuilt.
type BaseDescriptor struct {
	Kind                string `json:"kind"`
	AabNumChars         int    `json:"aab_num_chars,omitempty"`
	AabNumReps          int    `json:"aab_num_reps,omitempty"`
	AabOffset           int    `json:"aab_offset,omitempty"`
	OffsetReverseOffset int    `json:"offset_reverse_offset,omitempty"`
}

// RandLayerDescriptor records one PeriodicRand wrapper applied on top of the
// base schedule (or on top of a previous layer).
type RandLayerDescriptor struct {
	Period    int  `json:"period"`
	Start     int  `json:"start"`
	Overwrite bool `json:"overwrite"`
}

// Descriptor is the serializable summary of one randomly-generated cipher
// configuration that the worker pool evaluates. It carries enough
// information to both rebuild the exact
// KeySchedule used and to bucket results for the collector's statistics
// breakdown.
type Descriptor struct {
	Key          []int                 `json:"key"`
	Base         BaseDescriptor        `json:"base"`
	RandLayers   []RandLayerDescriptor `json:"rand_layers,omitempty"`
	Scenario     string                `json:"scenario"`
	PlaintextLen int                   `json:"plaintext_len"`
}

// LayerCount returns the number of PeriodicRand layers wrapping the base
// schedule, used by the collector's per-layer-count breakdown.
func (d Descriptor) LayerCount() int {
	return len(d.RandLayers)
}

// Build reconstructs the KeySchedule this descriptor describes: the base
// schedule first, then every recorded PeriodicRand layer wrapping it in
// order (RandLayers[0] wraps the base, RandLayers[1] wraps RandLayers[0], and
// so on).
func (d Descriptor) Build() schedulers.KeySchedule {
	var sched schedulers.KeySchedule

	switch d.Base.Kind {
	case schedulers.BaseAab.String():
		sched = schedulers.Aab{
			NumChars: d.Base.AabNumChars,
			NumReps:  d.Base.AabNumReps,
			Offset:   d.Base.AabOffset,
		}
	case schedulers.BaseLengthMod.String():
		sched = schedulers.LengthMod{}
	case schedulers.BaseOffsetReverse.String():
		sched = schedulers.OffsetReverse{Offset: d.Base.OffsetReverseOffset}
	default:
		sched = schedulers.RepeatingKey{}
	}

	for _, layer := range d.RandLayers {
		sched = schedulers.PeriodicRand{
			Period:    layer.Period,
			Start:     layer.Start,
			Overwrite: layer.Overwrite,
			Inner:     sched,
		}
	}

	return sched
}

// Encode serializes the descriptor to JSON and wraps it in varmor armor, so a
// single attempt can be logged or replayed as one opaque, shell-safe token.
func (d Descriptor) Encode() (string, error) {
	body, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("workerpool: failed to marshal descriptor: %w", err)
	}
	return varmor.Wrap(body), nil
}

// DecodeDescriptor inverts Encode.
func DecodeDescriptor(armored string) (Descriptor, error) {
	body, err := varmor.Unwrap(armored)
	if err != nil {
		return Descriptor{}, fmt.Errorf("workerpool: failed to unarmor descriptor: %w", err)
	}

	var d Descriptor
	if err := json.Unmarshal(body, &d); err != nil {
		return Descriptor{}, fmt.Errorf("workerpool: failed to unmarshal descriptor: %w", err)
	}
	return d, nil
}

// generateDescriptor builds a random Descriptor using rng: a random key
// length and shifts, a random base schedule, and zero to two PeriodicRand
// layers stacked on top (schedulers.PeriodicRand explicitly supports wrapping
// another PeriodicRand, so the descriptor format allows for it too).
func generateDescriptor(rng *prng.Rng, scenario string, plaintextLen int) (Descriptor, schedulers.KeySchedule) {
	keyLen := 3 + int(rng.Next()%13)
	key := make([]int, keyLen)
	for i := range key {
		key[i] = int(int8(rng.Next()))
	}

	base, baseKind := schedulers.RandomBase(rng)
	baseDesc := BaseDescriptor{Kind: baseKind.String()}
	switch b := base.(type) {
	case schedulers.Aab:
		baseDesc.AabNumChars = b.NumChars
		baseDesc.AabNumReps = b.NumReps
		baseDesc.AabOffset = b.Offset
	case schedulers.OffsetReverse:
		baseDesc.OffsetReverseOffset = b.Offset
	}

	numLayers := int(rng.Next() % 3)
	var layers []RandLayerDescriptor // nil when empty, as DecodeDescriptor yields
	sched := base
	for i := 0; i < numLayers; i++ {
		layer := schedulers.RandomPeriodicRand(rng)
		layers = append(layers, RandLayerDescriptor{
			Period:    layer.Period,
			Start:     layer.Start,
			Overwrite: layer.Overwrite,
		})
		layer.Inner = sched
		sched = layer
	}

	descriptor := Descriptor{
		Key:          key,
		Base:         baseDesc,
		RandLayers:   layers,
		Scenario:     scenario,
		PlaintextLen: plaintextLen,
	}

	return descriptor, sched
}
