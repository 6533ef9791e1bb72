// Command golden generates and validates a fixed set of (key, schedule,
// plaintext, ciphertext) vectors for the ciphers package, so a change to any
// scheduler's Schedule method that silently alters its keystream gets caught
// as a vector mismatch instead of surfacing only as a cracking regression.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/urfave/cli"

	"github.com/larkspur-labs/polycrack/ciphers"
	"github.com/larkspur-labs/polycrack/ciphers/schedulers"
	"github.com/larkspur-labs/polycrack/prng"
	"github.com/larkspur-labs/polycrack/workerpool"
)

func main() {
	app := cli.NewApp()
	app.Name = "golden"
	app.Version = "master"
	app.Usage = "a tool to ensure correctness/compatibility of cipher and scheduler encoding"

	app.Commands = []cli.Command{
		{
			Name:  "generate",
			Usage: "Generate golden test data",
			Action: func(_ *cli.Context) error {
				return generateGolden()
			},
		},
		{
			Name:  "validate",
			Usage: "Validate golden test data",
			Action: func(_ *cli.Context) error {
				return validateGolden()
			},
		},
	}

	app.Action = func(_ *cli.Context) error {
		return errors.New("command is required; use help to see list of commands")
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

// goldenVector is one (key, schedule, plaintext) -> ciphertext test case. The
// schedule is recorded as a workerpool.Descriptor fragment (base kind plus
// any rand layers) so the same scheduler-reconstruction logic the worker pool
// relies on is exercised here too.
type goldenVector struct {
	Key        []int                            `json:"key"`
	Base       workerpool.BaseDescriptor        `json:"base"`
	RandLayers []workerpool.RandLayerDescriptor `json:"rand_layers,omitempty"`
	RngX       uint64                           `json:"rng_x"`
	RngY       uint64                           `json:"rng_y"`
	Plaintext  string                           `json:"plaintext"`
	Ciphertext string                           `json:"ciphertext"`
	Comment    string                           `json:"comment"`
}

func (v goldenVector) schedule() schedulers.KeySchedule {
	d := workerpool.Descriptor{Base: v.Base, RandLayers: v.RandLayers}
	return d.Build()
}

func (v goldenVector) encryptor() *ciphers.Encryptor {
	return ciphers.NewEncryptor(v.Key, v.schedule(), prng.New(v.RngX, v.RngY))
}

//nolint:gocyclo // many small, distinct test cases enumerated for readability
func generateGolden() error {
	vectors := []goldenVector{}

	addVector := func(key []int, base workerpool.BaseDescriptor, layers []workerpool.RandLayerDescriptor, rngX, rngY uint64, plaintext, comment string) error {
		v := goldenVector{
			Key:        key,
			Base:       base,
			RandLayers: layers,
			RngX:       rngX,
			RngY:       rngY,
			Plaintext:  plaintext,
			Comment:    comment,
		}
		v.Ciphertext = v.encryptor().Encrypt(plaintext)
		vectors = append(vectors, v)
		return nil
	}

	repeatingKey := workerpool.BaseDescriptor{Kind: schedulers.BaseRepeatingKey.String()}
	lengthMod := workerpool.BaseDescriptor{Kind: schedulers.BaseLengthMod.String()}

	if err := addVector([]int{1, 2, 3}, repeatingKey, nil, 11, 12, "", "empty plaintext, repeating key"); err != nil {
		return err
	}

	if err := addVector([]int{7}, repeatingKey, nil, 13, 14, "x", "single byte plaintext, key length one"); err != nil {
		return err
	}

	if err := addVector([]int{3, -2, 5}, repeatingKey, nil, 15, 16, "hello world", "basic hello world, repeating key"); err != nil {
		return err
	}

	if err := addVector([]int{0, 0, 0}, repeatingKey, nil, 17, 18, "the quick brown fox", "all zero shifts is the identity"); err != nil {
		return err
	}

	if err := addVector([]int{26, 26, 26}, repeatingKey, nil, 19, 20, "zany zebras zigzag", "max shift value"); err != nil {
		return err
	}

	if err := addVector([]int{3, -2, 5, 9, -11}, lengthMod, nil, 21, 22, "mind the gap between platform and train", "lengthmod base scheduler"); err != nil {
		return err
	}

	aab := workerpool.BaseDescriptor{Kind: schedulers.BaseAab.String(), AabNumChars: 2, AabNumReps: 1, AabOffset: 1}
	if err := addVector([]int{4, -1, 6, 2, -9, 7}, aab, nil, 23, 24, "a stitch in time saves nine", "aab base scheduler"); err != nil {
		return err
	}

	offsetReverse := workerpool.BaseDescriptor{Kind: schedulers.BaseOffsetReverse.String(), OffsetReverseOffset: 3}
	if err := addVector([]int{5, 5, -5, -5, 12, 12}, offsetReverse, nil, 25, 26, "every cloud has a silver lining", "offsetreverse base scheduler"); err != nil {
		return err
	}

	oneLayer := []workerpool.RandLayerDescriptor{{Period: 4, Start: 1, Overwrite: false}}
	if err := addVector([]int{2, 4, 6, 8}, repeatingKey, oneLayer, 27, 28, "still waters run deep", "single periodicrand layer, insert semantics"); err != nil {
		return err
	}

	overwriteLayer := []workerpool.RandLayerDescriptor{{Period: 5, Start: 0, Overwrite: true}}
	if err := addVector([]int{1, 3, 5, 7, 9}, lengthMod, overwriteLayer, 29, 30, "actions speak louder than words", "single periodicrand layer, overwrite semantics"); err != nil {
		return err
	}

	stackedLayers := []workerpool.RandLayerDescriptor{
		{Period: 6, Start: 2, Overwrite: false},
		{Period: 11, Start: 0, Overwrite: true},
	}
	if err := addVector([]int{3, -4, 5, -6, 7, -8}, aab, stackedLayers, 31, 32, "a watched pot never boils and neither does this kettle", "two stacked periodicrand layers"); err != nil {
		return err
	}

	longPlaintext := "the quick brown fox jumps over the lazy dog while a watched pot never boils and every cloud has a silver lining yet actions speak louder than words in the end"
	if err := addVector([]int{2, -17, 9, 0, 14, -3, 26, 1}, offsetReverse, oneLayer, 33, 34, longPlaintext, "longer plaintext, offsetreverse plus one layer"); err != nil {
		return err
	}

	sort.Slice(vectors, func(i, j int) bool {
		return vectors[i].Ciphertext < vectors[j].Ciphertext
	})

	f, err := os.Create("testdata/golden-vectors.json")
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(vectors); err != nil {
		return err
	}

	return nil
}

func validateGolden() error {
	data, err := os.ReadFile("testdata/golden-vectors.json")
	if err != nil {
		return fmt.Errorf("failed to read golden vectors: %w", err)
	}

	var vectors []goldenVector
	if err := json.Unmarshal(data, &vectors); err != nil {
		return fmt.Errorf("failed to parse golden vectors: %w", err)
	}

	fmt.Printf("Validating %d golden vectors...\n", len(vectors))

	failCount := 0
	for i, v := range vectors {
		encryptor := v.encryptor()

		ciphertext := encryptor.Encrypt(v.Plaintext)
		if ciphertext != v.Ciphertext {
			fmt.Printf("FAIL [%d] %s: ciphertext mismatch (expected %q, got %q)\n", i, v.Comment, v.Ciphertext, ciphertext)
			failCount++
			continue
		}

		recovered := encryptor.Decrypt(v.Ciphertext, len(v.Plaintext))
		if recovered != v.Plaintext {
			fmt.Printf("FAIL [%d] %s: decrypt did not round-trip (expected %q, got %q)\n", i, v.Comment, v.Plaintext, recovered)
			failCount++
			continue
		}

		fmt.Printf("PASS [%d] %s\n", i, v.Comment)
	}

	if failCount > 0 {
		return fmt.Errorf("%d of %d tests failed", failCount, len(vectors))
	}

	fmt.Printf("\nAll %d tests passed!\n", len(vectors))
	return nil
}
