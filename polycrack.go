package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/urfave/cli"
	"golang.org/x/term"

	"github.com/larkspur-labs/polycrack/dict"
	"github.com/larkspur-labs/polycrack/driver"
	"github.com/larkspur-labs/polycrack/freq"
	"github.com/larkspur-labs/polycrack/prng"
	"github.com/larkspur-labs/polycrack/workerpool"
)

// crackCiphertext reads one ciphertext line from stdin, strips surrounding
// whitespace, and returns the recovered plaintext. A terminal
// stdin gets a short interactive prompt on stderr first; piped/redirected
// input does not.
func crackCiphertext(stdin *os.File, dictPath, candidatesPath string) (string, error) {
	dictBlob, err := os.ReadFile(dictPath)
	if err != nil {
		return "", fmt.Errorf("failed to read dictionary from %s: %s", dictPath, err)
	}

	d := dict.New(string(dictBlob))
	bd := dict.FromDictionary(d)
	baseline := freq.FromDictionary(d.Words)

	var candidates []driver.Candidate
	if candidatesPath != "" {
		candidatesBlob, err := os.ReadFile(candidatesPath)
		if err != nil {
			return "", fmt.Errorf("failed to read known candidates from %s: %s", candidatesPath, err)
		}
		candidates = driver.LoadCandidates(string(candidatesBlob))
	}

	if term.IsTerminal(int(stdin.Fd())) {
		fmt.Fprint(os.Stderr, "ciphertext (polycrack): ")
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read ciphertext: %s", err)
	}
	ciphertext := strings.TrimSpace(line)

	return driver.Crack(ciphertext, bd, baseline, candidates), nil
}

func runCrack(c *cli.Context) error {
	plaintext, err := crackCiphertext(os.Stdin, c.String("dict"), c.String("candidates"))
	if err != nil {
		return err
	}

	fmt.Println(plaintext)
	return nil
}

func runBench(c *cli.Context) error {
	dictBlob, err := os.ReadFile(c.String("dict"))
	if err != nil {
		return fmt.Errorf("failed to read dictionary from %s: %s", c.String("dict"), err)
	}
	d := dict.New(string(dictBlob))
	bd := dict.FromDictionary(d)
	baseline := freq.FromDictionary(d.Words)

	var candidates []driver.Candidate
	if path := c.String("candidates"); path != "" {
		blob, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read known candidates from %s: %s", path, err)
		}
		candidates = driver.LoadCandidates(string(blob))
	}

	seed := prng.Default()
	if s := c.String("seed"); s != "" {
		parts := strings.SplitN(s, ":", 2)
		if len(parts) != 2 {
			return errors.New("seed must be formatted as X:Y (two non-zero uint64 values)")
		}
		x, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed X: %s", err)
		}
		y, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed Y: %s", err)
		}
		seed = prng.New(x, y)
	}

	pool := &workerpool.Pool{
		Dict:       d,
		ByteDict:   bd,
		Baseline:   baseline,
		Candidates: candidates,
		Attempts:   c.Int("attempts"),
		Workers:    c.Int("workers"),
		Seed:       seed,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats := pool.Run(ctx)
	fmt.Print(stats.String())
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "polycrack"
	app.Version = "master"
	app.Usage = "a cryptanalysis pipeline for shift-based polyalphabetic ciphers"

	app.Commands = []cli.Command{
		{
			Name:  "crack",
			Usage: "read one ciphertext line from standard input and write the recovered plaintext",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:     "dict",
					Usage:    "path to the dictionary word list",
					Required: true,
				},
				cli.StringFlag{
					Name:  "candidates",
					Usage: "path to a known-candidate plaintext file (Scenario A), one plaintext per line",
				},
			},
			Action: runCrack,
		},
		{
			Name:  "bench",
			Usage: "drive the worker pool against randomly-generated cipher configurations",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:     "dict",
					Usage:    "path to the dictionary word list",
					Required: true,
				},
				cli.StringFlag{
					Name:  "candidates",
					Usage: "path to a known-candidate plaintext file (Scenario A), one plaintext per line",
				},
				cli.IntFlag{
					Name:  "attempts",
					Usage: "number of attempts to run before stopping (0 runs until interrupted)",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of worker goroutines (0 derives it from available hardware parallelism)",
				},
				cli.StringFlag{
					Name:  "seed",
					Usage: "deterministic RNG seed formatted as X:Y (two non-zero uint64 values)",
				},
			},
			Action: runBench,
		},
	}

	app.Action = func(c *cli.Context) error {
		return errors.New("command is required; use help to see list of commands")
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
