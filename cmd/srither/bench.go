package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dcbrotsky/srither/internal/cache"
	"github.com/dcbrotsky/srither/internal/ioformat"
	"github.com/dcbrotsky/srither/puzzle"
)

// runBench implements "srither bench": solve every file, time it,
// and report the slowest ones. --cache memoizes (digest -> elapsed,
// unique) in Redis, so reruns of an unchanged corpus skip the search
// entirely; it's strictly an optimization and every cache error just
// falls back to solving normally.
func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	useCache := fs.Bool("cache", false, "memoize results in Redis ($REDIS_URL, defaults to localhost)")
	hardest := fs.Int("only-hardest", 10, "how many of the slowest puzzles to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		return fmt.Errorf("bench: no input files given")
	}

	var c *cache.Cache
	if *useCache {
		var err error
		c, err = cache.Connect()
		if err != nil {
			log.WithError(err).Warn("bench: cache unavailable, solving everything fresh")
			c = nil
		} else {
			defer c.Close()
		}
	}

	type result struct {
		file    string
		elapsed time.Duration
		unique  bool
	}
	var results []result

	for _, name := range files {
		r, err := benchFile(name, c)
		if err != nil {
			log.WithField("file", name).WithError(err).Error("bench failed")
			continue
		}
		results = append(results, result{name, r.Elapsed, r.Unique})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].elapsed > results[j].elapsed })

	n := *hardest
	if n > len(results) {
		n = len(results)
	}
	fmt.Printf("slowest %d of %d:\n", n, len(results))
	for _, r := range results[:n] {
		fmt.Printf("  %-40s %10v  unique=%v\n", r.file, r.elapsed, r.unique)
	}
	return nil
}

func benchFile(name string, c *cache.Cache) (cache.Entry, error) {
	f, err := os.Open(name)
	if err != nil {
		return cache.Entry{}, err
	}
	defer f.Close()

	rows, cols, clues, err := ioformat.ParsePuzzle(f)
	if err != nil {
		return cache.Entry{}, err
	}
	pz, err := puzzle.NewPuzzle(rows, cols, clues)
	if err != nil {
		return cache.Entry{}, err
	}

	digest := pz.Digest()
	if c != nil {
		if entry, ok, err := c.Get(digest); err == nil && ok {
			return entry, nil
		}
	}

	start := time.Now()
	result := pz.Solve()
	entry := cache.Entry{Elapsed: time.Since(start), Unique: result.Outcome == puzzle.Unique}

	if c != nil {
		if err := c.Put(digest, entry); err != nil {
			log.WithField("file", name).WithError(err).Warn("bench: couldn't write cache entry")
		}
	}
	return entry, nil
}
