package main

import (
	"bufio"
	"context"
	"math/bits"
	"os"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	"github.com/klauspost/pgzip"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	bloomCapacity = 10_000_000
	bloomFPR      = 0.001
	progressEvery = 1_000_000
	minCodeLen    = 4
	maxCodeLen    = 32
)

// collect returns the normalised codes present in at least minFiles of the
// inputs, sorted. The first pass builds a bloom filter per file; the second
// re-reads every file and marks which other files may hold each code. Bloom
// false positives can only admit a code, never drop one, so with minFiles
// above one the result is exact only up to the filter error rate.
func collect(ctx context.Context, lg *zap.Logger, paths []string, minFiles int) ([]string, error) {
	filters := make([]*bloom.BloomFilter, len(paths))
	if minFiles > 1 {
		g, gctx := errgroup.WithContext(ctx)
		for i, p := range paths {
			g.Go(func() error {
				f := bloom.NewWithEstimates(bloomCapacity, bloomFPR)
				n, err := scan(gctx, p, func(code string) { f.AddString(code) })
				if err != nil {
					return errors.Wrapf(err, "index %s", p)
				}
				lg.Info("Indexed file", zap.String("path", p), zap.Uint64("codes", n))
				filters[i] = f
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	masks := make([]map[string]uint, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			m := make(map[string]uint)
			own := uint(1) << uint(i)
			n, err := scan(gctx, p, func(code string) {
				mask := own
				for j, f := range filters {
					if j != i && f != nil && f.TestString(code) {
						mask |= 1 << uint(j)
					}
				}
				if bits.OnesCount(mask) >= minFiles {
					m[code] |= mask
				}
			})
			if err != nil {
				return errors.Wrapf(err, "scan %s", p)
			}
			lg.Info("Scanned file", zap.String("path", p), zap.Uint64("codes", n), zap.Int("selected", len(m)))
			masks[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, m := range masks {
		for code := range m {
			seen[code] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for code := range seen {
		out = append(out, code)
	}
	sort.Strings(out)
	return out, nil
}

// scan streams a gzip file and calls fn for each well-formed code, upper
// cased. It returns the number of codes passed to fn.
func scan(ctx context.Context, path string, fn func(code string)) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	gz, err := pgzip.NewReader(f)
	if err != nil {
		return 0, errors.Wrap(err, "gzip reader")
	}
	defer func() { _ = gz.Close() }()

	var n uint64
	s := bufio.NewScanner(gz)
	for s.Scan() {
		if n%progressEvery == 0 {
			if err := ctx.Err(); err != nil {
				return n, err
			}
		}
		code := strings.ToUpper(strings.TrimSpace(s.Text()))
		if len(code) < minCodeLen || len(code) > maxCodeLen || !alnum(code) {
			continue
		}
		fn(code)
		n++
	}
	return n, s.Err()
}

func alnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
