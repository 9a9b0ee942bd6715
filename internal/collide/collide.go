// Package collide searches for two distinct candidates with equal truncated digests.
package collide

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/asteroid-belt/hashcollide/internal/enumerate"
	"github.com/asteroid-belt/hashcollide/internal/hash"
	"golang.org/x/time/rate"
)

// checkEvery is how many candidates are compared between context checks.
const checkEvery = 4096

// DefaultProgressInterval is used when Options.Progress is set without an interval.
const DefaultProgressInterval = 2 * time.Second

// ErrNilOffset is returned when Options.StartOffset is missing.
var ErrNilOffset = errors.New("start offset is required")

// Progress is a snapshot of a running search.
type Progress struct {
	Target   string
	Current  string
	Attempts uint64
	Elapsed  time.Duration
}

// Rate returns candidates compared per second.
func (p Progress) Rate() float64 {
	if p.Elapsed <= 0 {
		return 0
	}
	return float64(p.Attempts) / p.Elapsed.Seconds()
}

// ProgressFunc receives periodic progress snapshots.
type ProgressFunc func(Progress)

// Options configures a search.
type Options struct {
	// StartOffset is the tuple index of the target.
	StartOffset *big.Int
	// HashLength is the number of hex characters compared.
	HashLength int

	// Progress, when set, is called at most once per ProgressInterval.
	Progress         ProgressFunc
	ProgressInterval time.Duration
}

// Result describes a found collision.
type Result struct {
	Target    string
	Collision string
	// Digest is the truncated digest shared by Target and Collision.
	Digest     string
	HashLength int

	TargetOffset    *big.Int
	CollisionOffset *big.Int
	// Attempts counts candidates compared against the target.
	Attempts uint64
	Elapsed  time.Duration
}

// Search walks the enumeration from opts.StartOffset and returns the first
// candidate after the target whose truncated digest matches the target's.
// It runs until a match is found, ctx is cancelled, or an error occurs.
func Search(ctx context.Context, opts Options) (*Result, error) {
	if opts.StartOffset == nil {
		return nil, ErrNilOffset
	}
	if err := hash.ValidateLength(opts.HashLength); err != nil {
		return nil, err
	}

	start := time.Now()

	e := enumerate.New()
	if err := e.AdvanceTo(opts.StartOffset); err != nil {
		return nil, fmt.Errorf("advance to offset: %w", err)
	}

	tup, err := e.Next()
	if err != nil {
		return nil, fmt.Errorf("read target: %w", err)
	}
	target := enumerate.Canonical(tup)
	targetDigest, err := hash.Truncated(target, opts.HashLength)
	if err != nil {
		return nil, fmt.Errorf("hash target: %w", err)
	}

	var progress *rate.Sometimes
	if opts.Progress != nil {
		interval := opts.ProgressInterval
		if interval <= 0 {
			interval = DefaultProgressInterval
		}
		progress = &rate.Sometimes{Interval: interval}
	}

	var attempts uint64
	for {
		tup, err := e.Next()
		if err != nil {
			return nil, fmt.Errorf("after %d attempts: %w", attempts, err)
		}
		candidate := enumerate.Canonical(tup)
		attempts++

		if attempts%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("search stopped after %d attempts: %w", attempts, err)
			}
			if progress != nil {
				progress.Do(func() {
					opts.Progress(Progress{
						Target:   target,
						Current:  candidate,
						Attempts: attempts,
						Elapsed:  time.Since(start),
					})
				})
			}
		}

		// Equal strings are not a collision.
		if candidate == target {
			continue
		}

		digest, err := hash.Truncated(candidate, opts.HashLength)
		if err != nil {
			return nil, fmt.Errorf("hash candidate: %w", err)
		}
		if digest != targetDigest {
			continue
		}

		collisionOffset := e.Position()
		collisionOffset.Sub(collisionOffset, big.NewInt(1))

		return &Result{
			Target:          target,
			Collision:       candidate,
			Digest:          digest,
			HashLength:      opts.HashLength,
			TargetOffset:    new(big.Int).Set(opts.StartOffset),
			CollisionOffset: collisionOffset,
			Attempts:        attempts,
			Elapsed:         time.Since(start),
		}, nil
	}
}
