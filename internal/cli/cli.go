// Package cli provides the command-line interface for hashcollide.
package cli

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/asteroid-belt/hashcollide/internal/collide"
	"github.com/asteroid-belt/hashcollide/internal/config"
	"github.com/asteroid-belt/hashcollide/internal/hash"
	"github.com/asteroid-belt/hashcollide/internal/log"
	"github.com/asteroid-belt/hashcollide/internal/report"
	"github.com/asteroid-belt/hashcollide/pkg/version"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/fang"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ErrInvalidArgument is returned for unparseable or out-of-range arguments.
var ErrInvalidArgument = errors.New("invalid argument")

const usageText = `Please pass an integer as the argument to this program.

This number will be used as the starting offset on the string
search function. It is recommended not to use something like
"0", since this will end up searching for collisions on the
empty string ("").

e.g.:
    $ hashcollide 300

This will search for collisions on the string "4Q", the 301st
iteration of our cartesian product search algorithm on a
subset of the ASCII alphabet.
`

type rootOptions struct {
	progress bool
	verbose  bool
	explain  bool
	copy     bool
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "hashcollide [start_offset] [hash_length]",
		Short: "Find collisions in a truncated SHA-1",
		Long: `Find collisions in a truncated SHA-1

Candidate strings over 0-9, a-z and A-Z are enumerated in a fixed order.
The candidate at start_offset becomes the target, and the search reports the
first later candidate whose SHA-1 shares the target's first hash_length hex
characters (default 12).

Short digests collide quickly: hash_length 4 takes about 65k attempts,
hash_length 12 about 2.8e14.`,
		Args:         validateArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, cfg, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.progress, "progress", false, "Print periodic progress to stderr")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print offsets, attempts and elapsed time after the report")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "Print each reported string's enumeration rank and base-62 digits")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the colliding pair to the clipboard")

	return cmd
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return fang.Execute(
		ctx,
		newRootCmd(cfg),
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("%w: expected at most 2 arguments, got %d", ErrInvalidArgument, len(args))
	}
	return nil
}

// parseOffset parses a base-10 non-negative integer of any size.
func parseOffset(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: start_offset %q is not an integer", ErrInvalidArgument, s)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%w: start_offset %s is negative", ErrInvalidArgument, s)
	}
	return n, nil
}

// parseHashLength parses the optional digest length argument.
func parseHashLength(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: hash_length %q is not an integer", ErrInvalidArgument, s)
	}
	if err := hash.ValidateLength(n); err != nil {
		return 0, fmt.Errorf("%w: hash_length: %v", ErrInvalidArgument, err)
	}
	return n, nil
}

func runSearch(cmd *cobra.Command, args []string, cfg *config.Config, opts *rootOptions) error {
	if len(args) == 0 {
		_, err := fmt.Fprint(cmd.OutOrStdout(), usageText)
		return err
	}

	offset, err := parseOffset(args[0])
	if err != nil {
		return err
	}
	length := cfg.HashLength
	if len(args) > 1 {
		if length, err = parseHashLength(args[1]); err != nil {
			return err
		}
	}

	log.SetRunID(uuid.New().String())
	log.Infof("search started offset=%s hash_length=%d width=%d", offset, length, cfg.Width)

	searchOpts := collide.Options{
		StartOffset: offset,
		HashLength:  length,
	}
	if opts.progress {
		searchOpts.Progress = progressPrinter(cmd.ErrOrStderr(), length)
		searchOpts.ProgressInterval = cfg.ProgressInterval
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := collide.Search(ctx, searchOpts)
	if err != nil {
		log.Errorf("search ended without a collision: %v", err)
		return fmt.Errorf("search: %w", err)
	}
	log.Infof("collision found target=%q collision=%q digest=%s attempts=%d elapsed=%s",
		res.Target, res.Collision, res.Digest, res.Attempts, res.Elapsed)

	if err := report.Render(cmd.OutOrStdout(), res); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if opts.verbose {
		if err := report.Details(cmd.OutOrStdout(), res); err != nil {
			return fmt.Errorf("render details: %w", err)
		}
	}

	if opts.explain {
		if err := report.Explain(cmd.OutOrStdout(), res); err != nil {
			return fmt.Errorf("render explanation: %w", err)
		}
	}

	if opts.copy {
		if err := clipboard.WriteAll(res.Target + " " + res.Collision); err != nil {
			log.Warnf("copy to clipboard: %v", err)
		}
	}

	return nil
}
