// Package report renders collision results for the terminal.
package report

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/asteroid-belt/hashcollide/internal/collide"
	"github.com/asteroid-belt/hashcollide/internal/enumerate"
	"github.com/asteroid-belt/hashcollide/internal/hash"
	"github.com/charmbracelet/lipgloss"
)

// Header is the first line of every report.
const Header = "Collision found!"

// Render writes the header and the proof line. Both digests are recomputed from
// the reported strings so the output stands on its own.
func Render(w io.Writer, r *collide.Result) error {
	line, err := Line(r)
	if err != nil {
		return err
	}
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)

	_, err = fmt.Fprintf(w, "%s\n%s\n", headerStyle.Render(Header), line)
	return err
}

// Line returns the unstyled proof line for r.
func Line(r *collide.Result) (string, error) {
	targetBytes := []byte(r.Target)
	collisionBytes := []byte(r.Collision)

	targetDigest, err := hash.TruncatedBytes(targetBytes, r.HashLength)
	if err != nil {
		return "", fmt.Errorf("hash target: %w", err)
	}
	collisionDigest, err := hash.TruncatedBytes(collisionBytes, r.HashLength)
	if err != nil {
		return "", fmt.Errorf("hash collision: %w", err)
	}

	return fmt.Sprintf("%s (bytes: %s) hashes to %s, but %s (bytes: %s) also hashes to %s",
		r.Target, hex.EncodeToString(targetBytes), targetDigest,
		r.Collision, hex.EncodeToString(collisionBytes), collisionDigest,
	), nil
}

// Details writes the search statistics behind r.
func Details(w io.Writer, r *collide.Result) error {
	rows := []struct {
		label string
		value string
	}{
		{"target offset", r.TargetOffset.String()},
		{"collision offset", r.CollisionOffset.String()},
		{"attempts", fmt.Sprintf("%d", r.Attempts)},
		{"digest length", fmt.Sprintf("%d hex chars (%d bits)", r.HashLength, r.HashLength*4)},
		{"elapsed", r.Elapsed.String()},
	}
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B6B6B"))

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-17s", row.label+":")), row.value); err != nil {
			return err
		}
	}
	return nil
}

// Rank returns s's position in the enumeration with its base-62 breakdown,
// e.g. `"4Q" rank 300 = 4*62^1 + 52*62^0`.
func Rank(s string) (string, error) {
	idx, err := enumerate.IndexOf(s)
	if err != nil {
		return "", err
	}
	digits, err := enumerate.Digits(s)
	if err != nil {
		return "", err
	}
	if len(digits) == 0 {
		return fmt.Sprintf("%q rank %s", s, idx), nil
	}

	terms := make([]string, len(digits))
	for i, d := range digits {
		terms[i] = fmt.Sprintf("%d*%d^%d", d, enumerate.Base, len(digits)-1-i)
	}
	return fmt.Sprintf("%q rank %s = %s", s, idx, strings.Join(terms, " + ")), nil
}

// Explain writes the rank of the target and the collision.
func Explain(w io.Writer, r *collide.Result) error {
	for _, s := range []string{r.Target, r.Collision} {
		line, err := Rank(s)
		if err != nil {
			return fmt.Errorf("rank %q: %w", s, err)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
