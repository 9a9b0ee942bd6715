// Package enumerate produces candidate strings in a fixed, resumable order.
//
// Candidates are width-100 tuples of alphabet indices counted in base 62, most
// significant position first. A tuple's string form drops leading zero digits,
// so tuple 300 is "4Q" rather than 98 zeros followed by "4Q".
package enumerate

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Alphabet is the ordered digit set. Index 0 is the zero digit.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Base is the number of digits in Alphabet.
const Base = len(Alphabet)

// Width is the fixed number of positions in every tuple.
const Width = 100

var (
	// ErrExhausted is returned by Next after the last tuple has been produced.
	ErrExhausted = errors.New("enumeration exhausted")
	// ErrNegativeOffset is returned when seeking to an offset below zero.
	ErrNegativeOffset = errors.New("offset must not be negative")
	// ErrOffsetOutOfRange is returned when an offset has no tuple (>= Base^Width).
	ErrOffsetOutOfRange = errors.New("offset out of range")
	// ErrInvalidCharacter is returned when a string contains a non-alphabet byte.
	ErrInvalidCharacter = errors.New("character not in alphabet")
)

var (
	one     = big.NewInt(1)
	bigBase = big.NewInt(int64(Base))

	// space is Base^Width, the number of distinct tuples.
	space = new(big.Int).Exp(bigBase, big.NewInt(Width), nil)
)

// charIndex maps an alphabet byte to its digit value, -1 for anything else.
var charIndex = func() [256]int {
	var m [256]int
	for i := range m {
		m[i] = -1
	}
	for i := 0; i < Base; i++ {
		m[Alphabet[i]] = i
	}
	return m
}()

// Tuple holds one alphabet index per position.
type Tuple [Width]uint8

// Size returns the number of tuples in the enumeration.
func Size() *big.Int {
	return new(big.Int).Set(space)
}

// Enumerator is a cursor over the tuple sequence. The zero value is not usable;
// call New.
type Enumerator struct {
	digits Tuple
	pos    *big.Int
	done   bool
}

// New returns an enumerator positioned at the first tuple (all zeros).
func New() *Enumerator {
	return &Enumerator{pos: new(big.Int)}
}

// AdvanceTo positions the cursor so the next call to Next returns tuple number
// offset. Skipped tuples are never turned into strings.
func (e *Enumerator) AdvanceTo(offset *big.Int) error {
	t, err := TupleAt(offset)
	if err != nil {
		return err
	}
	e.digits = t
	e.pos = new(big.Int).Set(offset)
	e.done = false
	return nil
}

// Position returns the index of the tuple the next call to Next will return.
func (e *Enumerator) Position() *big.Int {
	return new(big.Int).Set(e.pos)
}

// Next returns the tuple at the cursor and moves the cursor forward by one.
func (e *Enumerator) Next() (Tuple, error) {
	if e.done {
		return Tuple{}, ErrExhausted
	}
	out := e.digits
	e.pos.Add(e.pos, one)
	if !e.tick() {
		e.done = true
	}
	return out, nil
}

// tick increments the odometer, last position fastest. It reports false on
// wrap-around past the final tuple.
func (e *Enumerator) tick() bool {
	for i := Width - 1; i >= 0; i-- {
		if int(e.digits[i]) < Base-1 {
			e.digits[i]++
			return true
		}
		e.digits[i] = 0
	}
	return false
}

// TupleAt converts a tuple index into its digits by repeated division.
func TupleAt(index *big.Int) (Tuple, error) {
	var t Tuple
	if index == nil || index.Sign() < 0 {
		return t, ErrNegativeOffset
	}
	if index.Cmp(space) >= 0 {
		return t, fmt.Errorf("%w: %s is not below %d^%d", ErrOffsetOutOfRange, index.String(), Base, Width)
	}

	n := new(big.Int).Set(index)
	rem := new(big.Int)
	for i := Width - 1; i >= 0 && n.Sign() > 0; i-- {
		n.QuoRem(n, bigBase, rem)
		t[i] = uint8(rem.Int64())
	}
	return t, nil
}

// Canonical returns the string form of t with leading zero digits removed.
// The all-zero tuple yields the empty string.
func Canonical(t Tuple) string {
	start := 0
	for start < Width && t[start] == 0 {
		start++
	}
	b := make([]byte, Width-start)
	for i := start; i < Width; i++ {
		b[i-start] = Alphabet[t[i]]
	}
	return string(b)
}

// Strip removes leading zero digits from s.
func Strip(s string) string {
	return strings.TrimLeft(s, Alphabet[:1])
}

// Digits returns the digit value of each character of s after leading zero
// digits are removed, most significant first.
func Digits(s string) ([]int, error) {
	s = Strip(s)
	if len(s) > Width {
		return nil, fmt.Errorf("%w: %d digits exceed width %d", ErrOffsetOutOfRange, len(s), Width)
	}
	digits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		d := charIndex[s[i]]
		if d < 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, s[i], i)
		}
		digits[i] = d
	}
	return digits, nil
}

// IndexOf returns the tuple index whose canonical form is s. Leading zero digits
// in s are ignored.
func IndexOf(s string) (*big.Int, error) {
	digits, err := Digits(s)
	if err != nil {
		return nil, err
	}
	n := new(big.Int)
	for _, d := range digits {
		n.Mul(n, bigBase)
		n.Add(n, big.NewInt(int64(d)))
	}
	return n, nil
}
