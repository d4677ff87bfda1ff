package parse

import (
	"errors"
	"strings"
)

// ErrInvalidPosition is returned when a position outside the buffer is accessed
var ErrInvalidPosition = errors.New("invalid position")

// Tokens is the shrinking buffer of arguments which have not been consumed yet. It owns a
// copy of the arguments it was created from; every consuming step removes the tokens it
// claims so later steps only see the residue.
//
// A Tokens value belongs to a single parse call and must not be shared.
type Tokens struct {
	args []string
}

// NewTokens creates a buffer holding a copy of args
func NewTokens(args []string) *Tokens {
	owned := make([]string, len(args))
	copy(owned, args)

	return &Tokens{args: owned}
}

// Len returns the number of unconsumed tokens
func (t *Tokens) Len() int {
	return len(t.args)
}

// Empty returns true when every token has been consumed
func (t *Tokens) Empty() bool {
	return len(t.args) == 0
}

// Args returns a copy of the unconsumed tokens
func (t *Tokens) Args() []string {
	args := make([]string, len(t.args))
	copy(args, t.args)

	return args
}

// ArgAt returns the token at pos
func (t *Tokens) ArgAt(pos int) (string, error) {
	if pos < 0 || pos >= len(t.args) {
		return "", ErrInvalidPosition
	}

	return t.args[pos], nil
}

// Front returns the first token or "" when the buffer is empty
func (t *Tokens) Front() string {
	if len(t.args) == 0 {
		return ""
	}

	return t.args[0]
}

// Shift removes and returns the first token
func (t *Tokens) Shift() (string, bool) {
	if len(t.args) == 0 {
		return "", false
	}
	arg := t.args[0]
	t.args = t.args[1:]

	return arg, true
}

// Index returns the position of the leftmost token equal to one of candidates, or -1.
// Empty candidates never match.
func (t *Tokens) Index(candidates ...string) int {
	for pos, arg := range t.args {
		for _, c := range candidates {
			if c != "" && arg == c {
				return pos
			}
		}
	}

	return -1
}

// Remove deletes n tokens starting at pos, closing the gap
func (t *Tokens) Remove(pos, n int) error {
	if n < 0 || pos < 0 || pos+n > len(t.args) {
		return ErrInvalidPosition
	}
	t.args = append(t.args[:pos], t.args[pos+n:]...)

	return nil
}

// String returns the unconsumed tokens joined by a space
func (t *Tokens) String() string {
	return strings.Join(t.args, " ")
}
