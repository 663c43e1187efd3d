// apps/go-solver/internal/solver/types.go
//
// Core type definitions for the solver engine.
// Defines:
//   - Mark: per-letter feedback for a guess (absent/present/correct).
//   - Pattern: the five-mark feedback for one guess against one answer.
//   - Suggestion: a candidate guess paired with its entropy score.
//   - Sentinel errors for input validation.

package solver

import "errors"

// WordLen is the fixed word length of the game.
const WordLen = 5

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - MarkAbsent:  letter does not occur in the (remaining) answer letters.
//   - MarkPresent: letter occurs in the answer but at a different position.
//   - MarkCorrect: letter is correct and in the correct position.
//
// The numeric values match the textual feedback encoding ("0"/"1"/"2").
type Mark uint8

const (
	MarkAbsent  Mark = 0
	MarkPresent Mark = 1
	MarkCorrect Mark = 2
)

// Pattern holds the per-position feedback for one guess scored against one
// answer. It is a comparable value, so it can key maps directly.
type Pattern [WordLen]Mark

// NumPatterns is the number of distinct patterns: three marks per position.
const NumPatterns = 243 // 3^WordLen

// Ordinal encodes the pattern as a base-3 number in [0, NumPatterns).
// Histograms index fixed-size arrays with it so they can be walked in a
// stable order.
func (p Pattern) Ordinal() int {
	n := 0
	for _, m := range p {
		n = n*3 + int(m)
	}
	return n
}

// Solved reports whether every position is correct (the terminal pattern).
func (p Pattern) Solved() bool {
	for _, m := range p {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

// String renders the pattern in the "0"/"1"/"2" digit encoding, one digit
// per position (e.g. "00102").
func (p Pattern) String() string {
	var b [WordLen]byte
	for i, m := range p {
		b[i] = '0' + byte(m)
	}
	return string(b[:])
}

// ParsePattern converts the five-digit textual encoding into a Pattern.
// Mapping: '0' → absent, '1' → present, '2' → correct.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	if len(s) != WordLen {
		return p, ErrInvalidPattern
	}
	for i := 0; i < WordLen; i++ {
		c := s[i]
		if c < '0' || c > '2' {
			return p, ErrInvalidPattern
		}
		p[i] = Mark(c - '0')
	}
	return p, nil
}

// Suggestion is one ranked candidate guess: the word and its expected
// information gain in bits against the possible-answer set it was scored on.
type Suggestion struct {
	Word    string  `json:"word"`
	Entropy float64 `json:"entropy"`
}

var (
	// ErrInvalidWordLength is returned when a guess or answer is not exactly
	// WordLen letters.
	ErrInvalidWordLength = errors.New("solver: word must be exactly 5 letters")

	// ErrInvalidAlphabet is returned when a word contains characters outside
	// a-z after lowercasing.
	ErrInvalidAlphabet = errors.New("solver: word must contain only letters a-z")

	// ErrInvalidPattern is returned for feedback strings that are not five
	// digits in 0..2.
	ErrInvalidPattern = errors.New("solver: pattern must be five digits 0-2")

	// ErrEmptyCandidateSet is returned when ranking is requested against an
	// empty possible-answer set.
	ErrEmptyCandidateSet = errors.New("solver: no possible answers remain")
)
