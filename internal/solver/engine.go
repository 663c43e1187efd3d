// apps/go-solver/internal/solver/engine.go
//
// Pattern evaluation engine.
// Responsibilities:
//   - Construct Solver instances with their own pattern cache and RNG.
//   - Validate and normalize words (length, alphabetic a-z, lowercase).
//   - Score a guess against an answer using the classic two-pass Wordle
//     algorithm, honoring duplicate-letter semantics.
//   - Memoize (guess, answer) → Pattern. The cache is a pure optimization:
//     removing it changes nothing but speed.
//
// Notes:
//   - Each Solver owns its cache; independent sessions never share state.
//   - The cache mutex makes concurrent scoring safe. A duplicate insert
//     recomputes the same deterministic value, so last write wins.
package solver

import (
	"strings"
	"sync"

	"lukechampine.com/frand"
)

const (
	// defaultPoolCap bounds the candidate pool scored per round. Above this
	// the pool is sampled rather than exhaustive.
	defaultPoolCap = 100

	// defaultTopK is how many ranked suggestions a round returns.
	defaultTopK = 5
)

type patternKey struct {
	guess  string
	answer string
}

// ProgressFunc is called once per Rank invocation with the candidate pool
// size, and returns a tick function invoked after each candidate is scored.
// Tick functions may be called from multiple goroutines.
type ProgressFunc func(total int) func()

// Solver evaluates feedback patterns and ranks candidate guesses by
// expected information gain. The zero value is not usable; construct with
// New.
type Solver struct {
	mu    sync.RWMutex
	cache map[patternKey]Pattern

	rng      *frand.RNG
	poolCap  int
	topK     int
	workers  int
	progress ProgressFunc
}

// Option configures a Solver.
type Option func(*Solver)

// WithRand injects the random source used for candidate sampling.
// Tests pass a frand.NewCustom RNG with a fixed seed for reproducible
// ranking; the default is a frand.New system-seeded generator.
func WithRand(rng *frand.RNG) Option {
	return func(s *Solver) { s.rng = rng }
}

// WithWorkers sets the number of goroutines used to score the candidate
// pool. Values below 1 fall back to serial scoring.
func WithWorkers(n int) Option {
	return func(s *Solver) { s.workers = n }
}

// WithProgress installs a progress hook for Rank; used by the CLI to drive
// a progress bar over large pools. The engine itself renders nothing.
func WithProgress(p ProgressFunc) Option {
	return func(s *Solver) { s.progress = p }
}

// New constructs a Solver with an empty pattern cache.
func New(opts ...Option) *Solver {
	s := &Solver{
		cache:   make(map[patternKey]Pattern),
		rng:     frand.New(),
		poolCap: defaultPoolCap,
		topK:    defaultTopK,
		workers: 4,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Normalize lowercases and validates a word. All engine entry points accept
// mixed-case input and compare lowercase.
func Normalize(w string) (string, error) {
	w = strings.ToLower(strings.TrimSpace(w))
	if len(w) != WordLen {
		return "", ErrInvalidWordLength
	}
	if !isAlpha(w) {
		return "", ErrInvalidAlphabet
	}
	return w, nil
}

// Evaluate computes the feedback pattern a player would see for guess
// against answer.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (non-correct) answer letters by letter index.
//
// Pass 2:
//   - For each non-correct guess letter: if there is remaining count for
//     that letter, mark present and decrement; otherwise leave absent.
//
// The two-pass order caps "present" marks at the true remaining-letter
// count, so guessing a doubled letter against an answer containing it once
// yields exactly one non-absent mark for that letter.
func (s *Solver) Evaluate(guess, answer string) (Pattern, error) {
	var p Pattern
	guess, err := Normalize(guess)
	if err != nil {
		return p, err
	}
	answer, err = Normalize(answer)
	if err != nil {
		return p, err
	}

	key := patternKey{guess, answer}
	s.mu.RLock()
	p, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return p, nil
	}

	p = scorePattern(guess, answer)

	s.mu.Lock()
	s.cache[key] = p
	s.mu.Unlock()
	return p, nil
}

// scorePattern implements the two-pass scoring algorithm on pre-normalized
// words. Marks default to absent.
func scorePattern(guess, answer string) Pattern {
	var p Pattern

	// Letter frequency for the non-correct answer positions (a-z).
	var counts [26]int

	// First pass: mark correct positions and collect counts for the
	// remaining answer letters.
	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			p[i] = MarkCorrect
		} else {
			counts[idx(answer[i])]++
		}
	}

	// Second pass: resolve present/absent for non-correct positions,
	// left to right.
	for i := 0; i < WordLen; i++ {
		if p[i] == MarkCorrect {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			p[i] = MarkPresent
			counts[j]--
		}
	}
	return p
}

// CacheSize reports the number of memoized (guess, answer) pairs.
func (s *Solver) CacheSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

// idx maps a lowercase ASCII letter byte to 0..25.
// Assumes inputs are validated to a-z by Normalize.
func idx(b byte) int { return int(b - 'a') }

// isAlpha checks that a string consists only of lowercase a-z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
