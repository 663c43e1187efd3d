// apps/go-solver/internal/solver/entropy.go
//
// Entropy scoring and guess ranking.
// Responsibilities:
//   - Entropy: expected information gain (bits) of a guess against the
//     current possible-answer set.
//   - Rank: build a bounded candidate pool, score it in parallel, return
//     the top suggestions sorted by entropy descending.
//   - Openers: the fixed precomputed first-round suggestion table.
//
// Pool construction: exhaustive when the possible-answer set is small,
// otherwise half sampled from the possible answers and half from the full
// vocabulary. Mixing in full-vocabulary words admits probe guesses that
// cannot themselves be the answer but split the remaining set well.
package solver

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Entropy computes the Shannon entropy, in bits, of the feedback-pattern
// distribution guess induces over possible. This equals the expected
// information gained by playing guess when the true answer is uniform over
// possible. Sets of size zero or one carry no partitioning power and score
// zero.
func (s *Solver) Entropy(guess string, possible []string) (float64, error) {
	if len(possible) <= 1 {
		return 0, nil
	}

	// Histogram over the 3^5 = 243 distinct patterns. A fixed-size array
	// walked in index order keeps the floating-point summation order
	// stable, so the same inputs always produce the same bits; map
	// iteration would not.
	var buckets [NumPatterns]int
	for _, answer := range possible {
		p, err := s.Evaluate(guess, answer)
		if err != nil {
			return 0, err
		}
		buckets[p.Ordinal()]++
	}

	total := float64(len(possible))
	entropy := 0.0
	for _, count := range buckets {
		if count == 0 {
			continue
		}
		prob := float64(count) / total
		entropy -= prob * math.Log2(prob)
	}
	return entropy, nil
}

// Rank scores a candidate pool drawn from possible (and, when sampling,
// vocab) and returns the top suggestions by entropy descending. Ties keep
// pool order, so ranking is deterministic for a fixed pool.
func (s *Solver) Rank(possible, vocab []string) ([]Suggestion, error) {
	if len(possible) == 0 {
		return nil, ErrEmptyCandidateSet
	}

	pool := s.candidatePool(possible, vocab)

	var tick func()
	if s.progress != nil {
		tick = s.progress(len(pool))
	}

	scores := make([]float64, len(pool))
	if s.workers > 1 {
		g := errgroup.Group{}
		g.SetLimit(s.workers)
		for i, w := range pool {
			i, w := i, w
			g.Go(func() error {
				e, err := s.Entropy(w, possible)
				if err != nil {
					return err
				}
				scores[i] = e
				if tick != nil {
					tick()
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, w := range pool {
			e, err := s.Entropy(w, possible)
			if err != nil {
				return nil, err
			}
			scores[i] = e
			if tick != nil {
				tick()
			}
		}
	}

	out := make([]Suggestion, len(pool))
	for i, w := range pool {
		out[i] = Suggestion{Word: w, Entropy: scores[i]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Entropy > out[j].Entropy
	})
	if len(out) > s.topK {
		out = out[:s.topK]
	}
	return out, nil
}

// candidatePool selects which words get scored this round. Small
// possible-answer sets are scored exhaustively; larger ones are sampled:
// poolCap/2 words without replacement from possible plus poolCap/2 from the
// full vocabulary, deduplicated keeping first-seen order (the realized pool
// may therefore be smaller than poolCap).
func (s *Solver) candidatePool(possible, vocab []string) []string {
	if len(possible) <= s.poolCap {
		pool := make([]string, len(possible))
		copy(pool, possible)
		return pool
	}

	half := s.poolCap / 2
	pool := make([]string, 0, s.poolCap)
	seen := make(map[string]struct{}, s.poolCap)
	for _, src := range [][]string{
		s.sample(possible, half),
		s.sample(vocab, half),
	} {
		for _, w := range src {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			pool = append(pool, w)
		}
	}
	return pool
}

// sample draws n distinct elements from src without replacement. Returns a
// copy of src when n covers it entirely.
func (s *Solver) sample(src []string, n int) []string {
	if n >= len(src) {
		out := make([]string, len(src))
		copy(out, src)
		return out
	}
	out := make([]string, 0, n)
	for _, i := range s.rng.Perm(len(src))[:n] {
		out = append(out, src[i])
	}
	return out
}

// openers is the precomputed unconditional first-round table: the starting
// entropy never changes, so round zero skips scoring entirely.
var openers = [...]Suggestion{
	{Word: "tares", Entropy: 4.29},
	{Word: "lares", Entropy: 4.26},
	{Word: "rales", Entropy: 4.24},
	{Word: "rates", Entropy: 4.23},
	{Word: "teras", Entropy: 4.21},
}

// Openers returns the fixed first-round suggestions, strongest first.
func Openers() []Suggestion {
	out := make([]Suggestion, len(openers))
	copy(out, openers[:])
	return out
}
