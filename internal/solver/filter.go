// apps/go-solver/internal/solver/filter.go
//
// Possible-answer reduction from observed feedback.
package solver

// Filter returns the subset of possible whose evaluated pattern against
// guess equals observed. The input slice is never mutated and its order is
// preserved, so repeated filtering is deterministic. The true answer is
// always retained when observed came from the real game, since
// Evaluate(guess, trueAnswer) reproduces that pattern by construction.
func (s *Solver) Filter(possible []string, guess string, observed Pattern) ([]string, error) {
	guess, err := Normalize(guess)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(possible))
	for _, w := range possible {
		p, err := s.Evaluate(guess, w)
		if err != nil {
			return nil, err
		}
		if p == observed {
			out = append(out, w)
		}
	}
	return out, nil
}
