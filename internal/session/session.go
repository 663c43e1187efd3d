// apps/go-solver/internal/session/session.go
//
// State for a single assisted solve.
// Responsibilities:
//   - Create sessions seeded with the full answer list (6 rounds, 5 letters).
//   - Validate played guesses (length, alphabetic, vocabulary membership).
//   - Narrow the possible-answer set from observed feedback.
//   - Report round outcomes as an explicit tri-state value consumed by the
//     driver loop: continue, solved, or exhausted.
//
// Notes:
//   - Each session owns its own solver instance, and with it its own
//     pattern cache; independent sessions never share memoized results.
//   - A rejected guess never mutates the possible-answer set.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

const (
	defaultRounds = 6
)

// Outcome is the tri-state result of applying one round of feedback.
type Outcome int

const (
	// OutcomeContinue means candidates remain and rounds are left.
	OutcomeContinue Outcome = iota
	// OutcomeSolved means the observed pattern was all-correct.
	OutcomeSolved
	// OutcomeExhausted means the guess budget was spent without solving.
	OutcomeExhausted
)

var (
	// ErrGuessNotInVocabulary rejects guesses outside the allowed word
	// list. The possible-answer set is left untouched; callers re-prompt.
	ErrGuessNotInVocabulary = errors.New("session: guess is not in the word list")

	// ErrSessionFinished rejects feedback after the session has ended.
	ErrSessionFinished = errors.New("session: session already finished")
)

// Session holds the state of one assisted solve.
type Session struct {
	ID        string    // Unique session identifier (random hex string).
	Rounds    int       // Maximum number of guesses allowed (typically 6).
	Round     int       // Rounds played so far.
	Guesses   []string  // Accepted guesses, lowercased, in play order.
	Possible  []string  // Words still consistent with all feedback, ordered.
	Finished  bool      // True once the session is over.
	Solved    bool      // True if the session ended on an all-correct pattern.
	StartedAt time.Time // Session creation time, for history records.

	sv      *solver.Solver
	vocab   []string
	allowed map[string]struct{}
}

// New constructs a session over the given answer list and full vocabulary.
// answers seeds the possible-answer set; vocab is the allowed-guess list
// and the secondary sampling pool for ranking.
func New(sv *solver.Solver, answers, vocab []string) *Session {
	allowed := make(map[string]struct{}, len(vocab))
	for _, w := range vocab {
		allowed[w] = struct{}{}
	}
	possible := make([]string, len(answers))
	copy(possible, answers)
	return &Session{
		ID:        randomID(),
		Rounds:    defaultRounds,
		Guesses:   []string{},
		Possible:  possible,
		StartedAt: time.Now(),
		sv:        sv,
		vocab:     vocab,
		allowed:   allowed,
	}
}

// Suggest returns the top guesses for the current round. Round zero is the
// precomputed opener table; every later round ranks a candidate pool
// against the current possible-answer set.
func (s *Session) Suggest() ([]solver.Suggestion, error) {
	if s.Round == 0 {
		return solver.Openers(), nil
	}
	return s.sv.Rank(s.Possible, s.vocab)
}

// ApplyFeedback records one played guess and its observed pattern, narrows
// the possible-answer set, and reports the round outcome.
//
// Validation rules:
//   - Session must not be finished.
//   - Guess must be exactly five letters a-z.
//   - Guess must be present in the vocabulary; rejected guesses leave all
//     session state unchanged so the caller can re-prompt.
func (s *Session) ApplyFeedback(guess string, observed solver.Pattern) (Outcome, error) {
	if s.Finished {
		return OutcomeExhausted, ErrSessionFinished
	}
	guess, err := solver.Normalize(guess)
	if err != nil {
		return OutcomeContinue, err
	}
	if _, ok := s.allowed[guess]; !ok {
		return OutcomeContinue, ErrGuessNotInVocabulary
	}

	filtered, err := s.sv.Filter(s.Possible, guess, observed)
	if err != nil {
		return OutcomeContinue, err
	}

	s.Guesses = append(s.Guesses, guess)
	s.Possible = filtered
	s.Round++

	switch {
	case observed.Solved():
		s.Finished, s.Solved = true, true
		return OutcomeSolved, nil
	case s.Round >= s.Rounds:
		s.Finished = true
		return OutcomeExhausted, nil
	default:
		return OutcomeContinue, nil
	}
}

// Remaining reports the size of the current possible-answer set.
func (s *Session) Remaining() int { return len(s.Possible) }

// State reports a coarse string representation of the session state.
func (s *Session) State() string {
	if s.Finished {
		if s.Solved {
			return "solved"
		}
		return "exhausted"
	}
	return "solving"
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
