package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var (
	testAnswers = []string{"crane", "slate", "trace", "grape", "plane"}
	testVocab   = []string{"crane", "slate", "trace", "grape", "plane", "tares", "fuzzy"}
)

func newTestSession() *Session {
	return New(solver.New(), testAnswers, testVocab)
}

func mustPattern(t *testing.T, s string) solver.Pattern {
	t.Helper()
	p, err := solver.ParsePattern(s)
	require.NoError(t, err)
	return p
}

func TestNewSessionSeedsPossibleFromAnswers(t *testing.T) {
	s := newTestSession()
	assert.Equal(t, testAnswers, s.Possible)
	assert.Equal(t, 0, s.Round)
	assert.Equal(t, "solving", s.State())
	assert.NotEmpty(t, s.ID)

	// Sessions get distinct identifiers.
	assert.NotEqual(t, s.ID, newTestSession().ID)
}

func TestSuggestRoundZeroUsesOpeners(t *testing.T) {
	s := newTestSession()
	got, err := s.Suggest()
	require.NoError(t, err)
	assert.Equal(t, solver.Openers(), got)
}

func TestSuggestAfterFeedbackRanksPossible(t *testing.T) {
	s := newTestSession()
	_, err := s.ApplyFeedback("fuzzy", mustPattern(t, "00000"))
	require.NoError(t, err)

	got, err := s.Suggest()
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 5)
	for _, sg := range got {
		assert.Contains(t, testAnswers, sg.Word)
	}
}

func TestApplyFeedbackNarrowsPossible(t *testing.T) {
	s := newTestSession()
	out, err := s.ApplyFeedback("crane", mustPattern(t, "00202"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeContinue, out)
	assert.Equal(t, []string{"slate"}, s.Possible)
	assert.Equal(t, 1, s.Round)
	assert.Equal(t, []string{"crane"}, s.Guesses)
}

func TestApplyFeedbackRejectsUnknownGuess(t *testing.T) {
	s := newTestSession()
	_, err := s.ApplyFeedback("zzzzz", mustPattern(t, "00000"))
	assert.ErrorIs(t, err, ErrGuessNotInVocabulary)

	// Rejection must leave session state untouched.
	assert.Equal(t, testAnswers, s.Possible)
	assert.Equal(t, 0, s.Round)
	assert.Empty(t, s.Guesses)
}

func TestApplyFeedbackRejectsMalformedGuess(t *testing.T) {
	s := newTestSession()

	_, err := s.ApplyFeedback("cranes", mustPattern(t, "00000"))
	assert.ErrorIs(t, err, solver.ErrInvalidWordLength)

	_, err = s.ApplyFeedback("cr4ne", mustPattern(t, "00000"))
	assert.ErrorIs(t, err, solver.ErrInvalidAlphabet)

	assert.Equal(t, 0, s.Round)
}

func TestApplyFeedbackSolved(t *testing.T) {
	s := newTestSession()
	out, err := s.ApplyFeedback("slate", mustPattern(t, "22222"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeSolved, out)
	assert.True(t, s.Finished)
	assert.True(t, s.Solved)
	assert.Equal(t, "solved", s.State())

	_, err = s.ApplyFeedback("crane", mustPattern(t, "00000"))
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestApplyFeedbackExhaustsAfterSixRounds(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 5; i++ {
		out, err := s.ApplyFeedback("tares", mustPattern(t, "01000"))
		require.NoError(t, err)
		assert.Equal(t, OutcomeContinue, out, "round %d", i)
	}
	out, err := s.ApplyFeedback("tares", mustPattern(t, "01000"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeExhausted, out)
	assert.True(t, s.Finished)
	assert.False(t, s.Solved)
	assert.Equal(t, "exhausted", s.State())
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := newTestSession()

	require.NoError(t, st.Save(ctx, s))
	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
