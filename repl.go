// apps/go-solver/repl.go
//
// Interactive assistant loop.
// Responsibilities:
//   - Present ranked suggestions each round (fixed openers on round zero).
//   - Read the played guess and the observed 5-digit feedback pattern.
//   - Re-prompt on invalid input; rejected guesses never advance the round.
//   - Announce solved/exhausted and record the result to history when
//     history is configured.
//
// The engine stays pure: all terminal I/O lives here, including the
// progress bar shown while large candidate pools are scored.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// progressBarMin is the pool size below which scoring is too quick to be
// worth a progress bar.
const progressBarMin = 20

type assistant struct {
	l       *readline.Instance
	sv      *solver.Solver
	sess    *session.Session
	store   session.Store
	history *HistoryStore
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// newAssistant wires a fresh session over the loaded word lists.
func newAssistant(history *HistoryStore) (*assistant, error) {
	a := &assistant{history: history, store: session.NewMemoryStore()}
	a.sv = solver.New(solver.WithProgress(a.scoringProgress))

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32msolver>\033[0m ",
		HistoryFile:     "/tmp/wordle-solver-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	a.l = l

	a.sess = session.New(a.sv, words.Answers(), words.Allowed())
	if err := a.store.Save(context.Background(), a.sess); err != nil {
		return nil, err
	}
	return a, nil
}

// scoringProgress renders a progress bar over the candidate pool while the
// solver scores it. Small pools render nothing.
func (a *assistant) scoringProgress(total int) func() {
	if total < progressBarMin {
		return nil
	}
	bar := progressbar.Default(int64(total), "scoring")
	return func() { _ = bar.Add(1) }
}

// run drives rounds until the word is found, the guess budget is spent, or
// the user exits.
func (a *assistant) run(ctx context.Context) error {
	defer a.l.Close()

	showMessage("Let's solve this word! >:)", a.l.Stdout())
	for {
		suggestions, err := a.sess.Suggest()
		if errors.Is(err, solver.ErrEmptyCandidateSet) {
			showMessage("No possible answers remain. Check the entered feedback for a typo.", a.l.Stdout())
			return nil
		}
		if err != nil {
			return err
		}
		a.showSuggestions(suggestions)

		guess, ok := a.prompt("guess> ")
		if !ok {
			return nil
		}
		pattern, ok := a.promptPattern()
		if !ok {
			return nil
		}

		outcome, err := a.sess.ApplyFeedback(guess, pattern)
		switch {
		case errors.Is(err, session.ErrGuessNotInVocabulary):
			showMessage("Not in the word list. Try again.", a.l.Stdout())
			continue
		case errors.Is(err, solver.ErrInvalidWordLength),
			errors.Is(err, solver.ErrInvalidAlphabet):
			showMessage("Guesses must be exactly five letters a-z. Try again.", a.l.Stdout())
			continue
		case err != nil:
			return err
		}
		if err := a.store.Save(ctx, a.sess); err != nil {
			return err
		}

		switch outcome {
		case session.OutcomeSolved:
			showMessage("Congratulations! You have guessed the word!", a.l.Stdout())
			a.recordResult(ctx)
			return nil
		case session.OutcomeExhausted:
			showMessage("Out of guesses. Better luck next time!", a.l.Stdout())
			a.recordResult(ctx)
			return nil
		}
		log.Info().
			Int("round", a.sess.Round).
			Int("remaining", a.sess.Remaining()).
			Msg("filtered possible words")
	}
}

// showSuggestions prints the ranked table for this round.
func (a *assistant) showSuggestions(suggestions []solver.Suggestion) {
	var b strings.Builder
	if a.sess.Round == 0 {
		b.WriteString("Pre-computed best first guesses:\n")
	} else {
		fmt.Fprintf(&b, "Best guesses for round %d (%d possible answers):\n",
			a.sess.Round+1, a.sess.Remaining())
	}
	for i, sg := range suggestions {
		fmt.Fprintf(&b, "  %d. %s  (%.2f bits)\n", i+1, strings.ToUpper(sg.Word), sg.Entropy)
	}
	showMessage(strings.TrimRight(b.String(), "\n"), a.l.Stdout())
}

// prompt reads one trimmed line; ok is false on interrupt or EOF.
func (a *assistant) prompt(p string) (string, bool) {
	a.l.SetPrompt(p)
	for {
		line, err := a.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return "", false
			}
			continue
		} else if err == io.EOF {
			return "", false
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, true
		}
	}
}

// promptPattern reads the observed feedback until it parses as five digits
// 0-2 (0 absent, 1 present, 2 correct).
func (a *assistant) promptPattern() (solver.Pattern, bool) {
	for {
		line, ok := a.prompt("pattern (0=absent 1=present 2=correct)> ")
		if !ok {
			return solver.Pattern{}, false
		}
		p, err := solver.ParsePattern(line)
		if err != nil {
			showMessage("Patterns look like 02100: five digits, 0-2.", a.l.Stdout())
			continue
		}
		return p, true
	}
}

// recordResult writes the finished session to history, if configured.
func (a *assistant) recordResult(ctx context.Context) {
	if a.history == nil {
		return
	}
	answer := ""
	if a.sess.Solved && len(a.sess.Guesses) > 0 {
		answer = a.sess.Guesses[len(a.sess.Guesses)-1]
	}
	r := SolveResult{
		SessionID: a.sess.ID,
		PlayedAt:  dateKey(a.sess.StartedAt),
		Rounds:    a.sess.Round,
		Solved:    a.sess.Solved,
		ElapsedMs: time.Since(a.sess.StartedAt).Milliseconds(),
		Answer:    answer,
	}
	if err := a.history.Insert(ctx, r); err != nil {
		log.Error().Err(err).Msg("failed to record solve result")
	}
}
