// apps/go-solver/internal/words/words.go
//
// Word list management for the solver.
//
// Responsibilities:
//   - Load the answer list and allowed guess list from environment-provided
//     files or fall back to embedded defaults.
//   - Expose ordered slices for the engine (ranking needs stable iteration
//     order) and sets for quick membership checks.
//
// Word Lists:
//   - "answers": canonical solutions (exactly 5 lowercase letters); seeds
//     the initial possible-answer set.
//   - "allowed": valid guesses, the full vocabulary (always includes
//     answers). Secondary sampling pool for probe words.
//
// Initialization behavior (Init):
//   1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only WORDS_ALLOWED_FILE is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If only WORDS_ANSWERS_FILE is set,
//      load that file and use it for both (the answers list is the
//      load-bearing one for the solver, so it is never silently dropped).
//   4. If neither is set,
//      fall back to the embedded defaults from `default_small_answers.txt`
//      and `default_small_allowed.txt`.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); other lines are skipped.
//   • Lists are normalized to lowercase and deduplicated, keeping order.
//   • Initialization is run once (sync.Once); failures surface before any
//     engine call.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"os"
	"strings"
	"sync"
)

//go:embed default_small_answers.txt
var embeddedAnswers string

//go:embed default_small_allowed.txt
var embeddedAllowed string

var (
	initOnce   sync.Once
	answers    []string            // canonical answers, ordered
	allowed    []string            // answers ∪ guesses, ordered
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
	initialErr error
)

// Init loads word lists exactly once.
// Returns an error if the answers list ends up empty.
func Init() error {
	initOnce.Do(func() {
		ansList, allowList, err := loadLists(
			os.Getenv("WORDS_ANSWERS_FILE"),
			os.Getenv("WORDS_ALLOWED_FILE"),
		)
		if err != nil {
			initialErr = err
			return
		}

		// Answers first, then guess-only words, deduplicated in order.
		answers = dedup(ansList)
		allowed = dedup(append(append([]string{}, answers...), allowList...))
		answersSet = toSet(answers)
		allowedSet = toSet(allowed)

		if len(answers) == 0 {
			initialErr = errors.New("words: answers list is empty")
		}
	})
	return initialErr
}

// loadLists resolves the answer and allowed lists from the given file
// paths, using either file for both when only one is set, and the embedded
// defaults when neither is.
func loadLists(answersPath, allowedPath string) (ansList, allowList []string, err error) {
	switch {
	// Case 1: both lists provided
	case answersPath != "" && allowedPath != "":
		ansList, err = readWordFile(answersPath)
		if err != nil {
			return nil, nil, err
		}
		allowList, err = readWordFile(allowedPath)
		if err != nil {
			return nil, nil, err
		}

	// Case 2: only allowed file provided → use for both
	case answersPath == "" && allowedPath != "":
		allowList, err = readWordFile(allowedPath)
		if err != nil {
			return nil, nil, err
		}
		ansList = allowList

	// Case 3: only answers file provided → use for both
	case answersPath != "" && allowedPath == "":
		ansList, err = readWordFile(answersPath)
		if err != nil {
			return nil, nil, err
		}
		allowList = ansList

	// Case 4: fallback to embedded defaults
	default:
		ansList = normalizeLines(embeddedAnswers)
		allowList = normalizeLines(embeddedAllowed)
	}
	return ansList, allowList, nil
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string
// into a slice of valid lowercase 5-letter words.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// dedup removes duplicates from a list, keeping first-seen order.
func dedup(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, w := range list {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Answers returns the ordered answer list. The returned slice is a copy;
// callers may filter it down freely.
func Answers() []string {
	out := make([]string, len(answers))
	copy(out, answers)
	return out
}

// Allowed returns the ordered full vocabulary (answers ∪ guesses) as a copy.
func Allowed() []string {
	out := make([]string, len(allowed))
	copy(out, allowed)
	return out
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func IsAllowed(w string) bool {
	_, ok := allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func IsAnswer(w string) bool {
	_, ok := answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func Stats() (answersCount int, allowedCount int) {
	return len(answers), len(allowed)
}
