package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "CRANE\nslate\n  trace  \ntoo-long-word\nfour\ncr4ne\n\ngrape\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := readWordFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "trace", "grape"}, got)
}

func TestReadWordFileMissing(t *testing.T) {
	_, err := readWordFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestNormalizeLines(t *testing.T) {
	got := normalizeLines("CRANE\n\nbad-1\nslate\n abcde \n")
	assert.Equal(t, []string{"crane", "slate", "abcde"}, got)
}

func TestDedupKeepsFirstSeenOrder(t *testing.T) {
	got := dedup([]string{"crane", "slate", "crane", "grape", "slate"})
	assert.Equal(t, []string{"crane", "slate", "grape"}, got)
}

func writeWordFile(t *testing.T, name string, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644))
	return path
}

func TestLoadListsBothFiles(t *testing.T) {
	answersPath := writeWordFile(t, "answers.txt", "crane", "slate")
	allowedPath := writeWordFile(t, "allowed.txt", "tares", "lares")

	ans, allow, err := loadLists(answersPath, allowedPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, ans)
	assert.Equal(t, []string{"tares", "lares"}, allow)
}

func TestLoadListsAllowedOnly(t *testing.T) {
	allowedPath := writeWordFile(t, "allowed.txt", "crane", "tares")

	ans, allow, err := loadLists("", allowedPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "tares"}, ans)
	assert.Equal(t, ans, allow)
}

func TestLoadListsAnswersOnly(t *testing.T) {
	answersPath := writeWordFile(t, "answers.txt", "crane", "slate")

	ans, allow, err := loadLists(answersPath, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, ans,
		"a lone answers file must be loaded, not ignored")
	assert.Equal(t, ans, allow)
}

func TestLoadListsEmbeddedFallback(t *testing.T) {
	ans, allow, err := loadLists("", "")
	require.NoError(t, err)
	assert.NotEmpty(t, ans)
	assert.NotEmpty(t, allow)
	assert.Contains(t, ans, "crane")
	assert.Contains(t, allow, "tares")
}

func TestLoadListsMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	_, _, err := loadLists(missing, "")
	assert.Error(t, err)

	_, _, err = loadLists("", missing)
	assert.Error(t, err)
}

func TestInitEmbeddedDefaults(t *testing.T) {
	// Init is process-wide; this exercises the embedded fallback (the test
	// environment sets neither WORDS_ANSWERS_FILE nor WORDS_ALLOWED_FILE).
	require.NoError(t, Init())

	answersCount, allowedCount := Stats()
	assert.Greater(t, answersCount, 0)
	assert.GreaterOrEqual(t, allowedCount, answersCount)

	assert.True(t, IsAnswer("crane"))
	assert.True(t, IsAllowed("crane"), "answers are always allowed")
	assert.True(t, IsAllowed("TARES"), "membership checks are case-insensitive")
	assert.False(t, IsAnswer("tares"), "openers are probe words, not answers")
	assert.False(t, IsAllowed("zzzzz"))

	// Accessors hand out copies.
	ans := Answers()
	require.NotEmpty(t, ans)
	ans[0] = "mangled"
	assert.NotEqual(t, "mangled", Answers()[0])

	// Allowed starts with the answers, then guess-only words.
	all := Allowed()
	require.NotEmpty(t, all)
	assert.Equal(t, Answers()[0], all[0])
}
