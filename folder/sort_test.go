package folder

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortDirectoriesFirst(t *testing.T) {
	entries := []Entry{
		{Title: "zeta"},
		{Title: "Beta", IsDir: true},
		{Title: "alpha"},
		{Title: "alpha", IsDir: true},
		{Title: "Gamma"},
	}

	Sort(entries)

	var got []string
	for _, e := range entries {
		got = append(got, e.Title)
	}
	assert.Equal(t, []string{"alpha", "Beta", "alpha", "Gamma", "zeta"}, got)
	assert.True(t, entries[0].IsDir)
	assert.True(t, entries[1].IsDir)
	assert.False(t, entries[2].IsDir)
}

func TestSortIsCaseInsensitive(t *testing.T) {
	entries := []Entry{{Title: "b"}, {Title: "A"}, {Title: "a2"}, {Title: "B1"}}

	Sort(entries)

	assert.Equal(t, []string{"A", "a2", "b", "B1"}, titlesOf(entries))
}

func TestSortKeepsEnumerationOrderOnTies(t *testing.T) {
	entries := []Entry{
		{Filename: "x.txt", Title: "x"},
		{Filename: "X.md", Title: "X"},
		{Filename: "x.doc", Title: "x"},
	}

	Sort(entries)

	assert.Equal(t, "x.txt", entries[0].Filename)
	assert.Equal(t, "X.md", entries[1].Filename)
	assert.Equal(t, "x.doc", entries[2].Filename)
}

func TestSortProperty(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	alphabet := []rune("aAbBcCzZ09_ -é")

	for round := 0; round < 200; round++ {
		n := rnd.Intn(40)
		entries := make([]Entry, n)
		for i := range entries {
			l := 1 + rnd.Intn(6)
			var sb strings.Builder
			for j := 0; j < l; j++ {
				sb.WriteRune(alphabet[rnd.Intn(len(alphabet))])
			}
			entries[i] = Entry{Title: sb.String(), IsDir: rnd.Intn(3) == 0}
		}

		Sort(entries)

		for i := 1; i < len(entries); i++ {
			prev, cur := entries[i-1], entries[i]
			if !prev.IsDir && cur.IsDir {
				t.Fatalf("round %d: file %q sorted before directory %q", round, prev.Title, cur.Title)
			}
			if prev.IsDir == cur.IsDir && strings.ToLower(prev.Title) > strings.ToLower(cur.Title) {
				t.Fatalf("round %d: %q sorted before %q", round, prev.Title, cur.Title)
			}
		}
	}
}

func TestCompareFold(t *testing.T) {
	assert.Equal(t, 0, compareFold("Hello", "hELLO"))
	assert.Equal(t, -1, compareFold("abc", "abd"))
	assert.Equal(t, -1, compareFold("ab", "ABC"))
	assert.Equal(t, 1, compareFold("b", "A"))
	assert.Equal(t, 0, compareFold("", ""))
}

func titlesOf(entries []Entry) []string {
	res := make([]string, len(entries))
	for i, e := range entries {
		res[i] = e.Title
	}
	return res
}
