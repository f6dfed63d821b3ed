package folder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRenderer hands out increasing handles and tracks which ones are
// still alive.
type countingRenderer struct {
	next     Bitmap
	live     map[Bitmap]bool
	released int
	failOn   string
}

func newCountingRenderer() *countingRenderer {
	return &countingRenderer{next: 1, live: map[Bitmap]bool{}}
}

func (c *countingRenderer) RenderIcon(path string, isDir bool) (Bitmap, error) {
	if c.failOn != "" && filepath.Base(path) == c.failOn {
		return 0, errors.New("render failed")
	}
	b := c.next
	c.next++
	c.live[b] = true
	return b, nil
}

func (c *countingRenderer) ReleaseIcon(b Bitmap) error {
	if !c.live[b] {
		return fmt.Errorf("bitmap %d released twice or never created", b)
	}
	delete(c.live, b)
	c.released++
	return nil
}

func makeTree(t *testing.T, files []string, dirs []string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("x"), 0o644))
	}
	for _, d := range dirs {
		require.NoError(t, os.Mkdir(filepath.Join(root, d), 0o755))
	}
	return root
}

func titles(s *Snapshot) []string {
	var res []string
	for _, e := range s.Entries {
		res = append(res, e.Title)
	}
	return res
}

func TestLoadSkipsHiddenEntries(t *testing.T) {
	root := makeTree(t, []string{".hidden", "visible.txt", ".git.txt"}, []string{".config", "Docs"})
	r := newCountingRenderer()
	s := &Snapshot{}

	require.NoError(t, Load(s, root, r))

	require.Len(t, s.Entries, 2)
	for _, e := range s.Entries {
		assert.False(t, strings.HasPrefix(e.Filename, "."), "hidden entry %q loaded", e.Filename)
	}
	assert.Len(t, r.live, 2)
}

func TestLoadClassifiesAndTitles(t *testing.T) {
	root := makeTree(t, []string{"report.v2.txt", "README"}, []string{"my.project"})
	s := &Snapshot{}

	require.NoError(t, Load(s, root, newCountingRenderer()))
	Sort(s.Entries)

	require.Len(t, s.Entries, 3)
	assert.Equal(t, Entry{Filename: "my.project", Title: "my", IsDir: true, Icon: s.Entries[0].Icon}, s.Entries[0])
	assert.Equal(t, "README", s.Entries[1].Title)
	assert.Equal(t, "report.v2", s.Entries[2].Title)
	assert.Equal(t, "report.v2.txt", s.Entries[2].Filename)
	assert.False(t, s.Entries[2].IsDir)
}

func TestLoadNormalizesDirectory(t *testing.T) {
	root := makeTree(t, []string{"a.txt"}, nil)
	s := &Snapshot{}

	require.NoError(t, Load(s, root+string(filepath.Separator), newCountingRenderer()))

	assert.Equal(t, filepath.Clean(root), s.Directory)
	assert.True(t, filepath.IsAbs(s.Directory))
	assert.Len(t, s.Entries, 1)
}

func TestLoadMissingDirectoryIsEmpty(t *testing.T) {
	s := &Snapshot{}
	r := newCountingRenderer()

	err := Load(s, filepath.Join(t.TempDir(), "does-not-exist"), r)

	require.NoError(t, err)
	assert.Empty(t, s.Entries)
}

func TestLoadCapacity(t *testing.T) {
	var files []string
	for i := 0; i < MaxEntries+44; i++ {
		files = append(files, fmt.Sprintf("file%03d.dat", i))
	}
	root := makeTree(t, files, nil)
	r := newCountingRenderer()
	s := &Snapshot{}

	require.NoError(t, Load(s, root, r))

	assert.Len(t, s.Entries, MaxEntries)
	assert.Len(t, r.live, MaxEntries)
}

func TestReloadReleasesEveryBitmap(t *testing.T) {
	root := makeTree(t, []string{"a.txt", "b.txt", "c.txt"}, []string{"d"})
	r := newCountingRenderer()
	s := &Snapshot{}

	require.NoError(t, Load(s, root, r))
	first := map[Bitmap]bool{}
	for _, e := range s.Entries {
		first[e.Icon] = true
	}

	require.NoError(t, Load(s, root, r))

	assert.Equal(t, 4, r.released)
	assert.Len(t, r.live, 4)
	for b := range first {
		assert.False(t, r.live[b], "bitmap %d survived the reload", b)
	}

	require.NoError(t, Reset(s, r))
	assert.Empty(t, r.live)
	assert.Empty(t, s.Entries)
}

func TestLoadRenderFailureKeepsRenderedEntries(t *testing.T) {
	root := makeTree(t, []string{"a.txt", "b.txt", "c.txt"}, nil)
	r := newCountingRenderer()
	r.failOn = "b.txt"
	s := &Snapshot{}

	err := Load(s, root, r)

	require.Error(t, err)
	assert.Len(t, r.live, len(s.Entries), "every rendered bitmap must be reachable from the snapshot")

	require.NoError(t, Reset(s, r))
	assert.Empty(t, r.live)
}

func TestResetAttemptsEveryRelease(t *testing.T) {
	r := newCountingRenderer()
	s := &Snapshot{Entries: []Entry{{Icon: 1}, {Icon: 99}, {Icon: 2}}}
	r.live[1] = true
	r.live[2] = true

	err := Reset(s, r)

	require.Error(t, err)
	assert.Empty(t, r.live)
	assert.Empty(t, s.Entries)
}

func TestTitle(t *testing.T) {
	cases := map[string]string{
		"report.v2.txt": "report.v2",
		"notes.md":      "notes",
		"Makefile":      "Makefile",
		"archive.":      "archive",
		"photo.JPEG":    "photo",
	}
	for in, want := range cases {
		assert.Equal(t, want, Title(in), in)
	}

	long := strings.Repeat("é", MaxTitle+10) + ".txt"
	assert.Equal(t, strings.Repeat("é", MaxTitle), Title(long))
}
