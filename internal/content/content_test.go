package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func write(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func newCollector() *Collector {
	return NewCollector(NewMarkdown(), zap.NewNop())
}

func TestCollectMissingDir(t *testing.T) {
	items, err := newCollector().Collect(filepath.Join(t.TempDir(), "announcements"))
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = newCollector().Collect("")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCollectOrdersNewestFirst(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "older.md", "---\ntitle: Bake Sale\ndate: 2026-09-01\n---\nBring **cookies**.\n")
	write(t, dir, "newer.md", "---\ntitle: Youth Night\ndate: \"2026-10-10\"\n---\nPizza provided.\n")
	write(t, dir, "undated/choir-practice_moved.md", "Choir meets on *Thursday*.\n")
	write(t, dir, "ignored.txt", "not markdown")

	items, err := newCollector().Collect(dir)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Youth Night", items[0].Title)
	assert.Equal(t, "Bake Sale", items[1].Title)
	assert.Contains(t, string(items[1].ContentHTML), "<strong>cookies</strong>")

	assert.Equal(t, "Choir Practice Moved", items[2].Title)
	assert.True(t, items[2].Date.IsZero())
	assert.Contains(t, string(items[2].ContentHTML), "<em>Thursday</em>")
}

func TestCollectSkipsDrafts(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "draft.md", "---\ntitle: Secret\ndraft: true\n---\nNot yet.\n")
	write(t, dir, "live.md", "---\ntitle: Live\n---\nNow.\n")

	items, err := newCollector().Collect(dir)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Live", items[0].Title)
}

func TestMarkdownDropsRawHTML(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "x.md", "Hello <script>alert(1)</script>\n")

	items, err := newCollector().Collect(dir)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.NotContains(t, string(items[0].ContentHTML), "<script>")
}
