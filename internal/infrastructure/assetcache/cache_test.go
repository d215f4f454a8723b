package assetcache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAsset(t *testing.T, root, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
}

func TestCacheServesFromDisk(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "index.html", "<html>accueil</html>")

	c := New(root, nil)

	data, contentType, ok := c.Get("/index.html")
	require.True(t, ok)
	assert.Equal(t, "<html>accueil</html>", string(data))
	assert.Contains(t, contentType, "text/html")
}

func TestCacheSurvivesFileRemoval(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "manifest.json", `{"name":"Comptoir"}`)

	c := New(root, nil)
	c.Preload([]string{"manifest.json"})

	// Once cached, the asset is served even after the file disappears.
	require.NoError(t, os.Remove(filepath.Join(root, "manifest.json")))

	data, _, ok := c.Get("/manifest.json")
	require.True(t, ok)
	assert.Equal(t, `{"name":"Comptoir"}`, string(data))
}

func TestCachePopulatesOnFirstRead(t *testing.T) {
	root := t.TempDir()
	c := New(root, nil)

	_, _, ok := c.Get("/late.css")
	assert.False(t, ok)

	writeAsset(t, root, "late.css", "body{}")
	data, contentType, ok := c.Get("/late.css")
	require.True(t, ok)
	assert.Equal(t, "body{}", string(data))
	assert.Contains(t, contentType, "text/css")
}

func TestCacheRootPathServesIndex(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "index.html", "accueil")

	c := New(root, nil)

	data, _, ok := c.Get("/")
	require.True(t, ok)
	assert.Equal(t, "accueil", string(data))
}

func TestCacheRejectsTraversal(t *testing.T) {
	root := t.TempDir()
	c := New(root, nil)

	_, _, ok := c.Get("../secret")
	assert.False(t, ok)
}

func TestPreloadMissingAssetIsTolerated(t *testing.T) {
	c := New(t.TempDir(), nil)
	c.Preload([]string{"index.html", "icon-192.png"})

	_, _, ok := c.Get("/index.html")
	assert.False(t, ok)
}
