package imagestore

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataURIFor(subtype string, content []byte) string {
	return "data:image/" + subtype + ";base64," + base64.StdEncoding.EncodeToString(content)
}

func TestSaveDecodesDataURI(t *testing.T) {
	store, err := New(t.TempDir(), "")
	require.NoError(t, err)

	content := []byte("fake png bytes")
	name, written, err := store.Save(dataURIFor("png", content))
	require.NoError(t, err)
	assert.True(t, written)

	assert.True(t, strings.HasPrefix(name, "ramo_"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	onDisk, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, content, onDisk)
}

func TestSaveExtensionMapping(t *testing.T) {
	store, err := New(t.TempDir(), "")
	require.NoError(t, err)

	cases := map[string]string{
		"png":  ".png",
		"gif":  ".gif",
		"jpeg": ".jpg",
		"JPEG": ".jpg",
		"webp": ".jpg", // unknown subtype falls back to jpg
	}
	for subtype, ext := range cases {
		name, _, err := store.Save(dataURIFor(subtype, []byte("x")))
		require.NoError(t, err, subtype)
		assert.True(t, strings.HasSuffix(name, ext), "%s → %s, want %s", subtype, name, ext)
	}
}

func TestSaveUniqueNames(t *testing.T) {
	store, err := New(t.TempDir(), "")
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		name, _, err := store.Save(dataURIFor("png", []byte("x")))
		require.NoError(t, err)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}

func TestSaveBadBase64(t *testing.T) {
	store, err := New(t.TempDir(), "")
	require.NoError(t, err)

	_, _, err = store.Save("data:image/png;base64,%%%not-base64%%%")
	assert.Error(t, err)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "failed decode must not leave files behind")
}

func TestSaveExistingReferenceIsIdempotent(t *testing.T) {
	store, err := New(t.TempDir(), "")
	require.NoError(t, err)

	name, written, err := store.Save(dataURIFor("jpeg", []byte("photo")))
	require.NoError(t, err)
	assert.True(t, written)

	// Client echoes the stored name back
	again, written, err := store.Save(name)
	require.NoError(t, err)
	assert.Equal(t, name, again)
	assert.False(t, written, "resolving an existing reference must not write")

	// Client echoes the full public URL back
	fromURL, written, err := store.Save("http://example.com/uploads/" + name)
	require.NoError(t, err)
	assert.Equal(t, name, fromURL)
	assert.False(t, written)
}

func TestSaveUnknownReference(t *testing.T) {
	store, err := New(t.TempDir(), "")
	require.NoError(t, err)

	_, _, err = store.Save("no-such-file.jpg")
	assert.Error(t, err)

	_, _, err = store.Save("")
	assert.Error(t, err)
}

func TestRemoveIsIdempotent(t *testing.T) {
	store, err := New(t.TempDir(), "")
	require.NoError(t, err)

	name, _, err := store.Save(dataURIFor("png", []byte("x")))
	require.NoError(t, err)

	store.Remove(name)
	_, statErr := os.Stat(filepath.Join(store.Dir(), name))
	assert.True(t, os.IsNotExist(statErr))

	// removing again, or removing something that never existed, is a no-op
	store.Remove(name)
	store.Remove("never-existed.jpg")
	store.Remove("")
}

func TestResolveURL(t *testing.T) {
	store, err := New(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8000/uploads/a.png",
		store.ResolveURL("a.png", "http://10.0.0.5:8000"))
	assert.Equal(t, "http://10.0.0.5:8000/uploads/a.png",
		store.ResolveURL("a.png", "http://10.0.0.5:8000/"))

	cdn, err := New(t.TempDir(), "https://cdn.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/a.png",
		cdn.ResolveURL("a.png", "http://ignored"))
}
