package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Save(t *testing.T) {
	dir := t.TempDir()

	store, err := NewLocal(dir, "/uploads/")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "villa.jpg", "image/jpeg", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/villa.jpg", url)

	data, err := os.ReadFile(filepath.Join(dir, "villa.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestLocalStorage_SaveStripsPathComponents(t *testing.T) {
	dir := t.TempDir()

	store, err := NewLocal(dir, "/uploads")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "../escape.png", "image/png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/escape.png", url)

	_, err = os.Stat(filepath.Join(dir, "escape.png"))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestNewLocal_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocal(dir, "/uploads")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
