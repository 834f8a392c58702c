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

func TestLocalStoreUploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads")
	require.NoError(t, err)
	ctx := context.Background()

	obj, err := store.Upload(ctx, strings.NewReader("%PDF-1.4"), UploadOptions{
		Folder:       "papers",
		FileName:     "trial.pdf",
		ResourceType: ResourceRaw,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(obj.URL, "/uploads/papers/"))
	assert.True(t, strings.HasSuffix(obj.PublicID, ".pdf"))

	data, err := os.ReadFile(filepath.Join(dir, obj.PublicID))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	require.NoError(t, store.Delete(ctx, obj.PublicID, ResourceRaw))
	_, err = os.Stat(filepath.Join(dir, obj.PublicID))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete(ctx, obj.PublicID, ResourceRaw), "deleting twice is not an error")
}
