package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocument(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	err := os.WriteFile(path, content, 0o600)
	require.NoError(t, err)

	return path
}

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte(`
offer:
  date: 07.11.2019
`)

	path := writeDocument(t, "invoice.yml", content)

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestFetcher_Fetch_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("/nonexistent/path/invoice.yml")()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "stat file")
}

func TestFetcher_Fetch_DirectoryPath(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(t.TempDir())()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, ErrPathIsDirectory)
}

func TestFetcher_Fetch_CachesConstructionSnapshot(t *testing.T) {
	t.Parallel()

	original := []byte(`version: "1.0"`)
	modified := []byte(`version: "2.0"`)

	path := writeDocument(t, "doc.yml", original)

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)

	err = os.WriteFile(path, modified, 0o600)
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, original, data, "Fetch should return the construction-time snapshot")
}

func TestFetcher_Fetch_ReturnsCopy(t *testing.T) {
	t.Parallel()

	content := []byte(`original: value`)
	path := writeDocument(t, "doc.yml", content)

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)

	data1, err := fetcher.Fetch()
	require.NoError(t, err)

	data1[0] = 'X'

	data2, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, content, data2, "mutating a fetched copy must not affect the cache")
}
