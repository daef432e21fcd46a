package input

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/aoc/aocerr"
	"github.com/zjrosen/aoc/internal/cachemanager"
	"github.com/zjrosen/aoc/internal/paths"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestProvider_Embedded(t *testing.T) {
	p := NewProvider(map[int]string{1: "1\n2\n"})

	text, src, err := p.Resolve(context.Background(), 1, "")
	require.NoError(t, err)
	require.Equal(t, "1\n2\n", text)
	require.Equal(t, SourceEmbedded, src)
}

func TestProvider_OverrideWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alt.txt")
	writeFile(t, path, "override")
	p := NewProvider(map[int]string{1: "embedded"})

	text, src, err := p.Resolve(context.Background(), 1, path)
	require.NoError(t, err)
	require.Equal(t, "override", text)
	require.Equal(t, SourceFile, src)
}

func TestProvider_OverrideUnreadableIsIOError(t *testing.T) {
	p := NewProvider(map[int]string{1: "embedded"})

	_, err := p.Get(context.Background(), 1, filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	var aerr *aocerr.Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, aocerr.KindIO, aerr.Kind)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestProvider_CacheDir(t *testing.T) {
	base := t.TempDir()
	writeFile(t, paths.InputCachePath(base, 2022, 3), "cached")
	p := NewProvider(nil, WithCacheDir(base, 2022))

	text, src, err := p.Resolve(context.Background(), 3, "")
	require.NoError(t, err)
	require.Equal(t, "cached", text)
	require.Equal(t, SourceCache, src)
	require.True(t, p.Has(3))
	require.False(t, p.Has(4))
}

func TestProvider_EmbeddedBeforeCache(t *testing.T) {
	base := t.TempDir()
	writeFile(t, paths.InputCachePath(base, 2022, 3), "cached")
	p := NewProvider(map[int]string{3: "embedded"}, WithCacheDir(base, 2022))

	text, err := p.Get(context.Background(), 3, "")
	require.NoError(t, err)
	require.Equal(t, "embedded", text)
}

func TestProvider_NoInput(t *testing.T) {
	p := NewProvider(map[int]string{1: "x"}, WithCacheDir(t.TempDir(), 2022))

	_, err := p.Get(context.Background(), 2, "")
	require.ErrorIs(t, err, ErrNoInput)
	require.EqualError(t, err, "no input for day 2")
	require.False(t, p.Has(2))
}

func TestProvider_CacheDirIgnoredWithoutYear(t *testing.T) {
	base := t.TempDir()
	writeFile(t, paths.InputCachePath(base, 0, 3), "cached")
	p := NewProvider(nil, WithCacheDir(base, 0))

	_, err := p.Get(context.Background(), 3, "")
	require.ErrorIs(t, err, ErrNoInput)
}

func TestProvider_FileReadsAreMemoized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alt.txt")
	writeFile(t, path, "first")
	cache := cachemanager.NewInMemoryCacheManager[string, string]("test", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	p := NewProvider(nil, WithFileCache(cache))

	text, err := p.Get(context.Background(), 1, path)
	require.NoError(t, err)
	require.Equal(t, "first", text)

	writeFile(t, path, "second")
	text, err = p.Get(context.Background(), 1, path)
	require.NoError(t, err)
	require.Equal(t, "first", text, "second read is served from cache")
	require.Equal(t, 1, cache.Len())
}
