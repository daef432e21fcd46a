package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInputCachePath(t *testing.T) {
	got := InputCachePath("/var/cache", 2022, 7)
	require.Equal(t, filepath.Join("/var/cache", "aoc", "2022", "7", "input.txt"), got)
	require.Equal(t, filepath.Join("/var/cache", "aoc", "2022", "7"), DayCacheDir("/var/cache", 2022, 7))
}

func TestResolveCacheBase(t *testing.T) {
	got, err := ResolveCacheBase("/tmp/aoc-cache/../cache")
	require.NoError(t, err)
	require.Equal(t, filepath.Clean("/tmp/cache"), got)

	home, err := os.UserHomeDir()
	if err == nil {
		got, err = ResolveCacheBase("~/.cache")
		require.NoError(t, err)
		require.Equal(t, filepath.Join(home, ".cache"), got)
	}

	// "~user" style prefixes are not expanded.
	got, err = ResolveCacheBase("~other/x")
	require.NoError(t, err)
	require.Equal(t, "~other/x", got)
}

func TestResolveCacheBase_Default(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	want, err := os.UserCacheDir()
	require.NoError(t, err)

	got, err := ResolveCacheBase("")
	require.NoError(t, err)
	require.Equal(t, want, got)
}
