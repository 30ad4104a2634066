package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempTokenFile(t *testing.T) *TokenFile {
	t.Helper()
	return NewTokenFileAt(filepath.Join(t.TempDir(), "nested", "credentials.json"))
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	tf := tempTokenFile(t)

	require.NoError(t, tf.Save("tok-abc", "09120000001"))
	assert.Equal(t, "tok-abc", tf.Load())
}

func TestLoadAbsentFile(t *testing.T) {
	tf := tempTokenFile(t)
	assert.Empty(t, tf.Load())
}

func TestLoadCorruptFile(t *testing.T) {
	tf := tempTokenFile(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(tf.Path()), 0o700))
	require.NoError(t, os.WriteFile(tf.Path(), []byte("not json"), 0o600))

	assert.Empty(t, tf.Load())
}

func TestClearRemovesFile(t *testing.T) {
	tf := tempTokenFile(t)
	require.NoError(t, tf.Save("tok", ""))
	require.NoError(t, tf.Clear())

	_, err := os.Stat(tf.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestClearAbsentFileIsNotAnError(t *testing.T) {
	tf := tempTokenFile(t)
	assert.NoError(t, tf.Clear())
}

func TestCredentialsFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	tf := tempTokenFile(t)
	require.NoError(t, tf.Save("tok", ""))

	info, err := os.Stat(tf.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
