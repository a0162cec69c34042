package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prefsPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "prefs.json")
}

func TestLoadPrefsMissingFileYieldsDefaults(t *testing.T) {
	prefs := LoadPrefs(prefsPath(t))

	assert.Nil(t, prefs.CurrentUser)
	assert.False(t, prefs.IsAdmin())
	assert.Equal(t, DefaultLanguage, prefs.Language)
}

func TestLoadPrefsMalformedFileTreatedAsAbsent(t *testing.T) {
	path := prefsPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	prefs := LoadPrefs(path)

	assert.Nil(t, prefs.CurrentUser)
	assert.Equal(t, DefaultLanguage, prefs.Language)
}

func TestLoadPrefsIgnoresUnknownUserKind(t *testing.T) {
	path := prefsPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"currentUser":{"kind":"superadmin"},"language":"kn"}`), 0o600))

	prefs := LoadPrefs(path)

	assert.Nil(t, prefs.CurrentUser)
	assert.Equal(t, "kn", prefs.Language)
}

func TestPrefsRoundTrip(t *testing.T) {
	path := prefsPath(t)

	prefs := LoadPrefs(path)
	require.NoError(t, prefs.SetCurrentUser(KindAdmin, "admin@example.com"))
	require.NoError(t, prefs.SetLanguage("hi"))

	reloaded := LoadPrefs(path)
	require.NotNil(t, reloaded.CurrentUser)
	assert.Equal(t, KindAdmin, reloaded.CurrentUser.Kind)
	assert.Equal(t, "admin@example.com", reloaded.CurrentUser.Email)
	assert.True(t, reloaded.IsAdmin())
	assert.Equal(t, "hi", reloaded.Language)
}

func TestClearCurrentUser(t *testing.T) {
	path := prefsPath(t)

	prefs := LoadPrefs(path)
	require.NoError(t, prefs.SetCurrentUser(KindUser, "me@example.com"))
	require.NoError(t, prefs.ClearCurrentUser())

	reloaded := LoadPrefs(path)
	assert.Nil(t, reloaded.CurrentUser)
	assert.False(t, reloaded.IsAdmin())
}
