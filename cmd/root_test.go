package cmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"account-list/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRun(t *testing.T, handler http.HandlerFunc, csv string) (dataDir string) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfgDir := t.TempDir()
	dataDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(`
ck = "a"
cs = "b"
tk = "c"
ts = "d"

[lookup]
requests_per_second = 0

[log]
level = "error"
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "friends.csv"), []byte(csv), 0o644))

	t.Setenv("ACCOUNT_LIST_LOOKUP_ENDPOINT", server.URL)
	t.Setenv("ACCOUNT_LIST_RECORDS_DIR", dataDir)

	configDir, dryRun = cfgDir, false
	t.Cleanup(func() { configDir, dryRun = ".", false })
	return dataDir
}

func TestRunReconcile(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "42", r.PostForm.Get("user_id"))
		assert.Equal(t, "alice", r.PostForm.Get("screen_name"))
		_, _ = w.Write([]byte(`[{"id":42,"screen_name":"bob"},{"id":7,"screen_name":"alice"}]`))
	}
	dataDir := setupRun(t, handler, "id,sn,memo\n42,,x\n,alice,y\n,,z\n")

	require.NoError(t, runReconcile(RootCmd, []string{"friends"}))

	data, err := os.ReadFile(filepath.Join(dataDir, "friends.csv"))
	require.NoError(t, err)
	assert.Equal(t, "id,sn,memo\n42,bob,x\n7,alice,y\n,,z\n", string(data))
}

func TestRunReconcile_DryRun(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":42,"screen_name":"bob"}]`))
	}
	original := "id,sn,memo\n42,,x\n"
	dataDir := setupRun(t, handler, original)
	dryRun = true

	require.NoError(t, runReconcile(RootCmd, []string{"friends"}))

	data, err := os.ReadFile(filepath.Join(dataDir, "friends.csv"))
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestRunReconcile_LookupFailureLeavesFileUntouched(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"code":89,"message":"Invalid or expired token."}]}`))
	}
	original := "id,sn,memo\n42,,x\n"
	dataDir := setupRun(t, handler, original)

	err := runReconcile(RootCmd, []string{"friends"})
	require.Error(t, err)
	assert.ErrorIs(t, err, reconcile.ErrLookup)
	assert.True(t, strings.Contains(err.Error(), "Invalid or expired token."), err.Error())

	data, readErr := os.ReadFile(filepath.Join(dataDir, "friends.csv"))
	require.NoError(t, readErr)
	assert.Equal(t, original, string(data))
}

func TestRunReconcile_ParseErrorSkipsLookup(t *testing.T) {
	called := false
	handler := func(w http.ResponseWriter, r *http.Request) {
		called = true
	}
	setupRun(t, handler, "id,sn,memo\nnot-a-number,,x\n")

	err := runReconcile(RootCmd, []string{"friends"})
	assert.ErrorIs(t, err, reconcile.ErrParse)
	assert.False(t, called)
}

func TestRootCmd_RequiresOneArgument(t *testing.T) {
	assert.Error(t, RootCmd.Args(RootCmd, nil))
	assert.Error(t, RootCmd.Args(RootCmd, []string{"a", "b"}))
	assert.NoError(t, RootCmd.Args(RootCmd, []string{"friends"}))
}
