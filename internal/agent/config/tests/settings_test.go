package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/config"
	"github.com/IvanChernomyrdin/fastfill/internal/agent/crypto"
	"github.com/IvanChernomyrdin/fastfill/internal/agent/store"
	"github.com/IvanChernomyrdin/fastfill/internal/shared/logger"
)

const testKey = "0123456789abcdef0123456789abcdef"

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestAppDir_UsesHomeEnv(t *testing.T) {
	t.Setenv(config.HomeEnv, "/tmp/fastfill-home")

	dir, err := config.AppDir()
	require.NoError(t, err)
	require.Equal(t, "/tmp/fastfill-home", dir)

	p, err := config.DefaultPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/tmp/fastfill-home", config.FileName), p)
}

func TestLoad_MissingFile_Defaults(t *testing.T) {
	dir := t.TempDir()

	s, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)

	require.Equal(t, "en", s.Language)
	require.Equal(t, dir, s.AppDir)
	require.Equal(t, store.DefaultPath(dir), s.StorePath)
	require.Equal(t, filepath.Join(dir, logger.FileName), s.Log.File)
	require.Equal(t, "info", s.Log.Level)
	require.Equal(t, 10*time.Second, s.Clipboard.Delay())
	require.Equal(t, "127.0.0.1:8765", s.API.Addr())
	require.Equal(t, crypto.DefaultKDFParams(), s.KDFParams())
	require.Error(t, s.RequireAPIKey())
}

func TestLoad_ClearAfterZeroDisablesClearing(t *testing.T) {
	s, err := config.Load(writeSettings(t, "clipboard:\n  clear_after: 0s\n"))
	require.NoError(t, err)
	require.NotNil(t, s.Clipboard.ClearAfter)
	require.Equal(t, time.Duration(0), s.Clipboard.Delay())

	s, err = config.Load(writeSettings(t, "clipboard: {}\n"))
	require.NoError(t, err)
	require.Equal(t, config.DefaultClearAfter, s.Clipboard.Delay())
}

func TestLoad_ParsesYAMLAndExpandsEnv(t *testing.T) {
	t.Setenv("FASTFILL_TEST_KEY", testKey)

	path := writeSettings(t, `
language: de
store_path: /data/snippets.ini
log:
  level: debug
  max_size_mb: 5
crypto:
  kdf: pbkdf2-sha256
  pbkdf2:
    iterations: 200000
clipboard:
  clear_after: 30s
api:
  host: localhost
  port: 9000
  signing_key: "${FASTFILL_TEST_KEY}"
  token_ttl: 15m
`)

	s, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "de", s.Language)
	require.Equal(t, "/data/snippets.ini", s.StorePath)
	require.Equal(t, "debug", s.Log.Level)
	require.Equal(t, 5, s.LoggerOptions().MaxSizeMB)
	require.Equal(t, 30*time.Second, s.Clipboard.Delay())
	require.Equal(t, "localhost:9000", s.API.Addr())
	require.Equal(t, testKey, s.API.SigningKey)
	require.Equal(t, 15*time.Minute, s.API.TokenTTL)
	require.NoError(t, s.RequireAPIKey())

	p := s.KDFParams()
	require.Equal(t, crypto.AlgorithmPBKDF2, p.Algorithm)
	require.Equal(t, 200000, p.Iterations)
}

func TestLoad_DotEnvNextToSettings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FASTFILL_DOTENV_KEY="+testKey+"\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("api:\n  signing_key: ${FASTFILL_DOTENV_KEY}\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FASTFILL_DOTENV_KEY") })

	s, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	require.Equal(t, testKey, s.API.SigningKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FASTFILL_STORE", "/override.ini")
	t.Setenv("FASTFILL_LOG_LEVEL", "warn")
	t.Setenv("FASTFILL_LANGUAGE", "DE")
	t.Setenv("FASTFILL_API_PORT", "9999")

	s, err := config.Load(filepath.Join(t.TempDir(), config.FileName))
	require.NoError(t, err)
	require.Equal(t, "/override.ini", s.StorePath)
	require.Equal(t, "warn", s.Log.Level)
	require.Equal(t, "de", s.Language)
	require.Equal(t, 9999, s.API.Port)
}

func TestLoad_InvalidSettings(t *testing.T) {
	cases := map[string]string{
		"language":         "language: fr\n",
		"kdf":              "crypto:\n  kdf: md5\n",
		"non-loopback":     "api:\n  host: 0.0.0.0\n",
		"port":             "api:\n  port: 70000\n",
		"short key":        "api:\n  signing_key: short\n",
		"unresolved key":   "api:\n  signing_key: ${FASTFILL_MISSING_KEY_FOR_TEST}\n",
		"negative clear":   "clipboard:\n  clear_after: -1s\n",
		"unresolved store": "store_path: ${FASTFILL_MISSING_STORE_FOR_TEST}/x.ini\n",
	}
	for name, body := range cases {
		_, err := config.Load(writeSettings(t, body))
		require.Error(t, err, name)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := config.Load(writeSettings(t, "language: [unclosed\n"))
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "yaml"))
}

func TestExpandEnvStrict_LeavesUnknownEnvAsIs(t *testing.T) {
	in := `signing_key: "${FASTFILL_UNKNOWN_FOR_TEST}"`
	require.Equal(t, in, config.ExpandEnvStrict(in))
}

func TestSave_ThenLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path := filepath.Join(dir, config.FileName)

	s := &config.Settings{AppDir: dir, Language: "de"}
	config.ApplyDefaults(s)
	require.NoError(t, config.Save(path, s))

	st, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), st.Mode().Perm())

	got, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "de", got.Language)
	require.Equal(t, s.StorePath, got.StorePath)
	require.Equal(t, s.Clipboard.Delay(), got.Clipboard.Delay())
}
