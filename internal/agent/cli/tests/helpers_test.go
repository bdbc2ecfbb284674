package tests

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/cli"
	"github.com/IvanChernomyrdin/fastfill/internal/shared/logger"
)

const testSigningKey = "0123456789abcdef0123456789abcdef"

// realReadPassword - чтение пароля без подмены.
var realReadPassword = cli.ReadPassword

// env - временный каталог приложения с дешёвым KDF.
type env struct {
	dir        string
	configPath string
	storePath  string
}

func newEnv(t *testing.T) env {
	t.Helper()

	for _, k := range []string{"FASTFILL_STORE", "FASTFILL_LOG_LEVEL", "FASTFILL_LANGUAGE", "FASTFILL_API_PORT"} {
		t.Setenv(k, "")
	}

	dir := t.TempDir()
	e := env{
		dir:        dir,
		configPath: filepath.Join(dir, "settings.yaml"),
		storePath:  filepath.Join(dir, "FastFill_config.ini"),
	}

	yml := fmt.Sprintf(`language: en
store_path: %q
log:
  file: %q
crypto:
  kdf: pbkdf2-sha256
  pbkdf2:
    iterations: 10
clipboard:
  clear_after: 20ms
api:
  signing_key: %q
`, e.storePath, filepath.Join(dir, "app.log"), testSigningKey)
	require.NoError(t, os.WriteFile(e.configPath, []byte(yml), 0o600))

	withDeps(t)
	return e
}

// withDeps восстанавливает подменённые зависимости после теста.
func withDeps(t *testing.T) {
	t.Helper()

	origRead := cli.ReadPassword
	origClip := cli.NewClipboard
	origLog := cli.NewLogger
	origRun := cli.RunServer
	origAPI := cli.NewAPIClient

	t.Cleanup(func() {
		cli.ReadPassword = origRead
		cli.NewClipboard = origClip
		cli.NewLogger = origLog
		cli.RunServer = origRun
		cli.NewAPIClient = origAPI
	})

	cli.NewLogger = func(logger.Options) *logger.Logger { return logger.NewNop() }
	cli.ReadPassword = func(*cobra.Command, bool) (string, error) {
		t.Fatal("password prompt is not expected")
		return "", nil
	}
}

// usePassword подменяет ввод пароля и считает запросы.
func usePassword(pw string) *int {
	calls := 0
	cli.ReadPassword = func(*cobra.Command, bool) (string, error) {
		calls++
		return pw, nil
	}
	return &calls
}

func (e env) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := cli.NewRootCmd("1.0.0", "2026-01-16")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", e.configPath}, args...))

	err := root.Execute()
	return out.String(), err
}

func (e env) mustRun(t *testing.T, args ...string) string {
	t.Helper()

	out, err := e.run(t, "", args...)
	require.NoError(t, err, out)
	return out
}
