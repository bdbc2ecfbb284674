package tests

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/crypto"
	"github.com/IvanChernomyrdin/fastfill/internal/agent/memory"
	"github.com/IvanChernomyrdin/fastfill/internal/agent/service"
	"github.com/IvanChernomyrdin/fastfill/internal/agent/store"
	"github.com/IvanChernomyrdin/fastfill/internal/shared/logger"
)

const defaultCategory = "Category 1"

// testKDF - дешёвые параметры, чтобы тесты не тратили время на KDF.
func testKDF() crypto.KDFParams {
	p := crypto.LegacyKDFParams()
	p.Iterations = 10
	return p
}

// tb - общее для *testing.T и *rapid.T.
type tb interface {
	require.TestingT
	Helper()
}

// newService создаёт сервис над файлом во временном каталоге
// и заполняет его хранилищем по умолчанию.
func newService(t *testing.T) (*service.Service, *store.FileStorage) {
	t.Helper()
	return newServiceIn(t, t.TempDir())
}

func newServiceIn(t tb, dir string) (*service.Service, *store.FileStorage) {
	t.Helper()

	fs := store.NewFileStorage(filepath.Join(dir, store.FileName))
	svc := service.New(fs, service.Options{Language: "en", KDF: testKDF()}, logger.NewNop())
	require.NoError(t, svc.Open())
	return svc, fs
}

// newMemService - то же поверх хранилища в памяти (для property-тестов).
func newMemService(t tb) *service.Service {
	t.Helper()

	svc := service.New(memory.NewStorage(nil), service.Options{Language: "en", KDF: testKDF()}, logger.NewNop())
	require.NoError(t, svc.Open())
	return svc
}

func titles(t tb, svc *service.Service, category string) []string {
	t.Helper()

	views, err := svc.Entries(category)
	require.NoError(t, err)
	out := make([]string, 0, len(views))
	for i, v := range views {
		require.Equal(t, i+1, v.Position)
		out = append(out, v.Title)
	}
	return out
}
