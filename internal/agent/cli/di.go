package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/api"
	"github.com/IvanChernomyrdin/fastfill/internal/agent/clipboard"
	"github.com/IvanChernomyrdin/fastfill/internal/server"
	"github.com/IvanChernomyrdin/fastfill/internal/shared/logger"
)

// для тестов
var (
	ReadPassword = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		return readPassword(cmd, fromStdin)
	}
	NewClipboard = func() clipboard.Clipboard { return clipboard.System{} }
	NewLogger    = logger.New
	NewAPIClient = api.NewClient
	RunServer    = func(ctx context.Context, app *App, cfg server.Config) error {
		return server.Run(ctx, app.Svc, cfg, app.Log)
	}
)
