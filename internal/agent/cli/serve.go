package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/fastfill/internal/server"
)

// NewServeCmd создаёт команду запуска локального HTTP API.
//
// Сервер слушает только loopback и работает до SIGINT/SIGTERM.
//
//	fastfill serve
//	FASTFILL_API_PORT=9000 fastfill serve
func NewServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить локальный HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.RequireAPIKey(); err != nil {
				return err
			}
			api := app.Settings.API

			cfg := server.Config{
				Addr:              api.Addr(),
				Issuer:            api.Issuer,
				Audience:          api.Audience,
				SigningKey:        api.SigningKey,
				ReadHeaderTimeout: api.ReadHeaderTimeout,
				ShutdownTimeout:   api.ShutdownTimeout,
				MaxBodyBytes:      api.MaxBodyBytes,
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "listening on http://%s\n", cfg.Addr)
			return RunServer(cmd.Context(), app, cfg)
		},
	}
}
