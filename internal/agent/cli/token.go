package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/fastfill/internal/server/crypto"
)

// NewTokenCmd создаёт команду выпуска access-токена для локального API.
//
// Токен подписывается api.signing_key и живёт api.token_ttl.
//
//	curl -H "Authorization: Bearer $(fastfill token)" http://127.0.0.1:8765/categories
func NewTokenCmd(app *App) *cobra.Command {
	var clientID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Выпустить access-токен для HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.RequireAPIKey(); err != nil {
				return err
			}
			api := app.Settings.API

			token, err := crypto.NewAccessToken(clientID, crypto.JWTConfig{
				Issuer:     api.Issuer,
				Audience:   api.Audience,
				SigningKey: api.SigningKey,
				AccessTTL:  api.TokenTTL,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "cli", "client id written to the token subject")
	return cmd
}
