package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	serr "github.com/IvanChernomyrdin/fastfill/internal/shared/errors"
)

// NewGetCmd создаёт команду вывода открытого текста записи.
//
// Пароль спрашивается, только если запись зашифрована.
//
//	fastfill get "Work mail"
//	echo "PASS" | fastfill get "PIN" --password-stdin
func NewGetCmd(app *App) *cobra.Command {
	var passwordFromStdin bool

	cmd := &cobra.Command{
		Use:   "get <title>",
		Short: "Показать содержимое записи",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readEntry(cmd, app, args[0], passwordFromStdin)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	return cmd
}

func readEntry(cmd *cobra.Command, app *App, title string, passwordFromStdin bool) (string, error) {
	cat, err := app.category()
	if err != nil {
		return "", err
	}

	var content string
	err = withPassword(cmd, passwordFromStdin, func(pw string) error {
		var err error
		content, err = app.Svc.ReadEntry(cat, title, pw)
		return err
	})
	if errors.Is(err, serr.ErrWrongPassword) {
		// KDF в конверте не записан, подсказываем настроенный
		return "", fmt.Errorf("%w (crypto.kdf is %s; entries encrypted under another kdf cannot be decrypted)",
			err, app.Settings.Crypto.KDF)
	}
	return content, err
}
