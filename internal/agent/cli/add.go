package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/service"
)

// NewAddCmd создаёт команду добавления записи в конец категории.
//
// С --encrypt содержимое шифруется паролем. Пароль не передаётся флагом,
// чтобы не попасть в history: он запрашивается скрытым вводом или
// читается из STDIN с --password-stdin.
//
//	fastfill add "Work mail" --content "ivan@example.com"
//	fastfill add "PIN" --content 1234 --encrypt
//	echo "PASS" | fastfill add "PIN" --content 1234 --encrypt --password-stdin
func NewAddCmd(app *App) *cobra.Command {
	var (
		content           string
		encrypt           bool
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Добавить запись",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("content") {
				return fmt.Errorf("--content is required")
			}
			cat, err := app.category()
			if err != nil {
				return err
			}

			in := service.NewEntry{Title: args[0], Content: content, Encrypt: encrypt}
			if encrypt {
				pw, err := ReadPassword(cmd, passwordFromStdin)
				if err != nil {
					return err
				}
				in.Password = pw
			}

			if err := app.Svc.AddEntry(cat, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %q to %q\n", args[0], cat)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "entry text")
	cmd.Flags().BoolVar(&encrypt, "encrypt", false, "encrypt the content with a password")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	return cmd
}
