package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewEditCmd создаёт команду замены содержимого записи.
//
// Зашифрованная запись остаётся зашифрованной: новый текст шифруется
// введённым паролем заново.
//
//	fastfill edit "Work mail" --content "new@example.com"
func NewEditCmd(app *App) *cobra.Command {
	var (
		content           string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "edit <title>",
		Short: "Изменить содержимое записи",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("content") {
				return fmt.Errorf("--content is required")
			}
			cat, err := app.category()
			if err != nil {
				return err
			}

			err = withPassword(cmd, passwordFromStdin, func(pw string) error {
				return app.Svc.UpdateContent(cat, args[0], content, pw)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %q\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "new entry text")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	return cmd
}
