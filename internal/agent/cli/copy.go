package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/clipboard"
)

// NewCopyCmd создаёт команду копирования записи в буфер обмена.
//
// После копирования команда ждёт clear_after и очищает буфер, если в нём
// всё ещё лежит скопированный текст. --clear-after 0 отключает очистку.
// Ctrl+C отменяет ожидание, буфер при этом не трогается.
//
//	fastfill copy "Work mail"
//	fastfill copy "PIN" --clear-after 30s
func NewCopyCmd(app *App) *cobra.Command {
	var (
		clearAfter        time.Duration
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "copy <title>",
		Short: "Скопировать запись в буфер обмена",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readEntry(cmd, app, args[0], passwordFromStdin)
			if err != nil {
				return err
			}

			after := app.Settings.Clipboard.Delay()
			if cmd.Flags().Changed("clear-after") {
				after = clearAfter
			}

			m := clipboard.NewManager(NewClipboard(), app.Log)
			done, err := m.Copy(content, after)
			if err != nil {
				return err
			}

			if after <= 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "copied %q\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "copied %q, clipboard clears in %s\n", args[0], after)

			select {
			case <-done:
			case <-cmd.Context().Done():
				m.Stop()
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&clearAfter, "clear-after", 0, "clear the clipboard after this delay (0 disables)")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	return cmd
}
