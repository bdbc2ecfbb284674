package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/store"
)

// NewListCmd создаёт команду вывода записей категории.
//
// Зашифрованные записи помечаются значком замка. Содержимое не выводится.
//
//	fastfill list
//	fastfill -c Work list
func NewListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Список записей категории",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.category()
			if err != nil {
				return err
			}
			entries, err := app.Svc.Entries(cat)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no entries in %q (run: fastfill add)\n", cat)
				return nil
			}
			for _, e := range entries {
				title := e.Title
				if e.Encrypted {
					title += store.LockGlyph
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", e.Position, title)
			}
			return nil
		},
	}
}
