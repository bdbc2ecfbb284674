package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRenameCmd создаёт команду переименования записи.
//
//	fastfill rename "Work mail" "Mail"
func NewRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Переименовать запись",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.category()
			if err != nil {
				return err
			}
			if err := app.Svc.RenameEntry(cat, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "renamed %q to %q\n", args[0], args[1])
			return nil
		},
	}
}

// NewDeleteCmd создаёт команду удаления записи.
func NewDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <title>",
		Short: "Удалить запись",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.category()
			if err != nil {
				return err
			}
			if err := app.Svc.DeleteEntry(cat, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %q\n", args[0])
			return nil
		},
	}
}

// NewReorderCmd создаёт команду перестановки записей.
// Нужно перечислить все заголовки категории в новом порядке.
//
//	fastfill reorder "PIN" "Work mail"
func NewReorderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <title>...",
		Short: "Задать новый порядок записей категории",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.category()
			if err != nil {
				return err
			}
			return app.Svc.ReorderEntries(cat, args)
		},
	}
}
