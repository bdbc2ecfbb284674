package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCategoryCmd создаёт группу команд для работы с категориями.
//
//	fastfill category list
//	fastfill category add Work
//	fastfill category rename Work Office
//	fastfill category delete Office
//	fastfill category reorder Office "Category 1"
func NewCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Управление категориями",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Список категорий по порядку",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := app.Svc.Categories()
			if err != nil {
				return err
			}
			for i, n := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i+1, n)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Добавить категорию в конец списка",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Svc.AddCategory(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "category %q added\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Переименовать категорию",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Svc.RenameCategory(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "category %q renamed to %q\n", args[0], args[1])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Удалить категорию вместе с записями",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Svc.DeleteCategory(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "category %q deleted\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reorder <name>...",
		Short: "Задать новый порядок всех категорий",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Svc.ReorderCategories(args)
		},
	})

	return cmd
}
