package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStatusCmd создаёт команду проверки локального HTTP API.
//
// Команда обращается к /health по адресу из настроек. Ошибкой считается
// только неудачная загрузка настроек: недоступный сервер - это статус.
//
//	fastfill status
func NewStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Проверить, запущен ли HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := "http://" + app.Settings.API.Addr()

			if err := NewAPIClient(url, "").Health(); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "api: not running on %s\n", url)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "api: running on %s\n", url)
			return nil
		},
	}
}
