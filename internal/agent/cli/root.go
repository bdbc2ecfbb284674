// Package cli реализует командный интерфейс (CLI) FastFill.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку настроек, создание логгера и сервиса хранилища;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета - функция Execute.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/config"
	"github.com/IvanChernomyrdin/fastfill/internal/agent/memory"
	"github.com/IvanChernomyrdin/fastfill/internal/agent/service"
	"github.com/IvanChernomyrdin/fastfill/internal/agent/store"
	"github.com/IvanChernomyrdin/fastfill/internal/shared/logger"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// Экземпляр App создаётся при построении root-команды, заполняется
// в PersistentPreRunE и передаётся в подкоманды.
type App struct {
	// ConfigPath - путь к settings.yaml. Пустой означает путь по умолчанию.
	ConfigPath string
	// StorePath переопределяет store_path из настроек.
	// ":memory:" - хранилище только в памяти процесса.
	StorePath string
	// Category - категория из флага -c. Пустая означает первую категорию.
	Category string

	Settings *config.Settings
	Log      *logger.Logger
	Svc      *service.Service
}

// Init загружает настройки, создаёт логгер и открывает хранилище.
func (app *App) Init() error {
	path := app.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	s, err := config.Load(path)
	if err != nil {
		return err
	}
	if app.StorePath != "" {
		s.StorePath = app.StorePath
	}
	app.Settings = s
	app.Log = NewLogger(s.LoggerOptions())

	var storage service.Storage = store.NewFileStorage(s.StorePath)
	if s.StorePath == memory.Path {
		storage = memory.NewStorage(nil)
	}

	app.Svc = service.New(
		storage,
		service.Options{Language: s.Language, KDF: s.KDFParams()},
		app.Log,
	)
	return app.Svc.Open()
}

// category возвращает категорию из флага или первую категорию хранилища.
func (app *App) category() (string, error) {
	if app.Category != "" {
		return app.Category, nil
	}
	return app.Svc.DefaultCategory()
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются командой version.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "fastfill",
		Short: "FastFill - быстрые текстовые фрагменты в буфер обмена",
		Long: `FastFill CLI.

Записи (заголовок + текст) сгруппированы по категориям.
Отдельные записи можно зашифровать паролем.

Примеры:
  fastfill list
  fastfill add "Work mail" --content "ivan@example.com"
  fastfill add "PIN" --content 1234 --encrypt
  fastfill copy "PIN"
  fastfill -c Work reorder "PIN" "Work mail"
  fastfill category add Work
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Init()
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "path to settings.yaml")
	cmd.PersistentFlags().StringVar(&app.StorePath, "store", "", "path to the INI store (overrides settings)")
	cmd.PersistentFlags().StringVarP(&app.Category, "category", "c", "", "category (default: first category)")

	cmd.AddCommand(NewCategoryCmd(app))
	cmd.AddCommand(NewListCmd(app))
	cmd.AddCommand(NewAddCmd(app))
	cmd.AddCommand(NewGetCmd(app))
	cmd.AddCommand(NewCopyCmd(app))
	cmd.AddCommand(NewEditCmd(app))
	cmd.AddCommand(NewRenameCmd(app))
	cmd.AddCommand(NewDeleteCmd(app))
	cmd.AddCommand(NewReorderCmd(app))
	cmd.AddCommand(NewTokenCmd(app))
	cmd.AddCommand(NewServeCmd(app))
	cmd.AddCommand(NewStatusCmd(app))
	cmd.AddCommand(NewInitCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// SIGINT/SIGTERM отменяют контекст команды (serve, ожидание очистки буфера).
// При ошибке сообщение выводится в stderr, процесс завершается с кодом 1.
func Execute(buildVersion, buildDate string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd(buildVersion, buildDate).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
