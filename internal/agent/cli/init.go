package cli

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/config"
)

// NewInitCmd создаёт команду начальной настройки.
//
// Команда записывает settings.yaml со значениями по умолчанию и случайным
// ключом подписи API, затем создаёт хранилище по умолчанию.
// Существующий файл настроек перезаписывается только с --force.
//
// KDF задаётся для всего хранилища и в конверте записи не сохраняется:
// записи, зашифрованные при другом crypto.kdf, не расшифруются.
// Для хранилищ прежней версии FastFill нужен --kdf pbkdf2-sha256.
//
//	fastfill init
//	fastfill init --language de
//	fastfill init --kdf pbkdf2-sha256
func NewInitCmd(app *App) *cobra.Command {
	var (
		force    bool
		language string
		kdf      string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Создать settings.yaml и хранилище по умолчанию",
		Args:  cobra.NoArgs,
		// настроек ещё нет: root PersistentPreRunE здесь не нужен
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.ConfigPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			key, err := newSigningKey()
			if err != nil {
				return err
			}

			s := &config.Settings{Language: language, AppDir: filepath.Dir(path)}
			s.Crypto.KDF = kdf
			if app.StorePath != "" {
				s.StorePath = app.StorePath
			}
			config.ApplyDefaults(s)
			s.API.SigningKey = key
			if err := s.Validate(); err != nil {
				return err
			}
			if err := config.Save(path, s); err != nil {
				return err
			}

			app.ConfigPath = path
			if err := app.Init(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "settings: %s\nstore: %s\nkdf: %s\n", path, app.Settings.StorePath, app.Settings.Crypto.KDF)
			fmt.Fprintln(cmd.OutOrStdout(),
				"note: encrypted entries only decrypt with this kdf; do not change crypto.kdf once entries exist")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing settings file")
	cmd.Flags().StringVar(&language, "language", "en", "language of the default store (en|de)")
	cmd.Flags().StringVar(&kdf, "kdf", "", "key derivation for encrypted entries (argon2id|pbkdf2-sha256); pbkdf2-sha256 reads stores of the previous FastFill")
	return cmd
}

// newSigningKey возвращает 32 случайных байта в hex.
func newSigningKey() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
