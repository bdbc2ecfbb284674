package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	serr "github.com/IvanChernomyrdin/fastfill/internal/shared/errors"
)

// readPassword читает пароль записи.
//
// По умолчанию пароль запрашивается скрытым вводом в терминале.
// С fromStdin читается первая строка STDIN (для скриптов).
// Пароль не обрезается: пробелы по краям - часть пароля, как и при вводе
// через --password-stdin или API. Пустой пароль или пароль из одних пробелов
// прерывает команду до обращения к хранилищу.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		return acceptPassword(strings.TrimRight(line, "\r\n"))
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password-stdin")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	pwBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	return acceptPassword(string(pwBytes))
}

// acceptPassword отклоняет пустой пароль и пароль из одних пробелов.
func acceptPassword(pw string) (string, error) {
	if strings.TrimSpace(pw) == "" {
		return "", serr.ErrPasswordRequired
	}
	return pw, nil
}

// withPassword вызывает fn без пароля и, если запись зашифрована,
// повторяет вызов с введённым паролем.
// С fromStdin пароль читается сразу: STDIN нельзя «спросить» повторно.
func withPassword(cmd *cobra.Command, fromStdin bool, fn func(password string) error) error {
	if fromStdin {
		pw, err := ReadPassword(cmd, true)
		if err != nil {
			return err
		}
		return fn(pw)
	}

	err := fn("")
	if !errors.Is(err, serr.ErrPasswordRequired) {
		return err
	}
	pw, err := ReadPassword(cmd, false)
	if err != nil {
		return err
	}
	return fn(pw)
}
