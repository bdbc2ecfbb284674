// Package config отвечает за настройки FastFill:
//   - каталог приложения ($FASTFILL_HOME или <UserConfigDir>/FastFill);
//   - чтение settings.yaml и необязательного .env рядом с ним;
//   - подстановку переменных окружения вида ${FASTFILL_API_KEY};
//   - дефолты, переопределения из окружения и валидацию.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/crypto"
	"github.com/IvanChernomyrdin/fastfill/internal/agent/store"
	"github.com/IvanChernomyrdin/fastfill/internal/shared/logger"
)

const (
	// AppDirName - имя каталога приложения внутри UserConfigDir.
	AppDirName = "FastFill"
	// FileName - имя файла настроек.
	FileName = "settings.yaml"
	// HomeEnv переопределяет каталог приложения.
	HomeEnv = "FASTFILL_HOME"
)

// Settings - корневая структура настроек.
type Settings struct {
	Language  string          `yaml:"language"` // en|de
	StorePath string          `yaml:"store_path"`
	Log       LogConfig       `yaml:"log"`
	Crypto    CryptoConfig    `yaml:"crypto"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
	API       APIConfig       `yaml:"api"`

	// AppDir - каталог, из которого прочитан файл. В YAML не пишется.
	AppDir string `yaml:"-"`
}

// LogConfig - настройки файлового логгера (zap + lumberjack).
type LogConfig struct {
	Level      string `yaml:"level"` // debug|info|warn|error
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// CryptoConfig - какой KDF используется для всего хранилища.
type CryptoConfig struct {
	KDF    string       `yaml:"kdf"` // argon2id|pbkdf2-sha256
	Argon2 Argon2Config `yaml:"argon2"`
	PBKDF2 PBKDF2Config `yaml:"pbkdf2"`
}

// Argon2Config - параметры argon2id.
type Argon2Config struct {
	Time      uint32 `yaml:"time"`
	MemoryKiB uint32 `yaml:"memory_kib"`
	Threads   uint8  `yaml:"threads"`
}

// PBKDF2Config - параметры pbkdf2-sha256 (хранилища старых версий).
type PBKDF2Config struct {
	Iterations int `yaml:"iterations"`
}

// ClipboardConfig - очистка буфера обмена после копирования.
type ClipboardConfig struct {
	// nil - ключа нет в файле, берётся 10s; явный 0 отключает очистку.
	ClearAfter *time.Duration `yaml:"clear_after,omitempty"`
}

// DefaultClearAfter - задержка очистки буфера, если clear_after не задан.
const DefaultClearAfter = 10 * time.Second

// Delay возвращает задержку очистки буфера. 0 - не очищать.
func (c ClipboardConfig) Delay() time.Duration {
	if c.ClearAfter == nil {
		return DefaultClearAfter
	}
	return *c.ClearAfter
}

// APIConfig - локальный HTTP API.
type APIConfig struct {
	Host              string        `yaml:"host"`
	Port              int           `yaml:"port"`
	Issuer            string        `yaml:"issuer"`
	Audience          string        `yaml:"audience"`
	SigningKey        string        `yaml:"signing_key"` // может содержать ${FASTFILL_API_KEY}
	TokenTTL          time.Duration `yaml:"token_ttl"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
}

// AppDir возвращает каталог приложения.
func AppDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv(HomeEnv)); v != "" {
		return v, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName), nil
}

// DefaultPath возвращает путь к settings.yaml в каталоге приложения.
func DefaultPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load читает настройки из path.
//
// Если файла нет, используются значения по умолчанию.
// .env из того же каталога загружается, если он есть, и не перекрывает
// уже заданные переменные окружения.
func Load(path string) (*Settings, error) {
	dir := filepath.Dir(path)
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	var s Settings
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		// store_path: "${HOME}/snippets.ini" -> реальный путь
		expanded := ExpandEnvStrict(string(raw))
		if err := yaml.Unmarshal([]byte(expanded), &s); err != nil {
			return nil, fmt.Errorf("не удалось распарсить yaml: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("не удалось прочитать настройки: %w", err)
	}

	s.AppDir = dir
	ApplyDefaults(&s)
	s.ApplyEnvOverrides()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save записывает настройки в YAML. Каталог создаётся с правами 0700, файл - 0600.
func Save(path string, s *Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

var envRef = regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)

// ExpandEnvStrict заменяет ${VAR} на значение из окружения.
// Незаданная переменная остаётся как есть, Validate затем укажет на неё.
func ExpandEnvStrict(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(m string) string {
		sub := envRef.FindStringSubmatch(m)
		if len(sub) != 2 {
			return m
		}
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		return m
	})
}

// ApplyDefaults проставляет значения для незаданных полей.
func ApplyDefaults(s *Settings) {
	if s.Language == "" {
		s.Language = "en"
	}
	if s.StorePath == "" {
		s.StorePath = store.DefaultPath(s.AppDir)
	}

	if s.Log.Level == "" {
		s.Log.Level = "info"
	}
	if s.Log.File == "" {
		s.Log.File = filepath.Join(s.AppDir, logger.FileName)
	}

	def := crypto.DefaultKDFParams()
	if s.Crypto.KDF == "" {
		s.Crypto.KDF = def.Algorithm
	}
	if s.Crypto.Argon2.Time == 0 {
		s.Crypto.Argon2.Time = def.Time
	}
	if s.Crypto.Argon2.MemoryKiB == 0 {
		s.Crypto.Argon2.MemoryKiB = def.MemoryKiB
	}
	if s.Crypto.Argon2.Threads == 0 {
		s.Crypto.Argon2.Threads = def.Threads
	}
	if s.Crypto.PBKDF2.Iterations == 0 {
		s.Crypto.PBKDF2.Iterations = crypto.LegacyPBKDF2Iterations
	}

	if s.Clipboard.ClearAfter == nil {
		d := DefaultClearAfter
		s.Clipboard.ClearAfter = &d
	}

	if s.API.Host == "" {
		s.API.Host = "127.0.0.1"
	}
	if s.API.Port == 0 {
		s.API.Port = 8765
	}
	if s.API.Issuer == "" {
		s.API.Issuer = "fastfill"
	}
	if s.API.Audience == "" {
		s.API.Audience = "fastfill-api"
	}
	if s.API.TokenTTL == 0 {
		s.API.TokenTTL = time.Hour
	}
	if s.API.ReadHeaderTimeout == 0 {
		s.API.ReadHeaderTimeout = 5 * time.Second
	}
	if s.API.ShutdownTimeout == 0 {
		s.API.ShutdownTimeout = 10 * time.Second
	}
	if s.API.MaxBodyBytes == 0 {
		s.API.MaxBodyBytes = 1 << 20
	}
}

// Validate проверяет настройки. С ошибкой приложение не стартует.
func (s *Settings) Validate() error {
	switch s.Language {
	case "en", "de":
	default:
		return fmt.Errorf("language должен быть en|de (сейчас %q)", s.Language)
	}

	if strings.Contains(s.StorePath, "${") {
		return fmt.Errorf("store_path содержит неподставленную переменную: %q", s.StorePath)
	}

	if err := s.KDFParams().Validate(); err != nil {
		return fmt.Errorf("crypto: %w", err)
	}

	if s.Clipboard.Delay() < 0 {
		return errors.New("clipboard.clear_after не может быть отрицательным")
	}

	// API слушает только loopback
	if !isLoopback(s.API.Host) {
		return fmt.Errorf("api.host должен быть loopback-адресом (сейчас %q)", s.API.Host)
	}
	if s.API.Port <= 0 || s.API.Port > 65535 {
		return fmt.Errorf("api.port некорректен: %d", s.API.Port)
	}
	if s.API.TokenTTL <= 0 {
		return errors.New("api.token_ttl должен быть > 0")
	}
	if key := strings.TrimSpace(s.API.SigningKey); key != "" {
		if strings.Contains(key, "${") {
			return fmt.Errorf("api.signing_key содержит неподставленную переменную: %q", key)
		}
		if len(key) < 32 {
			return fmt.Errorf("api.signing_key слишком короткий (%d символов); нужно >= 32", len(key))
		}
	}
	return nil
}

// RequireAPIKey сообщает, настроен ли ключ подписи токенов API.
func (s *Settings) RequireAPIKey() error {
	if strings.TrimSpace(s.API.SigningKey) == "" {
		return errors.New("api.signing_key не задан (через ${FASTFILL_API_KEY} или прямо строкой)")
	}
	return nil
}

// ApplyEnvOverrides переопределяет отдельные настройки из окружения.
func (s *Settings) ApplyEnvOverrides() {
	if v := os.Getenv("FASTFILL_STORE"); v != "" {
		s.StorePath = v
	}
	if v := os.Getenv("FASTFILL_LOG_LEVEL"); v != "" {
		s.Log.Level = v
	}
	if v := os.Getenv("FASTFILL_LANGUAGE"); v != "" {
		s.Language = strings.ToLower(v)
	}
	if v := os.Getenv("FASTFILL_API_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			s.API.Port = p
		}
	}
}

// KDFParams собирает параметры KDF хранилища.
func (s *Settings) KDFParams() crypto.KDFParams {
	if s.Crypto.KDF == crypto.AlgorithmPBKDF2 {
		p := crypto.LegacyKDFParams()
		p.Iterations = s.Crypto.PBKDF2.Iterations
		return p
	}
	p := crypto.DefaultKDFParams()
	p.Algorithm = s.Crypto.KDF
	p.Time = s.Crypto.Argon2.Time
	p.MemoryKiB = s.Crypto.Argon2.MemoryKiB
	p.Threads = s.Crypto.Argon2.Threads
	return p
}

// LoggerOptions переводит настройки лога в опции логгера.
func (s *Settings) LoggerOptions() logger.Options {
	return logger.Options{
		File:       s.Log.File,
		Level:      s.Log.Level,
		MaxSizeMB:  s.Log.MaxSizeMB,
		MaxBackups: s.Log.MaxBackups,
		MaxAgeDays: s.Log.MaxAgeDays,
		Compress:   s.Log.Compress,
	}
}

// Addr возвращает адрес для net.Listen.
func (a APIConfig) Addr() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
