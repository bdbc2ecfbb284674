// Package logger содержит общий логгер для CLI и локального HTTP API.
//
// Пакет предоставляет Zap-логгер, настроенный на запись в файл с ротацией
// (lumberjack), и удобный метод для логирования HTTP-запросов.
package logger

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName - имя лог-файла в каталоге приложения.
const FileName = "FastFill_app.log"

// Options описывает, куда и как писать логи.
type Options struct {
	// File - полный путь к лог-файлу.
	File string
	// Level - debug|info|warn|error. Пустое значение означает info.
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Logger представляет обёртку над zap.Logger.
//
// Встраивание *zap.Logger позволяет использовать все методы zap напрямую.
type Logger struct {
	*zap.Logger
}

// New создаёт файловый zap-логгер.
//
// Для файла включена ротация (MaxSize/MaxBackups/MaxAge).
// Формат времени: "HH:MM:SS DD.MM.YYYY".
// Если каталог для файла создать не удалось, возвращается Nop-логгер:
// отсутствие логов не должно мешать работе с хранилищем.
func New(opts Options) *Logger {
	if opts.File == "" {
		return NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
		return NewNop()
	}

	// lumberjack отвечает за ротацию файлов
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    valueOr(opts.MaxSizeMB, 10),
		MaxBackups: valueOr(opts.MaxBackups, 3),
		MaxAge:     valueOr(opts.MaxAgeDays, 30),
		Compress:   opts.Compress,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = customTimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		writer,
		ParseLevel(opts.Level),
	)

	return &Logger{Logger: zap.New(core, zap.AddCaller())}
}

// NewNop возвращает логгер, который ничего не пишет.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// ParseLevel переводит строковый уровень в zapcore.Level.
// Неизвестные значения трактуются как info.
func ParseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// LogRequest записывает структурированный лог об HTTP-запросе.
//
// method и uri - параметры запроса,
// status - HTTP-статус ответа,
// responseSize - размер ответа в байтах,
// duration - длительность обработки запроса в миллисекундах.
func (logger *Logger) LogRequest(method, uri string, status, responseSize int, duration float64) {
	logger.Info("HTTP request",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Int("status", status),
		zap.Int("response_size", responseSize),
		zap.Float64("duration_ms", duration),
	)
}

// customTimeEncoder форматирует время для логов в виде "HH:MM:SS DD.MM.YYYY".
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05 02.01.2006"))
}

func valueOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
