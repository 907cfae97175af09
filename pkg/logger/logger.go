package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log = logrus.New()

// Файл, открытый предыдущим Configure
var logFile *os.File

// Options задают параметры логгера. Пустые поля означают значения по умолчанию,
// переменные окружения LOG_LEVEL, LOG_FORMAT и LOG_FILE имеют приоритет.
type Options struct {
	Level  string
	Format string
	File   string
}

// Init инициализирует глобальный логгер только из переменных окружения.
// Должна быть вызвана один раз при старте (или в TestMain).
func Init() {
	if err := Configure(Options{}); err != nil {
		Log.WithError(err).Warn("Logger fell back to stdout")
	}
}

// Configure применяет опции к глобальному логгеру.
// Терминальный хост пишет лог в файл: stdout занят экраном.
func Configure(opts Options) error {
	Close()
	Log = logrus.New()

	// 1. Уровень: env > конфиг > "info".
	levelName := envOr("LOG_LEVEL", opts.Level, "info")
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер: "json" для сбора логов, иначе текст.
	if strings.ToLower(envOr("LOG_FORMAT", opts.Format, "text")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	// 3. Куда писать.
	path := envOr("LOG_FILE", opts.File, "")
	if path == "" {
		Log.SetOutput(os.Stdout)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		Log.SetOutput(os.Stdout)
		return err
	}
	logFile = f
	Log.SetOutput(f)
	return nil
}

// Close закрывает файл лога, если он был открыт. Вывод переключается на stdout.
func Close() {
	if logFile == nil {
		return
	}
	Log.SetOutput(os.Stdout)
	if err := logFile.Close(); err != nil {
		Log.WithError(err).Warn("Failed to close log file")
	}
	logFile = nil
}

// SetOutput перенаправляет вывод (используется в тестах).
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

func envOr(key, configured, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	if configured != "" {
		return configured
	}
	return fallback
}
