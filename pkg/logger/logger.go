package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log *logrus.Logger

// Init инициализирует глобальный логгер.
// Эта функция должна быть вызвана один раз при старте приложения в main.go.
func Init() {
	Log = logrus.New()

	// 1. Устанавливаем уровень логирования из переменной окружения.
	// По умолчанию - "info". Для отладки можно выставить "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Устанавливаем форматтер.
	// "json" - для продакшена и сбора логов.
	// "text" - для удобной разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	// 3. Устанавливаем, куда писать логи (в стандартный вывод).
	Log.SetOutput(os.Stdout)
}

// DefaultLogFile - куда пишет терминальный бинарник, если LOG_FILE не задан
const DefaultLogFile = "bombquest.log"

// LogFilePath возвращает путь из LOG_FILE или DefaultLogFile
func LogFilePath() string {
	if path, ok := os.LookupEnv("LOG_FILE"); ok && path != "" {
		return path
	}
	return DefaultLogFile
}

// UseFile перенаправляет логи в файл (терминал занят игровым экраном).
// Возвращает функцию закрытия файла.
func UseFile(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	if formatter, ok := Log.Formatter.(*logrus.TextFormatter); ok {
		formatter.ForceColors = false
		formatter.DisableColors = true
	}
	Log.SetOutput(f)
	return f.Close, nil
}
