package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New создает логгер сервиса: JSON и Info-уровень для продакшена.
// Режим окружения определяется той же переменной, что и у gin.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))
	l.SetLevel(logrus.InfoLevel)

	// вне релиза читаемый текстовый вывод и Debug
	if os.Getenv("GIN_MODE") != "release" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(new(logrus.TextFormatter))
	}

	return l
}
