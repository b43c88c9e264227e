package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New возвращает JSON-логгер в stdout. Некорректный уровень заменяется на info.
func New(logLevel string) *logrus.Logger {
	return newLogger(os.Stdout, logLevel)
}

func newLogger(out io.Writer, logLevel string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		},
	})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("log_level", logLevel).Warn("Unknown log level, falling back to info")
		return log
	}
	log.SetLevel(level)
	return log
}
