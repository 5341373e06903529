package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{})

	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // fall back when the configured level is invalid
	}
	log.SetLevel(level)
	return log
}
