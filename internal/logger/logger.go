package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"blogsphere/internal/config"
)

// New builds the process logger. Unknown levels fall back to info; format
// "json" switches to the JSON formatter, anything else logs plain text.
func New(cfg config.Log) *logrus.Logger {
	return newWithOutput(cfg, os.Stderr)
}

func newWithOutput(cfg config.Log, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
