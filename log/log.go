// Package log writes structured application logs to a daily file.
// Until Setup enables persistence every emission is discarded, so
// callers can log unconditionally.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var logger = newDiscarding()

func newDiscarding() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Setup points the logger at today's file under where.Logs when
// persistent logging is configured. Level and format come from the
// logs.* configuration keys.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		return nil
	}

	name := time.Now().Format("2006-01-02") + ".log"
	file, err := filesystem.API().OpenFile(
		filepath.Join(where.Logs(), name),
		os.O_WRONLY|os.O_CREATE|os.O_APPEND,
		0644,
	)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	logger.SetOutput(file)

	if viper.GetBool(key.LogsJson) {
		logger.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return nil
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}

func Warn(args ...any) {
	logger.Warn(args...)
}

func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Debug(args ...any) {
	logger.Debug(args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}
