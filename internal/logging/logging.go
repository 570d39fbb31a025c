// Package logging configures the global zerolog logger. While the TUI
// owns the terminal, log output goes to a rotating file next to the
// database; console output is only enabled for non-interactive commands.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFile    = "igire.log"
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 30
)

// Setup configures the global logger. When console is true, log lines
// are written to stderr in addition to the rotating file.
func Setup(level string, logFilePath string, console bool) {
	applyLevel(level)

	if logFilePath == "" {
		logFilePath = defaultLogFile
	}

	fileWriter := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAgeDays,
	}

	fileConsole := zerolog.ConsoleWriter{
		Out:        fileWriter,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}

	if console {
		stderrConsole := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		log.Logger = zerolog.New(zerolog.MultiLevelWriter(stderrConsole, fileConsole)).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(fileConsole).With().Timestamp().Logger()
}

func applyLevel(level string) {
	switch level {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// FilePathForDB returns a log file path that lives alongside the
// database file.
func FilePathForDB(dbPath string) string {
	if dbPath == "" {
		return defaultLogFile
	}
	absDBPath, err := filepath.Abs(dbPath)
	if err != nil {
		return filepath.Join(filepath.Dir(dbPath), defaultLogFile)
	}
	return filepath.Join(filepath.Dir(absDBPath), defaultLogFile)
}
