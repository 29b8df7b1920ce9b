package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/maxaizer/job-ingest/internal/config"
	log "github.com/sirupsen/logrus"
)

const ErrorTypeField = "error_type"

const (
	ErrorTypeDb       = "db"
	ErrorTypeAiApi    = "ai_api"
	ErrorTypeProvider = "provider"
	ErrorTypeTgApi    = "tg_api"
	ErrorTypeBuild    = "build"
)

var logFile *os.File

// Setup sends logs to stderr and the configured file. Stdout is reserved for command output.
func Setup(cfg config.LoggerConfig) {

	var output io.Writer = os.Stderr

	if cfg.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.OutputFile), 0755); err != nil {
			log.Fatalf("Failed to create log directory: %v", err)
		}

		file, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		logFile = file
		output = io.MultiWriter(os.Stderr, logFile)
	}

	log.SetOutput(output)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000 -0700",
	})
	addPrometheusHook()

	log.SetLevel(levelOf(cfg.LogLevel))
}

func levelOf(level config.LogLevel) log.Level {
	switch level {
	case config.LevelInfo:
		return log.InfoLevel
	case config.LevelDebug:
		return log.DebugLevel
	case config.LevelWarning:
		return log.WarnLevel
	case config.LevelError:
		return log.ErrorLevel
	case config.LevelFatal:
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

func Cleanup() {
	if logFile != nil {
		_ = logFile.Close()
	}
}
