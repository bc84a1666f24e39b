package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger *logrus.Logger

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text, simple, or compact

	// File, when set, receives a copy of every line with size-based rotation
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty"`
}

// CompactFormatter implements a custom formatter for compact logging
type CompactFormatter struct {
	ShowTime bool
}

// Format renders a single log entry
func (f *CompactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	if f.ShowTime {
		b.WriteString(fmt.Sprintf("[%s]", entry.Time.Format("15:04:05")))
	}

	level := strings.ToUpper(entry.Level.String())
	b.WriteString(fmt.Sprintf("[%s]", level))

	// Component and listener go in brackets
	component, hasComponent := entry.Data["component"]
	listener, hasListener := entry.Data["listener"]

	if hasComponent {
		b.WriteString(fmt.Sprintf("[%s]", component))
	}
	if hasListener {
		b.WriteString(fmt.Sprintf("[%s]", listener))
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	remainingFields := make(map[string]interface{})
	for k, v := range entry.Data {
		if k != "component" && k != "listener" {
			remainingFields[k] = v
		}
	}

	if len(remainingFields) > 0 {
		b.WriteString(" (")

		// Sort fields for consistent output
		keys := make([]string, 0, len(remainingFields))
		for k := range remainingFields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("%s=%v", key, remainingFields[key]))
		}
		b.WriteString(")")
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// InitLogger initializes the global logger with the provided configuration
func InitLogger(config LogConfig) {
	Logger = logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		// Default to info if invalid level
		level = logrus.InfoLevel
		Logger.Warnf("Invalid log level '%s', defaulting to 'info'", config.Level)
	}
	Logger.SetLevel(level)

	switch strings.ToLower(config.Format) {
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	case "simple":
		Logger.SetFormatter(&CompactFormatter{ShowTime: false})
	case "compact":
		Logger.SetFormatter(&CompactFormatter{ShowTime: true})
	case "text", "":
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
		Logger.Warnf("Invalid log format '%s', defaulting to 'text'", config.Format)
	}

	Logger.SetOutput(outputFor(config))

	Logger.Infof("Logger initialized with level: %s, format: %s", level.String(), config.Format)
}

// outputFor returns stdout, tee'd into a rotating file when one is configured
func outputFor(config LogConfig) io.Writer {
	if config.File == "" {
		return os.Stdout
	}

	rotator := &lumberjack.Logger{
		Filename:   config.File,
		MaxSize:    valueOr(config.MaxSizeMB, 100),
		MaxBackups: valueOr(config.MaxBackups, 3),
		MaxAge:     valueOr(config.MaxAgeDays, 28),
		Compress:   true,
	}
	return io.MultiWriter(os.Stdout, rotator)
}

func valueOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	if Logger == nil {
		// Initialize with default config if not already initialized
		InitLogger(LogConfig{
			Level:  "info",
			Format: "text",
		})
	}
	return Logger
}

// Helper functions for common logging patterns
func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField("component", component)
}

func WithComponentAndListener(component, listener string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"component": component,
		"listener":  listener,
	})
}

func WithError(err error) *logrus.Entry {
	return GetLogger().WithError(err)
}
