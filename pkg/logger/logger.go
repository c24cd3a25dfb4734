package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Logger is a leveled key/value logger. Child loggers created with
// WithField/WithFields share the parent's level.
type Logger struct {
	level  *levelVar
	format string
	logger *log.Logger
	fields map[string]interface{}
}

type levelVar struct {
	mu    sync.RWMutex
	level LogLevel
}

func (v *levelVar) get() LogLevel {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.level
}

func (v *levelVar) set(level LogLevel) {
	v.mu.Lock()
	v.level = level
	v.mu.Unlock()
}

type Config struct {
	Level  LogLevel
	Output io.Writer
	Format string // "json" or "text" (default)
}

// New returns a logger with the process-wide settings, INFO text on stderr
// until Configure is called. Stdout is left to the program a container
// eventually execs.
func New() *Logger {
	defaultMu.RLock()
	config := defaultConfig
	defaultMu.RUnlock()
	return NewWithConfig(config)
}

func NewWithConfig(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}
	if config.Format != FormatJSON {
		config.Format = FormatText
	}

	return &Logger{
		level:  &levelVar{level: config.Level},
		format: config.Format,
		// no default prefix/flags, we'll format ourselves
		logger: log.New(config.Output, "", 0),
		fields: make(map[string]interface{}),
	}
}

func (l *Logger) WithFields(keyVals ...interface{}) *Logger {
	newLogger := &Logger{
		level:  l.level,
		format: l.format,
		logger: l.logger,
		fields: make(map[string]interface{}, len(l.fields)+len(keyVals)/2),
	}

	for k, v := range l.fields {
		newLogger.fields[k] = v
	}
	mergeKeyVals(newLogger.fields, keyVals)

	return newLogger
}

// WithField returns a new logger with a single additional context field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(key, value)
}

func (l *Logger) Debug(msg string, keyVals ...interface{}) {
	l.log(DEBUG, msg, keyVals...)
}

func (l *Logger) Info(msg string, kv ...interface{}) {
	l.log(INFO, msg, kv...)
}

func (l *Logger) Warn(msg string, kv ...interface{}) {
	l.log(WARN, msg, kv...)
}

func (l *Logger) Error(msg string, kv ...interface{}) {
	l.log(ERROR, msg, kv...)
}

func (l *Logger) log(level LogLevel, msg string, kv ...interface{}) {
	if level < l.level.get() {
		return
	}

	allFields := make(map[string]interface{}, len(l.fields)+len(kv)/2)
	for k, v := range l.fields {
		allFields[k] = v
	}
	mergeKeyVals(allFields, kv)

	timestamp := time.Now().Format(timestampLayout)

	var line string
	if l.format == FormatJSON {
		line = formatJSONLine(timestamp, level, msg, allFields)
	} else {
		line = formatTextLine(timestamp, level, msg, allFields)
	}

	l.logger.Print(line)
}

func mergeKeyVals(dst map[string]interface{}, kv []interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		dst[fmt.Sprintf("%v", kv[i])] = kv[i+1]
	}
}

func sortedKeys(fields map[string]interface{}) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatTextLine(timestamp string, level LogLevel, msg string, fields map[string]interface{}) string {
	parts := []string{
		fmt.Sprintf("[%s]", timestamp),
		fmt.Sprintf("[%s]", level.String()),
		msg,
	}

	if len(fields) > 0 {
		fieldParts := make([]string, 0, len(fields))
		for _, key := range sortedKeys(fields) {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", key, formatValue(fields[key])))
		}
		parts = append(parts, "| "+strings.Join(fieldParts, " "))
	}

	return strings.Join(parts, " ")
}

func formatJSONLine(timestamp string, level LogLevel, msg string, fields map[string]interface{}) string {
	record := make(map[string]interface{}, len(fields)+3)
	for k, v := range fields {
		switch tv := v.(type) {
		case error:
			record[k] = tv.Error()
		case time.Duration:
			record[k] = tv.String()
		case fmt.Stringer:
			record[k] = tv.String()
		default:
			record[k] = v
		}
	}
	record["time"] = timestamp
	record["level"] = level.String()
	record["msg"] = msg

	data, err := json.Marshal(record)
	if err != nil {
		return formatTextLine(timestamp, level, msg, map[string]interface{}{"logError": err})
	}
	return string(data)
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		// Quote strings that contain spaces
		if strings.Contains(v, " ") {
			return fmt.Sprintf(`"%s"`, v)
		}
		return v
	case error:
		return fmt.Sprintf(`"%s"`, v.Error())
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format("2006-01-02T15:04:05Z07:00")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level.set(level)
}

func (l *Logger) GetLevel() LogLevel {
	return l.level.get()
}

func (l *Logger) IsDebugEnabled() bool {
	return l.level.get() <= DEBUG
}

var (
	defaultMu     sync.RWMutex
	defaultConfig = Config{Level: INFO, Output: os.Stderr, Format: FormatText}
)

// global logger instance for the convenience
var globalLogger = New()

// Configure sets the process-wide settings. Loggers created afterwards with
// New, including every component logger, use them.
func Configure(config Config) {
	defaultMu.Lock()
	defaultConfig = config
	defaultMu.Unlock()
	globalLogger = NewWithConfig(config)
}

func Debug(msg string, keyvals ...interface{}) {
	globalLogger.Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	globalLogger.Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	globalLogger.Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	globalLogger.Error(msg, keyvals...)
}

func WithFields(keyvals ...interface{}) *Logger {
	return globalLogger.WithFields(keyvals...)
}

func WithField(key string, value interface{}) *Logger {
	return globalLogger.WithField(key, value)
}

func SetLevel(level LogLevel) {
	globalLogger.SetLevel(level)
}

func ParseLevel(level string) (LogLevel, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level: %s", level)
	}
}

// OpenOutput resolves a logging output setting: "stderr", "stdout", or a
// file path opened for appending.
func OpenOutput(output string) (io.Writer, error) {
	switch strings.ToLower(output) {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
	if err != nil {
		return nil, fmt.Errorf("failed to open log output %s: %w", output, err)
	}
	return f, nil
}
