package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// ********************************************************
// ********* LOGGING **************************************
// ********************************************************

// DefaultLogFile is where SetLogOutput('f') and SetLogOutput('b') write
const DefaultLogFile = "/tmp/mcp-geometry.log"

var showDateTime bool
var defaultLogger *Logger
var logFile *os.File

type LogLevel int

const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorOrange  = "\033[38;5;208m"
)

const (
	DEBUG LogLevel = iota
	INFO
	INFORM
	HIGHLIGHT
	WARN
	ERROR
	FATAL
)

// entry field keys handed from Logger.log to the formatter
const (
	fieldLevel  = "mcp_level"
	fieldCaller = "mcp_caller"
	fieldJSON   = "mcp_json"
)

// Logger sends levelled messages to a logrus logger. INFORM and HIGHLIGHT are
// finer shades of INFO so they are carried on the entry for the formatter.
type Logger struct {
	backend *logrus.Logger
	level   LogLevel
}

func init() {
	defaultLogger = NewLogger(INFO)
	showDateTime = false
}

func NewLogger(level LogLevel) *Logger {
	backend := logrus.New()
	backend.SetOutput(os.Stderr)
	backend.SetLevel(logrus.DebugLevel)
	backend.SetFormatter(&lineFormatter{})
	return &Logger{
		backend: backend,
		level:   level,
	}
}

// Default returns the package level logger used by Debug, Info etc.
func Default() *Logger {
	return defaultLogger
}

func SetShowDateTime(value bool) {
	showDateTime = value
}

// SetLevel sets the minimum level the default logger writes
func SetLevel(level LogLevel) {
	defaultLogger.level = level
}

// SetOutput points the default logger at w
func SetOutput(w io.Writer) {
	defaultLogger.backend.SetOutput(w)
}

// SetLogOutput sets the output destination for logs
// 'c' for console, 'f' for file, 'b' for both.
// Console output goes to stderr since stdout carries the JSON-RPC stream.
func SetLogOutput(outputType rune) error {
	return SetLogOutputFile(outputType, DefaultLogFile)
}

// SetLogOutputFile is SetLogOutput with a chosen log file path
func SetLogOutputFile(outputType rune, path string) error {
	// Close any existing log file
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}

	switch outputType {
	case 'c':
		SetOutput(os.Stderr)
	case 'f', 'b':
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		logFile = f
		if outputType == 'f' {
			SetOutput(f)
		} else {
			SetOutput(io.MultiWriter(os.Stderr, f))
		}
	default:
		return fmt.Errorf("invalid log output type: %c", outputType)
	}
	return nil
}

// ParseLevel turns a level name such as "debug" or "WARN" into a LogLevel
func ParseLevel(name string) (LogLevel, error) {
	for l := DEBUG; l <= FATAL; l++ {
		if strings.EqualFold(l.String(), name) {
			return l, nil
		}
	}
	return INFO, fmt.Errorf("unknown log level: %s", name)
}

func (l *Logger) log(level LogLevel, format string, v ...any) {
	if level < l.level {
		return
	}

	// Get caller information
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	}

	var msg string
	var jsonObjects []string

	if len(v) > 0 {
		// Process arguments, converting non-primitives to JSON
		processedArgs, jsonStrings := processArgs(v...)
		jsonObjects = jsonStrings

		if len(processedArgs) > 0 {
			msg = fmt.Sprintf("%s %s", format, strings.Join(processedArgs, " "))
		} else {
			msg = format
		}
	} else {
		msg = format
	}

	entry := l.backend.WithFields(logrus.Fields{
		fieldLevel:  level,
		fieldCaller: fmt.Sprintf("%s:%d", filepath.Base(file), line),
		fieldJSON:   jsonObjects,
	})
	entry.Log(level.logrusLevel(), msg)
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case INFORM:
		return "INFORM"
	case HIGHLIGHT:
		return "HIGHLIGHT"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) color() string {
	switch l {
	case DEBUG:
		return colorBlue
	case INFO:
		return colorGreen
	case INFORM:
		return colorMagenta
	case HIGHLIGHT:
		return colorCyan
	case WARN:
		return colorYellow
	case ERROR:
		return colorOrange
	case FATAL:
		return colorRed
	default:
		return colorReset
	}
}

// FATAL is logged at logrus' error level, Fatal exits itself after logging
func (l LogLevel) logrusLevel() logrus.Level {
	switch l {
	case DEBUG:
		return logrus.DebugLevel
	case INFO, INFORM, HIGHLIGHT:
		return logrus.InfoLevel
	case WARN:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

// lineFormatter writes "[LEVEL] file:line: message" with the message coloured,
// followed by one line per JSON rendered argument
type lineFormatter struct{}

func (f *lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	level, ok := e.Data[fieldLevel].(LogLevel)
	if !ok {
		level = INFO
	}
	caller, _ := e.Data[fieldCaller].(string)
	jsonObjects, _ := e.Data[fieldJSON].([]string)

	prefix := ""
	if showDateTime {
		prefix = e.Time.Format("2006/01/02 15:04:05") + " "
	}

	var b bytes.Buffer
	for _, m := range append([]string{e.Message}, jsonObjects...) {
		fmt.Fprintf(&b, "%s[%s] %s: %s%s%s\n", prefix, level.String(), caller, level.color(), m, colorReset)
	}
	return b.Bytes(), nil
}

// processArgs processes arguments, converting non-primitives to JSON
// Returns a slice of string representations for primitive types and a slice of JSON strings for complex types
func processArgs(args ...any) ([]string, []string) {
	if len(args) == 0 {
		return nil, nil
	}

	var primitives []string
	var jsonObjects []string

	for _, arg := range args {
		if isPrimitive(arg) {
			switch v := arg.(type) {
			case float32:
				primitives = append(primitives, fmt.Sprintf("%.2f", v))
			case float64:
				primitives = append(primitives, fmt.Sprintf("%.2f", v))
			case error:
				primitives = append(primitives, v.Error())
			case nil:
				primitives = append(primitives, "nil")
			default:
				primitives = append(primitives, fmt.Sprintf("%v", v))
			}
			continue
		}
		jsonBytes, err := json.MarshalIndent(arg, "", "  ")
		if err != nil {
			primitives = append(primitives, fmt.Sprintf("%v", arg))
			continue
		}
		primitives = append(primitives, fmt.Sprintf("[Object of type %s]", reflect.TypeOf(arg)))
		jsonObjects = append(jsonObjects, string(jsonBytes))
	}
	return primitives, jsonObjects
}

// isPrimitive checks if a value is a primitive type
func isPrimitive(v any) bool {
	if v == nil {
		return true
	}

	switch v.(type) {
	case string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, error, os.Signal:
		return true
	default:
		return false
	}
}

// Convenience methods using the default logger
func Debug(format string, v ...any) {
	defaultLogger.log(DEBUG, format, v...)
}

func Info(format string, v ...any) {
	defaultLogger.log(INFO, format, v...)
}

func Inform(format string, v ...any) {
	defaultLogger.log(INFORM, format, v...)
}

func Highlight(format string, v ...any) {
	defaultLogger.log(HIGHLIGHT, format, v...)
}

func Warn(format string, v ...any) {
	defaultLogger.log(WARN, format, v...)
}

func Error(format string, v ...any) {
	defaultLogger.log(ERROR, format, v...)
}

func Fatal(format string, v ...any) {
	defaultLogger.log(FATAL, format, v...)
	os.Exit(1)
}
