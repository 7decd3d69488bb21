package observability

import (
	"fmt"
	"log"
	"os"
)

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type int64Field struct {
	key string
	val int64
}

func (f int64Field) Key() string        { return f.key }
func (f int64Field) Value() interface{} { return f.val }

type float64Field struct {
	key string
	val float64
}

func (f float64Field) Key() string        { return f.key }
func (f float64Field) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

type anyField struct {
	key string
	val interface{}
}

func (f anyField) Key() string        { return f.key }
func (f anyField) Value() interface{} { return f.val }

func String(key, value string) Field        { return stringField{key, value} }
func Int(key string, value int) Field       { return intField{key, value} }
func Int64(key string, value int64) Field   { return int64Field{key, value} }
func Float64(key string, value float64) Field { return float64Field{key, value} }
func Error(key string, err error) Field     { return errorField{key, err} }
func Any(key string, value interface{}) Field { return anyField{key, value} }

type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

// StdLogger writes to the standard library logger. Debug output is dropped
// unless enabled.
type StdLogger struct {
	l      *log.Logger
	debug  bool
	fields []Field
}

// NewStdLogger returns a StdLogger writing to stderr.
func NewStdLogger(debug bool) *StdLogger {
	return &StdLogger{l: log.New(os.Stderr, "", log.LstdFlags), debug: debug}
}

func (s *StdLogger) Debug(msg string, fields ...Field) {
	if !s.debug {
		return
	}
	s.emit("DEBUG", msg, fields)
}

func (s *StdLogger) Info(msg string, fields ...Field)  { s.emit("INFO", msg, fields) }
func (s *StdLogger) Warn(msg string, fields ...Field)  { s.emit("WARN", msg, fields) }
func (s *StdLogger) Error(msg string, fields ...Field) { s.emit("ERROR", msg, fields) }

func (s *StdLogger) With(fields ...Field) Logger {
	merged := make([]Field, 0, len(s.fields)+len(fields))
	merged = append(merged, s.fields...)
	merged = append(merged, fields...)
	return &StdLogger{l: s.l, debug: s.debug, fields: merged}
}

func (s *StdLogger) emit(level, msg string, fields []Field) {
	line := level + " " + msg
	for _, f := range s.fields {
		line += fmt.Sprintf(" %s=%v", f.Key(), f.Value())
	}
	for _, f := range fields {
		line += fmt.Sprintf(" %s=%v", f.Key(), f.Value())
	}
	s.l.Print(line)
}
