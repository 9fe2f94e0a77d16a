package logger

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// Err embala um erro como campo estruturado.
func Err(err error) map[string]any {
	if err == nil {
		return nil
	}
	return map[string]any{"error": err.Error()}
}

// StdLogger escreve em stdout, texto ou JSON, sem deps externas.
type StdLogger struct {
	mu     sync.Mutex
	std    *log.Logger
	level  Level
	format Format
	base   map[string]any
}

type Options struct {
	Level  Level
	Format Format
	App    string
}

func New(opts Options) Logger {
	l := &StdLogger{
		std:    log.New(os.Stdout, "", 0),
		level:  opts.Level,
		format: opts.Format,
		base:   map[string]any{},
	}
	if l.format == "" {
		l.format = FormatText
	}
	if app := strings.TrimSpace(opts.App); app != "" {
		l.base["app"] = app
	}
	return l
}

// NewFromEnv monta o logger a partir de LOG_LEVEL, LOG_FORMAT e APP_NAME.
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

func (l *StdLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}

	// cópia rasa: compartilha std, level e format
	child := &StdLogger{
		std:    l.std,
		level:  l.level,
		format: l.format,
		base:   mergeFields(l.base, fields),
	}
	return child
}

func (l *StdLogger) Debug(msg string, fields map[string]any) { l.log(Debug, msg, fields) }
func (l *StdLogger) Info(msg string, fields map[string]any)  { l.log(Info, msg, fields) }
func (l *StdLogger) Warn(msg string, fields map[string]any)  { l.log(Warn, msg, fields) }
func (l *StdLogger) Error(msg string, fields map[string]any) { l.log(Error, msg, fields) }

func (l *StdLogger) log(lvl Level, msg string, fields map[string]any) {
	if lvl < l.level {
		return
	}

	ts := time.Now().Format(time.RFC3339Nano)
	merged := mergeFields(l.base, fields)

	var line string
	if l.format == FormatJSON {
		entry := map[string]any{"ts": ts, "level": lvl.String(), "msg": msg}
		for k, v := range merged {
			entry[k] = v
		}
		b, _ := json.Marshal(entry)
		line = string(b)
	} else {
		line = ts + " " + lvl.String() + " " + msg + formatFields(merged)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.std.Println(line)
}

func mergeFields(base, extra map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		if strings.TrimSpace(k) == "" {
			continue
		}
		merged[k] = v
	}
	return merged
}

// formatFields ordena os campos e deixa "error" por último: o relato
// de coleção corrompida fica legível no fim da linha.
func formatFields(m map[string]any) string {
	if len(m) == 0 {
		return ""
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		if k != "error" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := m["error"]; ok {
		keys = append(keys, "error")
	}

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(fmt.Sprintf(" %s=%v", k, m[k]))
	}
	return b.String()
}
