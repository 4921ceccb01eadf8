package utils

import (
	"io"
	"log"
	"os"
	"time"
)

type Logger struct {
	out *log.Logger
}

func NewLogger() *Logger {
	return NewLoggerTo(os.Stderr)
}

func NewLoggerTo(w io.Writer) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{out: log.New(w, "", log.LstdFlags|log.LUTC|log.Lmicroseconds)}
}

func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.out == nil {
		return
	}
	l.out.Printf(format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	if l == nil || l.out == nil {
		return
	}
	l.out.Printf("ERROR "+format, args...)
}

func NowUTC() time.Time {
	return time.Now().UTC()
}
