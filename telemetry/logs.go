package telemetry

import (
	"fmt"
	"io"
	"sync"
	"time"
)

type Logger interface {
	Info(msg string)
	Debug(msg string)
	Error(msg string, err error)
}

type NOPLogger struct {
}

func (n NOPLogger) Info(msg string) {
}
func (n NOPLogger) Debug(msg string) {
}
func (n NOPLogger) Error(msg string, err error) {
}

// WriterLogger writes one line per message to an io.Writer.  Debug lines are
// only written when Verbose is set.
type WriterLogger struct {
	lock    sync.Mutex
	out     io.Writer
	Verbose bool
	now     func() time.Time
}

func NewWriterLogger(out io.Writer, verbose bool) *WriterLogger {
	return &WriterLogger{out: out, Verbose: verbose, now: time.Now}
}

func (l *WriterLogger) write(level, msg string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	fmt.Fprintf(l.out, "%s %-5s %s\n", l.now().UTC().Format(time.RFC3339), level, msg)
}

func (l *WriterLogger) Info(msg string) {
	l.write("INFO", msg)
}

func (l *WriterLogger) Debug(msg string) {
	if l.Verbose {
		l.write("DEBUG", msg)
	}
}

func (l *WriterLogger) Error(msg string, err error) {
	l.write("ERROR", fmt.Sprintf("%s: %v", msg, err))
}
