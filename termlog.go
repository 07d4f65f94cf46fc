package xlsq

import (
	"fmt"
	"io"
)

// TermLogger writes plain prefixed log lines to a terminal or any writer.
type TermLogger struct {
	out io.Writer // destination for output
	buf []byte    // for accumulating text to write
}

// NewLogger creates a new TermLogger.
func NewLogger(out io.Writer) *TermLogger {
	return &TermLogger{out: out}
}

// SetOut changes the output destination.
func (l *TermLogger) SetOut(out io.Writer) {
	l.out = out
}

// Run prints a message before running a process.
func (l *TermLogger) Run(format string, v ...interface{}) {
	s := fmt.Sprintf(format, v...)
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	l.output("[ ] " + s)
}

// Ok prints a checkmark after a successful Run()
func (l *TermLogger) Ok() {
	l.outputln("\r[✓]")
}

// Nok prints a x mark after a unsuccessful Run()
func (l *TermLogger) Nok() {
	l.outputln("\r[✗]")
}

// Printf prints the plain text.
func (l *TermLogger) Printf(format string, v ...interface{}) {
	l.output(fmt.Sprintf(format, v...))
}

// Debug for debugging information.
func (l *TermLogger) Debug(format string, v ...interface{}) {
	l.outputln("[DEBUG] " + fmt.Sprintf(format, v...))
}

// Info for something noteworthy.
func (l *TermLogger) Info(format string, v ...interface{}) {
	l.outputln("[INFO] " + fmt.Sprintf(format, v...))
}

// Warn for a warning message.
func (l *TermLogger) Warn(format string, v ...interface{}) {
	l.outputln("[WARN] " + fmt.Sprintf(format, v...))
}

// Error message.
func (l *TermLogger) Error(format string, v ...interface{}) {
	l.outputln("[ERROR] " + fmt.Sprintf(format, v...))
}

func (l *TermLogger) output(s string) {
	l.buf = l.buf[:0]
	l.buf = append(l.buf, s...)
	_, _ = l.out.Write(l.buf)
}

func (l *TermLogger) outputln(s string) {
	l.buf = l.buf[:0]
	l.buf = append(l.buf, s...)
	if len(s) == 0 || s[len(s)-1] != '\n' {
		l.buf = append(l.buf, '\n')
	}
	_, _ = l.out.Write(l.buf)
}
