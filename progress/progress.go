// Package progress prints the program progress on screen. It's similar to
// a logger, but with better formatting.
package progress

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

const spinners = `/-\|`

const (
	colorReset = "\033[0m"

	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

type Progress struct {
	out     io.Writer // destination for output, usually os.Stderr
	running []byte
	seq     int // sequence of spinners
}

var p *Progress

func init() {
	p = &Progress{out: os.Stderr}
}

// SetOut changes the output destination, mainly for tests.
func SetOut(out io.Writer) {
	p.out = out
	p.running = p.running[:0]
}

// Cursor shows or hides the terminal cursor.
func Cursor(show bool) {
	if p.out != os.Stdout && p.out != os.Stderr {
		return
	}
	if show {
		output([]byte("\033[?25h")) // Show cursor
	} else {
		output([]byte("\033[?25l")) // Hide cursor
	}
}

// Status prints a one-line status message.
func Status(format string, a ...interface{}) {
	if len(p.running) > 0 {
		clearLine()
		output([]byte(colorCyan))
	}

	outputln("[>] " + fmt.Sprintf(format, a...))

	if len(p.running) > 0 {
		output([]byte(colorReset))
		output(p.running)
	}
}

// Error prints an error.
func Error(err error) {
	if len(p.running) > 0 {
		clearLine()
	}

	output([]byte(colorRed))
	outputln(fmt.Sprintf("[✗] %v", err))
	output([]byte(colorReset))

	if len(p.running) > 0 {
		output(p.running)
	}
}

// Warning prints a warning message.
func Warning(format string, a ...interface{}) {
	if len(p.running) > 0 {
		clearLine()
	}

	output([]byte(colorYellow))
	outputln("[!] " + fmt.Sprintf(format, a...))
	output([]byte(colorReset))

	if len(p.running) > 0 {
		output(p.running)
	}
}

// Running marks the start of a long operation. Close it with RunOK or
// RunFail.
func Running(msg string) {
	p.running = []byte(fmt.Sprintf("[ ] %v", msg))
	output(p.running)
}

// Spinner advances the spinner of a Running operation.
func Spinner() {
	output([]byte{'\r', '[', spinners[p.seq], ']'})
	p.seq = (p.seq + 1) % len(spinners)
}

// RunOK closes a Running operation with a checkmark.
func RunOK() {
	outputln("\r[✓]")
	p.running = p.running[:0]
}

// RunFail closes a Running operation with a fail mark.
func RunFail() {
	output([]byte(colorRed))

	if len(p.running) > 0 {
		clearLine()
		output(p.running)
	}

	outputln("\r[✗]")
	p.running = p.running[:0]

	output([]byte(colorReset))
}

/* ------- output ------- */

func clearLine() {
	if len(p.running) == 0 {
		return
	}
	buf := bytes.Repeat([]byte(" "), len(p.running)+2)
	buf[0] = byte('\r')
	buf[len(buf)-1] = byte('\r')
	_, _ = p.out.Write(buf)
}

func output(buf []byte) {
	_, _ = p.out.Write(buf)
}

func outputln(s string) {
	if p.out == nil {
		return
	}
	var buf []byte
	buf = append(buf, s...)
	if len(s) == 0 || s[len(s)-1] != '\n' {
		buf = append(buf, '\n')
	}
	output(buf)
}
