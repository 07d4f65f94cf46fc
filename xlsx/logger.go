package xlsx

import (
	"fmt"
	"os"
)

// Logger receives diagnostics the decoder tolerates instead of failing on,
// such as invalid shared string entries. Matches the method set of the
// xlsq root logger.
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// stderrLogger is the default diagnostics sink.
type stderrLogger struct{}

func (stderrLogger) Debug(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", v...)
}

func (stderrLogger) Warn(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, "[WARN] "+format+"\n", v...)
}
