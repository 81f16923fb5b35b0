//go:build debug
// +build debug

package raymarch

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// DebugLogFile receives debug output; stdout belongs to the terminal UI.
var DebugLogFile = "termmarcher-debug.log"

var (
	logOnce sync.Once
	logMu   sync.Mutex
	logOut  io.Writer = io.Discard
)

func debugWriter() io.Writer {
	logOnce.Do(func() {
		if p := os.Getenv("DEBUG_LOG"); p != "" {
			DebugLogFile = p
		}
		f, err := os.OpenFile(DebugLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		logOut = f
	})
	return logOut
}

func DebugLog(format string, args ...interface{}) {
	w := debugWriter()
	logMu.Lock()
	defer logMu.Unlock()
	fmt.Fprintf(w, "[DEBUG] "+format+"\n", args...)
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	once.Do(func() {
		DebugLog(format, args...)
	})
}
