//go:build !debug
// +build !debug

package raymarch

func DebugLog(format string, args ...interface{}) {}

func DebugLogOnce(format string, args ...interface{}) {}
