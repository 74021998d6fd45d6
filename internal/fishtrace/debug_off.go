//go:build !debug
// +build !debug

package fishtrace

func DebugLog(format string, args ...interface{})     {}
func DebugLogOnce(format string, args ...interface{}) {}
