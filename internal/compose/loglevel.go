// Where: internal/compose/loglevel.go
// What: Log level used to report subprocess progress.
// Why: Let callers choose between streamed and silent compose invocations.
package compose

// LogLevel controls how much of the compose subprocess output reaches the
// caller's terminal. It is a pass-through value; it imposes no invariants of
// its own.
type LogLevel int

const (
	// LogLevelOff suppresses all subprocess output.
	LogLevelOff LogLevel = iota
	// LogLevelError suppresses output; failures still surface as errors.
	LogLevelError
	// LogLevelInfo streams subprocess output to the terminal.
	LogLevelInfo
	// LogLevelDebug streams subprocess output to the terminal.
	LogLevelDebug
)

// Streams reports whether subprocess output should be streamed.
func (l LogLevel) Streams() bool {
	return l >= LogLevelInfo
}

func (l LogLevel) String() string {
	switch l {
	case LogLevelOff:
		return "off"
	case LogLevelError:
		return "error"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	}
	return "unknown"
}

// ParseLogLevel maps a textual level to a LogLevel, defaulting to info.
func ParseLogLevel(value string) LogLevel {
	switch value {
	case "off":
		return LogLevelOff
	case "error":
		return LogLevelError
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelInfo
	}
}
