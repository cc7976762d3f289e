package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers rejected user input
	SeverityLow Severity = iota
	// SeverityMedium covers failures with a workaround
	SeverityMedium
	// SeverityHigh covers failed dependencies such as storage
	SeverityHigh
	// SeverityCritical covers failures that stop the process
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// SeverityFromCode determines the default severity for a code
func SeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidInput, CodeInputTooLong, CodeInvalidFormat, CodeNotFound,
		CodeCanceled, CodeRenderFailed:
		return SeverityLow
	case CodeStorage, CodeConnectionFailed, CodeServiceUnavailable:
		return SeverityHigh
	case CodeConfigError, CodeInvalidConfig:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
