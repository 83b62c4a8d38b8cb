package entities

// ExitCode is the process exit status of a validation run.
type ExitCode int

const (
	ExitSuccess          ExitCode = 0
	ExitNavigationFailed ExitCode = 1
	// Reserved: no flow produces the next three yet.
	ExitElementsMissing  ExitCode = 2
	ExitScreenshotFailed ExitCode = 3
	ExitValidationFailed ExitCode = 4
	ExitUnknownError     ExitCode = 99
	ExitInterrupted      ExitCode = 130
)

func (c ExitCode) String() string {
	switch c {
	case ExitSuccess:
		return "success"
	case ExitNavigationFailed:
		return "navigation failed"
	case ExitElementsMissing:
		return "elements missing"
	case ExitScreenshotFailed:
		return "screenshot failed"
	case ExitValidationFailed:
		return "validation failed"
	case ExitInterrupted:
		return "interrupted"
	default:
		return "unknown error"
	}
}
