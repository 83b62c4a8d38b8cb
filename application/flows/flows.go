// Package flows holds the validation flows run against the loaded page.
// Every flow builds a fresh record, registers it with the report sink and
// absorbs its own failures: a missing element becomes a false field, never
// an error for the caller.
package flows

import (
	"strings"

	"github.com/sirupsen/logrus"

	"web_validator/domain/interfaces"
)

// Report keys under which the flows register their records
const (
	KeyHeader   = "header_details"
	KeyFooter   = "footer_details"
	KeyHome     = "banner_details"
	KeyLanguage = "language_switch"
	KeySearch   = "search"
)

// Env is what every flow needs from the run
type Env struct {
	UI     interfaces.Interactor
	Report interfaces.ReportSink
	Logger *logrus.Logger
}

func (e Env) section(title string) {
	bar := strings.Repeat("=", 30)
	e.Logger.Infof("%s %s %s", bar, title, bar)
}

func truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
