package logging

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// SetVerbosity maps the number of -v flags onto a logrus level. The baseline
// is ErrorLevel, so failures print without any flag; every repetition steps
// one level further towards TraceLevel.
func SetVerbosity(v []bool) {
	verbosity := log.ErrorLevel + log.Level(len(v))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
}

// VerbosityName returns the active level in the upper-case spelling the
// startup message uses.
func VerbosityName() string {
	return strings.ToUpper(log.GetLevel().String())
}
