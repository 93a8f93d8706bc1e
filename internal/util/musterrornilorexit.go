package util

import (
	"os"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
)

// ErrGeneric is the exit code for errors that carry no code of their own.
const ErrGeneric = 99

// MustErrorNilOrExit returns quietly when err is nil. Otherwise it logs the
// error at fatal level and ends the process: a flags error exits with its
// type as the code, a help request exits clean, anything else exits with
// ErrGeneric.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ErrGeneric
	if flagsError, ok := err.(*flags.Error); ok {
		if flagsError.Type == flags.ErrHelp {
			os.Exit(0)
		}
		code = int(flagsError.Type)
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
