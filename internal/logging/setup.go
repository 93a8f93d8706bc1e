package logging

import (
	"bufio"
	"os"
	"strings"

	"github.com/brendanberg/trilobyte/internal/args"
	"github.com/brendanberg/trilobyte/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SetupLogging applies the general options to the standard logger. Commands
// call it first thing in Execute, after flag parsing has filled args.General.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
		log.SetReportCaller(true)
	}
	log.SetFormatter(buildFormatter())
	log.Debugf("Verbosity level: %v", VerbosityName())

	if file := args.General.LogFile; file != nil && *file != "" && *file != "-" {
		f, err := os.OpenFile(*file, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		util.MustErrorNilOrExit(errors.WithStack(err))
		log.SetOutput(bufio.NewWriter(f))
	}
}

// buildFormatter picks the formatter the --log-format and --log-color
// options ask for.
func buildFormatter() log.Formatter {
	if args.General.LogFormat == "json" {
		return &log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		}
	}

	color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
	return &log.TextFormatter{
		ForceColors:   color == "yes" || color == "true" || color == "1",
		DisableColors: color == "no" || color == "false" || color == "0",
		FullTimestamp: args.General.LogFullTimestamp,
	}
}
