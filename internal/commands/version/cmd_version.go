package version

import (
	"os"

	"github.com/brendanberg/trilobyte/internal/version"
	"github.com/k0kubun/go-ansi"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the version banner and exits.
type Command struct {
}

func (c *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (c *Command) Execute(args []string) error {
	PrintVersion()

	rows := []struct{ label, value string }{
		{"Author", "Brendan Berg <github.com/brendanberg>"},
		{"Git tag", version.GitTag},
		{"Git branch", version.GitBranch},
		{"Git state", version.GitState},
		{"Go version", version.GoVersion},
	}
	for _, row := range rows {
		if row.value != "" {
			ansi.Printf(DarkGray+" %-11s "+White+"%s"+Reset+"\n", row.label, row.value)
		}
	}

	os.Exit(0)
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion() {
	ansi.Printf(Bold+BackgroundBlue+
		LightGray+" TRILOBYTE - bytes in, text out "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
