package main

import (
	"fmt"
	"os"
	"path"

	"github.com/brendanberg/trilobyte/internal/args"
	"github.com/brendanberg/trilobyte/internal/commands/decode"
	"github.com/brendanberg/trilobyte/internal/commands/encode"
	"github.com/brendanberg/trilobyte/internal/commands/version"
	"github.com/brendanberg/trilobyte/internal/commands/words"
	"github.com/brendanberg/trilobyte/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// ErrConfigFileDoesNotExist is raised when the configuration file cannot be found
const ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1

// Trilobyte is the main executable
type Trilobyte struct {
	parser *flags.Parser
}

// NewTrilobyte creates the flags parser and registers the option group and
// every command
func NewTrilobyte() *Trilobyte {
	tr := &Trilobyte{
		parser: flags.NewNamedParser(path.Base(os.Args[0]), flags.HelpFlag|flags.PrintErrors),
	}

	if _, err := tr.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}

	commands := []struct {
		name, short, long string
		command           interface{}
	}{
		{"version", "Print the version",
			"Print the application version and exit", &version.Command{}},
		{"encode", "Encode bytes as text",
			"Read raw bytes and write their text representation in the chosen encoding", encode.NewCommand()},
		{"decode", "Decode text back into bytes",
			"Read encoded text and write back the raw bytes it stands for", decode.NewCommand()},
		{"words", "Show or verify the vocabulary",
			"Print the active word codec vocabulary, or verify vocabulary files", words.NewCommand()},
	}
	for _, c := range commands {
		_, err := tr.parser.AddCommand(c.name, c.short, c.long, c.command)
		util.MustErrorNilOrExit(errors.WithStack(err))
	}

	return tr
}

// main starts trilobyte and reads the configuration file
func main() {
	trilobyte := NewTrilobyte()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			})
		}

		args.General.ConfigurationFilePath = file
		return args.LoadConfig(file)
	}

	_, err := trilobyte.parser.Parse()
	util.MustErrorNilOrExit(err)
}
