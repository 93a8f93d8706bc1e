package encode

import (
	"io"
	"os"

	"github.com/brendanberg/trilobyte/internal/args"
	"github.com/brendanberg/trilobyte/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command reads raw bytes and writes their text representation. Output is
// exactly the codec's text, no trailing newline: it can be piped straight
// into the decode command or a file.
type Command struct {
	args.EncoderOptions

	Input  string `short:"i" long:"input"  env:"TRILOBYTE_INPUT"  description:"Input file. Stdin when empty or '-'."`
	Output string `short:"o" long:"output" env:"TRILOBYTE_OUTPUT" description:"Output file. Stdout when empty or '-'."`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Encode bytes as text"
}

//noinspection GoUnusedParameter
func (c *Command) Execute(argv []string) error {
	logging.SetupLogging()

	encoder, err := c.Build()
	if err != nil {
		return err
	}

	data, err := readInput(c.Input)
	if err != nil {
		return err
	}

	text, err := encoder.Encode(data)
	if err != nil {
		return err
	}

	log.Debugf("Encoded %d bytes as %d characters of %s", len(data), len(text), encoder.Name())

	return writeOutput(c.Output, []byte(text))
}

func readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, errors.WithStack(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", name)
	}
	return data, nil
}

func writeOutput(name string, out []byte) error {
	if name == "" || name == "-" {
		_, err := os.Stdout.Write(out)
		return errors.WithStack(err)
	}
	if err := os.WriteFile(name, out, 0644); err != nil {
		return errors.Wrapf(err, "could not write %s", name)
	}
	return nil
}
