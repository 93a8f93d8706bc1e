package decode

import (
	"io"
	"os"

	"github.com/brendanberg/trilobyte/internal/args"
	"github.com/brendanberg/trilobyte/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command reads encoded text and writes the raw bytes it stands for. The
// input does not have to be pristine: every codec canonicalizes before
// lookup, so case slips, separators and line breaks are forgiven where the
// encoding allows it.
type Command struct {
	args.EncoderOptions

	Input  string `short:"i" long:"input"  env:"TRILOBYTE_INPUT"  description:"Input file. Stdin when empty or '-'."`
	Output string `short:"o" long:"output" env:"TRILOBYTE_OUTPUT" description:"Output file. Stdout when empty or '-'."`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Decode text back into bytes"
}

//noinspection GoUnusedParameter
func (c *Command) Execute(argv []string) error {
	logging.SetupLogging()

	encoder, err := c.Build()
	if err != nil {
		return err
	}

	text, err := readInput(c.Input)
	if err != nil {
		return err
	}

	data, err := encoder.Decode(string(text))
	if err != nil {
		return err
	}

	log.Debugf("Decoded %d characters of %s into %d bytes", len(text), encoder.Name(), len(data))

	return writeOutput(c.Output, data)
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
