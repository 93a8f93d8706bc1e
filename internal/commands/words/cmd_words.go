package words

import (
	"fmt"
	"os"

	"github.com/brendanberg/trilobyte/internal/args"
	"github.com/brendanberg/trilobyte/internal/enc"
	"github.com/brendanberg/trilobyte/internal/logging"
	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Command prints the active word codec vocabulary, one word per line with its
// byte value. With --verify it instead checks vocabulary files and reports
// every defect in every file, which beats fixing a 256-entry list one error
// at a time.
type Command struct {
	Verify []string `short:"V" long:"verify" description:"Verify a vocabulary file (a yaml list of 256 words) instead of printing the active vocabulary. May be given multiple times."`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Show or verify the word codec vocabulary"
}

//noinspection GoUnusedParameter
func (c *Command) Execute(argv []string) error {
	logging.SetupLogging()

	if len(c.Verify) > 0 {
		var errs error
		for _, filename := range c.Verify {
			if err := verifyFile(filename); err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			fmt.Printf("%s: vocabulary OK\n", filename)
		}
		return errs
	}

	var words []string
	if len(args.Config.Words) > 0 {
		words = args.Config.Words
	}
	encoder, err := enc.NewWords(words)
	if err != nil {
		return err
	}

	for i, word := range encoder.Words() {
		fmt.Printf("0x%02X %s\n", i, word)
	}
	return nil
}

func verifyFile(filename string) error {
	body, err := os.ReadFile(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	var words []string
	if err := yaml.Unmarshal(body, &words); err != nil {
		return errors.Wrapf(err, "could not parse %s", filename)
	}

	if _, err := enc.NewWords(words); err != nil {
		return errors.Wrapf(err, "%s", filename)
	}
	return nil
}
