package args

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// FileConfig supplies defaults that commands fall back to when the matching
// flag is absent from the command line. Flags always win over the file.
type FileConfig struct {
	// Encoding is the default codec for encode and decode.
	Encoding string `yaml:"encoding"`
	// Wrap is the default number of symbols per output line.
	Wrap *int `yaml:"wrap"`
	// Separator is the default line separator for wrapped output.
	Separator *string `yaml:"separator"`
	// HighIndexChars stands in for the two highest base-64 symbols.
	HighIndexChars string `yaml:"high_index_chars"`
	// Words replaces the word codec vocabulary. Exactly 256 unique words.
	Words []string `yaml:"words"`
}

// Config holds the file configuration loaded through the -c option. Its zero
// value means "no file given": every field falls through to the built-in
// defaults.
var Config FileConfig

// LoadConfig reads a YAML configuration file into Config. Vocabulary and
// encoding names are validated later, at the point of use, so a config file
// only used for its wrap settings may carry an incomplete word list.
func LoadConfig(filename string) error {
	body, err := os.ReadFile(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := yaml.Unmarshal(body, &Config); err != nil {
		return errors.Wrapf(err, "could not parse configuration file %s", filename)
	}

	log.Tracef("Configuration from %s: %s", filename, spew.Sdump(Config))
	return nil
}
