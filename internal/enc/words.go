package enc

import (
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// nonWord matches everything that is not a letter or digit, underscore
// included, so hyphenated or dotted input splits into plain tokens.
var nonWord = regexp.MustCompile(`[\W_]`)

// WordsEncoder maps every byte value onto a word from a 256-entry vocabulary.
// The output survives transcription by voice or by hand: decoding folds case
// and accepts any punctuation as a separator.
type WordsEncoder struct {
	words   []string
	indexes map[string]byte
}

// NewWords builds a word codec over the given vocabulary, which must hold
// exactly 256 unique words free of separator characters. A nil slice selects
// the built-in vocabulary. The reverse lookup table is built once here, so
// swapping vocabularies means constructing a new encoder; encoders already
// handed out never observe the change.
func NewWords(words []string) (*WordsEncoder, error) {
	if words == nil {
		words = defaultWordList[:]
	}
	if err := checkWordList(words); err != nil {
		return nil, err
	}

	w := &WordsEncoder{
		words:   make([]string, len(words)),
		indexes: make(map[string]byte, len(words)),
	}
	for i, word := range words {
		folded := strings.ToLower(word)
		w.words[i] = folded
		w.indexes[folded] = byte(i)
	}
	return w, nil
}

// checkWordList reports every problem with a vocabulary at once, not just the
// first one.
func checkWordList(words []string) error {
	var errs error
	if len(words) != 256 {
		errs = multierror.Append(errs, errors.Wrapf(ErrInvalidWordList, "expected 256 words, got %d", len(words)))
	}
	seen := make(map[string]int, len(words))
	for i, word := range words {
		folded := strings.ToLower(word)
		if folded == "" {
			errs = multierror.Append(errs, errors.Wrapf(ErrInvalidWordList, "word %d is empty", i))
			continue
		}
		if nonWord.MatchString(folded) {
			errs = multierror.Append(errs, errors.Wrapf(ErrInvalidWordList, "word %d (%q) contains separator characters", i, word))
			continue
		}
		if first, ok := seen[folded]; ok {
			errs = multierror.Append(errs, errors.Wrapf(ErrInvalidWordList, "word %d (%q) duplicates word %d", i, word, first))
			continue
		}
		seen[folded] = i
	}
	return errs
}

func (w *WordsEncoder) Name() string {
	return "words"
}

// Encode maps each byte onto its word, joined with single spaces.
func (w *WordsEncoder) Encode(data []byte) (string, error) {
	words := make([]string, len(data))
	for i, b := range data {
		words[i] = w.words[b]
	}
	return strings.Join(words, " "), nil
}

// Decode folds the input to lower case, turns every non-word character into a
// space and maps each remaining token back onto its byte value. Input made of
// nothing but separators decodes to an empty buffer.
func (w *WordsEncoder) Decode(text string) ([]byte, error) {
	tokens := strings.Fields(nonWord.ReplaceAllString(strings.ToLower(text), " "))

	out := make([]byte, len(tokens))
	for i, token := range tokens {
		value, ok := w.indexes[token]
		if !ok {
			return nil, errors.Wrapf(ErrIllegalCharacter, "the word %q is not in the vocabulary", token)
		}
		out[i] = value
	}
	return out, nil
}

// Words returns a copy of the vocabulary in byte value order.
func (w *WordsEncoder) Words() []string {
	out := make([]string, len(w.words))
	copy(out, w.words)
	return out
}
