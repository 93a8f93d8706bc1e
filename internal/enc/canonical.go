package enc

import "strings"

type foldCase int

// Case folding applied before replacements run.
const (
	foldNone foldCase = iota
	foldUpper
	foldLower
)

// replacement rewrites every occurrence of Pattern with With.
type replacement struct {
	Pattern string
	With    string
}

// canonicalizer normalizes text before alphabet lookup: the case fold runs
// first, then each replacement is applied globally, in order. Characters with
// no replacement pass through untouched and are rejected later by the lookup.
// Applying a canonicalizer twice must yield the same string as applying it
// once, so replacement targets may not reintroduce replacement patterns.
type canonicalizer struct {
	fold         foldCase
	replacements []replacement
}

func (c canonicalizer) apply(text string) string {
	switch c.fold {
	case foldUpper:
		text = strings.ToUpper(text)
	case foldLower:
		text = strings.ToLower(text)
	}
	for _, r := range c.replacements {
		text = strings.ReplaceAll(text, r.Pattern, r.With)
	}
	return text
}
