package options

import (
	"fmt"
	"slices"
	"sort"

	"github.com/GuillemALba/prettier/pkg/leven"
	"github.com/GuillemALba/prettier/pkg/vnopts"
)

// FlagSuggestThreshold is the exclusive edit-distance bound under which
// an unrecognized flag value is replaced by the nearest known flag.
const FlagSuggestThreshold = 3

// FlagSchema validates flag-type values against the full universe of
// known flag names, auto-correcting near misses with a warning.
type FlagSchema struct {
	*vnopts.ChoiceSchema
	flags []string
}

// NewFlagSchema builds a flag schema over every legal flag string. A
// sorted copy drives the suggestion scan so the first match is stable.
func NewFlagSchema(name string, flags []string) *FlagSchema {
	choices := make([]vnopts.ChoiceInfo, len(flags))
	for i, flag := range flags {
		choices[i] = vnopts.ChoiceInfo{Value: flag}
	}
	sorted := append([]string(nil), flags...)
	sort.Strings(sorted)
	return &FlagSchema{
		ChoiceSchema: vnopts.NewChoiceSchema(name, choices),
		flags:        sorted,
	}
}

// Preprocess substitutes the nearest known flag for an unrecognized
// value when one is within the suggestion threshold, warning through
// the logger. Anything else passes through unchanged; it never fails.
func (s *FlagSchema) Preprocess(value any, u *vnopts.Utils) any {
	str, ok := value.(string)
	if !ok || str == "" || slices.Contains(s.flags, str) {
		return value
	}
	for _, flag := range s.flags {
		if leven.Distance(flag, str) < FlagSuggestThreshold {
			u.Logger.Warn(fmt.Sprintf("Unknown flag %q, did you mean %q?", str, flag))
			return flag
		}
	}
	return value
}

func (s *FlagSchema) Expected(*vnopts.Utils) string { return "a flag" }
