package vnopts

import (
	"fmt"
	"slices"
	"sort"

	"github.com/GuillemALba/prettier/pkg/leven"
)

// UnknownHandler decides what happens to an option key no schema claims.
// Entries in the returned map are merged back into normalization: known
// keys go through their schema, unknown ones are kept verbatim. A nil
// result drops the key.
type UnknownHandler func(key string, value any, u *Utils) map[string]any

// SuggestDistanceThreshold is the exclusive edit-distance bound under
// which an unknown key is matched to a known one for a suggestion.
const SuggestDistanceThreshold = 3

// SuggestUnknownHandler warns about the unknown key, suggesting the
// nearest known option when one is close enough, and drops the value.
func SuggestUnknownHandler(key string, value any, u *Utils) map[string]any {
	message := fmt.Sprintf("Ignored unknown option %s.", u.Descriptor.Pair(key, value))
	if suggestion, ok := nearestSchemaName(key, u.Schemas); ok {
		message += fmt.Sprintf(" Did you mean %s?", u.Descriptor.Key(suggestion))
	}
	u.Logger.Warn(message)
	return nil
}

// PassThroughUnknownHandler keeps every unknown key untouched.
func PassThroughUnknownHandler(key string, value any, _ *Utils) map[string]any {
	return map[string]any{key: value}
}

// PassThroughKeysUnknownHandler keeps only the listed unknown keys;
// everything else is dropped.
func PassThroughKeysUnknownHandler(keys []string) UnknownHandler {
	return func(key string, value any, _ *Utils) map[string]any {
		if slices.Contains(keys, key) {
			return map[string]any{key: value}
		}
		return nil
	}
}

// nearestSchemaName scans known names in sorted order and returns the
// first one within the suggestion threshold.
func nearestSchemaName(key string, schemas map[string]Schema) (string, bool) {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if leven.Distance(key, name) < SuggestDistanceThreshold {
			return name, true
		}
	}
	return "", false
}
