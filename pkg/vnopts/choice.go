package vnopts

import (
	"fmt"
	"reflect"
	"strings"
)

// ChoiceInfo describes one allowed value of a ChoiceSchema.
type ChoiceInfo struct {
	Value       any
	Description string
	Deprecated  bool
	// Redirect, when set, moves a use of this choice onto another
	// option/value pair instead of keeping it.
	Redirect *Transfer
	// Hidden choices validate but are left out of the expected-value text.
	Hidden bool
}

// ChoiceSchema accepts values drawn from a closed set of choices.
type ChoiceSchema struct {
	baseSchema
	ordered []ChoiceInfo
	byValue map[any]ChoiceInfo
}

func NewChoiceSchema(name string, choices []ChoiceInfo) *ChoiceSchema {
	byValue := make(map[any]ChoiceInfo, len(choices))
	for _, c := range choices {
		if hashable(c.Value) {
			byValue[c.Value] = c
		}
	}
	return &ChoiceSchema{
		baseSchema: baseSchema{name: name},
		ordered:    choices,
		byValue:    byValue,
	}
}

func (s *ChoiceSchema) Expected(u *Utils) string {
	descriptions := make([]string, 0, len(s.ordered))
	for _, c := range s.ordered {
		if c.Hidden {
			continue
		}
		descriptions = append(descriptions, u.Descriptor.Value(c.Value))
	}
	switch len(descriptions) {
	case 0:
		return "nothing"
	case 1:
		return descriptions[0]
	default:
		head := strings.Join(descriptions[:len(descriptions)-1], ", ")
		return fmt.Sprintf("one of %s or %s", head, descriptions[len(descriptions)-1])
	}
}

func (s *ChoiceSchema) Validate(value any, _ *Utils) bool {
	_, ok := s.lookup(value)
	return ok
}

func (s *ChoiceSchema) Deprecated(value any, _ *Utils) bool {
	c, ok := s.lookup(value)
	return ok && c.Deprecated
}

func (s *ChoiceSchema) Redirect(value any, _ *Utils) *Redirect {
	c, ok := s.lookup(value)
	if !ok || c.Redirect == nil {
		return nil
	}
	return &Redirect{Transfers: []Transfer{*c.Redirect}}
}

// lookup resolves value to its choice. Non-comparable values (slices,
// maps) can never be members, so they miss instead of panicking on the
// map access.
func (s *ChoiceSchema) lookup(value any) (ChoiceInfo, bool) {
	if !hashable(value) {
		return ChoiceInfo{}, false
	}
	c, ok := s.byValue[value]
	return c, ok
}

func hashable(value any) bool {
	return value == nil || reflect.TypeOf(value).Comparable()
}
