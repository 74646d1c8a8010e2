// Package options normalizes and validates flat option mappings against
// a declarative list of option descriptors. It maps the descriptor
// format onto the pkg/vnopts schema primitives: aliases are resolved,
// values coerced per type, deprecated and redirected options detected,
// and unknown flag values corrected by fuzzy matching.
package options

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// Kind is the closed set of option value types.
type Kind string

const (
	KindInt     Kind = "int"
	KindString  Kind = "string"
	KindChoice  Kind = "choice"
	KindBoolean Kind = "boolean"
	KindFlag    Kind = "flag"
	KindPath    Kind = "path"
)

// Choice is one allowed value of a choice-typed option.
type Choice struct {
	Value       any    `json:"value"                 yaml:"value"                 mapstructure:"value"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty"  yaml:"deprecated,omitempty"  mapstructure:"deprecated,omitempty"`
	// Redirect retargets a use of this choice to another value of the
	// same option.
	Redirect any `json:"redirect,omitempty" yaml:"redirect,omitempty" mapstructure:"redirect,omitempty"`
}

// RedirectTo moves a set option onto a different option/value pair.
type RedirectTo struct {
	Option string `json:"option" yaml:"option" mapstructure:"option"`
	Value  any    `json:"value"  yaml:"value"  mapstructure:"value"`
}

// OptionInfo describes one configurable option.
type OptionInfo struct {
	Name    string   `json:"name"              yaml:"name"              mapstructure:"name"    validate:"required"`
	Type    Kind     `json:"type"              yaml:"type"              mapstructure:"type"    validate:"required,oneof=int string choice boolean flag path"`
	Array   bool     `json:"array,omitempty"   yaml:"array,omitempty"   mapstructure:"array,omitempty"`
	Alias   string   `json:"alias,omitempty"   yaml:"alias,omitempty"   mapstructure:"alias,omitempty"`
	Choices []Choice `json:"choices,omitempty" yaml:"choices,omitempty" mapstructure:"choices,omitempty"`
	// Description makes the option's own name a member of the flag
	// universe; OppositeDescription does the same for its no- form.
	Description         string `json:"description,omitempty"         yaml:"description,omitempty"         mapstructure:"description,omitempty"`
	OppositeDescription string `json:"oppositeDescription,omitempty" yaml:"oppositeDescription,omitempty" mapstructure:"oppositeDescription,omitempty"`
	// Exception accepts a value regardless of the option's normal
	// validation. Not representable in serialized descriptor lists.
	Exception  func(value any) bool `json:"-" yaml:"-" mapstructure:"-"`
	Redirect   *RedirectTo          `json:"redirect,omitempty"   yaml:"redirect,omitempty"   mapstructure:"redirect,omitempty"`
	Deprecated bool                 `json:"deprecated,omitempty" yaml:"deprecated,omitempty" mapstructure:"deprecated,omitempty"`
}

// OptionInfosFromMap decodes a descriptor list from its generic map
// form, e.g. a parsed YAML or JSON document. Scalar choice entries are
// promoted to full choice records.
func OptionInfosFromMap(data any) ([]OptionInfo, error) {
	var infos []OptionInfo
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       scalarChoiceHook,
		Result:           &infos,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build descriptor decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("failed to decode option descriptors: %w", err)
	}
	return infos, nil
}

var choiceType = reflect.TypeOf(Choice{})

// scalarChoiceHook turns `choices: [always, never]` into choice records.
func scalarChoiceHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to == choiceType && from.Kind() != reflect.Map {
		return map[string]any{"value": data}, nil
	}
	return data, nil
}

// ValidateOptionInfos checks a descriptor list for structural problems:
// missing names, unrecognized types and duplicate names.
func ValidateOptionInfos(infos []OptionInfo) error {
	v := validator.New()
	seen := make(map[string]struct{}, len(infos))
	for i := range infos {
		info := &infos[i]
		if err := v.Struct(info); err != nil {
			return fmt.Errorf("invalid descriptor %q: %w", info.Name, err)
		}
		if _, dup := seen[info.Name]; dup {
			return fmt.Errorf("duplicate option name %q", info.Name)
		}
		seen[info.Name] = struct{}{}
	}
	return nil
}
