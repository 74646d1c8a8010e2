package options

import (
	"fmt"
	"math"
	"strconv"

	"github.com/GuillemALba/prettier/pkg/vnopts"
)

// RestArgsKey is the bucket holding positional CLI arguments.
const RestArgsKey = "_"

// OptionInfosToSchemas translates a descriptor list into the ordered
// schema list the engine validates against. In CLI mode a catch-all
// schema for positional arguments is prepended and every alias gets its
// own alias schema. Fails before any option value is touched when a
// descriptor carries an unrecognized type.
func OptionInfosToSchemas(infos []OptionInfo, isCLI bool) ([]vnopts.Schema, error) {
	schemas := make([]vnopts.Schema, 0, len(infos)+1)
	if isCLI {
		schemas = append(schemas, vnopts.NewAnySchema(RestArgsKey))
	}
	for i := range infos {
		info := &infos[i]
		schema, err := optionInfoToSchema(info, isCLI, infos)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, schema)
		if info.Alias != "" && isCLI {
			schemas = append(schemas, vnopts.NewAliasSchema(info.Alias, info.Name))
		}
	}
	return schemas, nil
}

func optionInfoToSchema(info *OptionInfo, isCLI bool, all []OptionInfo) (vnopts.Schema, error) {
	var base vnopts.Schema
	var coerce func(any) any
	switch info.Type {
	case KindInt:
		base = vnopts.NewIntegerSchema(info.Name)
		if isCLI {
			coerce = coerceNumber
		}
	case KindString, KindPath:
		base = vnopts.NewStringSchema(info.Name)
	case KindChoice:
		base = vnopts.NewChoiceSchema(info.Name, choiceInfos(info))
	case KindBoolean:
		base = vnopts.NewBooleanSchema(info.Name)
	case KindFlag:
		base = NewFlagSchema(info.Name, collectFlags(all))
	default:
		return nil, fmt.Errorf("unexpected type %q for option %s", info.Type, info.Name)
	}

	value := &policySchema{
		Schema:    base,
		exception: info.Exception,
		coerce:    coerce,
	}
	if !info.Array {
		value.redirect = info.Redirect
		value.deprecated = info.Deprecated
		return value, nil
	}
	// The exception and coercion policy applies per element; redirect
	// and deprecation apply to the option as a whole.
	return &policySchema{
		Schema:     vnopts.NewArraySchema(value, info.Name),
		redirect:   info.Redirect,
		deprecated: info.Deprecated,
		wrapScalar: isCLI,
	}, nil
}

// choiceInfos rewrites choice-level redirects into the engine's
// transfer shape, targeting this option with the redirect value.
func choiceInfos(info *OptionInfo) []vnopts.ChoiceInfo {
	choices := make([]vnopts.ChoiceInfo, len(info.Choices))
	for i, c := range info.Choices {
		ci := vnopts.ChoiceInfo{
			Value:       c.Value,
			Description: c.Description,
			Deprecated:  c.Deprecated,
		}
		if c.Redirect != nil {
			ci.Redirect = &vnopts.Transfer{Key: info.Name, Value: c.Redirect}
		}
		choices[i] = ci
	}
	return choices
}

// collectFlags gathers the flag universe from the whole descriptor
// list: each alias, each described option's name and the no- form of
// each option with an opposite description.
func collectFlags(infos []OptionInfo) []string {
	var flags []string
	for i := range infos {
		info := &infos[i]
		if info.Alias != "" {
			flags = append(flags, info.Alias)
		}
		if info.Description != "" {
			flags = append(flags, info.Name)
		}
		if info.OppositeDescription != "" {
			flags = append(flags, "no-"+info.Name)
		}
	}
	return flags
}

// coerceNumber parses CLI string input into a number, preferring int
// for integral values. Unparseable input and values beyond the int
// range keep their string form for validation to reject.
func coerceNumber(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return value
	}
	if n != math.Trunc(n) {
		return n
	}
	if n < math.MinInt64 || n >= math.MaxInt64 {
		return value
	}
	return int(n)
}

// policySchema layers a descriptor's validation policy over a base
// schema: the exception predicate, absent-is-valid default, CLI value
// coercions, option-level redirect and the deprecation mark.
type policySchema struct {
	vnopts.Schema
	exception  func(any) bool
	coerce     func(any) any
	redirect   *RedirectTo
	deprecated bool
	// wrapScalar turns a lone CLI value for an array option into a
	// one-element slice before the base schema sees it.
	wrapScalar bool
}

func (s *policySchema) Preprocess(value any, u *vnopts.Utils) any {
	if s.coerce != nil {
		value = s.coerce(value)
	}
	if s.wrapScalar && value != nil {
		if _, ok := value.([]any); !ok {
			value = []any{value}
		}
	}
	return s.Schema.Preprocess(value, u)
}

func (s *policySchema) Validate(value any, u *vnopts.Utils) bool {
	if s.exception != nil {
		return s.exception(value) || s.Schema.Validate(value, u)
	}
	// Absent values never fail validation here; absence is legal.
	return value == nil || s.Schema.Validate(value, u)
}

func (s *policySchema) Deprecated(value any, u *vnopts.Utils) bool {
	if s.deprecated {
		return true
	}
	return s.Schema.Deprecated(value, u)
}

func (s *policySchema) Redirect(value any, u *vnopts.Utils) *vnopts.Redirect {
	if s.redirect == nil {
		return s.Schema.Redirect(value, u)
	}
	if !isTruthy(value) {
		return nil
	}
	return &vnopts.Redirect{
		Transfers: []vnopts.Transfer{{Key: s.redirect.Option, Value: s.redirect.Value}},
	}
}

func isTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case float64:
		return v != 0
	case []any:
		return len(v) != 0
	default:
		return true
	}
}
