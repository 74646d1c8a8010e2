package options

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuillemALba/prettier/pkg/logger"
)

func quiet() *NormalizeOptions {
	return &NormalizeOptions{Logger: logger.Nop()}
}

func TestNormalizeCLIOptions(t *testing.T) {
	t.Run("Should coerce integer strings into numbers", func(t *testing.T) {
		infos := []OptionInfo{{Name: "tabWidth", Type: KindInt}}
		got, err := NormalizeCLIOptions(map[string]any{"tabWidth": "4"}, infos, quiet())
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"tabWidth": 4}, got)
	})

	t.Run("Should reject non-numeric strings for integer options", func(t *testing.T) {
		infos := []OptionInfo{{Name: "tabWidth", Type: KindInt}}
		_, err := NormalizeCLIOptions(map[string]any{"tabWidth": "wat"}, infos, quiet())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--tabWidth")
		assert.Contains(t, err.Error(), "an integer")
	})

	t.Run("Should reject numeric strings beyond the integer range", func(t *testing.T) {
		infos := []OptionInfo{{Name: "tabWidth", Type: KindInt}}
		_, err := NormalizeCLIOptions(map[string]any{"tabWidth": "1e30"}, infos, quiet())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "an integer")
		assert.Contains(t, err.Error(), `"1e30"`)
	})

	t.Run("Should wrap a lone scalar for an array option", func(t *testing.T) {
		infos := []OptionInfo{{Name: "plugin", Type: KindString, Array: true}}
		got, err := NormalizeCLIOptions(map[string]any{"plugin": "a"}, infos, quiet())
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"plugin": []any{"a"}}, got)
	})

	t.Run("Should keep sequence input for an array option unchanged in shape", func(t *testing.T) {
		infos := []OptionInfo{{Name: "plugin", Type: KindString, Array: true}}
		got, err := NormalizeCLIOptions(map[string]any{"plugin": []any{"a", "b"}}, infos, quiet())
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"plugin": []any{"a", "b"}}, got)
	})

	t.Run("Should coerce elements of an integer array option", func(t *testing.T) {
		infos := []OptionInfo{{Name: "widths", Type: KindInt, Array: true}}
		got, err := NormalizeCLIOptions(map[string]any{"widths": []any{"2", "4"}}, infos, quiet())
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"widths": []any{2, 4}}, got)
	})

	t.Run("Should resolve aliases and coerce the forwarded value", func(t *testing.T) {
		infos := []OptionInfo{{Name: "tabWidth", Type: KindInt, Alias: "t"}}
		got, err := NormalizeCLIOptions(map[string]any{"t": "8"}, infos, quiet())
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"tabWidth": 8}, got)
	})

	t.Run("Should pass positional arguments through the rest bucket", func(t *testing.T) {
		infos := []OptionInfo{{Name: "semi", Type: KindBoolean}}
		got, err := NormalizeCLIOptions(map[string]any{
			RestArgsKey: []any{"src/index.js"},
			"semi":      false,
		}, infos, quiet())
		require.NoError(t, err)
		assert.Equal(t, map[string]any{RestArgsKey: []any{"src/index.js"}, "semi": false}, got)
	})
}

func TestNormalizeAPIOptions(t *testing.T) {
	t.Run("Should not coerce strings in API mode", func(t *testing.T) {
		infos := []OptionInfo{{Name: "tabWidth", Type: KindInt}}
		_, err := NormalizeAPIOptions(map[string]any{"tabWidth": "4"}, infos, quiet())
		require.Error(t, err)
	})

	t.Run("Should not resolve aliases in API mode", func(t *testing.T) {
		infos := []OptionInfo{{Name: "tabWidth", Type: KindInt, Alias: "t"}}
		buf := &bytes.Buffer{}
		log := logger.NewLogger(&logger.Config{Level: logger.WarnLevel, Output: buf})
		got, err := NormalizeAPIOptions(map[string]any{"t": 4}, infos, &NormalizeOptions{Logger: log})
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Contains(t, buf.String(), "Ignored unknown option")
	})

	t.Run("Should apply choice redirects", func(t *testing.T) {
		infos := []OptionInfo{{
			Name: "trailingComma",
			Type: KindChoice,
			Choices: []Choice{
				{Value: "none", Redirect: "es5"},
				{Value: "es5"},
				{Value: "all"},
			},
		}}
		got, err := NormalizeAPIOptions(map[string]any{"trailingComma": "none"}, infos, quiet())
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"trailingComma": "es5"}, got)
	})

	t.Run("Should reject a sequence value for a choice option", func(t *testing.T) {
		infos := []OptionInfo{{
			Name:    "trailingComma",
			Type:    KindChoice,
			Choices: []Choice{{Value: "none"}, {Value: "es5"}, {Value: "all"}},
		}}
		_, err := NormalizeAPIOptions(map[string]any{"trailingComma": []any{"es5"}}, infos, quiet())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid trailingComma value")
	})

	t.Run("Should apply option-level redirects for truthy values", func(t *testing.T) {
		infos := []OptionInfo{
			{Name: "insertPragma", Type: KindBoolean, Redirect: &RedirectTo{Option: "requirePragma", Value: true}},
			{Name: "requirePragma", Type: KindBoolean},
		}
		got, err := NormalizeAPIOptions(map[string]any{"insertPragma": true}, infos, quiet())
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"requirePragma": true}, got)
	})

	t.Run("Should keep falsy values on a redirecting option", func(t *testing.T) {
		infos := []OptionInfo{
			{Name: "insertPragma", Type: KindBoolean, Redirect: &RedirectTo{Option: "requirePragma", Value: true}},
			{Name: "requirePragma", Type: KindBoolean},
		}
		got, err := NormalizeAPIOptions(map[string]any{"insertPragma": false}, infos, quiet())
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"insertPragma": false}, got)
	})

	t.Run("Should warn when a deprecated option is used", func(t *testing.T) {
		infos := []OptionInfo{{Name: "jsxBracketSameLine", Type: KindBoolean, Deprecated: true}}
		buf := &bytes.Buffer{}
		log := logger.NewLogger(&logger.Config{Level: logger.WarnLevel, Output: buf})
		got, err := NormalizeAPIOptions(map[string]any{"jsxBracketSameLine": true}, infos, &NormalizeOptions{Logger: log})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"jsxBracketSameLine": true}, got)
		assert.Contains(t, buf.String(), "is deprecated")
	})

	t.Run("Should accept exception values outside the choice set", func(t *testing.T) {
		infos := []OptionInfo{{
			Name:      "parser",
			Type:      KindChoice,
			Choices:   []Choice{{Value: "babel"}, {Value: "flow"}},
			Exception: func(v any) bool { return v == "special" },
		}}
		got, err := NormalizeAPIOptions(map[string]any{"parser": "special"}, infos, quiet())
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"parser": "special"}, got)
	})

	t.Run("Should fail construction before reading any option value", func(t *testing.T) {
		infos := []OptionInfo{{Name: "broken", Type: Kind("mystery")}}
		// The invalid option value would fail validation if it were
		// ever reached; the type error must come first.
		_, err := NormalizeAPIOptions(map[string]any{"broken": struct{}{}}, infos, quiet())
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unexpected type "mystery"`)
	})
}

func TestPassThroughPolicies(t *testing.T) {
	infos := []OptionInfo{{Name: "semi", Type: KindBoolean}}

	t.Run("Should keep listed unknown keys and drop the rest", func(t *testing.T) {
		got, err := NormalizeAPIOptions(map[string]any{"foo": 1, "bar": 2, "semi": true}, infos, &NormalizeOptions{
			Logger:          logger.Nop(),
			PassThroughKeys: []string{"foo"},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"foo": 1, "semi": true}, got)
	})

	t.Run("Should keep every unknown key when pass-through is unconditional", func(t *testing.T) {
		got, err := NormalizeAPIOptions(map[string]any{"foo": 1, "bar": 2}, infos, &NormalizeOptions{
			Logger:      logger.Nop(),
			PassThrough: true,
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"foo": 1, "bar": 2}, got)
	})

	t.Run("Should suggest the nearest known option under the strict policy", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.NewLogger(&logger.Config{Level: logger.WarnLevel, Output: buf})
		got, err := NormalizeAPIOptions(map[string]any{"semii": true}, infos, &NormalizeOptions{Logger: log})
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Contains(t, buf.String(), "Did you mean semi?")
	})
}

func TestOptionInfosFromMap(t *testing.T) {
	t.Run("Should decode descriptors from generic maps", func(t *testing.T) {
		data := []any{
			map[string]any{
				"name":  "tabWidth",
				"type":  "int",
				"alias": "t",
			},
			map[string]any{
				"name":    "trailingComma",
				"type":    "choice",
				"choices": []any{"es5", "all", map[string]any{"value": "none", "redirect": "es5"}},
			},
		}
		infos, err := OptionInfosFromMap(data)
		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, "tabWidth", infos[0].Name)
		assert.Equal(t, KindInt, infos[0].Type)
		assert.Equal(t, "t", infos[0].Alias)
		require.Len(t, infos[1].Choices, 3)
		assert.Equal(t, "es5", infos[1].Choices[0].Value)
		assert.Equal(t, "es5", infos[1].Choices[2].Redirect)
	})

	t.Run("Should reject non-list input", func(t *testing.T) {
		_, err := OptionInfosFromMap("nope")
		assert.Error(t, err)
	})
}

func TestValidateOptionInfos(t *testing.T) {
	t.Run("Should accept a well-formed descriptor list", func(t *testing.T) {
		infos := []OptionInfo{
			{Name: "semi", Type: KindBoolean},
			{Name: "parser", Type: KindString},
		}
		assert.NoError(t, ValidateOptionInfos(infos))
	})

	t.Run("Should reject a missing name", func(t *testing.T) {
		infos := []OptionInfo{{Type: KindBoolean}}
		assert.Error(t, ValidateOptionInfos(infos))
	})

	t.Run("Should reject an unrecognized type", func(t *testing.T) {
		infos := []OptionInfo{{Name: "x", Type: Kind("enum")}}
		assert.Error(t, ValidateOptionInfos(infos))
	})

	t.Run("Should reject duplicate names", func(t *testing.T) {
		infos := []OptionInfo{
			{Name: "semi", Type: KindBoolean},
			{Name: "semi", Type: KindBoolean},
		}
		err := ValidateOptionInfos(infos)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate option name")
	})
}
