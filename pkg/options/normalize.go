package options

import (
	"github.com/GuillemALba/prettier/pkg/logger"
	"github.com/GuillemALba/prettier/pkg/vnopts"
)

// NormalizeOptions configures one normalization call.
type NormalizeOptions struct {
	Logger logger.Logger
	// IsCLI selects CLI conventions: flag aliasing, the positional
	// argument bucket, string-to-number and scalar-to-array coercion
	// and CLI-syntax messages.
	IsCLI bool
	// PassThrough keeps every unknown key in the output unchanged.
	PassThrough bool
	// PassThroughKeys keeps only the listed unknown keys; other unknown
	// keys are dropped. Takes precedence over PassThrough when set.
	PassThroughKeys []string
}

// NormalizeAPIOptions normalizes a programmatic option mapping against
// the descriptor list.
func NormalizeAPIOptions(
	options map[string]any,
	infos []OptionInfo,
	opts *NormalizeOptions,
) (map[string]any, error) {
	merged := cloneNormalizeOptions(opts)
	merged.IsCLI = false
	return normalizeOptions(options, infos, merged)
}

// NormalizeCLIOptions normalizes a command-line option mapping against
// the descriptor list, forcing CLI conventions.
func NormalizeCLIOptions(
	options map[string]any,
	infos []OptionInfo,
	opts *NormalizeOptions,
) (map[string]any, error) {
	merged := cloneNormalizeOptions(opts)
	merged.IsCLI = true
	return normalizeOptions(options, infos, merged)
}

func normalizeOptions(
	options map[string]any,
	infos []OptionInfo,
	opts *NormalizeOptions,
) (map[string]any, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewLogger(logger.DefaultConfig())
	}

	var unknown vnopts.UnknownHandler
	switch {
	case opts.PassThroughKeys != nil:
		unknown = vnopts.PassThroughKeysUnknownHandler(opts.PassThroughKeys)
	case opts.PassThrough:
		unknown = vnopts.PassThroughUnknownHandler
	default:
		unknown = vnopts.SuggestUnknownHandler
	}

	descriptor := vnopts.APIDescriptor
	if opts.IsCLI {
		descriptor = CLIDescriptor
	}

	schemas, err := OptionInfosToSchemas(infos, opts.IsCLI)
	if err != nil {
		return nil, err
	}
	return vnopts.Normalize(options, schemas, &vnopts.NormalizeOptions{
		Logger:     log,
		Unknown:    unknown,
		Descriptor: descriptor,
	})
}

func cloneNormalizeOptions(opts *NormalizeOptions) *NormalizeOptions {
	if opts == nil {
		return &NormalizeOptions{}
	}
	clone := *opts
	return &clone
}
