package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/GuillemALba/prettier/pkg/options"
)

// NormalizeCmd returns the normalize command.
func NormalizeCmd() *cobra.Command {
	var (
		descriptorFile  string
		apiMode         bool
		passThrough     bool
		passThroughKeys []string
	)

	cmd := &cobra.Command{
		Use:   "normalize [--key=value ...] [file ...]",
		Short: "Normalize option arguments against a descriptor file",
		Long: `Normalize parses key=value style arguments, validates them against the
option descriptors loaded from the given YAML file, and prints the
normalized mapping as JSON. Warnings (unknown options, deprecations,
corrected flags) go to stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(cmd, args, descriptorFile, apiMode, passThrough, passThroughKeys)
		},
	}

	cmd.Flags().StringVarP(&descriptorFile, "descriptors", "d", "options.yaml", "Path to the option descriptor file")
	cmd.Flags().BoolVar(&apiMode, "api", false, "Use API conventions instead of CLI ones")
	cmd.Flags().BoolVar(&passThrough, "pass-through", false, "Keep unknown options instead of dropping them")
	cmd.Flags().StringSliceVar(&passThroughKeys, "pass-through-keys", nil, "Keep only these unknown options")
	return cmd
}

func runNormalize(
	cmd *cobra.Command,
	args []string,
	descriptorFile string,
	apiMode bool,
	passThrough bool,
	passThroughKeys []string,
) error {
	log, err := loggerFromFlags(cmd)
	if err != nil {
		return err
	}
	infos, err := loadOptionInfos(descriptorFile)
	if err != nil {
		return err
	}

	raw, rest := parseArgPairs(args)
	if !apiMode {
		raw[options.RestArgsKey] = rest
	} else if len(rest) > 0 {
		return fmt.Errorf("positional arguments are only supported in CLI mode: %v", rest)
	}

	opts := &options.NormalizeOptions{
		Logger:          log,
		PassThrough:     passThrough,
		PassThroughKeys: passThroughKeys,
	}
	var normalized map[string]any
	if apiMode {
		normalized, err = options.NormalizeAPIOptions(raw, infos, opts)
	} else {
		normalized, err = options.NormalizeCLIOptions(raw, infos, opts)
	}
	if err != nil {
		return err
	}

	out, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("failed to marshal normalized options: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(pretty.Pretty(out))
	return err
}

// loadOptionInfos reads and validates a YAML descriptor list.
func loadOptionInfos(path string) ([]options.OptionInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor file: %w", err)
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor file: %w", err)
	}
	infos, err := options.OptionInfosFromMap(raw)
	if err != nil {
		return nil, err
	}
	if err := options.ValidateOptionInfos(infos); err != nil {
		return nil, err
	}
	return infos, nil
}

// parseArgPairs splits command arguments into an option mapping and the
// positional rest. Values stay strings; CLI normalization handles the
// numeric and array coercion.
func parseArgPairs(args []string) (map[string]any, []any) {
	opts := map[string]any{}
	rest := make([]any, 0, len(args))
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			rest = append(rest, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if name == "" {
			// A lone "-" is an operand, not an option.
			rest = append(rest, arg)
			continue
		}
		if key, value, found := strings.Cut(name, "="); found {
			appendArgValue(opts, key, value)
			continue
		}
		if after, found := strings.CutPrefix(name, "no-"); found && after != "" {
			opts[after] = false
			continue
		}
		opts[name] = true
	}
	return opts, rest
}

// appendArgValue stores a value under key, collecting repeats into a slice.
func appendArgValue(opts map[string]any, key string, value string) {
	existing, ok := opts[key]
	if !ok {
		opts[key] = value
		return
	}
	if list, isList := existing.([]any); isList {
		opts[key] = append(list, value)
		return
	}
	opts[key] = []any{existing, value}
}
