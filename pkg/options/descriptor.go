package options

import (
	"fmt"

	"github.com/GuillemALba/prettier/pkg/vnopts"
)

// CLIDescriptor renders keys and values in command-line syntax for
// warnings and errors produced while normalizing CLI arguments.
var CLIDescriptor vnopts.Descriptor = cliDescriptor{}

type cliDescriptor struct{}

func (cliDescriptor) Key(key string) string {
	if len(key) == 1 {
		return "-" + key
	}
	return "--" + key
}

func (cliDescriptor) Value(value any) string {
	return vnopts.APIDescriptor.Value(value)
}

func (d cliDescriptor) Pair(key string, value any) string {
	switch v := value.(type) {
	case bool:
		if !v {
			return "--no-" + key
		}
		return d.Key(key)
	case string:
		if v == "" {
			return d.Key(key) + " without an argument"
		}
	}
	return fmt.Sprintf("%s=%v", d.Key(key), value)
}
