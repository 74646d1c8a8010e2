package vnopts

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// Descriptor renders option keys and values into human-readable text
// for warnings and errors. Implementations are stateless.
type Descriptor interface {
	Key(key string) string
	Value(value any) string
	Pair(key string, value any) string
}

var identifierPattern = regexp.MustCompile(`^[$_a-zA-Z][$_a-zA-Z0-9]*$`)

// APIDescriptor renders keys and values as generic literals, the way a
// programmatic caller would write them.
var APIDescriptor Descriptor = apiDescriptor{}

type apiDescriptor struct{}

func (apiDescriptor) Key(key string) string {
	if identifierPattern.MatchString(key) {
		return key
	}
	return strconv.Quote(key)
}

func (d apiDescriptor) Value(value any) string {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(b)
}

func (d apiDescriptor) Pair(key string, value any) string {
	return fmt.Sprintf("{ %s: %s }", d.Key(key), d.Value(value))
}
