package vnopts

import (
	"fmt"
	"sort"

	"github.com/GuillemALba/prettier/pkg/logger"
)

// NormalizeOptions configures one Normalize call. Nil fields fall back
// to a no-op logger, the API descriptor and the suggest-and-drop
// unknown handler.
type NormalizeOptions struct {
	Logger     logger.Logger
	Unknown    UnknownHandler
	Descriptor Descriptor
}

// Normalize coerces and validates a raw option mapping against the
// given schemas. The input map is deep-copied first. Keys are processed
// in sorted order so warnings and redirects are deterministic.
//
// The per-key pipeline is preprocess, validate, deprecation warning,
// redirect, assignment. Redirected values are re-queued under their
// target keys; a key assigned twice is merged through the schema's
// Overlap hook. Validation failures abort with an error; every other
// condition only warns through the logger.
func Normalize(options map[string]any, schemas []Schema, opts *NormalizeOptions) (map[string]any, error) {
	if opts == nil {
		opts = &NormalizeOptions{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	descriptor := opts.Descriptor
	if descriptor == nil {
		descriptor = APIDescriptor
	}
	unknown := opts.Unknown
	if unknown == nil {
		unknown = SuggestUnknownHandler
	}

	schemasByName := make(map[string]Schema, len(schemas))
	for _, s := range schemas {
		schemasByName[s.Name()] = s
	}
	utils := &Utils{Logger: log, Descriptor: descriptor, Schemas: schemasByName}

	cloned, err := deepCopyMap(options)
	if err != nil {
		return nil, err
	}
	queue := make([]Transfer, 0, len(cloned))
	for _, key := range sortedKeys(cloned) {
		queue = append(queue, Transfer{Key: key, Value: cloned[key]})
	}

	// Redirect chains are bounded by the schema count; anything longer
	// means the schemas redirect in a cycle.
	maxSteps := (len(queue) + 1) * (len(schemas) + 2)
	steps := 0

	normalized := map[string]any{}
	for len(queue) > 0 {
		steps++
		if steps > maxSteps {
			return nil, fmt.Errorf("cyclic redirect detected while normalizing options")
		}
		pair := queue[0]
		queue = queue[1:]

		schema, known := schemasByName[pair.Key]
		if !known {
			result := unknown(pair.Key, pair.Value, utils)
			for _, key := range sortedKeys(result) {
				value := result[key]
				if _, ok := schemasByName[key]; ok {
					queue = append(queue, Transfer{Key: key, Value: value})
				} else {
					normalized[key] = value
				}
			}
			continue
		}

		value := schema.Preprocess(pair.Value, utils)
		if !schema.Validate(value, utils) {
			return nil, fmt.Errorf(
				"invalid %s value: expected %s, but received %s",
				descriptor.Key(pair.Key),
				schema.Expected(utils),
				descriptor.Value(value),
			)
		}
		if schema.Deprecated(value, utils) {
			log.Warn(fmt.Sprintf("%s is deprecated.", descriptor.Pair(pair.Key, value)))
		}
		if redirect := schema.Redirect(value, utils); redirect != nil {
			queue = append(queue, redirect.Transfers...)
			if !redirect.HasRemain {
				continue
			}
			value = redirect.Remain
		}
		if current, exists := normalized[pair.Key]; exists {
			normalized[pair.Key] = schema.Overlap(current, value, utils)
		} else {
			normalized[pair.Key] = value
		}
	}
	return normalized, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
