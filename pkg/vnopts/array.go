package vnopts

// ArraySchema accepts slices whose elements all satisfy the value schema.
type ArraySchema struct {
	baseSchema
	valueSchema Schema
}

// NewArraySchema wraps valueSchema. An empty name inherits the value
// schema's name.
func NewArraySchema(valueSchema Schema, name string) *ArraySchema {
	if name == "" {
		name = valueSchema.Name()
	}
	return &ArraySchema{
		baseSchema:  baseSchema{name: name},
		valueSchema: valueSchema,
	}
}

// ValueSchema returns the per-element schema.
func (s *ArraySchema) ValueSchema() Schema { return s.valueSchema }

func (s *ArraySchema) Expected(u *Utils) string {
	return "an array of " + s.valueSchema.Expected(u)
}

func (s *ArraySchema) Validate(value any, u *Utils) bool {
	elems, ok := value.([]any)
	if !ok {
		return false
	}
	for _, e := range elems {
		if !s.valueSchema.Validate(s.valueSchema.Preprocess(e, u), u) {
			return false
		}
	}
	return true
}

func (s *ArraySchema) Preprocess(value any, u *Utils) any {
	elems, ok := value.([]any)
	if !ok {
		return value
	}
	out := make([]any, len(elems))
	for i, e := range elems {
		out[i] = s.valueSchema.Preprocess(e, u)
	}
	return out
}

func (s *ArraySchema) Deprecated(value any, u *Utils) bool {
	elems, ok := value.([]any)
	if !ok {
		return false
	}
	for _, e := range elems {
		if s.valueSchema.Deprecated(e, u) {
			return true
		}
	}
	return false
}

// Redirect splits the elements: ones the value schema redirects are
// transferred, the rest remain on this key.
func (s *ArraySchema) Redirect(value any, u *Utils) *Redirect {
	elems, ok := value.([]any)
	if !ok {
		return nil
	}
	var transfers []Transfer
	remain := make([]any, 0, len(elems))
	for _, e := range elems {
		if r := s.valueSchema.Redirect(e, u); r != nil {
			transfers = append(transfers, r.Transfers...)
			if r.HasRemain {
				remain = append(remain, r.Remain)
			}
			continue
		}
		remain = append(remain, e)
	}
	if len(transfers) == 0 {
		return nil
	}
	return &Redirect{Transfers: transfers, Remain: remain, HasRemain: true}
}

// Overlap concatenates slices when the same key is assigned twice, e.g.
// through an alias and the full option name.
func (s *ArraySchema) Overlap(current any, incoming any, _ *Utils) any {
	cur, okCur := current.([]any)
	inc, okInc := incoming.([]any)
	if !okCur || !okInc {
		return current
	}
	merged := make([]any, 0, len(cur)+len(inc))
	merged = append(merged, cur...)
	merged = append(merged, inc...)
	return merged
}
