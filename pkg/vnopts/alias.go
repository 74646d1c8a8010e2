package vnopts

// AliasSchema forwards every value it receives onto the source option.
type AliasSchema struct {
	baseSchema
	sourceName string
}

func NewAliasSchema(name string, sourceName string) *AliasSchema {
	return &AliasSchema{
		baseSchema: baseSchema{name: name},
		sourceName: sourceName,
	}
}

// SourceName returns the option this alias forwards to.
func (s *AliasSchema) SourceName() string { return s.sourceName }

func (s *AliasSchema) Expected(u *Utils) string {
	if source, ok := u.Schemas[s.sourceName]; ok {
		return source.Expected(u)
	}
	return "anything"
}

// Validate always passes; the source schema validates the forwarded value.
func (s *AliasSchema) Validate(any, *Utils) bool { return true }

func (s *AliasSchema) Redirect(value any, _ *Utils) *Redirect {
	return &Redirect{Transfers: []Transfer{{Key: s.sourceName, Value: value}}}
}
