// Package vnopts implements a small generic option-validation engine:
// per-option schemas with preprocess/validate/redirect hooks and a
// Normalize function that coerces a raw option mapping against them.
// Higher-level descriptor formats (see pkg/options) are mapped onto
// these primitives.
package vnopts

import (
	"github.com/GuillemALba/prettier/pkg/logger"
)

// Transfer moves a value onto another option key.
type Transfer struct {
	Key   string
	Value any
}

// Redirect describes where a value should move during normalization.
// Transfers are re-queued under their target keys; Remain (when
// HasRemain is set) is the part of the value kept on the original key.
type Redirect struct {
	Transfers []Transfer
	Remain    any
	HasRemain bool
}

// Utils carries the per-call collaborators into every schema hook.
// Logger and descriptor are explicit dependencies of a Normalize call,
// never package state.
type Utils struct {
	Logger     logger.Logger
	Descriptor Descriptor
	Schemas    map[string]Schema
}

// Schema validates and transforms the value of a single option.
type Schema interface {
	Name() string
	// Expected describes the valid value shape for error messages.
	Expected(u *Utils) string
	// Validate reports whether value is acceptable after preprocessing.
	Validate(value any, u *Utils) bool
	// Preprocess may rewrite the raw value before validation.
	Preprocess(value any, u *Utils) any
	// Deprecated reports whether using this value should warn.
	Deprecated(value any, u *Utils) bool
	// Redirect may move the value onto other option keys.
	Redirect(value any, u *Utils) *Redirect
	// Overlap merges a value into one already assigned to the same key.
	Overlap(current any, incoming any, u *Utils) any
}

// baseSchema supplies the default hook behavior shared by the concrete
// schemas through embedding.
type baseSchema struct {
	name string
}

func (s *baseSchema) Name() string { return s.name }

func (s *baseSchema) Preprocess(value any, _ *Utils) any { return value }

func (s *baseSchema) Deprecated(any, *Utils) bool { return false }

func (s *baseSchema) Redirect(any, *Utils) *Redirect { return nil }

// Overlap keeps the first assigned value; later duplicates are dropped.
func (s *baseSchema) Overlap(current any, _ any, _ *Utils) any { return current }
