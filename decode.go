package options

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Snapshot returns the scope's own entries and subscopes as a nested
// map[string]any. Every entry included is marked read. Inherited values are
// not included: the snapshot reflects exactly what this subtree overrides.
// An entry sharing its key with a subscope name is shadowed by the subscope.
func (s *Scope) Snapshot() map[string]any {
	m := make(map[string]any)
	s.bools.snapshot(m)
	s.ints.snapshot(m)
	s.floats.snapshot(m)
	s.texts.snapshot(m)
	for name, child := range s.subs {
		m[name] = child.Snapshot()
	}
	return m
}

// Decode decodes the scope's own entries and subscopes into target, which
// must be a non-nil pointer to a struct. Field names are matched through the
// "options" struct tag, with weakly typed conversions for close-enough
// values. Decoding counts as reading every entry in the subtree.
func (s *Scope) Decode(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "options",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(s.Snapshot()); err != nil {
		return fmt.Errorf("failed to decode scope: %w", err)
	}
	return nil
}
