package options

import (
	"fmt"
	"sort"
)

// Value enumerates the types a scope can hold.
type Value interface {
	bool | int | float64 | string
}

// Scope is a node in the configuration tree. It owns one store per supported
// value type and an ordered set of named subscopes. Lookups that miss fall
// through to the parent scope; writes always land in the scope they are
// called on.
//
// A Scope is not safe for concurrent use. Build the tree during startup and
// treat it as read-mostly afterwards.
type Scope struct {
	parent *Scope

	bools  typedStore[bool]
	ints   typedStore[int]
	floats typedStore[float64]
	texts  typedStore[string]

	subs map[string]*Scope
}

// NewScope returns an empty root scope with no parent.
func NewScope() *Scope {
	return &Scope{}
}

// NewChildScope returns a scope that resolves missing keys through parent
// without being registered as one of parent's subscopes. The parent must
// outlive the returned scope.
func NewChildScope(parent *Scope) *Scope {
	return &Scope{parent: parent}
}

// Parent returns the scope consulted on lookup misses, or nil at the root.
func (s *Scope) Parent() *Scope { return s.parent }

// AddSubscope creates, attaches and returns a child scope. The name must be
// unique among s's subscopes.
func (s *Scope) AddSubscope(name string) (*Scope, error) {
	if _, exists := s.subs[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateSubscope, name)
	}
	if s.subs == nil {
		s.subs = make(map[string]*Scope)
	}
	child := &Scope{parent: s}
	s.subs[name] = child
	return child, nil
}

// Subscope returns the child scope with the given name.
func (s *Scope) Subscope(name string) (*Scope, error) {
	child, ok := s.subs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSubscopeNotFound, name)
	}
	return child, nil
}

// HasSubscope reports whether a child scope with the given name exists.
func (s *Scope) HasSubscope(name string) bool {
	_, ok := s.subs[name]
	return ok
}

// ListSubscopes returns the names of all child scopes in sorted order.
func (s *Scope) ListSubscopes() []string {
	names := make([]string, 0, len(s.subs))
	for name := range s.subs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckAllRead returns an ErrUnknownOption for the first option in this
// scope's own stores that was never read, naming it under the given path
// label. A value set after its last read counts as unread. Subscopes are not
// visited; use CheckAllReadRecursive to validate a whole tree.
func (s *Scope) CheckAllRead(label string) error {
	if key, ok := s.bools.firstUnread(); ok {
		return unknownOption("boolean", label, key)
	}
	if key, ok := s.ints.firstUnread(); ok {
		return unknownOption("integer", label, key)
	}
	if key, ok := s.floats.firstUnread(); ok {
		return unknownOption("float", label, key)
	}
	if key, ok := s.texts.firstUnread(); ok {
		return unknownOption("string", label, key)
	}
	return nil
}

// CheckAllReadRecursive applies CheckAllRead to this scope and every scope
// below it, extending label with dotted subscope names as it descends.
func (s *Scope) CheckAllReadRecursive(label string) error {
	if err := s.CheckAllRead(label); err != nil {
		return err
	}
	for _, name := range s.ListSubscopes() {
		childLabel := name
		if label != "" {
			childLabel = label + "." + name
		}
		if err := s.subs[name].CheckAllReadRecursive(childLabel); err != nil {
			return err
		}
	}
	return nil
}

func unknownOption(typeName, label, key string) error {
	name := key
	if label != "" {
		name = label + "." + key
	}
	return fmt.Errorf("%w: unknown %s option %q", ErrUnknownOption, typeName, name)
}
