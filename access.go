package options

import "fmt"

// Methods cannot introduce type parameters, so the typed accessors are
// package-level functions taking the scope as their first argument.

// storeOf selects the scope's store for the value type T.
func storeOf[T Value](s *Scope) *typedStore[T] {
	var zero T
	switch any(zero).(type) {
	case bool:
		return any(&s.bools).(*typedStore[T])
	case int:
		return any(&s.ints).(*typedStore[T])
	case float64:
		return any(&s.floats).(*typedStore[T])
	default:
		return any(&s.texts).(*typedStore[T])
	}
}

// Get returns the value stored under key, marking the entry read. A key
// missing from s is looked up through the parent chain; a key absent
// everywhere yields ErrKeyNotFound.
func Get[T Value](s *Scope, key string) (T, error) {
	if v, ok := storeOf[T](s).get(key); ok {
		return v, nil
	}
	if s.parent != nil {
		return Get[T](s.parent, key)
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
}

// GetByID is Get with the key derived from id.
func GetByID[T Value](s *Scope, id *ID) (T, error) {
	return Get[T](s, id.storageKey())
}

// Exists reports whether key resolves anywhere along the parent chain. The
// entry is not marked read.
func Exists[T Value](s *Scope, key string) bool {
	if storeOf[T](s).has(key) {
		return true
	}
	if s.parent != nil {
		return Exists[T](s.parent, key)
	}
	return false
}

// ExistsByID is Exists with the key derived from id.
func ExistsByID[T Value](s *Scope, id *ID) bool {
	return Exists[T](s, id.storageKey())
}

// GetOrDefault is Get that returns def instead of failing when key is absent
// from the whole chain.
func GetOrDefault[T Value](s *Scope, key string, def T) T {
	if v, ok := storeOf[T](s).get(key); ok {
		return v
	}
	if s.parent != nil {
		return GetOrDefault[T](s.parent, key, def)
	}
	return def
}

// GetOrDefaultByID is GetOrDefault with the key derived from id.
func GetOrDefaultByID[T Value](s *Scope, id *ID, def T) T {
	return GetOrDefault[T](s, id.storageKey(), def)
}

// Set stores value under key in s's own store, never in an ancestor. The
// entry counts as unread until the next read.
func Set[T Value](s *Scope, key string, value T) {
	storeOf[T](s).set(key, value)
}

// SetByID is Set with the key derived from id.
func SetByID[T Value](s *Scope, id *ID, value T) {
	Set[T](s, id.storageKey(), value)
}

// Ref returns a pointer to the slot for key in s's own store, creating a
// zero-valued entry if absent. The parent chain is not consulted, and the
// entry is marked read. Useful when a setting is populated incrementally.
func Ref[T Value](s *Scope, key string) *T {
	return storeOf[T](s).ref(key)
}

// RefByID is Ref with the key derived from id.
func RefByID[T Value](s *Scope, id *ID) *T {
	return Ref[T](s, id.storageKey())
}

// IsRead reports whether the entry under key in s's own store has been read
// since it was last set.
func IsRead[T Value](s *Scope, key string) bool {
	return storeOf[T](s).isRead(key)
}

// IsDefault reports whether the value for key is not set anywhere except
// possibly the root: it is false as soon as a scope below the root holds the
// key in its own store, and unconditionally true at the root.
func IsDefault[T Value](s *Scope, key string) bool {
	if s.parent == nil {
		return true
	}
	if storeOf[T](s).has(key) {
		return false
	}
	return IsDefault[T](s.parent, key)
}

// IsDefaultByID is IsDefault with the key derived from id.
func IsDefaultByID[T Value](s *Scope, id *ID) bool {
	return IsDefault[T](s, id.storageKey())
}
