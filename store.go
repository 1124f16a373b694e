package options

// entry is a single stored value plus its usage flag. Reading the entry marks
// it read; re-setting the value clears the flag, so an override written after
// the last read is reported as unused again.
type entry[T Value] struct {
	value T
	read  bool
}

// typedStore holds every value of one supported type within a scope. Keys are
// remembered in insertion order so unused-option reports are deterministic.
type typedStore[T Value] struct {
	entries map[string]*entry[T]
	keys    []string
}

// get returns the value stored under key and marks the entry read.
func (ts *typedStore[T]) get(key string) (T, bool) {
	e, ok := ts.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	e.read = true
	return e.value, true
}

// set inserts or overwrites the value under key. The entry counts as unread
// until the next get.
func (ts *typedStore[T]) set(key string, value T) {
	if e, ok := ts.entries[key]; ok {
		e.value = value
		e.read = false
		return
	}
	if ts.entries == nil {
		ts.entries = make(map[string]*entry[T])
	}
	ts.entries[key] = &entry[T]{value: value}
	ts.keys = append(ts.keys, key)
}

// ref returns a pointer to the slot for key, creating a zero-valued entry if
// absent, and marks the entry read.
func (ts *typedStore[T]) ref(key string) *T {
	e, ok := ts.entries[key]
	if !ok {
		if ts.entries == nil {
			ts.entries = make(map[string]*entry[T])
		}
		e = &entry[T]{}
		ts.entries[key] = e
		ts.keys = append(ts.keys, key)
	}
	e.read = true
	return &e.value
}

// has reports whether key exists. It does not mark the entry read.
func (ts *typedStore[T]) has(key string) bool {
	_, ok := ts.entries[key]
	return ok
}

// isRead reports whether the entry under key has been read since it was last
// set.
func (ts *typedStore[T]) isRead(key string) bool {
	e, ok := ts.entries[key]
	return ok && e.read
}

// firstUnread returns the first key, in insertion order, whose entry was
// never read.
func (ts *typedStore[T]) firstUnread() (string, bool) {
	for _, k := range ts.keys {
		if !ts.entries[k].read {
			return k, true
		}
	}
	return "", false
}

// snapshot copies every entry into dst, marking each one read.
func (ts *typedStore[T]) snapshot(dst map[string]any) {
	for _, k := range ts.keys {
		e := ts.entries[k]
		e.read = true
		dst[k] = e.value
	}
}
