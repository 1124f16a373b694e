package options

import (
	"strconv"
	"sync/atomic"
)

var idCounter atomic.Uint64

// ID identifies a single option. Two IDs are the same option only when they
// are the same object: equality is by identity, never by name, so unrelated
// subsystems may register options with colliding display text without
// aliasing each other's storage. Construct IDs once, at package level, and
// always pass them by pointer.
type ID struct {
	longFlag    string
	displayName string
	help        string
	shorthand   rune
	seq         uint64
}

// NewID creates an option descriptor. longFlag is the command-line flag name,
// displayName the human-readable form, help the usage text. shorthand is an
// optional single-letter flag alias; pass 0 for none.
func NewID(longFlag, displayName, help string, shorthand rune) *ID {
	return &ID{
		longFlag:    longFlag,
		displayName: displayName,
		help:        help,
		shorthand:   shorthand,
		seq:         idCounter.Add(1),
	}
}

// LongFlag returns the command-line flag name.
func (id *ID) LongFlag() string { return id.longFlag }

// DisplayName returns the human-readable option name.
func (id *ID) DisplayName() string { return id.displayName }

// Help returns the usage text.
func (id *ID) Help() string { return id.help }

// Shorthand returns the single-letter flag alias, or 0 if there is none.
func (id *ID) Shorthand() rune { return id.shorthand }

// storageKey derives the string the ID's value is stored under. The sequence
// number is unique within the process, so distinct IDs never share a slot
// even when their display text matches.
func (id *ID) storageKey() string {
	return strconv.FormatUint(id.seq, 10)
}
