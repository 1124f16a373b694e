package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Registry binds a fixed table of IDs to command-line flags and routes parsed
// values into a destination scope. Registering an option writes its default
// into the scope immediately; Parse then overwrites the default of every flag
// the user actually passed. Lookups afterwards go through GetByID and
// friends, so call sites never repeat flag names as strings.
type Registry struct {
	fs      *pflag.FlagSet
	dest    *Scope
	applies []func()
}

// NewRegistry creates a registry whose parsed values land in dest. The name
// is used in usage and error output.
func NewRegistry(name string, dest *Scope) *Registry {
	return &Registry{
		fs:   pflag.NewFlagSet(name, pflag.ContinueOnError),
		dest: dest,
	}
}

// FlagSet exposes the underlying flag set, e.g. for usage output or for
// attaching flags the registry does not manage.
func (r *Registry) FlagSet() *pflag.FlagSet { return r.fs }

// BoolOption registers a boolean option under id's long flag and shorthand.
func (r *Registry) BoolOption(id *ID, def bool) {
	bindOption(r, id, r.fs.BoolP(id.LongFlag(), shorthand(id), def, id.Help()), def)
}

// IntOption registers an integer option under id's long flag and shorthand.
func (r *Registry) IntOption(id *ID, def int) {
	bindOption(r, id, r.fs.IntP(id.LongFlag(), shorthand(id), def, id.Help()), def)
}

// FloatOption registers a float option under id's long flag and shorthand.
func (r *Registry) FloatOption(id *ID, def float64) {
	bindOption(r, id, r.fs.Float64P(id.LongFlag(), shorthand(id), def, id.Help()), def)
}

// StringOption registers a string option under id's long flag and shorthand.
func (r *Registry) StringOption(id *ID, def string) {
	bindOption(r, id, r.fs.StringP(id.LongFlag(), shorthand(id), def, id.Help()), def)
}

// Parse parses args (excluding the program name) and writes the value of
// every flag the user set into the destination scope.
func (r *Registry) Parse(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	for _, apply := range r.applies {
		apply()
	}
	return nil
}

// bindOption writes the default into the destination scope and queues the
// post-parse override for flags the user changed.
func bindOption[T Value](r *Registry, id *ID, p *T, def T) {
	SetByID(r.dest, id, def)
	r.applies = append(r.applies, func() {
		if r.fs.Changed(id.LongFlag()) {
			SetByID(r.dest, id, *p)
		}
	})
}

func shorthand(id *ID) string {
	if id.Shorthand() == 0 {
		return ""
	}
	return string(id.Shorthand())
}
