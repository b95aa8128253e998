// Package subtype: functional configuration for the module scorer.

package subtype

// Option configures Score via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of Score.
type Options struct {
	// Preferred is the preferred module display order. Modules named here
	// (and present in the set) lead ModuleOrder; the rest follow in the
	// set's insertion order. Unknown names are ignored.
	Preferred []string
}

// DefaultOptions returns the scorer defaults: the built-in four-subtype
// reference order as Preferred.
func DefaultOptions() Options {
	return Options{Preferred: DefaultPreferredOrder()}
}

// WithPreferredOrder sets a custom preferred module display order.
// Passing nil keeps the default; an explicit empty slice disables
// preference entirely (pure insertion order).
func WithPreferredOrder(names []string) Option {
	return func(o *Options) {
		if names != nil {
			o.Preferred = append([]string(nil), names...)
		}
	}
}
