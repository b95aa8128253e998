package classify

import (
	"fmt"

	"github.com/genemodule/subtyper/arrange"
	"github.com/genemodule/subtyper/expr"
	"github.com/genemodule/subtyper/simplicity"
	"github.com/genemodule/subtyper/subtype"
)

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds the pipeline parameters.
type Options struct {
	// Preferred is the preferred module display order
	// (default: subtype.DefaultPreferredOrder()).
	Preferred []string

	// Method selects the simplicity formula (default: simplicity.Gap).
	Method simplicity.Method
}

// DefaultOptions returns the pipeline defaults.
func DefaultOptions() Options {
	return Options{
		Preferred: subtype.DefaultPreferredOrder(),
		Method:    simplicity.Gap,
	}
}

// WithPreferredOrder sets a custom preferred module display order.
func WithPreferredOrder(names []string) Option {
	return func(o *Options) {
		if names != nil {
			o.Preferred = append([]string(nil), names...)
		}
	}
}

// WithMethod selects the simplicity formula. Validity is checked by the
// simplicity stage itself, at the boundary.
func WithMethod(m simplicity.Method) Option {
	return func(o *Options) { o.Method = m }
}

// Result is the pipeline output: the resolved module order and the full
// annotation bundle (whose Table field is the canonical, row-sorted
// score table).
type Result struct {
	Order       subtype.ModuleOrder
	Arrangement *arrange.Arrangement
}

// Run executes the three pipeline stages in sequence. Input errors from
// any stage surface unchanged (match them with errors.Is against the
// stage's sentinels); there is no partial result on failure.
func Run(m *expr.Matrix, set *expr.ModuleSet, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	table, order, err := subtype.Score(m, set, subtype.WithPreferredOrder(o.Preferred))
	if err != nil {
		return nil, fmt.Errorf("classify.Run: %w", err)
	}

	if err = simplicity.Score(table, o.Method); err != nil {
		return nil, fmt.Errorf("classify.Run: %w", err)
	}

	a, err := arrange.Arrange(table)
	if err != nil {
		return nil, fmt.Errorf("classify.Run: %w", err)
	}

	return &Result{Order: order, Arrangement: a}, nil
}
