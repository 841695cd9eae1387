package labeler

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// WithTraversal selects the flood-fill walk. Unknown values are recorded and
// surfaced as ErrOptionViolation by the call that receives the option.
func WithTraversal(t Traversal) Option {
	return func(o *Options) {
		if !t.valid() {
			o.err = fmt.Errorf("labeler: traversal %s: %w", t, ErrOptionViolation)
			return
		}
		o.Traversal = t
	}
}

// WithSeparateVisited switches CountIslands from the fused sign encoding to a
// separate visited structure. The input grid is then only read, never copied.
func WithSeparateVisited() Option {
	return func(o *Options) {
		o.SeparateVisited = true
	}
}

// WithLogger attaches a structured logger. A nil logger disables logging.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// gatherOptions applies opts over DefaultOptions and returns the first recorded violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn == nil {
			continue
		}
		fn(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
