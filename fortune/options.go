package fortune

import (
	"log"
	"os"
)

// config holds ComputeVoronoi's tunables, assembled from the defaults
// plus any Options passed in.
type config struct {
	tolerance  float64
	rayLength  float64
	assertions bool
	logger     *log.Logger
}

func defaultConfig() *config {
	return &config{
		tolerance:  1e-9,
		rayLength:  1e6,
		assertions: false,
		logger:     nil,
	}
}

// Option configures a ComputeVoronoi run. With no options, the run
// uses a tolerance of 1e-9, a ray length of 1e6, assertions off, and
// no logging.
type Option func(*config)

// WithTolerance overrides the tolerance ComputeVoronoi uses for its
// own checks — deciding whether two input sites are duplicates, and
// how far above the sweep line a predicted circle event's bottom-most
// point may lie and still be scheduled. Near-duplicate vertices are
// not merged. It does not change
// package geom's fixed Epsilon, which governs the core geometric
// predicates (collinearity, identical sites, parabola degeneracies).
func WithTolerance(eps float64) Option {
	return func(c *config) { c.tolerance = eps }
}

// WithRayLength sets the ray length stored in the run's configuration.
// ComputeVoronoi does not read it: no vertex distance check is made,
// with or without WithAssertions, and infinite vertices keep their
// unit directions.
func WithRayLength(length float64) Option {
	return func(c *config) { c.rayLength = length }
}

// WithAssertions turns on internal invariant checks (via
// github.com/arl/assertgo) at a handful of points in the sweep where a
// violation would otherwise surface much later as a subtly wrong
// diagram rather than a clear failure. Off by default because the
// checks touch every arc insertion and removal.
func WithAssertions(on bool) Option {
	return func(c *config) { c.assertions = on }
}

// WithVerbose enables progress logging to stderr: one line per event
// dispatched. Intended for debugging small inputs, not production use.
func WithVerbose(on bool) Option {
	return func(c *config) {
		if on {
			c.logger = log.New(os.Stderr, "fortune: ", log.LstdFlags)
		} else {
			c.logger = nil
		}
	}
}

// WithLogger routes verbose progress logging through logger instead of
// the default stderr logger created by WithVerbose.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func (c *config) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
