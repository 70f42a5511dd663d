package monosat

import "github.com/sirupsen/logrus"

// Config carries this theory's tunables. There are no environment
// variables and no on-disk format: every knob is set through Option
// functions at construction time.
type Config struct {
	// RndSeed seeds whatever randomized tie-breaking a host layers on
	// top of this theory (e.g. branching). The core itself never
	// elects a decision (see DecideTheory), so this is inert here and
	// exists only so hosts that do consult it have one place to read
	// it from.
	RndSeed float64

	// ReportPolarity is -1, 0, or 1: negative notifies sub-theories
	// only on inclusions, positive only on exclusions. It is inert for
	// this core (meaningful to adjacent graph-theory clients sharing
	// a host) but threaded through so a host wiring both can share
	// one Config.
	ReportPolarity int8

	Log    logrus.FieldLogger
	Tracer Tracer
}

// Option mutates a Config at construction time.
type Option func(*Config)

// WithRndSeed sets Config.RndSeed.
func WithRndSeed(seed float64) Option {
	return func(c *Config) { c.RndSeed = seed }
}

// WithReportPolarity sets Config.ReportPolarity.
func WithReportPolarity(p int8) Option {
	return func(c *Config) { c.ReportPolarity = p }
}

// WithLogger sets Config.Log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Config) { c.Log = log }
}

// WithTracer sets Config.Tracer.
func WithTracer(t Tracer) Option {
	return func(c *Config) { c.Tracer = t }
}

func defaultConfig() Config {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return Config{
		Log:    log,
		Tracer: DefaultTracer{},
	}
}
