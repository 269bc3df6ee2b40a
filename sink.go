package inject

import "reflect"

// ── Sink ──────────────────────────────────────────────────────────────────────

// Sink receives a notification for every resolution attempt, successful or
// not. It exists for logging and telemetry only: the container ignores
// anything the sink does, including panicking.
type Sink interface {
	// ResolutionAttempt is called on entry to every resolution with the
	// TypeKey being requested.
	ResolutionAttempt(t reflect.Type)
}

// SinkFunc adapts a plain function to the Sink interface.
//
//	c := inject.New(inject.WithSink(inject.SinkFunc(func(t reflect.Type) {
//	    log.Printf("resolving %v", t)
//	})))
type SinkFunc func(t reflect.Type)

func (f SinkFunc) ResolutionAttempt(t reflect.Type) { f(t) }

// nopSink is the default: resolution attempts go nowhere.
type nopSink struct{}

func (nopSink) ResolutionAttempt(reflect.Type) {}

// ── Options ───────────────────────────────────────────────────────────────────

// Option configures a Container at construction time.
type Option func(*Container)

// WithSink directs resolution-attempt notifications to s.
// A nil s restores the default no-op sink.
func WithSink(s Sink) Option {
	return func(c *Container) {
		if s == nil {
			s = nopSink{}
		}
		c.sink = s
	}
}
