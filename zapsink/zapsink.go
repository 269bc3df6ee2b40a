// Package zapsink adapts a zap logger to the inject.Sink interface, so
// resolution attempts show up in structured application logs.
//
//	logger, _ := zap.NewProduction()
//	c := inject.New(inject.WithSink(zapsink.New(logger)))
package zapsink

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/km-arc/inject"
)

// sink emits one debug-level record per resolution attempt.
type sink struct {
	logger *zap.Logger
}

// New returns a Sink that logs every resolution attempt through logger.
// A nil logger yields a no-op sink.
func New(logger *zap.Logger) inject.Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &sink{logger: logger}
}

func (s *sink) ResolutionAttempt(t reflect.Type) {
	s.logger.Debug("resolving type", zap.Stringer("type", t))
}
