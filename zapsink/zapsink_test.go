package zapsink_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/km-arc/inject"
	"github.com/km-arc/inject/zapsink"
)

type greeting struct {
	Text string
}

func TestSink_LogsEachResolutionAttempt(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := inject.New(inject.WithSink(zapsink.New(zap.New(core))))
	c.Instance((*greeting)(nil), &greeting{Text: "hello"})

	_, err := inject.Resolve[*greeting](c)
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "resolving type", entries[0].Message)
	assert.Equal(t, "*zapsink_test.greeting", entries[0].ContextMap()["type"])
}

func TestSink_FailedResolutionStillLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := inject.New(inject.WithSink(zapsink.New(zap.New(core))))

	_, err := inject.Resolve[*greeting](c)
	require.Error(t, err, "greeting needs an unbound string")
	assert.Equal(t, 2, logs.Len(), "both *greeting and string attempts should be logged")
}

func TestNew_NilLoggerIsNoOp(t *testing.T) {
	c := inject.New(inject.WithSink(zapsink.New(nil)))
	c.Instance((*greeting)(nil), &greeting{Text: "quiet"})

	got, err := inject.Resolve[*greeting](c)
	require.NoError(t, err)
	assert.Equal(t, "quiet", got.Text)
}
