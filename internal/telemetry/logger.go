// Package telemetry backs the rendering pipeline's core.Logger interface
// with a structured go.uber.org/zap logger, the way nicolasmd87-gopher3D
// wires zap as its engine-wide logger. Everything downstream of
// pkg/core.Logger stays decoupled from zap itself.
package telemetry

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/df07/spherefield/pkg/core"
)

// ZapLogger adapts a *zap.SugaredLogger to core.Logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps an existing sugared logger.
func NewZapLogger(sugar *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{sugar: sugar}
}

// Printf implements core.Logger.
func (l *ZapLogger) Printf(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// NewProduction builds a production zap logger, or a no-op logger if zap
// fails to initialize (e.g. an unwritable sink); the renderer must never
// fail to start because logging could not.
func NewProduction() core.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return core.NopLogger{}
	}
	return NewZapLogger(logger.Sugar())
}

// NewRenderJobLogger returns a logger pre-tagged with a render job id, so
// every line this render emits can be correlated across workers and
// tiles.
func NewRenderJobLogger(base *zap.SugaredLogger, renderID uuid.UUID) core.Logger {
	return NewZapLogger(base.With("render_id", renderID.String()))
}

// WithRenderID returns a copy of l tagged with renderID, for callers that
// only hold the core.Logger-wrapped form.
func (l *ZapLogger) WithRenderID(renderID uuid.UUID) *ZapLogger {
	return NewZapLogger(l.sugar.With("render_id", renderID.String()))
}
