package calculation

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/rpgo/projector/internal/domain"
	"github.com/rpgo/projector/pkg/dateutil"
)

// Logger is a minimal logging interface for the calculation engine.
// The default is a no-op; internal/logging adapts logrus to it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// Contract violations the engine cannot compute around. Everything else
// degrades to sentinel values instead of failing.
var (
	ErrInvalidHorizon     = errors.New("horizon must cover at least one period")
	ErrInvalidSimulations = errors.New("number of simulations must be at least 1")
	ErrInvalidFrequency   = errors.New("frequency must be between 1 and 12 periods per year")
	ErrInvalidVolatility  = errors.New("volatility must be a non-negative number")
	ErrScheduleLength     = errors.New("cash-flow schedule length does not match the horizon")
)

// ProjectionEngine runs the four calculators and the contribution
// suggestion. It holds no per-request state and is safe for concurrent use.
type ProjectionEngine struct {
	Simulator *PathSimulator
	Logger    Logger
}

// NewProjectionEngine creates an engine with a no-op logger and one
// simulation worker per CPU.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		Simulator: NewPathSimulator(runtime.GOMAXPROCS(0)),
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the engine and its simulator. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	pe.Logger = l
	if pe.Simulator != nil {
		pe.Simulator.Logger = l
	}
}

// WithLogger returns a copy of the engine, simulator included, that logs
// to l. The receiver is left untouched, so per-request loggers can be
// attached to a shared engine.
func (pe *ProjectionEngine) WithLogger(l Logger) *ProjectionEngine {
	cp := *pe
	if pe.Simulator != nil {
		sim := *pe.Simulator
		cp.Simulator = &sim
	}
	cp.SetLogger(l)
	return &cp
}

// Project dispatches on the parameter type. params must be a pointer to one
// of the domain parameter structs.
func (pe *ProjectionEngine) Project(ctx context.Context, params any) (domain.Projection, error) {
	switch p := params.(type) {
	case *domain.CompoundParams:
		return pe.Compound(ctx, *p)
	case *domain.DrawdownParams:
		return pe.Drawdown(ctx, *p)
	case *domain.FireParams:
		return pe.Fire(ctx, *p)
	case *domain.MortgageParams:
		return pe.Mortgage(*p)
	case *domain.SuggestParams:
		return pe.SuggestContribution(*p), nil
	}
	return nil, fmt.Errorf("no calculator for %T", params)
}

func startDate(d *dateutil.Date) time.Time {
	if d == nil || d.IsZero() {
		return today()
	}
	return d.Time
}

func clampDecimals(d int) int {
	if d < 0 {
		return 0
	}
	return d
}
