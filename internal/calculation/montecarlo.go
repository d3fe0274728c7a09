package calculation

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/rpgo/projector/internal/numeric"
)

// Phase is a stretch of the horizon sharing one annual expected return
// (already net of fees).
type Phase struct {
	Periods int
	Mu      float64
}

// SimulationParameters describes one ensemble of geometric Brownian motion
// wealth paths with period-by-period cash flows.
type SimulationParameters struct {
	NumSimulations int
	Frequency      int
	Sigma          float64
	Phases         []Phase
	Initial        float64
	// Flows holds one signed net flow per period, applied after growth.
	// A nil slice means no flows.
	Flows []float64
	// FloorAtZero clamps every period to zero; a clamped path stays at zero.
	FloorAtZero bool
	Seed        *int64
}

// Periods returns the horizon T across all phases.
func (sp SimulationParameters) Periods() int {
	total := 0
	for _, ph := range sp.Phases {
		total += ph.Periods
	}
	return total
}

// Dt is the period length in years.
func (sp SimulationParameters) Dt() float64 {
	return 1 / float64(sp.Frequency)
}

// Drifts returns the per-period log-return mean (mu - sigma^2/2)*dt laid
// out across the phases.
func (sp SimulationParameters) Drifts() []float64 {
	dt := sp.Dt()
	drifts := make([]float64, 0, sp.Periods())
	for _, ph := range sp.Phases {
		d := (ph.Mu - 0.5*sp.Sigma*sp.Sigma) * dt
		for i := 0; i < ph.Periods; i++ {
			drifts = append(drifts, d)
		}
	}
	return drifts
}

func (sp SimulationParameters) validate() error {
	if sp.NumSimulations < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSimulations, sp.NumSimulations)
	}
	if sp.Frequency < 1 || sp.Frequency > 12 {
		return fmt.Errorf("%w: got %d", ErrInvalidFrequency, sp.Frequency)
	}
	if math.IsNaN(sp.Sigma) || sp.Sigma < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidVolatility, sp.Sigma)
	}
	for _, ph := range sp.Phases {
		if ph.Periods < 0 {
			return fmt.Errorf("%w: phase with %d periods", ErrInvalidHorizon, ph.Periods)
		}
	}
	T := sp.Periods()
	if T < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidHorizon, T)
	}
	if sp.Flows != nil && len(sp.Flows) != T {
		return fmt.Errorf("%w: %d flows for %d periods", ErrScheduleLength, len(sp.Flows), T)
	}
	return nil
}

// PathEnsemble is an n_sims x (T+1) matrix of wealth values. Column 0 holds
// the initial balance.
type PathEnsemble struct {
	Paths [][]float64
	Seed  int64
}

// NumPaths returns the number of simulated trajectories.
func (pe *PathEnsemble) NumPaths() int { return len(pe.Paths) }

// Periods returns T, the number of simulated periods.
func (pe *PathEnsemble) Periods() int {
	if len(pe.Paths) == 0 {
		return 0
	}
	return len(pe.Paths[0]) - 1
}

// Terminal copies the final-period column.
func (pe *PathEnsemble) Terminal() []float64 {
	return numeric.Column(pe.Paths, pe.Periods())
}

// PathSimulator generates GBM ensembles. Shocks are drawn from one
// generator in row-major order, so a seed fixes the ensemble no matter how
// many workers apply the recurrence.
type PathSimulator struct {
	Workers int
	Logger  Logger
}

// NewPathSimulator creates a simulator with the given worker limit.
func NewPathSimulator(workers int) *PathSimulator {
	if workers < 1 {
		workers = 1
	}
	return &PathSimulator{Workers: workers, Logger: NopLogger{}}
}

// Run simulates the ensemble:
//
//	wealth[t] = wealth[t-1] * exp(drift[t] + vol*z) + flow[t],  z ~ N(0,1)
func (ps *PathSimulator) Run(ctx context.Context, params SimulationParameters) (*PathEnsemble, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	T := params.Periods()
	vol := params.Sigma * math.Sqrt(params.Dt())
	drifts := params.Drifts()
	rng, seed := newRand(params.Seed)
	ps.logger().Debugf("simulating %d paths over %d periods (seed %d, vol %.6f)", params.NumSimulations, T, seed, vol)

	// Each row doubles as its own shock buffer: entry t (t >= 1) holds the
	// shock for period t until the recurrence overwrites it with wealth.
	paths := make([][]float64, params.NumSimulations)
	for i := range paths {
		row := make([]float64, T+1)
		row[0] = params.Initial
		for t := 1; t <= T; t++ {
			row[t] = vol * rng.NormFloat64()
		}
		paths[i] = row
	}

	workers := ps.Workers
	if workers < 1 {
		workers = 1
	}
	chunk := (len(paths) + workers - 1) / workers

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)
	for start := 0; start < len(paths); start += chunk {
		end := start + chunk
		if end > len(paths) {
			end = len(paths)
		}
		wg.Add(1)
		go func(rows [][]float64) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			for _, row := range rows {
				if ctx.Err() != nil {
					return
				}
				applyRecurrence(row, drifts, params.Flows, params.FloorAtZero)
			}
		}(paths[start:end])
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &PathEnsemble{Paths: paths, Seed: seed}, nil
}

func applyRecurrence(row, drifts, flows []float64, floor bool) {
	depleted := false
	for t := 1; t < len(row); t++ {
		if depleted {
			row[t] = 0
			continue
		}
		w := row[t-1] * math.Exp(drifts[t-1]+row[t])
		if flows != nil {
			w += flows[t-1]
		}
		if floor && w <= 0 {
			w = 0
			depleted = true
		}
		row[t] = w
	}
}

func (ps *PathSimulator) logger() Logger {
	if ps.Logger == nil {
		return NopLogger{}
	}
	return ps.Logger
}
