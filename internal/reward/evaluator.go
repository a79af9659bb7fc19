package reward

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Evaluator binds a validated Config and a logger. It holds no per-call
// state and is safe for concurrent use.
type Evaluator struct {
	cfg Config
	log *zap.Logger
}

// NewEvaluator validates cfg. A nil logger disables logging.
func NewEvaluator(cfg Config, log *zap.Logger) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{cfg: cfg, log: log}, nil
}

// Config returns the settings the evaluator was built with.
func (e *Evaluator) Config() Config {
	return e.cfg
}

// Evaluate scores one params record and returns the details.
func (e *Evaluator) Evaluate(p Params) (Evaluation, error) {
	agent, tc := p.Split(e.cfg.Mode)
	ev, err := Evaluate(e.cfg, tc, agent)
	if err != nil {
		e.log.Debug("reward evaluation failed", zap.Error(err))
		return Evaluation{}, err
	}

	if ev.Target.Fallback {
		e.log.Warn("look-ahead radius covers the whole loop, steering to the closest point",
			zap.Float64("radius", ev.Target.Radius),
			zap.Float64("track_width", p.TrackWidth),
		)
	}
	if ce := e.log.Check(zap.DebugLevel, "reward evaluated"); ce != nil {
		ce.Write(
			zap.Float64("x", p.X),
			zap.Float64("y", p.Y),
			zap.Float64("heading", p.Heading),
			zap.Float64("steering_angle", p.SteeringAngle),
			zap.Float64("target_x", ev.Target.Point.X),
			zap.Float64("target_y", ev.Target.Point.Y),
			zap.Int("closest_index", ev.Target.ClosestIndex),
			zap.Bool("fallback", ev.Target.Fallback),
			zap.Float64("ideal", ev.Ideal),
			zap.Float64("reward", ev.Reward),
		)
	}
	return ev, nil
}

// Reward scores one params record.
func (e *Evaluator) Reward(p Params) (float64, error) {
	ev, err := e.Evaluate(p)
	if err != nil {
		return 0, err
	}
	return ev.Reward, nil
}

// RewardMap scores an untyped parameter bag.
func (e *Evaluator) RewardMap(m map[string]any) (float64, error) {
	p, err := ParamsFromMap(m)
	if err != nil {
		return 0, err
	}
	return e.Reward(p)
}

// RewardBatch scores independent records concurrently with at most workers
// goroutines (unbounded when workers <= 0). Results keep the input order.
// The first failure cancels the remaining records.
func (e *Evaluator) RewardBatch(ctx context.Context, records []Params, workers int) ([]float64, error) {
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	out := make([]float64, len(records))
	for i, p := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := e.Reward(p)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			out[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
