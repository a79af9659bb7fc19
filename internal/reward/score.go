package reward

import (
	"math"

	"racing-line-reward/internal/common"
)

// Evaluation is the full result of scoring one agent state.
type Evaluation struct {
	Target Target
	// Ideal is the steering angle, in (-180, 180], that points the car at
	// the target.
	Ideal  float64
	Reward float64
}

// Evaluate finds the target, the ideal steering angle and the reward.
func Evaluate(cfg Config, tc TrackContext, agent AgentState) (Evaluation, error) {
	if err := agent.Validate(); err != nil {
		return Evaluation{}, err
	}
	t, err := FindTarget(cfg, tc, agent.Position)
	if err != nil {
		return Evaluation{}, err
	}
	ideal := idealSteering(t.Point, agent)
	return Evaluation{
		Target: t,
		Ideal:  ideal,
		Reward: cfg.score(agent.SteeringAngle, ideal),
	}, nil
}

// TargetSteeringAngle returns the steering angle that would point the car
// straight at its look-ahead target.
func TargetSteeringAngle(cfg Config, tc TrackContext, agent AgentState) (float64, error) {
	ev, err := Evaluate(cfg, tc, agent)
	if err != nil {
		return 0, err
	}
	return ev.Ideal, nil
}

// Score rates the agent's steering against the ideal angle. It is 1 for a
// perfect match and falls linearly to cfg.MinReward at cfg.ErrorScale
// degrees of error.
func Score(cfg Config, tc TrackContext, agent AgentState) (float64, error) {
	ev, err := Evaluate(cfg, tc, agent)
	if err != nil {
		return 0, err
	}
	return ev.Reward, nil
}

// Reward evaluates a flat params record under cfg.
func Reward(cfg Config, p Params) (float64, error) {
	agent, tc := p.Split(cfg.Mode)
	return Score(cfg, tc, agent)
}

func idealSteering(target common.Vec2, agent AgentState) float64 {
	bearing := common.Bearing(agent.Position, target)
	return common.NormalizeAngle(bearing - agent.Heading)
}

func (c Config) score(steering, ideal float64) float64 {
	e := (steering - ideal) / c.ErrorScale
	return math.Max(1.0-math.Abs(e), c.MinReward)
}
