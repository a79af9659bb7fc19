package main

import (
	"fmt"
	"io"

	"racing-line-reward/internal/common"
	"racing-line-reward/internal/reward"
)

func selfTestParams() reward.Params {
	return reward.Params{
		X:          0.7,
		Y:          1.05,
		Heading:    160.0,
		TrackWidth: 0.45,
		Waypoints: [][2]float64{
			{0.75, -0.7},
			{1.0, 0.0},
			{0.7, 0.52},
			{0.58, 0.7},
			{0.48, 0.8},
			{0.15, 0.95},
			{-0.1, 1.0},
			{-0.7, 0.75},
			{-0.9, 0.25},
			{-0.9, -0.55},
		},
	}
}

// runSelfTest evaluates the reference fixture, prints the diagnostic values
// and checks they fall in the expected ranges.
func runSelfTest(ev *reward.Evaluator, w io.Writer) error {
	for _, a := range []float64{270, 181, 360.01, 365, -722} {
		fmt.Fprintf(w, "normalize(%v) = %.3f\n", a, common.NormalizeAngle(a))
	}

	res, err := ev.Evaluate(selfTestParams())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "target: x=%.4f, y=%.4f\n", res.Target.Point.X, res.Target.Point.Y)
	fmt.Fprintf(w, "target steering: %.4f\n", res.Ideal)
	fmt.Fprintf(w, "reward: %.4f\n", res.Reward)

	if ev.Config().Mode == reward.DefaultConfig().Mode {
		if d := common.Dist(res.Target.Point, common.Vec2{X: 0.33, Y: 0.86}); d >= 0.1 {
			return fmt.Errorf("target %v is %.3f from (0.33, 0.86)", res.Target.Point, d)
		}
	}
	if res.Reward <= 0 {
		return fmt.Errorf("reward %v is not positive", res.Reward)
	}

	prev := 2.0
	for _, s := range []float64{45, 15, 0, -15, -45} {
		p := selfTestParams()
		p.SteeringAngle = s
		r, err := ev.Reward(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "score(steering=%+.0f) = %.3f\n", s, r)
		if r > prev {
			return fmt.Errorf("score for steering %v rose to %v", s, r)
		}
		prev = r
	}

	fmt.Fprintln(w, "All tests successful")
	return nil
}
