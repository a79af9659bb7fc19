// Package plotting renders reward diagnostics to PNG with gonum/plot.
package plotting

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"racing-line-reward/internal/common"
	"racing-line-reward/internal/reward"
	"racing-line-reward/internal/track"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	colorLoop    = color.RGBA{80, 80, 80, 255}
	colorCar     = color.RGBA{255, 0, 0, 255}
	colorTarget  = color.RGBA{50, 200, 50, 255}
	colorClosest = color.RGBA{255, 200, 0, 255}
)

// Sweep evaluates base with every steering angle from..to (inclusive) in
// increments of step and returns (steering, reward) points.
func Sweep(ev *reward.Evaluator, base reward.Params, from, to, step float64) (plotter.XYs, error) {
	if step <= 0 || to < from {
		return nil, errors.New("sweep needs from <= to and a positive step")
	}

	n := int((to-from)/step) + 1
	pts := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		p := base
		p.SteeringAngle = from + float64(i)*step
		r, err := ev.Reward(p)
		if err != nil {
			return nil, fmt.Errorf("steering %v: %w", p.SteeringAngle, err)
		}
		pts = append(pts, plotter.XY{X: p.SteeringAngle, Y: r})
	}
	return pts, nil
}

// SaveSweep writes a reward-vs-steering line chart with the ideal angle
// marked.
func SaveSweep(path string, pts plotter.XYs, ideal float64) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Reward vs steering (ideal %.1f°)", ideal)
	p.X.Label.Text = "steering angle (deg)"
	p.Y.Label.Text = "reward"
	p.Y.Min, p.Y.Max = 0, 1.05
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("reward line: %w", err)
	}
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("reward", line)

	marker, err := plotter.NewLine(plotter.XYs{{X: ideal, Y: 0}, {X: ideal, Y: 1}})
	if err != nil {
		return fmt.Errorf("ideal marker: %w", err)
	}
	marker.Color = colorTarget
	marker.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(marker)
	p.Legend.Add("ideal", marker)

	return save(p, path, 8*vg.Inch, 5*vg.Inch)
}

// SaveTrack draws the dense loop with the car, its closest point and its
// look-ahead target.
func SaveTrack(path string, dense track.Loop, car common.Vec2, target reward.Target) error {
	if len(dense) == 0 {
		return track.ErrTooFewPoints
	}

	p := plot.New()
	p.Title.Text = "Look-ahead target"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	loop := make(plotter.XYs, 0, len(dense)+1)
	for _, v := range dense {
		loop = append(loop, plotter.XY{X: v.X, Y: v.Y})
	}
	loop = append(loop, plotter.XY{X: dense[0].X, Y: dense[0].Y})

	line, err := plotter.NewLine(loop)
	if err != nil {
		return fmt.Errorf("loop line: %w", err)
	}
	line.Color = colorLoop
	p.Add(line)

	for _, m := range []struct {
		name string
		at   common.Vec2
		c    color.Color
	}{
		{"car", car, colorCar},
		{"closest", target.Closest, colorClosest},
		{"target", target.Point, colorTarget},
	} {
		s, err := plotter.NewScatter(plotter.XYs{{X: m.at.X, Y: m.at.Y}})
		if err != nil {
			return fmt.Errorf("%s marker: %w", m.name, err)
		}
		s.GlyphStyle.Color = m.c
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(s)
		p.Legend.Add(m.name, s)
	}

	aim, err := plotter.NewLine(plotter.XYs{{X: car.X, Y: car.Y}, {X: target.Point.X, Y: target.Point.Y}})
	if err != nil {
		return fmt.Errorf("aim line: %w", err)
	}
	aim.Color = colorTarget
	p.Add(aim)

	return save(p, path, 7*vg.Inch, 7*vg.Inch)
}

func save(p *plot.Plot, path string, w, h vg.Length) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
