package reward

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"racing-line-reward/internal/common"
	"racing-line-reward/internal/track"

	"github.com/samber/lo"
)

// Params is the flat record the environment hands the reward function on
// every step.
type Params struct {
	X             float64      `json:"x" yaml:"x"`
	Y             float64      `json:"y" yaml:"y"`
	Heading       float64      `json:"heading" yaml:"heading"`
	TrackWidth    float64      `json:"track_width" yaml:"track_width"`
	IsReversed    bool         `json:"is_reversed" yaml:"is_reversed"`
	SteeringAngle float64      `json:"steering_angle" yaml:"steering_angle"`
	Waypoints     [][2]float64 `json:"waypoints,omitempty" yaml:"waypoints,omitempty"`
}

// Split separates the record into the agent and track halves.
func (p Params) Split(mode track.Mode) (AgentState, TrackContext) {
	agent := AgentState{
		Position:      common.Vec2{X: p.X, Y: p.Y},
		Heading:       p.Heading,
		SteeringAngle: p.SteeringAngle,
	}
	tc := TrackContext{
		Waypoints:  track.Loop(lo.Map(p.Waypoints, toVec2)),
		TrackWidth: p.TrackWidth,
		IsReversed: p.IsReversed,
		Mode:       mode,
	}
	return agent, tc
}

// WithWaypoints returns a copy of p following loop instead of its own waypoints.
func (p Params) WithWaypoints(loop track.Loop) Params {
	p.Waypoints = lo.Map([]common.Vec2(loop), func(v common.Vec2, _ int) [2]float64 {
		return [2]float64{v.X, v.Y}
	})
	return p
}

// DecodeParams reads a single JSON params object.
func DecodeParams(r io.Reader) (Params, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return decodeOne(dec)
}

// DecodeParamsStream reads consecutive JSON params objects, one per line or
// simply concatenated, until EOF.
func DecodeParamsStream(r io.Reader) ([]Params, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var out []Params
	for {
		p, err := decodeOne(dec)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(out), err)
		}
		out = append(out, p)
	}
}

func decodeOne(dec *json.Decoder) (Params, error) {
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return Params{}, err
	}
	return ParamsFromMap(m)
}

// ParamsFromMap converts an untyped parameter bag. x, y, heading,
// track_width, is_reversed and steering_angle are required; waypoints is
// optional and unknown keys are ignored.
func ParamsFromMap(m map[string]any) (Params, error) {
	var p Params
	floats := []struct {
		key string
		dst *float64
	}{
		{"x", &p.X},
		{"y", &p.Y},
		{"heading", &p.Heading},
		{"track_width", &p.TrackWidth},
		{"steering_angle", &p.SteeringAngle},
	}
	for _, f := range floats {
		raw, ok := m[f.key]
		if !ok {
			return Params{}, invalid(f.key, "missing")
		}
		v, err := toFloat(raw)
		if err != nil {
			return Params{}, invalidWrap(f.key, err)
		}
		*f.dst = v
	}

	raw, ok := m["is_reversed"]
	if !ok {
		return Params{}, invalid("is_reversed", "missing")
	}
	b, ok := raw.(bool)
	if !ok {
		return Params{}, invalid("is_reversed", "want bool, got %T", raw)
	}
	p.IsReversed = b

	if raw, ok := m["waypoints"]; ok && raw != nil {
		wp, err := toWaypoints(raw)
		if err != nil {
			return Params{}, invalidWrap("waypoints", err)
		}
		p.Waypoints = wp
	}
	return p, nil
}

func toVec2(w [2]float64, _ int) common.Vec2 {
	return common.Vec2{X: w[0], Y: w[1]}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("want number, got %T", v)
	}
}

func toWaypoints(v any) ([][2]float64, error) {
	switch w := v.(type) {
	case [][2]float64:
		return w, nil
	case [][]float64:
		out := make([][2]float64, len(w))
		for i, pt := range w {
			if len(pt) != 2 {
				return nil, fmt.Errorf("point %d has %d coordinates", i, len(pt))
			}
			out[i] = [2]float64{pt[0], pt[1]}
		}
		return out, nil
	case []any:
		out := make([][2]float64, len(w))
		for i, item := range w {
			pt, ok := item.([]any)
			if !ok || len(pt) != 2 {
				return nil, fmt.Errorf("point %d is not an [x, y] pair", i)
			}
			x, err := toFloat(pt[0])
			if err != nil {
				return nil, fmt.Errorf("point %d x: %w", i, err)
			}
			y, err := toFloat(pt[1])
			if err != nil {
				return nil, fmt.Errorf("point %d y: %w", i, err)
			}
			out[i] = [2]float64{x, y}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("want list of [x, y] pairs, got %T", v)
	}
}
