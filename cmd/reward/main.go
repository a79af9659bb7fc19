package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"racing-line-reward/internal/logging"
	"racing-line-reward/internal/reward"
	"racing-line-reward/internal/track"

	"go.uber.org/zap"
)

// output is printed as one JSON object per evaluated record.
type output struct {
	Reward   float64    `json:"reward"`
	Ideal    float64    `json:"ideal_steering"`
	Target   [2]float64 `json:"target"`
	Closest  [2]float64 `json:"closest"`
	Radius   float64    `json:"radius"`
	Fallback bool       `json:"fallback,omitempty"`
	Mode     track.Mode `json:"mode"`
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML reward config (defaults when empty)")
		paramsPath = flag.String("params", "-", "JSON params file, - for stdin")
		batch      = flag.Bool("batch", false, "read a stream of params records and print one reward per line")
		workers    = flag.Int("workers", 4, "concurrent evaluations in batch mode")
		trackImage = flag.String("track-image", "", "track PNG/JPEG whose centerline replaces missing waypoints")
		trackScale = flag.Float64("track-scale", 1.0, "meters per pixel of -track-image")
		selfTest   = flag.Bool("selftest", false, "evaluate the built-in fixtures and exit")
		logLevel   = flag.String("log-level", "info", "debug, info, warn or error")
	)
	flag.Parse()

	log, err := logging.New(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	if err := run(log, *configPath, *paramsPath, *batch, *workers, *trackImage, *trackScale, *selfTest); err != nil {
		log.Error("reward failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(log *zap.Logger, configPath, paramsPath string, batch bool, workers int, trackImage string, trackScale float64, selfTest bool) error {
	cfg := reward.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = reward.LoadConfig(configPath); err != nil {
			return err
		}
	}
	log.Debug("reward config",
		zap.Stringer("mode", cfg.Mode),
		zap.Float64("max_sight", cfg.MaxSight),
		zap.Int("upsample_factor", cfg.UpsampleFactor),
	)

	ev, err := reward.NewEvaluator(cfg, log)
	if err != nil {
		return err
	}

	if selfTest {
		return runSelfTest(ev, os.Stdout)
	}

	in, closeIn, err := openInput(paramsPath)
	if err != nil {
		return err
	}
	defer closeIn()

	var records []reward.Params
	if batch {
		records, err = reward.DecodeParamsStream(in)
	} else {
		var p reward.Params
		p, err = reward.DecodeParams(in)
		records = []reward.Params{p}
	}
	if err != nil {
		return fmt.Errorf("read params: %w", err)
	}

	if trackImage != "" {
		cl, err := track.LoadCenterline(trackImage, trackScale)
		if err != nil {
			return fmt.Errorf("load track image: %w", err)
		}
		log.Info("loaded track centerline",
			zap.String("path", trackImage),
			zap.Int("points", len(cl.Loop)),
			zap.Float64("width", cl.Width),
		)
		for i := range records {
			records[i] = withCenterline(records[i], cl)
		}
	}

	if batch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rewards, err := ev.RewardBatch(ctx, records, workers)
		if err != nil {
			return err
		}
		for _, r := range rewards {
			fmt.Println(r)
		}
		return nil
	}

	res, err := ev.Evaluate(records[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(toOutput(res, cfg.Mode))
}

func withCenterline(p reward.Params, cl track.Centerline) reward.Params {
	if len(p.Waypoints) == 0 {
		p = p.WithWaypoints(cl.Loop)
	}
	if p.TrackWidth <= 0 {
		p.TrackWidth = cl.Width
	}
	return p
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func toOutput(res reward.Evaluation, mode track.Mode) output {
	return output{
		Reward:   res.Reward,
		Ideal:    res.Ideal,
		Target:   [2]float64{res.Target.Point.X, res.Target.Point.Y},
		Closest:  [2]float64{res.Target.Closest.X, res.Target.Closest.Y},
		Radius:   res.Target.Radius,
		Fallback: res.Target.Fallback,
		Mode:     mode,
	}
}
