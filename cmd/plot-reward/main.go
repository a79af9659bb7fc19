package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"racing-line-reward/internal/logging"
	"racing-line-reward/internal/plotting"
	"racing-line-reward/internal/reward"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML reward config (defaults when empty)")
	paramsPath := flag.String("params", "", "JSON params file")
	outDir := flag.String("out", "plots", "output directory")
	from := flag.Float64("from", -90, "first steering angle of the sweep")
	to := flag.Float64("to", 90, "last steering angle of the sweep")
	step := flag.Float64("step", 1, "steering increment of the sweep")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	log, err := logging.New(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	if *paramsPath == "" {
		log.Fatal("-params is required")
	}

	cfg := reward.DefaultConfig()
	if *configPath != "" {
		if cfg, err = reward.LoadConfig(*configPath); err != nil {
			log.Fatal("load config", zap.Error(err))
		}
	}

	f, err := os.Open(*paramsPath)
	if err != nil {
		log.Fatal("open params", zap.Error(err))
	}
	params, err := reward.DecodeParams(f)
	f.Close()
	if err != nil {
		log.Fatal("read params", zap.Error(err))
	}

	ev, err := reward.NewEvaluator(cfg, log)
	if err != nil {
		log.Fatal("build evaluator", zap.Error(err))
	}
	res, err := ev.Evaluate(params)
	if err != nil {
		log.Fatal("evaluate", zap.Error(err))
	}

	pts, err := plotting.Sweep(ev, params, *from, *to, *step)
	if err != nil {
		log.Fatal("sweep", zap.Error(err))
	}
	sweepPath := filepath.Join(*outDir, "reward_sweep.png")
	if err := plotting.SaveSweep(sweepPath, pts, res.Ideal); err != nil {
		log.Fatal("save sweep", zap.Error(err))
	}

	agent, tc := params.Split(cfg.Mode)
	dense, err := reward.Dense(cfg, tc)
	if err != nil {
		log.Fatal("upsample", zap.Error(err))
	}
	trackPath := filepath.Join(*outDir, "target.png")
	if err := plotting.SaveTrack(trackPath, dense, agent.Position, res.Target); err != nil {
		log.Fatal("save track", zap.Error(err))
	}

	log.Info("plots written",
		zap.String("sweep", sweepPath),
		zap.String("track", trackPath),
		zap.Float64("ideal", res.Ideal),
		zap.Float64("reward", res.Reward),
	)
}
