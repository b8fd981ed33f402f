package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/oliverbestmann/planar/internal/config"
	"github.com/oliverbestmann/planar/internal/log"
	"github.com/oliverbestmann/planar/physics"
	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(execute())
}

// execute runs the command and returns its exit code.
func execute() int {
	configPath := flag.String("config", "", "Path to a yaml configuration file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger := log.New(level)
	defer func() { _ = logger.Sync() }()

	if logger.Enabled(log.LevelDebug) {
		physics.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	switch cfg.Profile {
	case config.ProfileCPU:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case config.ProfileMem:
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Benchmark failed", log.Error(err))
		return 1
	}

	return 0
}

func run(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	logger.Info("Starting benchmark",
		log.Int("buffers", cfg.Buffers),
		log.Int("capacity", cfg.Capacity),
		log.Int("frames", cfg.Frames),
		log.Duration("timeStep", cfg.TimeStep),
	)

	results := make([]result, cfg.Buffers)

	g, ctx := errgroup.WithContext(ctx)
	for idx := range cfg.Buffers {
		g.Go(func() error {
			res, err := runBuffer(ctx, idx, cfg)
			if err != nil {
				return err
			}

			results[idx] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var checksum uint64
	for _, res := range results {
		logger.Debug("Buffer finished",
			log.Int("buffer", res.Buffer),
			log.Duration("frameTime", res.FrameTime()),
			log.Stringer("bounds", res.Bounds),
			log.Int("left", res.Left),
			log.Uint64("hash", res.Hash),
		)

		checksum = checksum*31 + res.Hash
	}

	logger.Info("Benchmark finished",
		log.Duration("frameTime", meanFrameTime(results)),
		log.String("checksum", fmt.Sprintf("%016x", checksum)),
	)

	return nil
}

func meanFrameTime(results []result) time.Duration {
	var total time.Duration
	var frames int
	for _, res := range results {
		total += res.Elapsed
		frames += res.Frames
	}

	if frames == 0 {
		return 0
	}

	return total / time.Duration(frames)
}
