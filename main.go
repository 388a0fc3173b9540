package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync"

	"github.com/fogleman/ease"
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/hypebeast/go-osc/osc"
	"github.com/sashimislicer/slicer/broadcast"
	"github.com/sashimislicer/slicer/conductor"
	"github.com/sashimislicer/slicer/config"
	"github.com/sashimislicer/slicer/effect"
	"github.com/sashimislicer/slicer/logger"
	"github.com/sashimislicer/slicer/rhythm"
	"k8s.io/utils/clock"
)

const oscQueueSize = 256

func main() {
	// We don't process any CLI flags, only the environment, so just run the app with a context.
	ctx := context.Background()
	Run(ctx)
}

// Run starts the beat clock and its outputs, then blocks until interrupted
func Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// initialize the logger
	logger := logger.GetProjectLogger()

	// initialize the global config
	logger.Info("Initializing config...")
	cfg, err := loadConfig()
	if err != nil {
		logger.Fatalf("error creating config. err='%v'", err)
	}
	logger = cfg.Logger

	beatmapName := os.Getenv("SLICER_BEATMAP")
	if beatmapName == "" {
		beatmapName = config.DefaultBeatmap
	}
	beatmap, err := cfg.Beatmap(beatmapName)
	if err != nil {
		logger.Fatalf("error selecting beatmap. err='%v'", err)
	}

	// the frame loop owns the beat clock
	logger.Info("Initializing conductor...")
	realClock := clock.RealClock{}
	cond := conductor.NewConductor(realClock, rhythm.NewClockSource(realClock), cfg.FPS, cfg.SettlingTicks)

	pulse, err := effect.NewPulse(ease.OutCubic, "#1b1b2f", "#ff4d6d")
	if err != nil {
		logger.Fatalf("error creating beat pulse. err='%v'", err)
	}
	logObserver := broadcast.NewLogObserver(cond, pulse)
	cond.Subscribe(logObserver)
	cond.SubscribeSync(logObserver)

	wg := sync.WaitGroup{}

	// configure OSC for beat output
	if cfg.OSCAddress != "" {
		logger.Infof("Connecting OSC to %s...", cfg.OSCAddress)
		client, err := newOSCClient(cfg.OSCAddress)
		if err != nil {
			logger.Errorf("could not set up OSC: %v", err)
		} else {
			oscObserver := broadcast.NewOSCObserver(oscQueueSize)
			cond.Subscribe(oscObserver)
			cond.SubscribeSync(oscObserver)
			wg.Add(1)
			go broadcast.SendOSCWorker(ctx, client, oscObserver, &wg)
		}
	}

	logger.Infof("Loading beatmap %s...", beatmap.Name)
	cond.Load(beatmap)
	cond.ProcessForever(ctx, &wg)

	// handle CTRL+C interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	<-quit
	logger.Println("shutting down slicer")
	cancel()
	wg.Wait()
}

func loadConfig() (config.SlicerConfig, error) {
	cfg, err := config.NewSlicerConfig()
	if err != nil {
		return cfg, err
	}

	if path := os.Getenv("SLICER_BEATMAPS"); path != "" {
		beatmaps, err := config.LoadBeatmaps(path)
		if err != nil {
			return cfg, err
		}
		cfg.Merge(beatmaps)
	}

	if level := os.Getenv("SLICER_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}

	if addr, ok := os.LookupEnv("SLICER_OSC_ADDR"); ok {
		cfg.OSCAddress = addr
	}

	return cfg, nil
}

func newOSCClient(addr string) (*osc.Client, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}
	return osc.NewClient(host, port), nil
}
