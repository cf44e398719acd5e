// Software model of the grid-frequency PLL

package main

import (
	"bytes"
	"flag"
	"fmt"
	"math"
	"net/http"
	"os"

	"github.com/mmcloughlin/profile"
	"github.com/pelletier/go-toml/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"example.com/grid-pll/benchmark"
	"example.com/grid-pll/core/pll"
	"example.com/grid-pll/core/track"
	"example.com/grid-pll/driver/probe"
	"example.com/grid-pll/driver/scratch"
	"example.com/grid-pll/driver/signal"
)

type svcConfig struct {
	SampleRate  int32  `toml:"sample_rate,omitempty"`
	NominalFreq int32  `toml:"nominal_freq,omitempty"`
	InputFreq   int32  `toml:"input_freq,omitempty"`
	Kp          int64  `toml:"kp,omitempty"`
	Ki          int64  `toml:"ki,omitempty"`
	Steps       int    `toml:"steps,omitempty"`
	LogEvery    int    `toml:"log_every,omitempty"`
	MetricsAddr string `toml:"metrics_address,omitempty"`
}

var (
	log *zap.Logger
)

func initLogger(verbose bool) {
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	c.EncoderConfig.EncodeCaller = func(
		caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		p := caller.TrimmedPath()
		if len(p) > 30 {
			p = "..." + p[len(p)-27:]
		}
		enc.AppendString(fmt.Sprintf("%30s", p))
	}
	if !verbose {
		c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	var err error
	log, err = c.Build()
	if err != nil {
		panic(err)
	}
}

func runMonitor(log *zap.Logger, addr string) {
	http.Handle("/metrics", promhttp.Handler())
	err := http.ListenAndServe(addr, nil)
	log.Fatal("failed to serve metrics", zap.Error(err))
}

func loadConfig(configFile string) svcConfig {
	var cfg svcConfig
	if configFile == "" {
		return cfg
	}
	raw, err := os.ReadFile(configFile)
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}
	err = toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		log.Fatal("failed to decode configuration", zap.Error(err))
	}
	return cfg
}

func gains(cfg svcConfig) (kp, ki int32) {
	kp, ki = pll.DefaultKp, pll.DefaultKi
	if cfg.Kp != 0 {
		if cfg.Kp < math.MinInt32 || cfg.Kp > math.MaxInt32 {
			log.Fatal("invalid kp gain", zap.Int64("kp", cfg.Kp))
		}
		kp = int32(cfg.Kp)
	}
	if cfg.Ki != 0 {
		if cfg.Ki < math.MinInt32 || cfg.Ki > math.MaxInt32 {
			log.Fatal("invalid ki gain", zap.Int64("ki", cfg.Ki))
		}
		ki = int32(cfg.Ki)
	}
	return kp, ki
}

func runTracker(configFile string) {
	cfg := loadConfig(configFile)
	if cfg.MetricsAddr != "" {
		go runMonitor(log, cfg.MetricsAddr)
	}
	kp, ki := gains(cfg)
	pcfg := pll.Config{
		SampleRate:  cfg.SampleRate,
		NominalFreq: cfg.NominalFreq,
	}.WithDefaults()
	inputFreq := cfg.InputFreq
	if inputFreq == 0 {
		inputFreq = pcfg.NominalFreq
	}

	buf := new(scratch.Buffer)
	if err := buf.Check(); err != nil {
		log.Fatal("scratch buffer self-check failed", zap.Error(err))
	}
	gen := signal.NewGenerator(buf, uint32(inputFreq), uint32(pcfg.SampleRate))

	track.Run(log, track.Config{
		PLL:      pcfg,
		Kp:       kp,
		Ki:       ki,
		Steps:    cfg.Steps,
		LogEvery: cfg.LogEvery,
	}, gen)
}

func runBenchmark(configFile string, profileCPU bool) {
	cfg := loadConfig(configFile)
	if profileCPU {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	kp, ki := gains(cfg)
	pcfg := pll.Config{
		SampleRate:  cfg.SampleRate,
		NominalFreq: cfg.NominalFreq,
	}
	benchmark.RunStepBenchmark(log, pcfg, kp, ki, probe.Log{Log: log})
}

func exitWithUsage() {
	fmt.Println("usage: gridpll track|benchmark|x [options]")
	os.Exit(1)
}

func main() {
	var (
		verbose    bool
		configFile string
		profileCPU bool
	)

	trackFlags := flag.NewFlagSet("track", flag.ExitOnError)
	benchmarkFlags := flag.NewFlagSet("benchmark", flag.ExitOnError)

	trackFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	trackFlags.StringVar(&configFile, "config", "", "Config file")

	benchmarkFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	benchmarkFlags.StringVar(&configFile, "config", "", "Config file")
	benchmarkFlags.BoolVar(&profileCPU, "profile", false, "Write a CPU profile")

	if len(os.Args) < 2 {
		exitWithUsage()
	}

	switch os.Args[1] {
	case trackFlags.Name():
		err := trackFlags.Parse(os.Args[2:])
		if err != nil || trackFlags.NArg() != 0 {
			exitWithUsage()
		}
		if configFile == "" {
			exitWithUsage()
		}
		initLogger(verbose)
		runTracker(configFile)
	case benchmarkFlags.Name():
		err := benchmarkFlags.Parse(os.Args[2:])
		if err != nil || benchmarkFlags.NArg() != 0 {
			exitWithUsage()
		}
		initLogger(verbose)
		runBenchmark(configFile, profileCPU)
	case "x":
		runX()
	default:
		exitWithUsage()
	}
}
