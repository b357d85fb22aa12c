package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"peaksynth-go/pkg/builder"
	"peaksynth-go/pkg/dataset"
	"peaksynth-go/pkg/gridfile"
	"peaksynth-go/pkg/peak"
	"peaksynth-go/pkg/sampler"
)

// ErrConfig wraps flag values that cannot be turned into a dataset configuration.
var ErrConfig = errors.New("config: invalid value")

type Config struct {
	GridLower, GridUpper float64
	GridPoints           int
	GridFile             string
	GridColumn           int

	Samples        int
	PeaksPerSample int

	MeanLower, MeanUpper           float64
	ScaleLower, ScaleUpper         float64
	AmplitudeLower, AmplitudeUpper float64

	Kind         string
	Distribution string
	Normalize    bool
	Seed         uint64
	LogLevel     string
}

// Parse reads the process command line. It exits 0 after -h and 2 on
// invalid flags.
func Parse() *Config {
	cfg, err := ParseArgs(os.Args[0], os.Args[1:])
	if err != nil {
		code := exitCode(err)
		if code != 0 {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(code)
	}
	return cfg
}

func exitCode(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}

// ParseArgs parses args with a fresh flag set.
func ParseArgs(name string, args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	// grid
	fs.Float64Var(&cfg.GridLower, "grid-lower", -10, "lower grid limit (inclusive)")
	fs.Float64Var(&cfg.GridUpper, "grid-upper", 10, "upper grid limit (inclusive)")
	fs.IntVar(&cfg.GridPoints, "grid-points", 1000, "number of grid points")
	fs.StringVar(&cfg.GridFile, "grid-file", "", "read the grid from a whitespace table instead of limits")
	fs.IntVar(&cfg.GridColumn, "grid-column", 0, "column of -grid-file holding the grid")

	// dataset
	fs.IntVar(&cfg.Samples, "samples", 100, "number of samples to generate")
	fs.IntVar(&cfg.PeaksPerSample, "peaks", 3, "number of peaks summed into each sample")
	fs.Float64Var(&cfg.MeanLower, "mean-lower", -1, "lower bound of peak means")
	fs.Float64Var(&cfg.MeanUpper, "mean-upper", 1, "upper bound of peak means")
	fs.Float64Var(&cfg.ScaleLower, "scale-lower", 0.1, "lower bound of peak widths")
	fs.Float64Var(&cfg.ScaleUpper, "scale-upper", 1, "upper bound of peak widths")
	fs.Float64Var(&cfg.AmplitudeLower, "amp-lower", 0.1, "lower bound of peak amplitudes")
	fs.Float64Var(&cfg.AmplitudeUpper, "amp-upper", 1, "upper bound of peak amplitudes")
	fs.StringVar(&cfg.Kind, "kind", "gaussian", "peak kind: gaussian or lorentzian")
	fs.StringVar(&cfg.Distribution, "dist", "uniform", "parameter distribution: uniform or normal")
	fs.BoolVar(&cfg.Normalize, "normalize", true, "scale every sample to unit area")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 seeds from the clock)")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Dataset converts the flags into a dataset configuration. Bounds are
// validated here so bad flags fail before any generation starts.
func (c *Config) Dataset() (dataset.Config, error) {
	kind, err := peak.ParseKind(c.Kind)
	if err != nil {
		return dataset.Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	family, err := sampler.ParseFamily(c.Distribution)
	if err != nil {
		return dataset.Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	var limits builder.Limits
	for _, b := range []struct {
		name   string
		lo, hi float64
		dst    *sampler.Bounds
	}{
		{"mean", c.MeanLower, c.MeanUpper, &limits.Mean},
		{"scale", c.ScaleLower, c.ScaleUpper, &limits.Scale},
		{"amplitude", c.AmplitudeLower, c.AmplitudeUpper, &limits.Amplitude},
	} {
		if *b.dst, err = sampler.NewBounds(b.lo, b.hi); err != nil {
			return dataset.Config{}, fmt.Errorf("%w: %s: %w", ErrConfig, b.name, err)
		}
	}

	grid := dataset.GridSpec{Points: c.GridPoints}
	if c.GridFile != "" {
		if grid.Values, err = gridfile.Load(c.GridFile, c.GridColumn); err != nil {
			return dataset.Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
		}
	} else {
		gridLimits, err := sampler.NewBounds(c.GridLower, c.GridUpper)
		if err != nil {
			return dataset.Config{}, fmt.Errorf("%w: grid: %w", ErrConfig, err)
		}
		grid.Limits = &gridLimits
	}

	return dataset.Config{
		Grid:           grid,
		Samples:        c.Samples,
		PeaksPerSample: c.PeaksPerSample,
		Limits:         limits,
		Kind:           kind,
		Family:         family,
		Normalize:      c.Normalize,
	}, nil
}

// Logger returns a logrus logger at the configured level.
func (c *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	logger := logrus.New()
	logger.SetLevel(level)
	return logger, nil
}
