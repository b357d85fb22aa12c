package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"peaksynth-go/pkg/peak"
	"peaksynth-go/pkg/sampler"
)

func TestDefaults(t *testing.T) {
	cfg, err := ParseArgs("peakgen", nil)
	require.NoError(t, err)
	require.True(t, cfg.Normalize)
	require.Equal(t, "gaussian", cfg.Kind)

	dc, err := cfg.Dataset()
	require.NoError(t, err)
	require.Equal(t, 100, dc.Samples)
	require.Equal(t, 3, dc.PeaksPerSample)
	require.Equal(t, peak.Gaussian, dc.Kind)
	require.Equal(t, sampler.Uniform, dc.Family)
	require.Equal(t, &sampler.Bounds{Lower: -10, Upper: 10}, dc.Grid.Limits)
	require.Equal(t, 1000, dc.Grid.Points)
	require.Nil(t, dc.Grid.Values)
}

func TestFlags(t *testing.T) {
	cfg, err := ParseArgs("peakgen", []string{
		"-kind", "lorentzian", "-dist", "normal", "-normalize=false",
		"-samples", "5", "-peaks", "10", "-mean-lower", "-0.5", "-mean-upper", "0.5",
		"-seed", "17", "-log-level", "debug",
	})
	require.NoError(t, err)
	dc, err := cfg.Dataset()
	require.NoError(t, err)
	require.Equal(t, peak.Lorentzian, dc.Kind)
	require.Equal(t, sampler.TruncatedNormal, dc.Family)
	require.False(t, dc.Normalize)
	require.Equal(t, sampler.Bounds{Lower: -0.5, Upper: 0.5}, dc.Limits.Mean)
	require.EqualValues(t, 17, cfg.Seed)

	logger, err := cfg.Logger()
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestInvalidValues(t *testing.T) {
	for _, args := range [][]string{
		{"-kind", "voigt"},
		{"-dist", "beta"},
		{"-scale-lower", "2", "-scale-upper", "1"},
		{"-grid-lower", "1", "-grid-upper", "0"},
		{"-grid-file", filepath.Join(os.TempDir(), "does-not-exist-peaksynth.txt")},
	} {
		cfg, err := ParseArgs("peakgen", args)
		require.NoError(t, err)
		_, err = cfg.Dataset()
		require.ErrorIs(t, err, ErrConfig, "args %v", args)
	}

	cfg, err := ParseArgs("peakgen", []string{"-log-level", "loud"})
	require.NoError(t, err)
	_, err = cfg.Logger()
	require.ErrorIs(t, err, ErrConfig)

	_, err = ParseArgs("peakgen", []string{"-no-such-flag"})
	require.Error(t, err)
}

func TestHelpExitsCleanly(t *testing.T) {
	_, err := ParseArgs("peakgen", []string{"-h"})
	require.ErrorIs(t, err, flag.ErrHelp)
	require.Equal(t, 0, exitCode(err))

	_, err = ParseArgs("peakgen", []string{"-samples", "many"})
	require.Error(t, err)
	require.Equal(t, 2, exitCode(err))
}

func TestGridFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte("x y\n0 5\n1 6\n2 7\n"), 0o600))

	cfg, err := ParseArgs("peakgen", []string{"-grid-file", path, "-grid-column", "1"})
	require.NoError(t, err)
	dc, err := cfg.Dataset()
	require.NoError(t, err)
	require.Equal(t, []float64{5, 6, 7}, dc.Grid.Values)
	require.Nil(t, dc.Grid.Limits)

	grid, err := dc.Grid.Build()
	require.NoError(t, err)
	require.Equal(t, []float64{5, 6, 7}, grid)
}
