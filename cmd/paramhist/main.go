package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"peaksynth-go/internal/report"
	"peaksynth-go/pkg/sampler"
)

func main() {
	lower := flag.Float64("lower", 0.1, "lower bound of the drawn parameter")
	upper := flag.Float64("upper", 1, "upper bound of the drawn parameter")
	dist := flag.String("dist", "uniform", "distribution: uniform or normal")
	n := flag.Int("n", 10000, "number of draws")
	bins := flag.Int("bins", 20, "number of histogram bins")
	seed := flag.Uint64("seed", 0, "random seed (0 seeds from the clock)")
	flag.Parse()

	b, err := sampler.NewBounds(*lower, *upper)
	if err != nil {
		logrus.WithError(err).Fatal("Invalid bounds")
	}
	family, err := sampler.ParseFamily(*dist)
	if err != nil {
		logrus.WithError(err).Fatal("Invalid distribution")
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	values, err := sampler.New(rand.NewSource(*seed), family).Draw(*n, b)
	if err != nil {
		logrus.WithError(err).Fatal("Drawing parameters")
	}

	hist, err := report.NewHistogram(values, b.Lower, b.Upper, *bins)
	if err != nil {
		logrus.WithError(err).Fatal("Building histogram")
	}

	fmt.Printf("%s draws over %v (%d values)\n", family, b, *n)
	if err := hist.Print(os.Stdout, 50); err != nil {
		logrus.WithError(err).Fatal("Writing histogram")
	}

	mean, std := stat.MeanStdDev(values, nil)
	fmt.Printf("\nmean %.6g, std %.6g, total %d\n", mean, std, int(hist.Total()))
}
