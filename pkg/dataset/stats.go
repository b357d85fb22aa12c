package dataset

import (
	"gonum.org/v1/gonum/stat"

	"peaksynth-go/pkg/builder"
	"peaksynth-go/pkg/sampler"
	"peaksynth-go/pkg/tensor"
)

// Stats summarizes a generated dataset. It is computed once by New.
type Stats struct {
	Samples         int            `json:"samples"`
	PeaksPerSample  int            `json:"peaks_per_sample"`
	GridPoints      int            `json:"grid_points"`
	GridBounds      sampler.Bounds `json:"grid_bounds"`
	MeanBounds      sampler.Bounds `json:"mean_bounds"`
	ScaleBounds     sampler.Bounds `json:"scale_bounds"`
	AmplitudeBounds sampler.Bounds `json:"amplitude_bounds"`

	// Channel averages over all M*K peaks. AverageAmplitude uses the
	// effective amplitude; AverageSampledAmplitude the drawn one.
	AverageMean             float64 `json:"average_mean"`
	AverageScale            float64 `json:"average_scale"`
	AverageAmplitude        float64 `json:"average_amplitude"`
	AverageSampledAmplitude float64 `json:"average_sampled_amplitude"`

	Kind       string `json:"kind"`
	Family     string `json:"family"`
	Normalized bool   `json:"normalized"`
}

func computeStats(cfg Config, grid []float64, params, sampled *tensor.Tensor) Stats {
	return Stats{
		Samples:         cfg.Samples,
		PeaksPerSample:  cfg.PeaksPerSample,
		GridPoints:      len(grid),
		GridBounds:      sampler.Bounds{Lower: grid[0], Upper: grid[len(grid)-1]},
		MeanBounds:      cfg.Limits.Mean,
		ScaleBounds:     cfg.Limits.Scale,
		AmplitudeBounds: cfg.Limits.Amplitude,

		AverageMean:             stat.Mean(channelRow(params, builder.ChannelMean), nil),
		AverageScale:            stat.Mean(channelRow(params, builder.ChannelScale), nil),
		AverageAmplitude:        stat.Mean(channelRow(params, builder.ChannelAmplitude), nil),
		AverageSampledAmplitude: stat.Mean(channelRow(sampled, builder.ChannelAmplitude), nil),

		Kind:       cfg.Kind.String(),
		Family:     cfg.Family.String(),
		Normalized: cfg.Normalize,
	}
}

// channelRow flattens parameter channel c to M*K values.
func channelRow(params *tensor.Tensor, c int) []float64 {
	ch, err := params.Index(0, c)
	if err != nil {
		// params always carry builder.NumChannels channels
		panic(err)
	}
	return ch.Data()
}
