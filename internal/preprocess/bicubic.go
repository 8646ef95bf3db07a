package preprocess

import (
	"math"

	"github.com/calliope-ml/go-audiocond/internal/types"
)

// Cubic convolution kernel with a = -0.75, the coefficient the downstream
// encoders' training pipeline used. Half-pixel source coordinates, and when
// downscaling the kernel support widens so the filter antialiases.

const bicubicA = -0.75

func cubic(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < 1:
		return ((bicubicA+2)*x-(bicubicA+3))*x*x + 1
	case x < 2:
		return bicubicA * (((x-5)*x+8)*x - 4)
	}
	return 0
}

// axisTaps holds, for every output index along one axis, the first source
// index and the normalized kernel weights covering it.
type axisTaps struct {
	start   []int
	weights [][]float32
}

func computeTaps(in, out int) axisTaps {
	taps := axisTaps{start: make([]int, out), weights: make([][]float32, out)}
	scale := float64(in) / float64(out)
	filter := 1.0
	if scale > 1 {
		filter = scale
	}
	support := 2 * filter

	for i := 0; i < out; i++ {
		center := (float64(i) + 0.5) * scale
		lo := int(center - support + 0.5)
		if lo < 0 {
			lo = 0
		}
		hi := int(center + support + 0.5)
		if hi > in {
			hi = in
		}

		ws := make([]float64, hi-lo)
		var sum float64
		for k := range ws {
			ws[k] = cubic((float64(lo+k) + 0.5 - center) / filter)
			sum += ws[k]
		}
		norm := make([]float32, len(ws))
		if sum != 0 {
			for k := range ws {
				norm[k] = float32(ws[k] / sum)
			}
		}
		taps.start[i] = lo
		taps.weights[i] = norm
	}
	return taps
}

// resizeBicubic resizes every frame to outH x outW with a separable bicubic
// filter, horizontal pass first.
func resizeBicubic(v types.Video, outH, outW int) types.Video {
	if v.Height == outH && v.Width == outW {
		return v
	}

	htaps := computeTaps(v.Width, outW)
	mid := types.NewVideo(v.Frames, v.Height, outW)
	for f := 0; f < v.Frames; f++ {
		for y := 0; y < v.Height; y++ {
			for x := 0; x < outW; x++ {
				lo := htaps.start[x]
				ws := htaps.weights[x]
				for c := 0; c < types.Channels; c++ {
					var acc float32
					for k, w := range ws {
						acc += w * v.At(f, y, lo+k, c)
					}
					mid.Set(f, y, x, c, acc)
				}
			}
		}
	}

	vtaps := computeTaps(v.Height, outH)
	out := types.NewVideo(v.Frames, outH, outW)
	for f := 0; f < v.Frames; f++ {
		for y := 0; y < outH; y++ {
			lo := vtaps.start[y]
			ws := vtaps.weights[y]
			for x := 0; x < outW; x++ {
				for c := 0; c < types.Channels; c++ {
					var acc float32
					for k, w := range ws {
						acc += w * mid.At(f, lo+k, x, c)
					}
					out.Set(f, y, x, c, acc)
				}
			}
		}
	}
	return out
}
