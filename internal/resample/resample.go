// Package resample retimes a video tensor to a target frame count using
// trilinear interpolation along the temporal axis. The sampling convention
// is non-aligned (half-pixel) corners, the same convention the downstream
// encoders were trained with; do not change it to aligned corners even
// though the endpoint behavior looks off at first glance.
package resample

import (
	"math"

	"github.com/calliope-ml/go-audiocond/internal/types"
)

// Temporal resamples video to exactly target frames. When the input already
// has target frames the input is returned unchanged, introducing no
// interpolation error. target == 0 is a degenerate caller error and yields
// an empty video; the owning pipeline validates duration > 0 before calling.
//
// The spatial axes keep scale 1, where half-pixel sampling maps each
// coordinate to itself, so the trilinear kernel reduces to a linear blend of
// the two temporally adjacent frames.
func Temporal(video types.Video, target int) types.Video {
	if video.Frames == target {
		return video
	}

	out := types.NewVideo(target, video.Height, video.Width)
	if target == 0 {
		return out
	}

	scale := float64(video.Frames) / float64(target)
	size := video.FrameSize()
	for i := 0; i < target; i++ {
		src := (float64(i)+0.5)*scale - 0.5
		if src < 0 {
			src = 0
		}
		f0 := int(math.Floor(src))
		if f0 > video.Frames-1 {
			f0 = video.Frames - 1
		}
		f1 := f0 + 1
		if f1 > video.Frames-1 {
			f1 = video.Frames - 1
		}
		w1 := float32(src - float64(f0))
		w0 := 1 - w1

		dst := out.Data[i*size : (i+1)*size]
		a := video.Frame(f0)
		b := video.Frame(f1)
		for j := range dst {
			dst[j] = w0*a[j] + w1*b[j]
		}
	}
	return out
}
