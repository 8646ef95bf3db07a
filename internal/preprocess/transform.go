package preprocess

import "github.com/calliope-ml/go-audiocond/internal/types"

// Transform represents one step of a branch's frame pipeline. Transforms are
// pure; each returns a new tensor (or the input when it is a no-op).
type Transform interface {
	Apply(v types.Video) types.Video
}

// Resize performs a bicubic resize of every frame to Width x Height.
type Resize struct {
	Width  int
	Height int
}

func (t Resize) Apply(v types.Video) types.Video {
	return resizeBicubic(v, t.Height, t.Width)
}

// ResizeShortSide performs a bicubic resize so that the shorter spatial side
// equals Size, preserving aspect ratio.
type ResizeShortSide struct {
	Size int
}

func (t ResizeShortSide) Apply(v types.Video) types.Video {
	h, w := v.Height, v.Width
	if h <= w {
		return resizeBicubic(v, t.Size, scaleSide(w, h, t.Size))
	}
	return resizeBicubic(v, scaleSide(h, w, t.Size), t.Size)
}

func scaleSide(long, short, target int) int {
	out := int(float64(target)*float64(long)/float64(short) + 0.5)
	if out < 1 {
		out = 1
	}
	return out
}

// CenterCrop crops every frame to a centered Size x Size square. Frames must
// already be at least Size on both sides.
type CenterCrop struct {
	Size int
}

func (t CenterCrop) Apply(v types.Video) types.Video {
	if v.Height == t.Size && v.Width == t.Size {
		return v
	}
	top := (v.Height - t.Size + 1) / 2
	left := (v.Width - t.Size + 1) / 2
	out := types.NewVideo(v.Frames, t.Size, t.Size)
	for f := 0; f < v.Frames; f++ {
		for y := 0; y < t.Size; y++ {
			srcOff := v.Index(f, top+y, left, 0)
			dstOff := out.Index(f, y, 0, 0)
			copy(out.Data[dstOff:dstOff+t.Size*types.Channels], v.Data[srcOff:srcOff+t.Size*types.Channels])
		}
	}
	return out
}

// ClampUnit saturates values into [0, 1], matching the encoders'
// training-time 8-bit round trip which clipped bicubic overshoot.
type ClampUnit struct{}

func (ClampUnit) Apply(v types.Video) types.Video {
	out := types.Video{Data: make([]float32, len(v.Data)), Frames: v.Frames, Height: v.Height, Width: v.Width}
	for i, val := range v.Data {
		switch {
		case val < 0:
			out.Data[i] = 0
		case val > 1:
			out.Data[i] = 1
		default:
			out.Data[i] = val
		}
	}
	return out
}

// Normalize applies channel-wise (v - Mean) / Std.
type Normalize struct {
	Mean float32
	Std  float32
}

func (t Normalize) Apply(v types.Video) types.Video {
	out := types.Video{Data: make([]float32, len(v.Data)), Frames: v.Frames, Height: v.Height, Width: v.Width}
	for i, val := range v.Data {
		out.Data[i] = (val - t.Mean) / t.Std
	}
	return out
}

// Compose applies transforms in order. Order matters: resize before crop
// before clamp before normalize, anything else changes the numbers.
func Compose(v types.Video, transforms ...Transform) types.Video {
	for _, t := range transforms {
		v = t.Apply(v)
	}
	return v
}
