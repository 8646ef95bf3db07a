package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calliope-ml/go-audiocond/internal/types"
)

func TestResizeShortSideDimensions(t *testing.T) {
	tests := []struct {
		name  string
		h, w  int
		size  int
		wantH int
		wantW int
	}{
		{name: "landscape", h: 100, w: 200, size: 224, wantH: 224, wantW: 448},
		{name: "portrait", h: 200, w: 100, size: 224, wantH: 448, wantW: 224},
		{name: "square", h: 64, w: 64, size: 224, wantH: 224, wantW: 224},
		{name: "already at size", h: 224, w: 224, size: 224, wantH: 224, wantW: 224},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := types.NewVideo(1, tt.h, tt.w)
			out := ResizeShortSide{Size: tt.size}.Apply(v)
			assert.Equal(t, tt.wantH, out.Height)
			assert.Equal(t, tt.wantW, out.Width)
			assert.Equal(t, 1, out.Frames)
		})
	}
}

func TestCenterCrop(t *testing.T) {
	// 2x4 frame with distinct column values; cropping to 2x2 keeps the two
	// middle columns.
	v := types.NewVideo(1, 2, 4)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			for c := 0; c < types.Channels; c++ {
				v.Set(0, y, x, c, float32(x))
			}
		}
	}

	out := CenterCrop{Size: 2}.Apply(v)
	require.Equal(t, 2, out.Height)
	require.Equal(t, 2, out.Width)
	assert.Equal(t, float32(1), out.At(0, 0, 0, 0))
	assert.Equal(t, float32(2), out.At(0, 0, 1, 0))
	assert.Equal(t, float32(1), out.At(0, 1, 0, 2))
}

func TestCenterCropNoop(t *testing.T) {
	v := types.NewVideo(2, 8, 8)
	out := CenterCrop{Size: 8}.Apply(v)
	assert.Same(t, &v.Data[0], &out.Data[0])
}

func TestClampUnit(t *testing.T) {
	v := types.Video{Data: []float32{-0.5, 0, 0.25, 1, 1.5, 0.999}, Frames: 1, Height: 1, Width: 2}
	out := ClampUnit{}.Apply(v)
	assert.Equal(t, []float32{0, 0, 0.25, 1, 1, 0.999}, out.Data)
}

func TestNormalize(t *testing.T) {
	v := types.Video{Data: []float32{0, 0.5, 1, 0.25, 0.75, 0.5}, Frames: 1, Height: 1, Width: 2}
	out := Normalize{Mean: 0.5, Std: 0.5}.Apply(v)
	assert.InDeltaSlice(t, []float32{-1, 0, 1, -0.5, 0.5, 0}, out.Data, 1e-6)
}

func TestComposeOrder(t *testing.T) {
	// Clamp must run before normalize: -1 clamps to 0 and normalizes to -1.
	// The reversed order would normalize to -3 and clamp to 0.
	v := types.Video{Data: []float32{-1, -1, -1, -1, -1, -1}, Frames: 1, Height: 1, Width: 2}
	out := Compose(v, ClampUnit{}, Normalize{Mean: 0.5, Std: 0.5})
	for _, val := range out.Data {
		assert.Equal(t, float32(-1), val)
	}
}

func TestResizeUpscaleBounded(t *testing.T) {
	// Bicubic overshoot on a step edge must stay small and be fully removed
	// by the clamp stage.
	v := types.NewVideo(1, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 2; x < 4; x++ {
			for c := 0; c < types.Channels; c++ {
				v.Set(0, y, x, c, 1)
			}
		}
	}

	resized := Resize{Width: 16, Height: 16}.Apply(v)
	clamped := ClampUnit{}.Apply(resized)
	for _, val := range clamped.Data {
		require.GreaterOrEqual(t, val, float32(0))
		require.LessOrEqual(t, val, float32(1))
	}
}
