// Package media decodes video containers into in-memory video tensors via
// ffmpeg. Frames come out as packed rgb24 on a pipe and are converted to
// float32 in [0, 1].
package media

import (
	"bytes"
	"fmt"

	ffmpeg "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"

	"github.com/calliope-ml/go-audiocond/internal/types"
)

// Decoder reads video files into channel-last float32 tensors.
type Decoder struct {
	logger *zap.Logger
}

// NewDecoder creates a decoder that logs through the given logger.
func NewDecoder(logger *zap.Logger) *Decoder {
	return &Decoder{logger: logger}
}

// Decode reads every frame of the file at path into a video tensor.
func (d *Decoder) Decode(path string) (types.Video, Info, error) {
	info, err := Probe(path)
	if err != nil {
		return types.Video{}, Info{}, err
	}

	buf := new(bytes.Buffer)
	err = ffmpeg.Input(path).
		Output("pipe:", ffmpeg.KwArgs{"format": "rawvideo", "pix_fmt": "rgb24"}).
		WithOutput(buf).
		Silent(true).
		Run()
	if err != nil {
		return types.Video{}, Info{}, fmt.Errorf("ffmpeg decode %s: %w", path, err)
	}

	frameBytes := info.Width * info.Height * types.Channels
	if buf.Len() == 0 || buf.Len()%frameBytes != 0 {
		return types.Video{}, Info{}, fmt.Errorf("decoded %d bytes, not a multiple of %dx%dx%d frames", buf.Len(), info.Height, info.Width, types.Channels)
	}
	frames := buf.Len() / frameBytes

	video := types.NewVideo(frames, info.Height, info.Width)
	raw := buf.Bytes()
	for i, b := range raw {
		video.Data[i] = float32(b) / 255.0
	}

	d.logger.Debug("decoded video",
		zap.String("path", path),
		zap.Int("frames", frames),
		zap.Int("width", info.Width),
		zap.Int("height", info.Height),
		zap.Float64("duration", info.Duration),
	)
	return video, info, nil
}
