package nodes

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/calliope-ml/go-audiocond/internal/model"
	"github.com/calliope-ml/go-audiocond/internal/types"
)

func samplerFixture() (*Sampler, *fakeGenerator, *fakeFeatures, Inputs) {
	gen := &fakeGenerator{}
	features := &fakeFeatures{}
	loaded := &model.LoadedModel{Generator: gen, Sequence: model.Sequence44K, Mode: model.Mode44K, Arch: model.ArchSmall}
	in := Inputs{
		"model":         loaded,
		"feature_utils": model.FeatureExtractor(features),
		"duration":      0.5,
		"steps":         25,
		"cfg":           4.5,
		"prompt":        "rain on a tin roof",
	}
	return NewSampler(model.DeviceCUDA, zap.NewNop()), gen, features, in
}

func testVideo(frames, h, w int) types.Video {
	rng := rand.New(rand.NewSource(7))
	v := types.NewVideo(frames, h, w)
	for i := range v.Data {
		v.Data[i] = rng.Float32()
	}
	return v
}

func TestSamplerWithVideo(t *testing.T) {
	s, gen, _, in := samplerFixture()
	in["images"] = testVideo(6, 32, 32)

	out, err := s.Execute(context.Background(), in)
	require.NoError(t, err)

	audio, ok := out["audio"].(model.Audio)
	require.True(t, ok)
	assert.Equal(t, 44100, audio.SampleRate)

	clip, ok := gen.lastReq.ClipFrames.Get()
	require.True(t, ok)
	assert.Equal(t, []int{4, 3, 384, 384}, clip.Shape())

	sync, ok := gen.lastReq.SyncFrames.Get()
	require.True(t, ok)
	assert.Equal(t, []int{12, 3, 224, 224}, sync.Shape())

	assert.Equal(t, "rain on a tin roof", gen.lastReq.Prompt)

	// Sequence lengths follow the requested duration, not the band default.
	assert.Equal(t, 22, gen.latent)
	assert.Equal(t, 4, gen.clip)
	assert.Equal(t, 12, gen.sync)
}

func TestSamplerMaskAwayClip(t *testing.T) {
	s, gen, _, in := samplerFixture()
	in["images"] = testVideo(6, 32, 32)
	in["mask_away_clip"] = true

	_, err := s.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.False(t, gen.lastReq.ClipFrames.Present())
	assert.True(t, gen.lastReq.SyncFrames.Present())
}

func TestSamplerTextOnly(t *testing.T) {
	s, gen, _, in := samplerFixture()

	out, err := s.Execute(context.Background(), in)
	require.NoError(t, err)

	// No video connected: both branches are absence markers and generation
	// still succeeds.
	assert.Equal(t, 1, gen.genCalls)
	assert.False(t, gen.lastReq.ClipFrames.Present())
	assert.False(t, gen.lastReq.SyncFrames.Present())
	assert.NotNil(t, out["audio"])
}

func TestSamplerForceOffload(t *testing.T) {
	s, gen, features, in := samplerFixture()
	in["force_offload"] = true

	_, err := s.Execute(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, gen.devices, 2)
	assert.Equal(t, model.DeviceCUDA, gen.devices[0])
	assert.Equal(t, model.DeviceCPU, gen.devices[1])
	require.Len(t, features.devices, 2)
	assert.Equal(t, model.DeviceCPU, features.devices[1])
}

func TestSamplerKeepsOnDevice(t *testing.T) {
	s, gen, _, in := samplerFixture()
	in["force_offload"] = false

	_, err := s.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []model.Device{model.DeviceCUDA}, gen.devices)
}

func TestSamplerRejectsBadDuration(t *testing.T) {
	s, _, _, in := samplerFixture()
	in["duration"] = 0.0

	_, err := s.Execute(context.Background(), in)
	assert.Error(t, err)
}

func TestSamplerMissingModel(t *testing.T) {
	s, _, _, in := samplerFixture()
	delete(in, "model")

	_, err := s.Execute(context.Background(), in)
	assert.Error(t, err)
}

func TestSamplerGenerateError(t *testing.T) {
	s, gen, _, in := samplerFixture()
	gen.genErr = errors.New("sampler exploded")

	_, err := s.Execute(context.Background(), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sampler exploded")
}
