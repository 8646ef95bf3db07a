package nodes

import (
	"context"
	"fmt"

	"github.com/calliope-ml/go-audiocond/internal/model"
)

type fakeGenerator struct {
	devices  []model.Device
	latent   int
	clip     int
	sync     int
	lastReq  model.GenerateRequest
	genErr   error
	genCalls int
}

func (g *fakeGenerator) To(d model.Device) { g.devices = append(g.devices, d) }

func (g *fakeGenerator) UpdateSequenceLengths(latent, clip, sync int) {
	g.latent, g.clip, g.sync = latent, clip, sync
}

func (g *fakeGenerator) Generate(ctx context.Context, req model.GenerateRequest) (model.Audio, error) {
	g.genCalls++
	g.lastReq = req
	if g.genErr != nil {
		return model.Audio{}, g.genErr
	}
	return model.Audio{Waveform: make([]float32, 8), SampleRate: 44100}, nil
}

type fakeFeatures struct {
	devices []model.Device
}

func (f *fakeFeatures) To(d model.Device) { f.devices = append(f.devices, d) }

type fakeVocoder struct{}

func (fakeVocoder) To(model.Device) {}

type fakeStore struct {
	checkpoints []string
	generator   *fakeGenerator
	features    *fakeFeatures
	openErr     error

	openedCheckpoint string
	openedArch       model.Arch
	openedPrecision  model.Precision
	featureCfg       model.FeatureExtractorConfig
}

func (s *fakeStore) List() ([]string, error) { return s.checkpoints, nil }

func (s *fakeStore) OpenGenerator(ctx context.Context, checkpoint string, arch model.Arch, precision model.Precision) (model.Generator, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	s.openedCheckpoint = checkpoint
	s.openedArch = arch
	s.openedPrecision = precision
	if s.generator == nil {
		s.generator = &fakeGenerator{}
	}
	return s.generator, nil
}

func (s *fakeStore) OpenFeatureExtractor(ctx context.Context, cfg model.FeatureExtractorConfig) (model.FeatureExtractor, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	s.featureCfg = cfg
	if s.features == nil {
		s.features = &fakeFeatures{}
	}
	return s.features, nil
}

func (s *fakeStore) OpenVocoder(ctx context.Context, checkpoint string) (model.Vocoder, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	if checkpoint == "" {
		return nil, fmt.Errorf("empty checkpoint")
	}
	return fakeVocoder{}, nil
}
