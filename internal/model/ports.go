// Package model is the boundary to the external audio-generation runtime.
// The network forward passes, the flow-matching sampler, the audio codec and
// the vision/audio feature encoders all live behind these ports; this
// repository only marshals arguments across them.
package model

import (
	"context"

	"github.com/calliope-ml/go-audiocond/internal/types"
)

// Device names a compute placement understood by the runtime.
type Device string

const (
	DeviceCUDA Device = "cuda"
	DeviceCPU  Device = "cpu"
)

// Module is anything the runtime can move between devices.
type Module interface {
	To(device Device)
}

// Audio is a generated waveform.
type Audio struct {
	Waveform   []float32
	SampleRate int
}

// GenerateRequest carries one sampling run's inputs. Clip and sync features
// are optionals: absent means the branch was skipped and the model falls
// back to text-only conditioning for it.
type GenerateRequest struct {
	ClipFrames     types.Feature
	SyncFrames     types.Feature
	Prompt         string
	NegativePrompt string
	Steps          int
	CFGStrength    float64
	Seed           uint64
	Features       FeatureExtractor
}

// Generator is a loaded generative network plus its sampler.
type Generator interface {
	Module
	// UpdateSequenceLengths tells the network the conditioning sequence
	// lengths for the upcoming run.
	UpdateSequenceLengths(latent, clip, sync int)
	Generate(ctx context.Context, req GenerateRequest) (Audio, error)
}

// FeatureExtractor bundles the conditioning encoders (visual, sync, text)
// and the latent codec.
type FeatureExtractor interface {
	Module
}

// Vocoder turns spectral latents into waveforms. Only the 16 kHz band needs
// an explicitly loaded one.
type Vocoder interface {
	Module
}

// FeatureExtractorConfig names the checkpoints a feature extractor is
// assembled from.
type FeatureExtractorConfig struct {
	VAE         string
	Synchformer string
	CLIP        string
	Vocoder     Vocoder // required for 16k, ignored for 44k
	Mode        Mode
	Precision   Precision
}

// WeightStore loads checkpoints from the host's model folder and hands back
// opaque runtime handles.
type WeightStore interface {
	// List returns the checkpoint filenames available to widget dropdowns.
	List() ([]string, error)
	OpenGenerator(ctx context.Context, checkpoint string, arch Arch, precision Precision) (Generator, error)
	OpenFeatureExtractor(ctx context.Context, cfg FeatureExtractorConfig) (FeatureExtractor, error)
	OpenVocoder(ctx context.Context, checkpoint string) (Vocoder, error)
}

// LoadedModel pairs a generator with the sequence band its checkpoint was
// trained at.
type LoadedModel struct {
	Generator Generator
	Sequence  SequenceConfig
	Mode      Mode
	Arch      Arch
}
