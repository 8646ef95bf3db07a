package nodes

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/calliope-ml/go-audiocond/internal/model"
	"github.com/calliope-ml/go-audiocond/internal/preprocess"
	"github.com/calliope-ml/go-audiocond/internal/types"
)

// Sampler runs one generation: prepares video conditioning when images are
// connected, updates the network's sequence lengths for the requested
// duration, and invokes the external sampler. With no images connected the
// model generates from text alone.
type Sampler struct {
	device  model.Device
	offload model.Device
	logger  *zap.Logger
}

// NewSampler creates the sampler node targeting the given compute device.
// Offload always goes to host memory.
func NewSampler(device model.Device, logger *zap.Logger) *Sampler {
	return &Sampler{device: device, offload: model.DeviceCPU, logger: logger}
}

func (n *Sampler) Spec() Spec {
	return Spec{
		Name:        "AudioCondSampler",
		DisplayName: "AudioCond Sampler",
		Category:    category,
		Inputs: []InputSpec{
			{Name: "model", Kind: InputLink, LinkType: "AUDIOCOND_MODEL"},
			{Name: "feature_utils", Kind: InputLink, LinkType: "AUDIOCOND_FEATUREUTILS"},
			{Name: "duration", Kind: InputFloat, Default: 8.0, Tooltip: "Duration of the audio in seconds"},
			{Name: "steps", Kind: InputInt, Default: 25, Tooltip: "Number of sampling steps"},
			{Name: "cfg", Kind: InputFloat, Default: 4.5, Tooltip: "Strength of the conditioning"},
			{Name: "seed", Kind: InputInt, Default: 0},
			{Name: "prompt", Kind: InputString, Default: "", Multiline: true},
			{Name: "negative_prompt", Kind: InputString, Default: "", Multiline: true},
			{Name: "mask_away_clip", Kind: InputBool, Default: false, Tooltip: "Drop the clip branch even when video is connected"},
			{Name: "force_offload", Kind: InputBool, Default: true, Tooltip: "Move models back to host memory after sampling"},
			{Name: "images", Kind: InputImage, Optional: true},
		},
		Outputs: []string{"audio"},
	}
}

func (n *Sampler) Execute(ctx context.Context, in Inputs) (Outputs, error) {
	loaded, err := link[*model.LoadedModel](in, "model")
	if err != nil {
		return nil, err
	}
	features, err := link[model.FeatureExtractor](in, "feature_utils")
	if err != nil {
		return nil, err
	}

	duration := in.Float("duration", 8.0)
	if duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %v", duration)
	}

	log := n.logger.With(zap.String("execution_id", uuid.NewString()))

	cond := preprocess.Conditioning{Clip: types.NoFeature(), Sync: types.NoFeature(), Duration: duration}
	if video, ok := in["images"].(types.Video); ok && video.Frames > 0 {
		cond = preprocess.Process(video, duration, preprocess.Options{
			MaskClip: in.Bool("mask_away_clip", false),
		})
		log.Info("video conditioning prepared",
			zap.Int("source_frames", video.Frames),
			zap.Bool("clip_present", cond.Clip.Present()),
			zap.Bool("sync_present", cond.Sync.Present()),
		)
	} else {
		log.Info("no video connected, generating from text only")
	}

	seq := loaded.Sequence
	seq.Duration = cond.Duration
	loaded.Generator.UpdateSequenceLengths(seq.LatentSeqLen(), seq.ClipSeqLen(), seq.SyncSeqLen())

	loaded.Generator.To(n.device)
	features.To(n.device)

	audio, err := loaded.Generator.Generate(ctx, model.GenerateRequest{
		ClipFrames:     cond.Clip,
		SyncFrames:     cond.Sync,
		Prompt:         in.String("prompt", ""),
		NegativePrompt: in.String("negative_prompt", ""),
		Steps:          in.Int("steps", 25),
		CFGStrength:    in.Float("cfg", 4.5),
		Seed:           uint64(in.Int("seed", 0)),
		Features:       features,
	})

	if in.Bool("force_offload", true) {
		loaded.Generator.To(n.offload)
		features.To(n.offload)
	}
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	log.Info("sampling finished",
		zap.Int("samples", len(audio.Waveform)),
		zap.Int("sample_rate", audio.SampleRate),
	)
	return Outputs{"audio": audio}, nil
}
