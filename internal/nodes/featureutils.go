package nodes

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/calliope-ml/go-audiocond/internal/model"
)

// FeatureUtilsLoader assembles the conditioning encoder bundle (latent
// codec, sync encoder, visual encoder) from individual checkpoint widgets.
type FeatureUtilsLoader struct {
	store  model.WeightStore
	logger *zap.Logger
}

// NewFeatureUtilsLoader wires a feature-utils loader node to a weight store.
func NewFeatureUtilsLoader(store model.WeightStore, logger *zap.Logger) *FeatureUtilsLoader {
	return &FeatureUtilsLoader{store: store, logger: logger}
}

func (n *FeatureUtilsLoader) Spec() Spec {
	names := n.checkpoints()
	return Spec{
		Name:        "AudioCondFeatureUtilsLoader",
		DisplayName: "AudioCond FeatureUtilsLoader",
		Category:    category,
		Inputs: []InputSpec{
			{Name: "vae_model", Kind: InputChoice, Options: names},
			{Name: "synchformer_model", Kind: InputChoice, Options: names},
			{Name: "clip_model", Kind: InputChoice, Options: names},
			{Name: "vocoder", Kind: InputLink, LinkType: "VOCODER_MODEL", Optional: true, Tooltip: "Required for 16k mode"},
			{Name: "mode", Kind: InputChoice, Default: string(model.Mode44K), Options: []string{string(model.Mode16K), string(model.Mode44K)}, Optional: true},
			{Name: "precision", Kind: InputChoice, Default: string(model.PrecisionFP16), Options: model.Precisions(), Optional: true},
		},
		Outputs: []string{"feature_utils"},
	}
}

func (n *FeatureUtilsLoader) Execute(ctx context.Context, in Inputs) (Outputs, error) {
	precision, err := model.ParsePrecision(in.String("precision", string(model.PrecisionFP16)))
	if err != nil {
		return nil, err
	}
	mode := model.Mode(in.String("mode", string(model.Mode44K)))
	if mode != model.Mode16K && mode != model.Mode44K {
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	cfg := model.FeatureExtractorConfig{
		VAE:         in.String("vae_model", ""),
		Synchformer: in.String("synchformer_model", ""),
		CLIP:        in.String("clip_model", ""),
		Mode:        mode,
		Precision:   precision,
	}
	if cfg.VAE == "" || cfg.Synchformer == "" || cfg.CLIP == "" {
		return nil, fmt.Errorf("vae, synchformer and clip checkpoints are all required")
	}
	if voc, ok := in["vocoder"].(model.Vocoder); ok {
		cfg.Vocoder = voc
	}
	if mode == model.Mode16K && cfg.Vocoder == nil {
		return nil, fmt.Errorf("a vocoder must be connected for 16k mode")
	}

	fu, err := n.store.OpenFeatureExtractor(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("assemble feature extractor: %w", err)
	}

	n.logger.Info("loaded feature extractor",
		zap.String("vae", cfg.VAE),
		zap.String("synchformer", cfg.Synchformer),
		zap.String("clip", cfg.CLIP),
		zap.String("mode", string(mode)),
	)
	return Outputs{"feature_utils": fu}, nil
}

func (n *FeatureUtilsLoader) checkpoints() []string {
	names, err := n.store.List()
	if err != nil {
		return nil
	}
	return names
}
