package nodes

import (
	"context"
	"fmt"

	"github.com/calliope-ml/go-audiocond/internal/model"
)

// VocoderLoader loads a standalone vocoder checkpoint for the 16k band.
type VocoderLoader struct {
	store model.WeightStore
}

// NewVocoderLoader wires a vocoder loader node to a weight store.
func NewVocoderLoader(store model.WeightStore) *VocoderLoader {
	return &VocoderLoader{store: store}
}

func (n *VocoderLoader) Spec() Spec {
	names, _ := n.store.List()
	return Spec{
		Name:        "AudioCondVocoderLoader",
		DisplayName: "AudioCond VocoderLoader",
		Category:    category,
		Inputs: []InputSpec{
			{Name: "vocoder_model", Kind: InputChoice, Options: names},
		},
		Outputs: []string{"vocoder"},
	}
}

func (n *VocoderLoader) Execute(ctx context.Context, in Inputs) (Outputs, error) {
	checkpoint := in.String("vocoder_model", "")
	if checkpoint == "" {
		return nil, fmt.Errorf("no vocoder checkpoint selected")
	}
	voc, err := n.store.OpenVocoder(ctx, checkpoint)
	if err != nil {
		return nil, fmt.Errorf("load vocoder %s: %w", checkpoint, err)
	}
	return Outputs{"vocoder": voc}, nil
}
