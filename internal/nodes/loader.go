package nodes

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/calliope-ml/go-audiocond/internal/model"
)

const category = "AudioCond"

// ModelLoader constructs the generative network from a checkpoint file
// widget, picking the architecture and sequence band from the filename.
type ModelLoader struct {
	store  model.WeightStore
	logger *zap.Logger
}

// NewModelLoader wires a model loader node to a weight store.
func NewModelLoader(store model.WeightStore, logger *zap.Logger) *ModelLoader {
	return &ModelLoader{store: store, logger: logger}
}

func (n *ModelLoader) Spec() Spec {
	return Spec{
		Name:        "AudioCondModelLoader",
		DisplayName: "AudioCond ModelLoader",
		Category:    category,
		Inputs: []InputSpec{
			{Name: "model", Kind: InputChoice, Options: n.checkpoints(), Tooltip: "Checkpoints from the host's models folder"},
			{Name: "base_precision", Kind: InputChoice, Default: string(model.PrecisionFP16), Options: model.Precisions()},
		},
		Outputs: []string{"model"},
	}
}

func (n *ModelLoader) Execute(ctx context.Context, in Inputs) (Outputs, error) {
	checkpoint := in.String("model", "")
	if checkpoint == "" {
		return nil, fmt.Errorf("no checkpoint selected")
	}
	precision, err := model.ParsePrecision(in.String("base_precision", string(model.PrecisionFP16)))
	if err != nil {
		return nil, err
	}
	arch, err := model.ArchForCheckpoint(checkpoint)
	if err != nil {
		return nil, err
	}
	seq, mode := model.SequenceForCheckpoint(checkpoint)

	gen, err := n.store.OpenGenerator(ctx, checkpoint, arch, precision)
	if err != nil {
		return nil, fmt.Errorf("load checkpoint %s: %w", checkpoint, err)
	}

	n.logger.Info("loaded model weights",
		zap.String("checkpoint", checkpoint),
		zap.String("arch", arch.Name),
		zap.String("mode", string(mode)),
		zap.String("precision", string(precision)),
	)
	return Outputs{"model": &model.LoadedModel{Generator: gen, Sequence: seq, Mode: mode, Arch: arch}}, nil
}

func (n *ModelLoader) checkpoints() []string {
	names, err := n.store.List()
	if err != nil {
		return nil
	}
	return names
}
