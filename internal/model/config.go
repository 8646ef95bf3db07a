package model

import (
	"fmt"
	"math"
	"strings"
)

// Precision selects the compute dtype the external runtime loads weights in.
type Precision string

const (
	PrecisionFP16 Precision = "fp16"
	PrecisionFP32 Precision = "fp32"
	PrecisionBF16 Precision = "bf16"
)

// Precisions lists the supported precisions in widget order.
func Precisions() []string {
	return []string{string(PrecisionFP16), string(PrecisionFP32), string(PrecisionBF16)}
}

// ParsePrecision validates a widget value.
func ParsePrecision(s string) (Precision, error) {
	switch Precision(s) {
	case PrecisionFP16, PrecisionFP32, PrecisionBF16:
		return Precision(s), nil
	}
	return "", fmt.Errorf("unknown precision %q", s)
}

// Mode selects the audio band the checkpoint was trained at.
type Mode string

const (
	Mode16K Mode = "16k"
	Mode44K Mode = "44k"
)

// SampleRate returns the output waveform sample rate for the mode.
func (m Mode) SampleRate() int {
	if m == Mode16K {
		return 16000
	}
	return 44100
}

// Arch fixes the transformer dimensions of one released checkpoint family.
type Arch struct {
	Name       string
	LatentDim  int
	ClipDim    int
	SyncDim    int
	TextDim    int
	HiddenDim  int
	Depth      int
	FusedDepth int
	NumHeads   int
	V2         bool
}

var (
	ArchSmall = Arch{
		Name:       "small",
		LatentDim:  40,
		ClipDim:    1024,
		SyncDim:    768,
		TextDim:    1024,
		HiddenDim:  64 * 7,
		Depth:      12,
		FusedDepth: 8,
		NumHeads:   7,
	}
	ArchLarge = Arch{
		Name:       "large",
		LatentDim:  40,
		ClipDim:    1024,
		SyncDim:    768,
		TextDim:    1024,
		HiddenDim:  64 * 14,
		Depth:      21,
		FusedDepth: 14,
		NumHeads:   14,
		V2:         true,
	}
)

// ArchForCheckpoint picks the architecture by checkpoint filename, the same
// substring convention the released weights use.
func ArchForCheckpoint(filename string) (Arch, error) {
	switch {
	case strings.Contains(filename, "small"):
		return ArchSmall, nil
	case strings.Contains(filename, "large"):
		return ArchLarge, nil
	}
	return Arch{}, fmt.Errorf("cannot infer architecture from checkpoint name %q", filename)
}

// SequenceConfig derives the three conditioning sequence lengths from a
// clip duration. Rates are per-checkpoint-band constants.
type SequenceConfig struct {
	Duration      float64
	SamplingRate  int
	LatentHopSize int // audio samples per latent frame
	ClipRate      float64
	SyncRate      float64
}

var (
	// Sequence16K is the 16 kHz band: 8 s clips give latent 250, clip 64, sync 192.
	Sequence16K = SequenceConfig{Duration: 8.0, SamplingRate: 16000, LatentHopSize: 512, ClipRate: 8.0, SyncRate: 24.0}
	// Sequence44K is the 44.1 kHz band: 8 s clips give latent 345, clip 64, sync 192.
	Sequence44K = SequenceConfig{Duration: 8.0, SamplingRate: 44100, LatentHopSize: 1024, ClipRate: 8.0, SyncRate: 24.0}
)

// SequenceForCheckpoint picks the band by checkpoint filename substring.
func SequenceForCheckpoint(filename string) (SequenceConfig, Mode) {
	if strings.Contains(filename, "16") {
		return Sequence16K, Mode16K
	}
	return Sequence44K, Mode44K
}

// LatentSeqLen is the latent sequence length for the configured duration.
func (c SequenceConfig) LatentSeqLen() int {
	return int(math.Round(c.Duration * float64(c.SamplingRate) / float64(c.LatentHopSize)))
}

// ClipSeqLen is the clip-feature sequence length for the configured duration.
func (c SequenceConfig) ClipSeqLen() int {
	return int(c.ClipRate * c.Duration)
}

// SyncSeqLen is the sync-feature sequence length for the configured duration.
func (c SequenceConfig) SyncSeqLen() int {
	return int(c.SyncRate * c.Duration)
}
