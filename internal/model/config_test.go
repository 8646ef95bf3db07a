package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrecision(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Precision
		wantErr bool
	}{
		{name: "fp16", in: "fp16", want: PrecisionFP16},
		{name: "fp32", in: "fp32", want: PrecisionFP32},
		{name: "bf16", in: "bf16", want: PrecisionBF16},
		{name: "unknown", in: "fp8", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrecision(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArchForCheckpoint(t *testing.T) {
	small, err := ArchForCheckpoint("mmaudio_small_16k.safetensors")
	require.NoError(t, err)
	assert.Equal(t, 7, small.NumHeads)
	assert.Equal(t, 12, small.Depth)
	assert.Equal(t, 8, small.FusedDepth)
	assert.Equal(t, 64*7, small.HiddenDim)
	assert.False(t, small.V2)

	large, err := ArchForCheckpoint("mmaudio_large_44k_v2.safetensors")
	require.NoError(t, err)
	assert.Equal(t, 14, large.NumHeads)
	assert.Equal(t, 21, large.Depth)
	assert.Equal(t, 14, large.FusedDepth)
	assert.True(t, large.V2)

	_, err = ArchForCheckpoint("mystery.safetensors")
	assert.Error(t, err)
}

func TestSequenceForCheckpoint(t *testing.T) {
	seq, mode := SequenceForCheckpoint("mmaudio_small_16k.safetensors")
	assert.Equal(t, Mode16K, mode)
	assert.Equal(t, 16000, seq.SamplingRate)

	seq, mode = SequenceForCheckpoint("mmaudio_large_44k.safetensors")
	assert.Equal(t, Mode44K, mode)
	assert.Equal(t, 44100, seq.SamplingRate)
}

func TestSequenceLengths(t *testing.T) {
	// The canonical 8 s lengths the checkpoints were trained with.
	seq44 := Sequence44K
	seq44.Duration = 8.0
	assert.Equal(t, 345, seq44.LatentSeqLen())
	assert.Equal(t, 64, seq44.ClipSeqLen())
	assert.Equal(t, 192, seq44.SyncSeqLen())

	seq16 := Sequence16K
	seq16.Duration = 8.0
	assert.Equal(t, 250, seq16.LatentSeqLen())
	assert.Equal(t, 64, seq16.ClipSeqLen())
	assert.Equal(t, 192, seq16.SyncSeqLen())
}

func TestModeSampleRate(t *testing.T) {
	assert.Equal(t, 16000, Mode16K.SampleRate())
	assert.Equal(t, 44100, Mode44K.SampleRate())
}
