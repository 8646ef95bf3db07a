// Package preprocess turns an arbitrary-length video tensor into the two
// branch-specific conditioning tensors the external audio model consumes:
// temporal resampling to each branch's frame rate, then the branch's fixed
// resize / crop / normalize pipeline, channel-first float32 output.
package preprocess

import (
	"github.com/calliope-ml/go-audiocond/internal/resample"
	"github.com/calliope-ml/go-audiocond/internal/types"
)

// Conditioning holds the per-branch encoder inputs prepared from one clip.
// Either feature may be absent: both when no video was supplied, the clip
// branch alone when it was masked away.
type Conditioning struct {
	Clip     types.Feature
	Sync     types.Feature
	Duration float64
}

// Options controls optional branch suppression.
type Options struct {
	// MaskClip drops the coarse visual branch even though video is present.
	// The sync branch is still produced.
	MaskClip bool
}

// BranchFrames runs one branch's full pipeline on an already-resampled frame
// set: resize, optional center crop, clamp to [0,1], optional normalization,
// then conversion to channel-first layout. The order is fixed; reordering
// changes the numeric output.
func BranchFrames(v types.Video, branch Branch) types.FrameBatch {
	spec := branch.Spec()
	transforms := []Transform{}
	if spec.CenterCrop {
		transforms = append(transforms, ResizeShortSide{Size: spec.Size}, CenterCrop{Size: spec.Size})
	} else {
		transforms = append(transforms, Resize{Width: spec.Size, Height: spec.Size})
	}
	transforms = append(transforms, ClampUnit{})
	if spec.Normalize {
		transforms = append(transforms, Normalize{Mean: 0.5, Std: 0.5})
	}
	return Compose(v, transforms...).ChannelFirst()
}

// Process prepares conditioning for a clip of the given duration. The video
// is resampled independently per branch to FrameCount(duration) frames and
// pushed through that branch's transform pipeline. The caller guarantees a
// non-empty video and duration > 0.
func Process(video types.Video, duration float64, opts Options) Conditioning {
	cond := Conditioning{Clip: types.NoFeature(), Sync: types.NoFeature(), Duration: duration}

	if !opts.MaskClip {
		clipSet := resample.Temporal(video, BranchClip.Spec().FrameCount(duration))
		cond.Clip = types.SomeFeature(BranchFrames(clipSet, BranchClip))
	}
	syncSet := resample.Temporal(video, BranchSync.Spec().FrameCount(duration))
	cond.Sync = types.SomeFeature(BranchFrames(syncSet, BranchSync))
	return cond
}
