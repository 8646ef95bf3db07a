package preprocess

// Branch identifies one of the two encoder input pipelines.
type Branch int

const (
	// BranchClip feeds the coarse global visual encoder.
	BranchClip Branch = iota
	// BranchSync feeds the fine-grained audio-visual sync encoder.
	BranchSync
)

// BranchSpec fixes the temporal and spatial targets one encoder branch
// expects. These are architecture constants, not tunables.
type BranchSpec struct {
	FPS        float64
	Size       int
	CenterCrop bool
	Normalize  bool
}

var branchSpecs = map[Branch]BranchSpec{
	BranchClip: {FPS: 8.0, Size: 384},
	BranchSync: {FPS: 25.0, Size: 224, CenterCrop: true, Normalize: true},
}

// Spec returns the fixed targets for the branch.
func (b Branch) Spec() BranchSpec {
	return branchSpecs[b]
}

func (b Branch) String() string {
	switch b {
	case BranchClip:
		return "clip"
	case BranchSync:
		return "sync"
	}
	return "unknown"
}

// FrameCount derives the number of frames the branch expects for a clip of
// the given duration in seconds.
func (s BranchSpec) FrameCount(duration float64) int {
	return int(s.FPS * duration)
}
