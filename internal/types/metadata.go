package types

// ConditioningMetadata describes the branch tensors written for one clip
type ConditioningMetadata struct {
	Key          string  `json:"key"`
	Duration     float64 `json:"duration"`
	SourceFrames int     `json:"source_frames"`
	SourceSize   []int   `json:"source_size"`
	ClipFrames   int     `json:"clip_frames,omitempty"`
	SyncFrames   int     `json:"sync_frames,omitempty"`
	ClipMasked   bool    `json:"clip_masked,omitempty"`
}
