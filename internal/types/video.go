package types

// Channels is the number of color channels every video tensor carries.
const Channels = 3

// Video is an ordered frame sequence stored channel-last: a contiguous
// float32 slice indexed (frame, y, x, channel), pixel values in [0, 1].
type Video struct {
	Data   []float32
	Frames int
	Height int
	Width  int
}

// NewVideo allocates a zero-filled video tensor.
func NewVideo(frames, height, width int) Video {
	return Video{
		Data:   make([]float32, frames*height*width*Channels),
		Frames: frames,
		Height: height,
		Width:  width,
	}
}

// Index returns the flat offset of (frame, y, x, channel).
func (v Video) Index(f, y, x, c int) int {
	return ((f*v.Height+y)*v.Width+x)*Channels + c
}

// At returns the value at (frame, y, x, channel).
func (v Video) At(f, y, x, c int) float32 {
	return v.Data[v.Index(f, y, x, c)]
}

// Set stores a value at (frame, y, x, channel).
func (v Video) Set(f, y, x, c int, val float32) {
	v.Data[v.Index(f, y, x, c)] = val
}

// FrameSize returns the number of float32 values in a single frame.
func (v Video) FrameSize() int {
	return v.Height * v.Width * Channels
}

// Frame returns the contiguous slice backing frame f.
func (v Video) Frame(f int) []float32 {
	size := v.FrameSize()
	return v.Data[f*size : (f+1)*size]
}

// FrameBatch is a batched channel-first tensor: a contiguous float32 slice
// indexed (frame, channel, y, x). This is the layout the encoder branches
// consume.
type FrameBatch struct {
	Data   []float32
	Frames int
	Height int
	Width  int
}

// Index returns the flat offset of (frame, channel, y, x).
func (b FrameBatch) Index(f, c, y, x int) int {
	return ((f*Channels+c)*b.Height+y)*b.Width + x
}

// At returns the value at (frame, channel, y, x).
func (b FrameBatch) At(f, c, y, x int) float32 {
	return b.Data[b.Index(f, c, y, x)]
}

// Shape returns the (frame, channel, height, width) dimensions.
func (b FrameBatch) Shape() []int {
	return []int{b.Frames, Channels, b.Height, b.Width}
}

// ChannelFirst converts a channel-last video into a channel-first batch.
func (v Video) ChannelFirst() FrameBatch {
	out := FrameBatch{
		Data:   make([]float32, len(v.Data)),
		Frames: v.Frames,
		Height: v.Height,
		Width:  v.Width,
	}
	for f := 0; f < v.Frames; f++ {
		for y := 0; y < v.Height; y++ {
			for x := 0; x < v.Width; x++ {
				for c := 0; c < Channels; c++ {
					out.Data[out.Index(f, c, y, x)] = v.At(f, y, x, c)
				}
			}
		}
	}
	return out
}
