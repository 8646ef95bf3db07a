package types

// Feature is an optional conditioning tensor for one encoder branch. The
// zero value is absent. Absence is a deliberate signal that the branch was
// skipped; consumers must check Get's second return instead of probing for
// nil data.
type Feature struct {
	batch *FrameBatch
}

// SomeFeature wraps a present branch tensor.
func SomeFeature(b FrameBatch) Feature {
	return Feature{batch: &b}
}

// NoFeature returns the absent marker.
func NoFeature() Feature {
	return Feature{}
}

// Get returns the tensor and whether it is present.
func (f Feature) Get() (FrameBatch, bool) {
	if f.batch == nil {
		return FrameBatch{}, false
	}
	return *f.batch, true
}

// Present reports whether the branch tensor exists.
func (f Feature) Present() bool {
	return f.batch != nil
}
