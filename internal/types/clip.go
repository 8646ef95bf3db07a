package types

// Clip represents a source video clip with its key and raw container bytes
type Clip struct {
	Key     string
	RawData []byte
}
