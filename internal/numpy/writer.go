package numpy

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// DType is the NumPy dtype descriptor written into the header.
type DType string

const (
	Uint8   DType = "<u1"
	Float32 DType = "<f4"
)

// Writer handles writing tensors to NumPy (.npy) files
type Writer struct {
	file *os.File
}

// NewWriter creates a new NumPy writer for the given file
func NewWriter(filepath string) (*Writer, error) {
	file, err := os.Create(filepath)
	if err != nil {
		return nil, fmt.Errorf("error creating npy file: %v", err)
	}
	return &Writer{file: file}, nil
}

// Close closes the underlying file
func (w *Writer) Close() error {
	return w.file.Close()
}

// Write writes raw data to the NumPy file with the given dtype and shape
func (w *Writer) Write(data []byte, dtype DType, shape []int) error {
	header, err := createHeader(dtype, shape)
	if err != nil {
		return fmt.Errorf("error creating numpy header: %v", err)
	}

	if _, err := w.file.Write(header); err != nil {
		return fmt.Errorf("error writing npy header: %v", err)
	}

	if _, err := w.file.Write(data); err != nil {
		return fmt.Errorf("error writing npy data: %v", err)
	}

	return nil
}

// WriteFloat32 writes a float32 tensor with the given shape, little-endian
func (w *Writer) WriteFloat32(data []float32, shape []int) error {
	raw := make([]byte, 4*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint32(raw[4*i:], math.Float32bits(v))
	}
	return w.Write(raw, Float32, shape)
}

// createHeader creates a NumPy array header with the given dtype and shape
func createHeader(dtype DType, shape []int) ([]byte, error) {
	// Create the dictionary string
	var shapeStr bytes.Buffer
	shapeStr.WriteString(fmt.Sprintf("{'descr': '%s', 'fortran_order': False, 'shape': (", dtype))
	for i, s := range shape {
		shapeStr.WriteString(fmt.Sprintf("%d", s))
		if i < len(shape)-1 {
			shapeStr.WriteString(", ")
		}
	}
	shapeStr.WriteString(")}")

	dictBytes := shapeStr.Bytes()

	// Calculate padding for the dictionary string
	currentHeaderSize := len(dictBytes) + 10 // 10 = len(magic+version) + len(header_len_prefix)
	padding := (16 - (currentHeaderSize % 16)) % 16

	// Create the header
	var fullHeader bytes.Buffer

	// Magic string and version (NPY v1.0) - 8 bytes
	fullHeader.Write([]byte{0x93, 'N', 'U', 'M', 'P', 'Y', 0x01, 0x00})

	// Header length (uint16 little-endian) - 2 bytes
	headerDictWithPaddingLen := uint16(len(dictBytes) + padding)
	if err := binary.Write(&fullHeader, binary.LittleEndian, headerDictWithPaddingLen); err != nil {
		return nil, fmt.Errorf("failed to write header dictionary length: %v", err)
	}

	// Dictionary literal string
	fullHeader.Write(dictBytes)

	// Padding bytes
	fullHeader.Write(bytes.Repeat([]byte{' '}, padding))

	return fullHeader.Bytes(), nil
}
