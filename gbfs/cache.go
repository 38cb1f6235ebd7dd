package gbfs

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// SerializeIndex encodes a StationIndex to bytes using gob encoding.
func SerializeIndex(index *StationIndex) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeIndexToWriter(index, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeIndex decodes a StationIndex produced by SerializeIndex.
func DeserializeIndex(data []byte) (*StationIndex, error) {
	return DeserializeIndexFromReader(bytes.NewReader(data))
}

// SerializeIndexToFile writes a StationIndex to a file using gob encoding.
func SerializeIndexToFile(index *StationIndex, filepath string) error {
	data, err := SerializeIndex(index)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// DeserializeIndexFromFile reads a StationIndex from a file using gob encoding.
//
//	index, err := gbfs.DeserializeIndexFromFile("/cache/stations.gob")
//	if err != nil {
//	    // cache miss or corrupted, fetch fresh data
//	}
func DeserializeIndexFromFile(filepath string) (*StationIndex, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return DeserializeIndex(data)
}

// SerializeIndexToWriter writes a StationIndex to an io.Writer using gob encoding.
func SerializeIndexToWriter(index *StationIndex, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(index); err != nil {
		return fmt.Errorf("failed to encode StationIndex: %w", err)
	}
	return nil
}

// DeserializeIndexFromReader reads a StationIndex from an io.Reader using gob encoding.
func DeserializeIndexFromReader(r io.Reader) (*StationIndex, error) {
	var index StationIndex
	if err := gob.NewDecoder(r).Decode(&index); err != nil {
		return nil, fmt.Errorf("failed to decode StationIndex: %w", err)
	}
	index.reindex()
	return &index, nil
}
