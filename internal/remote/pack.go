package remote

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"
)

// Layer pack format, per object:
//
//	{hash: 64 bytes hex}{length: 8 bytes big-endian}{data}
//
// Objects are packed in hash order so identical object sets produce
// identical layers.

const hashLen = 64

// layerTargetSize caps how much raw object data goes into one layer.
const layerTargetSize = 4 * 1024 * 1024

// PackObjects encodes a set of objects into one layer payload.
func PackObjects(objects map[string][]byte) ([]byte, error) {
	hashes := make([]string, 0, len(objects))
	for hash := range objects {
		if len(hash) != hashLen {
			return nil, fmt.Errorf("pack: bad hash length %d for %q", len(hash), hash)
		}
		hashes = append(hashes, hash)
	}
	sort.Strings(hashes)

	var buf bytes.Buffer
	for _, hash := range hashes {
		data := objects[hash]
		buf.WriteString(hash)
		binary.Write(&buf, binary.BigEndian, uint64(len(data)))
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

// UnpackObjects decodes a layer payload back into objects.
func UnpackObjects(data []byte) (map[string][]byte, error) {
	objects := make(map[string][]byte)
	r := bytes.NewReader(data)
	hashBuf := make([]byte, hashLen)

	for r.Len() > 0 {
		if _, err := io.ReadFull(r, hashBuf); err != nil {
			return nil, fmt.Errorf("unpack: truncated hash: %w", err)
		}
		var size uint64
		if err := binary.Read(r, binary.BigEndian, &size); err != nil {
			return nil, fmt.Errorf("unpack: truncated length: %w", err)
		}
		if size > uint64(r.Len()) {
			return nil, fmt.Errorf("unpack: object length %d exceeds remaining %d", size, r.Len())
		}
		obj := make([]byte, size)
		if _, err := io.ReadFull(r, obj); err != nil {
			return nil, fmt.Errorf("unpack: truncated object: %w", err)
		}
		objects[string(hashBuf)] = obj
	}
	return objects, nil
}

// BatchObjects splits objects into hash-ordered batches of roughly
// layerTargetSize raw bytes each.
func BatchObjects(objects map[string][]byte) []map[string][]byte {
	hashes := make([]string, 0, len(objects))
	for hash := range objects {
		hashes = append(hashes, hash)
	}
	sort.Strings(hashes)

	var batches []map[string][]byte
	current := make(map[string][]byte)
	var currentSize int
	for _, hash := range hashes {
		data := objects[hash]
		if currentSize > 0 && currentSize+len(data) > layerTargetSize {
			batches = append(batches, current)
			current = make(map[string][]byte)
			currentSize = 0
		}
		current[hash] = data
		currentSize += len(data)
	}
	if len(current) > 0 {
		batches = append(batches, current)
	}
	return batches
}
