package packer

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"
)

// pngSignatureLen is the fixed PNG file signature length.
const pngSignatureLen = 8

// withPhysChunk returns the PNG data with a pHYs chunk inserted directly
// after IHDR, recording the run resolution so print dialogs pick up the
// intended physical size. Go's png encoder has no metadata hook, so the
// 9-byte chunk is spliced in at the byte level.
func withPhysChunk(png []byte, dpi int) ([]byte, error) {
	// Signature + IHDR length/type/data/CRC. IHDR is always the first chunk.
	if len(png) < pngSignatureLen+12 {
		return nil, fmt.Errorf("png data too short: %d bytes", len(png))
	}
	ihdrLen := binary.BigEndian.Uint32(png[pngSignatureLen:])
	insertAt := pngSignatureLen + 12 + int(ihdrLen)
	if insertAt > len(png) {
		return nil, fmt.Errorf("malformed png: IHDR length %d exceeds data", ihdrLen)
	}

	chunk := physChunk(dpi)
	out := make([]byte, 0, len(png)+len(chunk))
	out = append(out, png[:insertAt]...)
	out = append(out, chunk...)
	out = append(out, png[insertAt:]...)
	return out, nil
}

// physChunk builds a pHYs chunk: 4-byte length, type, two 4-byte pixels-per-
// metre values, a unit byte (1 = metre) and the CRC over type+data.
func physChunk(dpi int) []byte {
	ppm := uint32(math.Round(float64(dpi) / 0.0254))

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:], 9)
	copy(chunk[4:], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:], ppm)
	binary.BigEndian.PutUint32(chunk[12:], ppm)
	chunk[16] = 1
	binary.BigEndian.PutUint32(chunk[17:], crc32.ChecksumIEEE(chunk[4:17]))
	return chunk
}
