package wave

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/go-audio/audio"
)

var errUnhandledBitDepth = errors.New("unhandled bit depth")

// IntBuffer interprets the payload as interleaved little-endian PCM samples.
// 8 bit samples are unsigned and kept as read, wider samples are signed.
// Trailing bytes that do not form a full sample are dropped.
func (f *File) IntBuffer() (*audio.IntBuffer, error) {
	if f == nil {
		return nil, errNilFile
	}

	decodeF, size, err := sampleDecodeFunc(f.bitsPerSample)
	if err != nil {
		return nil, err
	}

	n := len(f.data) / size
	buf := &audio.IntBuffer{
		Format:         f.Format(),
		SourceBitDepth: f.bitsPerSample,
		Data:           make([]int, n),
	}

	for i := range n {
		buf.Data[i] = decodeF(f.data[i*size : (i+1)*size])
	}

	return buf, nil
}

// sampleDecodeFunc returns the function converting one sample worth of bytes
// into an int along with the number of bytes it consumes.
func sampleDecodeFunc(bitsPerSample int) (func([]byte) int, int, error) {
	switch {
	case bitsPerSample > 0 && bitsPerSample <= 8:
		return func(b []byte) int {
			return int(b[0])
		}, 1, nil
	case bitsPerSample > 8 && bitsPerSample <= 16:
		return func(b []byte) int {
			return int(int16(binary.LittleEndian.Uint16(b)))
		}, 2, nil
	case bitsPerSample > 16 && bitsPerSample <= 24:
		return func(b []byte) int {
			return int(audio.Int24LETo32(b))
		}, 3, nil
	case bitsPerSample > 24 && bitsPerSample <= 32:
		return func(b []byte) int {
			return int(int32(binary.LittleEndian.Uint32(b)))
		}, 4, nil
	default:
		return nil, 0, fmt.Errorf("%w: %d", errUnhandledBitDepth, bitsPerSample)
	}
}
