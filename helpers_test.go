package wave

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// testHeader describes the numeric fields of a canonical header. Tags are
// always written correctly; tests corrupt them afterwards when needed.
type testHeader struct {
	riffSize      uint32
	fmtLength     int32
	audioFormat   int16
	channels      int16
	sampleRate    int32
	byteRate      int32
	blockAlign    int16
	bitsPerSample int16
	dataLength    int32
}

// cdHeader returns a 16 bit stereo 44.1kHz header declaring n payload bytes.
func cdHeader(n int) testHeader {
	return testHeader{
		riffSize:      uint32(36 + n),
		fmtLength:     16,
		audioFormat:   1,
		channels:      2,
		sampleRate:    44100,
		byteRate:      176400,
		blockAlign:    4,
		bitsPerSample: 16,
		dataLength:    int32(n),
	}
}

func (h testHeader) build(payload []byte) []byte {
	b := make([]byte, HeaderSize, HeaderSize+len(payload))
	copy(b[0:], "RIFF")
	binary.LittleEndian.PutUint32(b[4:], h.riffSize)
	copy(b[8:], "WAVE")
	copy(b[12:], "fmt ")
	binary.LittleEndian.PutUint32(b[16:], uint32(h.fmtLength))
	binary.LittleEndian.PutUint16(b[20:], uint16(h.audioFormat))
	binary.LittleEndian.PutUint16(b[22:], uint16(h.channels))
	binary.LittleEndian.PutUint32(b[24:], uint32(h.sampleRate))
	binary.LittleEndian.PutUint32(b[28:], uint32(h.byteRate))
	binary.LittleEndian.PutUint16(b[32:], uint16(h.blockAlign))
	binary.LittleEndian.PutUint16(b[34:], uint16(h.bitsPerSample))
	copy(b[36:], "data")
	binary.LittleEndian.PutUint32(b[40:], uint32(h.dataLength))

	return append(b, payload...)
}

func testPayload(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i*7 + 3)
	}

	return out
}

func writeTempWave(t *testing.T, b []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.wav")
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}
