package wave

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"

	"github.com/go-audio/riff"
)

// Field offsets in the canonical header.
const (
	offContainerTag  = 0
	offRIFFSize      = 4
	offFormatTag     = 8
	offFmtTag        = 12
	offFmtLength     = 16
	offAudioFormat   = 20
	offChannels      = 22
	offSampleRate    = 24
	offByteRate      = 28
	offBlockAlign    = 32
	offBitsPerSample = 34
	offDataTag       = 36
	offDataLength    = 40
)

// Decode parses a complete PCM wave file held in b.
//
// The header must follow the canonical 44 byte layout: RIFF, WAVE, a 16 byte
// fmt chunk with audio format 1, then the data chunk. No other chunk order is
// accepted and bytes after the declared payload are ignored. Channel count,
// rates, block align and bit depth are returned as read; use Validate for
// consistency checks.
//
// Any failure is returned as a *FormatError. b is never modified and the
// returned File owns a copy of the payload.
func Decode(b []byte) (*File, error) {
	if len(b) < HeaderSize {
		return nil, newFormatError(TooShort, len(b), strconv.Itoa(len(b))+" bytes")
	}

	if err := expectTag(b, offContainerTag, riff.RiffID, BadContainerTag); err != nil {
		return nil, err
	}

	riffSize := binary.LittleEndian.Uint32(b[offRIFFSize:])

	if err := expectTag(b, offFormatTag, riff.WavFormatID, BadFormatTag); err != nil {
		return nil, err
	}

	if err := expectTag(b, offFmtTag, riff.FmtID, MissingFormatChunk); err != nil {
		return nil, err
	}

	if n := readInt32(b, offFmtLength); n != FmtChunkSize {
		return nil, newFormatError(UnsupportedFormatChunkLength, offFmtLength, strconv.Itoa(n))
	}

	if code := readInt16(b, offAudioFormat); code != FormatPCM {
		return nil, newFormatError(UnsupportedAudioFormat, offAudioFormat, strconv.Itoa(code))
	}

	f := &File{
		riffSize:      riffSize,
		channels:      readInt16(b, offChannels),
		sampleRate:    readInt32(b, offSampleRate),
		byteRate:      readInt32(b, offByteRate),
		blockAlign:    readInt16(b, offBlockAlign),
		bitsPerSample: readInt16(b, offBitsPerSample),
	}

	if err := expectTag(b, offDataTag, riff.DataFormatID, MissingDataChunk); err != nil {
		return nil, err
	}

	f.dataLength = readInt32(b, offDataLength)

	// int64 keeps the bounds check safe on 32 bit platforms.
	avail := int64(len(b) - HeaderSize)
	if f.dataLength < 0 || int64(f.dataLength) > avail {
		return nil, newFormatError(TruncatedPayload, offDataLength,
			fmt.Sprintf("%d declared, %d available", f.dataLength, avail))
	}

	f.data = bytes.Clone(b[HeaderSize : HeaderSize+f.dataLength])

	return f, nil
}

// ReadFile reads the whole file at path and decodes it.
func ReadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	f, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return f, nil
}

func expectTag(b []byte, offset int, want [4]byte, kind ErrorKind) error {
	got := b[offset : offset+4]
	if !bytes.Equal(got, want[:]) {
		return newFormatError(kind, offset, strconv.Quote(string(got)))
	}

	return nil
}

func readInt16(b []byte, offset int) int {
	return int(int16(binary.LittleEndian.Uint16(b[offset:])))
}

func readInt32(b []byte, offset int) int {
	return int(int32(binary.LittleEndian.Uint32(b[offset:])))
}
