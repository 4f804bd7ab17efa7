package wave

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-audio/audio"
)

const (
	// HeaderSize is the length of the canonical PCM wave header.
	HeaderSize = 44
	// FmtChunkSize is the only fmt chunk length accepted (plain PCM, no extension).
	FmtChunkSize = 16
	// FormatPCM is the audio format code for linear PCM.
	FormatPCM = 1
)

var errNilFile = errors.New("nil wave file")

// File is a decoded PCM wave file. It is read-only once built by Decode.
type File struct {
	riffSize      uint32
	channels      int
	sampleRate    int
	byteRate      int
	blockAlign    int
	bitsPerSample int
	dataLength    int
	data          []byte
}

// Channels returns the number of interleaved audio channels.
func (f *File) Channels() int {
	if f == nil {
		return 0
	}

	return f.channels
}

// SampleRate returns the number of samples per second per channel.
func (f *File) SampleRate() int {
	if f == nil {
		return 0
	}

	return f.sampleRate
}

// ByteRate returns the declared average bytes per second.
// It is stored as read and never checked against the other fields.
func (f *File) ByteRate() int {
	if f == nil {
		return 0
	}

	return f.byteRate
}

// BlockAlign returns the size in bytes of one frame across all channels.
func (f *File) BlockAlign() int {
	if f == nil {
		return 0
	}

	return f.blockAlign
}

// BitsPerSample returns the bit depth of a single sample.
func (f *File) BitsPerSample() int {
	if f == nil {
		return 0
	}

	return f.bitsPerSample
}

// DataLength returns the payload length declared in the data chunk header.
func (f *File) DataLength() int {
	if f == nil {
		return 0
	}

	return f.dataLength
}

// RIFFSize returns the container size field found at offset 4.
// Decode does not compare it with the real buffer length.
func (f *File) RIFFSize() uint32 {
	if f == nil {
		return 0
	}

	return f.riffSize
}

// Data returns a copy of the raw interleaved PCM payload.
func (f *File) Data() []byte {
	if f == nil {
		return nil
	}

	return bytes.Clone(f.data)
}

// Format returns the channel count and sample rate in go-audio form.
func (f *File) Format() *audio.Format {
	if f == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: f.channels,
		SampleRate:  f.sampleRate,
	}
}

// Duration returns the play time of the payload derived from the byte rate.
// Files declaring a non positive byte rate report a zero duration.
func (f *File) Duration() time.Duration {
	if f == nil || f.byteRate <= 0 {
		return 0
	}

	return time.Duration(float64(f.dataLength) / float64(f.byteRate) * float64(time.Second))
}

// String implements the Stringer interface.
func (f *File) String() string {
	if f == nil {
		return "<nil>"
	}

	return fmt.Sprintf("Format: PCM - %d channels @ %d / %d bits - %d bytes of data (%s)",
		f.channels, f.sampleRate, f.bitsPerSample, f.dataLength, f.Duration())
}
