package wave

import (
	"errors"
	"fmt"
)

// ErrorKind identifies why a buffer was rejected by Decode.
type ErrorKind int

const (
	// TooShort means the buffer cannot hold the fixed 44 byte header.
	TooShort ErrorKind = iota + 1
	// BadContainerTag means bytes 0-3 are not "RIFF".
	BadContainerTag
	// BadFormatTag means bytes 8-11 are not "WAVE".
	BadFormatTag
	// MissingFormatChunk means bytes 12-15 are not "fmt ".
	MissingFormatChunk
	// UnsupportedFormatChunkLength means the fmt chunk is not 16 bytes long.
	UnsupportedFormatChunkLength
	// UnsupportedAudioFormat means the audio format code is not linear PCM.
	UnsupportedAudioFormat
	// MissingDataChunk means bytes 36-39 are not "data".
	MissingDataChunk
	// TruncatedPayload means the declared data length runs past the buffer.
	TruncatedPayload
)

var (
	// ErrTooShort is wrapped by FormatError values of kind TooShort.
	ErrTooShort = errors.New("buffer shorter than the wave header")
	// ErrBadContainerTag is wrapped by FormatError values of kind BadContainerTag.
	ErrBadContainerTag = errors.New("container is not RIFF")
	// ErrBadFormatTag is wrapped by FormatError values of kind BadFormatTag.
	ErrBadFormatTag = errors.New("file type is not WAVE")
	// ErrMissingFormatChunk is wrapped by FormatError values of kind MissingFormatChunk.
	ErrMissingFormatChunk = errors.New("format chunk missing")
	// ErrUnsupportedFormatChunkLength is wrapped by FormatError values of kind
	// UnsupportedFormatChunkLength.
	ErrUnsupportedFormatChunkLength = errors.New("format chunk length is not PCM")
	// ErrUnsupportedAudioFormat is wrapped by FormatError values of kind
	// UnsupportedAudioFormat.
	ErrUnsupportedAudioFormat = errors.New("audio format is not PCM")
	// ErrMissingDataChunk is wrapped by FormatError values of kind MissingDataChunk.
	ErrMissingDataChunk = errors.New("data chunk missing")
	// ErrTruncatedPayload is wrapped by FormatError values of kind TruncatedPayload.
	ErrTruncatedPayload = errors.New("data chunk truncated")
)

var kindErrors = map[ErrorKind]error{
	TooShort:                     ErrTooShort,
	BadContainerTag:              ErrBadContainerTag,
	BadFormatTag:                 ErrBadFormatTag,
	MissingFormatChunk:           ErrMissingFormatChunk,
	UnsupportedFormatChunkLength: ErrUnsupportedFormatChunkLength,
	UnsupportedAudioFormat:       ErrUnsupportedAudioFormat,
	MissingDataChunk:             ErrMissingDataChunk,
	TruncatedPayload:             ErrTruncatedPayload,
}

var kindNames = map[ErrorKind]string{
	TooShort:                     "TooShort",
	BadContainerTag:              "BadContainerTag",
	BadFormatTag:                 "BadFormatTag",
	MissingFormatChunk:           "MissingFormatChunk",
	UnsupportedFormatChunkLength: "UnsupportedFormatChunkLength",
	UnsupportedAudioFormat:       "UnsupportedAudioFormat",
	MissingDataChunk:             "MissingDataChunk",
	TruncatedPayload:             "TruncatedPayload",
}

// String implements the Stringer interface.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// FormatError reports the first header check that failed while decoding.
type FormatError struct {
	Kind ErrorKind
	// Offset is the byte offset of the offending field.
	Offset int
	// Got describes the value found at Offset.
	Got string
}

func newFormatError(kind ErrorKind, offset int, got string) *FormatError {
	return &FormatError{Kind: kind, Offset: offset, Got: got}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("wave: %s at offset %d (got %s)", e.Unwrap(), e.Offset, e.Got)
}

// Unwrap returns the sentinel error matching e.Kind.
func (e *FormatError) Unwrap() error {
	if err, ok := kindErrors[e.Kind]; ok {
		return err
	}

	return errUnknownKind
}

var errUnknownKind = errors.New("unknown format error")
