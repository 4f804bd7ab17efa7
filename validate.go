package wave

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInconsistentHeader is wrapped by every ValidationError.
var ErrInconsistentHeader = errors.New("inconsistent wave header")

// ValidationError lists every rule a decoded header breaks.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInconsistentHeader, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInconsistentHeader
}

// Validate applies a strict policy on top of Decode, which passes the format
// fields through untouched. It checks that channels, sample rate, bit depth
// and block align are positive, that block align and byte rate agree with the
// other fields, and that the payload holds whole frames.
// It returns nil or a *ValidationError, or an error for a nil File.
func (f *File) Validate() error {
	if f == nil {
		return errNilFile
	}

	var problems []string

	positive := []struct {
		name  string
		value int
	}{
		{"channels", f.channels},
		{"sample rate", f.sampleRate},
		{"bits per sample", f.bitsPerSample},
		{"block align", f.blockAlign},
	}
	for _, p := range positive {
		if p.value <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got %d", p.name, p.value))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	wantAlign := f.channels * ((f.bitsPerSample + 7) / 8)
	if f.blockAlign != wantAlign {
		problems = append(problems, fmt.Sprintf("block align is %d, want %d", f.blockAlign, wantAlign))
	}

	// int64 keeps the product from overflowing on 32 bit platforms.
	wantRate := int64(f.sampleRate) * int64(f.blockAlign)
	if int64(f.byteRate) != wantRate {
		problems = append(problems, fmt.Sprintf("byte rate is %d, want %d", f.byteRate, wantRate))
	}

	if f.dataLength%f.blockAlign != 0 {
		problems = append(problems, fmt.Sprintf("data length %d is not a multiple of block align %d",
			f.dataLength, f.blockAlign))
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	return nil
}
