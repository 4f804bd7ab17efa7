// Package wave decodes canonical PCM WAVE files.
//
// Decode accepts the 44 byte header layout only: a RIFF container of type
// WAVE holding a 16 byte fmt chunk (audio format 1) immediately followed by
// the data chunk. Extended fmt chunks, compressed formats and other chunk
// types such as LIST or fact are rejected or never looked at.
//
// The decoded File exposes the header fields and a copy of the raw sample
// payload. Helpers convert it to go-audio types:
//
//   - Format() *audio.Format
//   - IntBuffer() (*audio.IntBuffer, error)
//
// Decode is a pure function of its input and safe for concurrent use.
package wave
