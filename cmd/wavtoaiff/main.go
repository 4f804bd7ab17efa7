// This tool converts a PCM wav file into an identical aiff file and stores
// it in the same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	wave "github.com/16BinaryDigits/WAVE-Parser"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

var errMissingPath = errors.New("you must set the -path flag")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(err)
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)

	sourcePath := flagSet.String("path", "", "The path to the wav file to convert to aiff")
	outPath := flagSet.String("out", "", "The aiff file to write, defaults to the source path with an .aif extension")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *sourcePath == "" {
		return errMissingPath
	}

	src, err := expandHome(*sourcePath)
	if err != nil {
		return err
	}

	f, err := wave.ReadFile(src)
	if err != nil {
		return err
	}

	if err := f.Validate(); err != nil {
		return fmt.Errorf("invalid WAV file %s: %w", src, err)
	}

	buf, err := f.IntBuffer()
	if err != nil {
		return err
	}

	dst := *outPath
	if dst == "" {
		dst = src[:len(src)-len(filepath.Ext(src))] + ".aif"
	}

	if err := writeAIFF(dst, f, buf); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wav file converted to %s\n", dst)

	return nil
}

func writeAIFF(path string, f *wave.File, buf *audio.IntBuffer) error {
	// wav stores 8 bit samples unsigned, aiff stores them signed.
	if f.BitsPerSample() <= 8 {
		for i := range buf.Data {
			buf.Data[i] -= 128
		}
	}

	// Samples that are not a whole number of bytes stay left-justified in
	// their container, so the aiff is written at the container depth.
	depth := containerDepth(f.BitsPerSample())
	buf.SourceBitDepth = depth

	return createOrRemove(path, func(w io.WriteSeeker) error {
		encoder := aiff.NewEncoder(w, f.SampleRate(), depth, f.Channels())

		if err := encoder.Write(buf); err != nil {
			return fmt.Errorf("failed to write samples: %w", err)
		}

		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to close the aiff encoder: %w", err)
		}

		return nil
	})
}

func containerDepth(bits int) int {
	return ((bits + 7) / 8) * 8
}

// createOrRemove creates path, hands it to write and deletes it again when
// write or the final close fails.
func createOrRemove(path string, write func(io.WriteSeeker) error) error {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	err = write(outFile)
	if closeErr := outFile.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close %s: %w", path, closeErr)
	}

	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			log.Printf("failed to remove %s: %v", path, rmErr)
		}

		return err
	}

	return nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return strings.Replace(path, "~", usr.HomeDir, 1), nil
}
