// This tool prints the header fields of the passed PCM wav file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	wave "github.com/16BinaryDigits/WAVE-Parser"
	"gopkg.in/yaml.v3"
)

const missingPathMessage = "You must pass the path of the file to decode"

var (
	errMissingPath   = errors.New("missing path argument")
	errUnknownFormat = errors.New("unknown output format")
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

type info struct {
	Path          string `yaml:"path"`
	Channels      int    `yaml:"channels"`
	SampleRate    int    `yaml:"sample_rate"`
	ByteRate      int    `yaml:"byte_rate"`
	BlockAlign    int    `yaml:"block_align"`
	BitsPerSample int    `yaml:"bits_per_sample"`
	DataLength    int    `yaml:"data_length"`
	RIFFSize      uint32 `yaml:"riff_size"`
	Duration      string `yaml:"duration"`
}

func newInfo(path string, f *wave.File) info {
	return info{
		Path:          path,
		Channels:      f.Channels(),
		SampleRate:    f.SampleRate(),
		ByteRate:      f.ByteRate(),
		BlockAlign:    f.BlockAlign(),
		BitsPerSample: f.BitsPerSample(),
		DataLength:    f.DataLength(),
		RIFFSize:      f.RIFFSize(),
		Duration:      f.Duration().String(),
	}
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavinfo", flag.ContinueOnError)

	format := flagSet.String("format", "text", "output format, text or yaml")
	strict := flagSet.Bool("strict", false, "fail when the header fields are inconsistent")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errMissingPath
	}

	path := flagSet.Arg(0)

	f, err := wave.ReadFile(path)
	if err != nil {
		return err
	}

	if *strict {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	nfo := newInfo(path, f)

	switch *format {
	case "text":
		writeText(out, nfo)
		return nil
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)

		if err := enc.Encode(nfo); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, *format)
	}
}

func writeText(out io.Writer, nfo info) {
	fmt.Fprintf(out, "File: %s\n", nfo.Path)
	fmt.Fprintf(out, "Channels: %d\n", nfo.Channels)
	fmt.Fprintf(out, "SampleRate: %d\n", nfo.SampleRate)
	fmt.Fprintf(out, "ByteRate: %d\n", nfo.ByteRate)
	fmt.Fprintf(out, "BlockAlign: %d\n", nfo.BlockAlign)
	fmt.Fprintf(out, "BitsPerSample: %d\n", nfo.BitsPerSample)
	fmt.Fprintf(out, "DataLength: %d\n", nfo.DataLength)
	fmt.Fprintf(out, "RIFFSize: %d\n", nfo.RIFFSize)
	fmt.Fprintf(out, "Duration: %s\n", nfo.Duration)
}
