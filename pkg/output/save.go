package output

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// ErrUnsupportedFormat is returned for file extensions with no encoder
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format identifies an image encoding
type Format string

const (
	FormatPPM       Format = ".ppm"
	FormatPPMZstd   Format = ".ppm.zst"
	FormatPPMSnappy Format = ".ppm.sz"
	FormatPPMGzip   Format = ".ppm.gz"
	FormatPNG       Format = ".png"
)

// formats is ordered so compound extensions match before ".ppm"
var formats = []Format{FormatPPMZstd, FormatPPMSnappy, FormatPPMGzip, FormatPPM, FormatPNG}

// FormatFromPath picks the format from a file name's extension
func FormatFromPath(path string) (Format, error) {
	lower := strings.ToLower(path)
	for _, f := range formats {
		if strings.HasSuffix(lower, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
}

// Encode writes the frame to w in the given format
func Encode(w io.Writer, format Format, frame *renderer.Frame) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, frame)

	case FormatPPMZstd:
		encoder, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("zstd writer: %w", err)
		}
		if err := WritePPM(encoder, frame); err != nil {
			encoder.Close()
			return err
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("zstd close: %w", err)
		}
		return nil

	case FormatPPMSnappy:
		stream := snappy.NewBufferedWriter(w)
		if err := WritePPM(stream, frame); err != nil {
			stream.Close()
			return err
		}
		if err := stream.Close(); err != nil {
			return fmt.Errorf("snappy close: %w", err)
		}
		return nil

	case FormatPPMGzip:
		writer := gzip.NewWriter(w)
		if err := WritePPM(writer, frame); err != nil {
			writer.Close()
			return err
		}
		if err := writer.Close(); err != nil {
			return fmt.Errorf("gzip close: %w", err)
		}
		return nil

	case FormatPNG:
		if err := png.Encode(w, frame.ToImage()); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Save writes the frame to path, creating parent directories. The format follows the extension.
func Save(path string, frame *renderer.Frame) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := Encode(file, format, frame); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// TimestampedPath returns output/<scene>/render_<timestamp><format>
func TimestampedPath(sceneName string, format Format, now time.Time) string {
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s%s", now.Format("20060102_150405"), format))
}
