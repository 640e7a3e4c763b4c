package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// cliOptions holds the parsed command line
type cliOptions struct {
	SceneName string
	Width     int
	Aspect    float64
	Samples   int
	Depth     int
	Size      int
	Seed      int64
	Workers   int
	Out       string
	Verbose   bool
	Help      bool
}

// parseFlags parses args (without the program name)
func parseFlags(args []string, stderr io.Writer) (*cliOptions, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &cliOptions{}
	var aspect string
	fs.StringVar(&opts.SceneName, "scene", "random", "Scene: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&opts.Width, "width", 1200, "Image width in pixels")
	fs.StringVar(&aspect, "aspect", "16:9", "Aspect ratio as W:H or a decimal")
	fs.IntVar(&opts.Samples, "samples", 10, "Samples per pixel")
	fs.IntVar(&opts.Depth, "depth", 50, "Maximum ray bounce depth")
	fs.IntVar(&opts.Size, "size", scene.DefaultRandomSceneSize, "Random scene half extent (grid is (2*size+1)^2)")
	fs.Int64Var(&opts.Seed, "seed", 42, "Seed for scene layout and sampling")
	fs.IntVar(&opts.Workers, "workers", 0, "Number of render workers (0 = logical CPU count)")
	fs.StringVar(&opts.Out, "out", "", "Output file (.ppm, .ppm.zst, .ppm.sz, .ppm.gz, .png); default output/<scene>/render_<timestamp>.png")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Log every finished scanline")
	fs.BoolVar(&opts.Help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}

	ratio, err := parseAspect(aspect)
	if err != nil {
		return nil, fs, err
	}
	opts.Aspect = ratio
	if opts.Width < 2 {
		return nil, fs, fmt.Errorf("%w: width must be at least 2, got %d", core.ErrInvalidConfig, opts.Width)
	}
	if opts.Samples < 1 {
		return nil, fs, fmt.Errorf("%w: samples must be positive, got %d", core.ErrInvalidConfig, opts.Samples)
	}
	if opts.Depth < 1 {
		return nil, fs, fmt.Errorf("%w: depth must be positive, got %d", core.ErrInvalidConfig, opts.Depth)
	}
	if opts.Size < 0 {
		return nil, fs, fmt.Errorf("%w: size must not be negative, got %d", core.ErrInvalidConfig, opts.Size)
	}
	if opts.Workers < 0 {
		return nil, fs, fmt.Errorf("%w: workers must not be negative, got %d", core.ErrInvalidConfig, opts.Workers)
	}

	return opts, fs, nil
}

// parseAspect accepts "16:9" or "1.7778"
func parseAspect(value string) (float64, error) {
	if w, h, ok := strings.Cut(value, ":"); ok {
		num, errW := strconv.ParseFloat(w, 64)
		den, errH := strconv.ParseFloat(h, 64)
		if errW != nil || errH != nil || num <= 0 || den <= 0 {
			return 0, fmt.Errorf("%w: invalid aspect ratio %q", core.ErrInvalidConfig, value)
		}
		return num / den, nil
	}
	ratio, err := strconv.ParseFloat(value, 64)
	if err != nil || ratio <= 0 {
		return 0, fmt.Errorf("%w: invalid aspect ratio %q", core.ErrInvalidConfig, value)
	}
	return ratio, nil
}

// createScene builds the requested scene with the command line camera and sampling settings
func createScene(opts *cliOptions) (*scene.Scene, error) {
	s, err := scene.Create(opts.SceneName, scene.Options{
		Size: opts.Size,
		Seed: opts.Seed,
		Camera: renderer.CameraConfig{
			Width:       opts.Width,
			AspectRatio: opts.Aspect,
		},
	})
	if err != nil {
		return nil, err
	}

	s.SamplingConfig = s.SamplingConfig.Merge(core.SamplingConfig{
		SamplesPerPixel: opts.Samples,
		MaxDepth:        opts.Depth,
	})
	// Merge reads zero as unset, but 0 is a valid seed
	s.SamplingConfig.Seed = opts.Seed
	return s, nil
}

// outputPath returns the requested path or a timestamped default
func outputPath(opts *cliOptions, now time.Time) string {
	if opts.Out != "" {
		return opts.Out
	}
	return output.TimestampedPath(opts.SceneName, output.FormatPNG, now)
}

func printHelp(fs *flag.FlagSet) {
	fmt.Println("Weekend Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fs.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.List() {
		fmt.Printf("  %-14s %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png unless -out is given")
}

func run(ctx context.Context, opts *cliOptions) error {
	logger := renderer.NewDefaultLogger()

	if host, err := renderer.ProbeHost(); err == nil {
		logger.Printf("Host: %s\n", host)
	}

	selectedScene, err := createScene(opts)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%d spheres)...\n", opts.SceneName, selectedScene.GetPrimitiveCount())

	raytracer, err := renderer.NewRaytracer(selectedScene, selectedScene.SamplingConfig, logger)
	if err != nil {
		return err
	}

	frame, _, err := raytracer.Render(ctx, renderer.RenderOptions{
		NumWorkers: opts.Workers,
		Verbose:    opts.Verbose,
	})
	if err != nil {
		return err
	}

	filename := outputPath(opts, time.Now())
	if err := output.Save(filename, frame); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

func main() {
	opts, fs, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if opts.Help {
		printHelp(fs)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
